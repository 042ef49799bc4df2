package cmd

import (
	"os"
	"path/filepath"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/charmbracelet/capitalize/internal/config"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
)

func newDirsCmd() *cobra.Command {
	dirsCmd := &cobra.Command{
		Use:   "dirs",
		Short: "Print directories used by capitalize",
		Long: `Print the directories where capitalize looks for its global configuration
and writes its logs.`,
		Example: `
# Print all directories
capitalize dirs

# Print only the config directory
capitalize dirs config

# Print only the data directory
capitalize dirs data
  `,
		Run: func(cmd *cobra.Command, args []string) {
			if f, ok := cmd.OutOrStdout().(*os.File); ok && term.IsTerminal(f.Fd()) {
				// We're in a TTY: make it fancy.
				t := table.New().
					Border(lipgloss.RoundedBorder()).
					StyleFunc(func(row, col int) lipgloss.Style {
						return lipgloss.NewStyle().Padding(0, 2)
					}).
					Row("Config", filepath.Dir(config.GlobalConfig())).
					Row("Data", config.GlobalDataDir())
				lipgloss.Println(t)
				return
			}
			// Not a TTY.
			cmd.Println(filepath.Dir(config.GlobalConfig()))
			cmd.Println(config.GlobalDataDir())
		},
	}

	dirsCmd.AddCommand(
		&cobra.Command{
			Use:   "config",
			Short: "Print the configuration directory used by capitalize",
			Run: func(cmd *cobra.Command, args []string) {
				cmd.Println(filepath.Dir(config.GlobalConfig()))
			},
		},
		&cobra.Command{
			Use:   "data",
			Short: "Print the data directory used by capitalize",
			Run: func(cmd *cobra.Command, args []string) {
				cmd.Println(config.GlobalDataDir())
			},
		},
	)
	return dirsCmd
}
