package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/capitalize/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the global configuration",
	}

	setCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a field of the global configuration file",
		Long: `Set a field of the global configuration file, creating it when needed.
Lists are given comma separated. Known keys:
  ` + strings.Join(config.Fields(), "\n  "),
		Example: `
# Use the Ukrainian small words for title case
capitalize config set title.language uk

# Never capitalize "and" or "or" in custom mode
capitalize config set custom.ignore_words and,or
  `,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.GlobalConfig()
			if err := config.SetField(path, args[0], args[1]); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s set in %s\n", args[0], path)
			return err
		},
	}

	configCmd.AddCommand(setCmd)
	return configCmd
}
