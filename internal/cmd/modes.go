package cmd

import (
	"fmt"
	"os"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/charmbracelet/capitalize"
	"github.com/charmbracelet/x/exp/charmtone"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
)

func newModesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List the available capitalization modes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if f, ok := out.(*os.File); ok && term.IsTerminal(f.Fd()) {
				// We're in a TTY: make it fancy.
				t := table.New().
					Border(lipgloss.RoundedBorder()).
					BorderStyle(lipgloss.NewStyle().Foreground(charmtone.Charple)).
					StyleFunc(func(row, col int) lipgloss.Style {
						s := lipgloss.NewStyle().Padding(0, 2)
						if col == 0 {
							s = s.Foreground(charmtone.Malibu)
						}
						return s
					}).
					Headers("Mode", "Description")
				for _, m := range capitalize.Modes() {
					t.Row(m.Name, m.Description)
				}
				lipgloss.Println(t)
				return
			}
			// Not a TTY.
			for _, m := range capitalize.Modes() {
				fmt.Fprintf(out, "%s\t%s\n", m.Name, m.Description)
			}
		},
	}
}
