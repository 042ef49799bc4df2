package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/capitalize"
	"github.com/charmbracelet/capitalize/internal/config"
	"github.com/charmbracelet/capitalize/internal/log"
	"github.com/charmbracelet/capitalize/internal/version"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
)

// Modes with their own command and flags.
var dedicated = map[string]bool{
	"title":  true,
	"custom": true,
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "capitalize",
		Short: "Change the case of words, sentences and texts",
		Long: `Capitalize changes the case of Latin and Cyrillic text, Ukrainian included.
It works on single words, sentences, every word of a text, or title case
that keeps small words such as "and" or "of" in lower case.
Text is taken from the arguments, from stdin, or both.`,
		Example: `
# Capitalize a word
capitalize word hELLO

# Capitalize every sentence of a file
capitalize sentences < notes.txt

# Title case, keeping small words in lower case
echo "the lord of the rings" | capitalize title

# Print the available modes
capitalize modes
  `,
		Args: cobra.NoArgs,
	}

	rootCmd.PersistentFlags().StringP("cwd", "c", "", "Current working directory")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Debug")

	for _, m := range capitalize.Modes() {
		if dedicated[m.Name] {
			continue
		}
		rootCmd.AddCommand(newModeCmd(m))
	}
	rootCmd.AddCommand(
		newTitleCmd(),
		newCustomCmd(),
		newModesCmd(),
		newConfigCmd(),
		newDirsCmd(),
		newSchemaCmd(),
	)
	return rootCmd
}

func Execute() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version.Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// setup loads the configuration and starts logging.
func setup(cmd *cobra.Command) (*config.Config, error) {
	debug, _ := cmd.Flags().GetBool("debug")

	cwd, err := ResolveCwd(cmd)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(cwd, debug)
	if err != nil {
		return nil, err
	}

	log.Setup(cfg.LogFile(), cfg.Options.Debug)
	return cfg, nil
}

func ResolveCwd(cmd *cobra.Command) (string, error) {
	cwd, _ := cmd.Flags().GetString("cwd")
	if cwd != "" {
		abs, err := filepath.Abs(cwd)
		if err != nil {
			return "", fmt.Errorf("failed to resolve directory: %v", err)
		}
		return abs, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %v", err)
	}
	return cwd, nil
}

// readInput joins args with spaces and prepends whatever is piped to stdin.
// A terminal on stdin is never read.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	text := strings.Join(args, " ")

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		if term.IsTerminal(f.Fd()) {
			return text, nil
		}
		fi, err := f.Stat()
		if err != nil {
			return text, err
		}
		if fi.Mode()&os.ModeNamedPipe == 0 && !fi.Mode().IsRegular() {
			return text, nil
		}
	}

	bts, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	piped := strings.TrimSuffix(strings.TrimSuffix(string(bts), "\n"), "\r")

	switch {
	case piped == "":
		return text, nil
	case text == "":
		return piped, nil
	default:
		return piped + " " + text, nil
	}
}
