package cmd

import (
	"fmt"
	"log/slog"

	"github.com/MakeNowJust/heredoc"
	"github.com/charmbracelet/capitalize"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

func newModeCmd(m capitalize.Mode) *cobra.Command {
	return &cobra.Command{
		Use:   m.Name + " [text...]",
		Short: m.Description,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := setup(cmd); err != nil {
				return err
			}
			return runTransform(cmd, args, m.Name, m.Transform)
		},
	}
}

func newTitleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "title [text...]",
		Short: "Capitalize words except small ones, first and last always",
		Long: heredoc.Doc(`
			Capitalize every word except small words such as articles, conjunctions and
			short prepositions. The first and the last word are always capitalized.
			Whitespace between words collapses into single spaces.
		`),
		Example: heredoc.Doc(`
			# English small words
			capitalize title "the lord of the rings"

			# Russian small words
			capitalize title --lang ru "война и мир"

			# Your own list
			capitalize title --small-words with,from "gone with the wind"
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd)
			if err != nil {
				return err
			}

			smallWords := cfg.SmallWords()
			if cmd.Flags().Changed("lang") {
				lang, _ := cmd.Flags().GetString("lang")
				tag, err := language.Parse(lang)
				if err != nil {
					return fmt.Errorf("invalid language %q: %w", lang, err)
				}
				smallWords = capitalize.SmallWordsFor(tag)
			}
			if cmd.Flags().Changed("small-words") {
				smallWords, _ = cmd.Flags().GetStringSlice("small-words")
			}

			return runTransform(cmd, args, "title", func(s string) string {
				return capitalize.WordsIgnoreSmallWith(s, smallWords)
			})
		},
	}
	cmd.Flags().StringSlice("small-words", nil, "Words kept in lower case, comma separated")
	cmd.Flags().String("lang", "", "Language of the built-in small word list: en, uk or ru")
	return cmd
}

func newCustomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "custom [text...]",
		Short: "Capitalize every word, honoring custom options",
		Long: heredoc.Doc(`
			Capitalize every word except the ignored ones, which are lower-cased or kept
			as written. With --first-word-only only the first letter of the text changes.
			Flags override the custom section of the config file.
		`),
		Example: heredoc.Doc(`
			# Leave "and" and "or" alone
			capitalize custom --ignore and,or "salt and pepper"

			# Keep the case of ignored words
			capitalize custom --ignore and --preserve-case "Hello AND World"
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd)
			if err != nil {
				return err
			}

			opts := cfg.CustomOptions()
			if cmd.Flags().Changed("first-word-only") {
				opts.FirstWordOnly, _ = cmd.Flags().GetBool("first-word-only")
			}
			if cmd.Flags().Changed("ignore") {
				opts.IgnoreWords, _ = cmd.Flags().GetStringSlice("ignore")
			}
			if cmd.Flags().Changed("preserve-case") {
				opts.PreserveCase, _ = cmd.Flags().GetBool("preserve-case")
			}

			return runTransform(cmd, args, "custom", func(s string) string {
				return capitalize.Custom(s, opts)
			})
		},
	}
	cmd.Flags().Bool("first-word-only", false, "Only capitalize the first letter of the text")
	cmd.Flags().StringSlice("ignore", nil, "Lower-case words that are never capitalized, comma separated")
	cmd.Flags().Bool("preserve-case", false, "Keep ignored words as written")
	return cmd
}

func runTransform(cmd *cobra.Command, args []string, mode string, fn capitalize.Transform) error {
	text, err := readInput(cmd, args)
	if err != nil {
		slog.Error("Failed to read input", "error", err)
		return err
	}
	slog.Debug("transforming text", "mode", mode, "bytes", len(text))

	_, err = fmt.Fprintln(cmd.OutOrStdout(), fn(text))
	return err
}
