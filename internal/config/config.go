package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/capitalize"
	"github.com/invopop/jsonschema"
	"github.com/tidwall/sjson"
	"golang.org/x/text/language"
)

const appName = "capitalize"

// TitleOptions holds the defaults of the title command.
type TitleOptions struct {
	SmallWords []string `json:"small_words,omitempty" jsonschema:"description=Words kept in lower case unless they open or close the text,example=a,example=the,example=of"`
	Language   string   `json:"language,omitempty" jsonschema:"description=Language of the built-in small word list used when small_words is empty,enum=en,enum=uk,enum=ru,default=en"`
}

// CustomOptions holds the defaults of the custom command.
type CustomOptions struct {
	FirstWordOnly bool     `json:"first_word_only,omitempty" jsonschema:"description=Only capitalize the first letter of the text,default=false"`
	IgnoreWords   []string `json:"ignore_words,omitempty" jsonschema:"description=Lower-case words that are never capitalized,example=and,example=or"`
	PreserveCase  bool     `json:"preserve_case,omitempty" jsonschema:"description=Keep ignored words as written instead of lower-casing them,default=false"`
}

type Options struct {
	Debug         bool   `json:"debug,omitempty" jsonschema:"description=Enable debug logging,default=false"`
	DataDirectory string `json:"data_directory,omitempty" jsonschema:"description=Directory holding the log files,example=~/.local/share/capitalize"`
}

// Config is the merged content of every capitalize.json found.
type Config struct {
	Schema  string        `json:"$schema,omitempty"`
	Title   TitleOptions  `json:"title,omitzero" jsonschema:"description=Defaults for the title command"`
	Custom  CustomOptions `json:"custom,omitzero" jsonschema:"description=Defaults for the custom command"`
	Options Options       `json:"options,omitzero" jsonschema:"description=General application options"`

	workingDir string `json:"-"`
}

func (Options) JSONSchemaExtend(schema *jsonschema.Schema) {
	if schema.Properties == nil {
		return
	}
	if prop, ok := schema.Properties.Get("data_directory"); ok {
		prop.Default = "$XDG_DATA_HOME/capitalize"
	}
}

func (c *Config) WorkingDir() string {
	return c.workingDir
}

// SmallWords returns the configured small words, falling back to the
// built-in list for the configured language.
func (c *Config) SmallWords() []string {
	if len(c.Title.SmallWords) > 0 {
		return slices.Clone(c.Title.SmallWords)
	}
	return capitalize.SmallWordsFor(language.Make(c.Title.Language))
}

func (c *Config) CustomOptions() capitalize.CustomOptions {
	return capitalize.CustomOptions{
		FirstWordOnly: c.Custom.FirstWordOnly,
		IgnoreWords:   slices.Clone(c.Custom.IgnoreWords),
		PreserveCase:  c.Custom.PreserveCase,
	}
}

func (c *Config) LogFile() string {
	return filepath.Join(c.Options.DataDirectory, "logs", appName+".log")
}

// Field kinds accepted by SetField.
const (
	kindString = iota
	kindBool
	kindList
)

var fields = map[string]int{
	"title.small_words":      kindList,
	"title.language":         kindString,
	"custom.first_word_only": kindBool,
	"custom.ignore_words":    kindList,
	"custom.preserve_case":   kindBool,
	"options.debug":          kindBool,
	"options.data_directory": kindString,
}

// Fields returns the keys accepted by SetField, sorted.
func Fields() []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// SetField writes key to the JSON file at path, creating the file if needed.
// Lists are given comma separated.
func SetField(path, key, raw string) error {
	kind, ok := fields[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, key)
	}

	var value any
	switch kind {
	case kindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}
		value = b
	case kindList:
		list := []string{}
		for item := range strings.SplitSeq(raw, ",") {
			if item = strings.TrimSpace(item); item != "" {
				list = append(list, item)
			}
		}
		value = list
	default:
		value = raw
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		data = []byte("{}")
	}

	newValue, err := sjson.SetBytes(data, key, value)
	if err != nil {
		return fmt.Errorf("failed to set config field %s: %w", key, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, newValue, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
