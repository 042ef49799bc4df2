package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/capitalize/internal/home"
	"github.com/qjebbs/go-jsons"
)

var ErrUnknownField = errors.New("unknown config field")

// Load reads the global config and the project configs of workingDir, later
// files overriding earlier ones.
func Load(workingDir string, debug bool) (*Config, error) {
	configPaths := append([]string{GlobalConfig()}, lookupConfigs(workingDir)...)

	cfg, err := loadFromConfigPaths(configPaths)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from paths %v: %w", configPaths, err)
	}

	cfg.setDefaults(workingDir, debug)
	slog.Debug("config loaded", "paths", configPaths, "working_dir", workingDir)
	return cfg, nil
}

// LoadReader decodes a single config document.
func LoadReader(fd io.Reader) (*Config, error) {
	data, err := io.ReadAll(fd)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) setDefaults(workingDir string, debug bool) {
	c.workingDir = workingDir
	if debug {
		c.Options.Debug = true
	}
	if v, _ := strconv.ParseBool(os.Getenv("CAPITALIZE_DEBUG")); v {
		c.Options.Debug = true
	}
	if c.Options.DataDirectory == "" {
		c.Options.DataDirectory = GlobalDataDir()
	}
	c.Options.DataDirectory = home.Long(c.Options.DataDirectory)
}

func lookupConfigs(cwd string) []string {
	return []string{
		filepath.Join(cwd, "."+appName+".json"),
		filepath.Join(cwd, appName+".json"),
	}
}

func loadFromConfigPaths(configPaths []string) (*Config, error) {
	var configs []io.Reader

	for _, path := range configPaths {
		fd, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to open config file %s: %w", path, err)
		}
		defer fd.Close()

		configs = append(configs, fd)
	}

	return loadFromReaders(configs)
}

func loadFromReaders(readers []io.Reader) (*Config, error) {
	if len(readers) == 0 {
		return &Config{}, nil
	}

	merged, err := jsons.Merge(readers)
	if err != nil {
		return nil, fmt.Errorf("failed to merge configuration readers: %w", err)
	}

	return LoadReader(bytes.NewReader(merged))
}

// GlobalConfig returns the path of the user wide config file.
func GlobalConfig() string {
	if p := os.Getenv("CAPITALIZE_CONFIG"); p != "" {
		return home.Long(p)
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, appName+".json")
	}
	return filepath.Join(home.Dir(), ".config", appName, appName+".json")
}

// GlobalDataDir returns the default directory for logs.
func GlobalDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	return filepath.Join(home.Dir(), ".local", "share", appName)
}
