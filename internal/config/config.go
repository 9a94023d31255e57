// Package config resolves and loads the shell's on-disk configuration:
// the history file location and prompt string, following the same
// XDG-aware resolution order the rest of the toolchain uses.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const appName = "goshell"

// envConfigDir is goshell's own config-directory override.
// envHistoryFile is the shell's long-standing history-seed variable,
// honored directly (not renamed per-app) so existing HISTFILE setups
// keep working unchanged.
var (
	envConfigDir   = strings.ToUpper(appName) + "_CONFIG_DIR"
	envHistoryFile = "HISTFILE"
)

// Config is the shell's user-tunable settings, loaded from a YAML file
// in the resolved config directory.
type Config struct {
	// Prompt is printed before each line read. Defaults to "$ ".
	Prompt string `yaml:"prompt"`
	// HistoryFile overrides the history file's path; empty means use
	// the default location under the config directory.
	HistoryFile string `yaml:"history_file"`
	// HistoryAppend writes history incrementally in append mode rather
	// than truncating the file on every save.
	HistoryAppend bool `yaml:"history_append"`
}

// Default returns the configuration a fresh install starts with.
func Default() Config {
	return Config{Prompt: "$ ", HistoryAppend: true}
}

// Dir returns the base config directory for the shell. Priority:
// $GOSHELL_CONFIG_DIR > $XDG_CONFIG_HOME/goshell > ~/.config/goshell.
func Dir() (string, error) {
	if v := os.Getenv(envConfigDir); v != "" {
		return v, nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// FilePath returns the path to the config file itself, config.yaml
// inside Dir().
func FilePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads and parses the config file, returning Default() unchanged
// if the file does not exist.
func Load() (Config, error) {
	path, err := FilePath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to the config file, creating the config directory if
// needed.
func Save(cfg Config) error {
	path, err := FilePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// HistoryPath resolves where the history file lives: the config's
// explicit HistoryFile, then $HISTFILE, then history under the config
// directory.
func (c Config) HistoryPath() (string, error) {
	if c.HistoryFile != "" {
		return c.HistoryFile, nil
	}
	if v := os.Getenv(envHistoryFile); v != "" {
		return v, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history"), nil
}
