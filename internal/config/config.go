// Package config handles the optional global trellis configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the global trellis configuration. Every field is
// optional; command-line flags take precedence over configured values.
type Config struct {
	// Input is the default Craft export directory to convert.
	Input string `toml:"input"`

	// Output is the default Zola content directory to write into.
	Output string `toml:"output"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output.
	// Supported values are ANSI color codes ("0" to "255") or hex colors
	// ("#RRGGBB").
	Accent string `toml:"accent"`
}

// DefaultPath returns the conventional config file location,
// e.g. ~/.config/trellis/config.toml.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, "trellis", "config.toml"), nil
}

// Load reads the config at path, or the default location when path is empty.
// A missing file is not an error; it yields an empty config.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return &Config{}, nil
		}
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}
