// Package config loads viewer defaults from an optional TOML file.
//
// The file is looked up at $XDG_CONFIG_HOME/ansiterm/ansiterm.toml (via
// os.UserConfigDir). A missing file is not an error; command-line flags
// always win over file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds viewer defaults.
type Config struct {
	// Ice is the default iCE color mode: "auto", "on" or "off".
	Ice string `toml:"ice"`
	// Safe enables the safety filter.
	Safe bool `toml:"safe"`
	// AltScreen renders into the alternate screen buffer.
	AltScreen bool `toml:"alt_screen"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Ice:       "auto",
		Safe:      true,
		AltScreen: true,
	}
}

// DefaultPath returns the standard config file location, or an empty string
// when the user config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "ansiterm", "ansiterm.toml")
}

// Load reads configuration from path. A missing file (or empty path)
// returns the defaults with no error; keys absent from the file keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), &ParseError{Path: path, Err: err}
	}
	return cfg, nil
}
