// Package config handles application configuration loading.
//
// Settings live in a TOML file under the user's config directory and cover
// the defaults used when creating new scenes; everything is optional and
// overlays onto built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const ConfigFileName = "config.toml"

// Config holds application settings.
type Config struct {
	// LEDCount is the strip length used for new scenes.
	LEDCount int `toml:"led_count"`
	// FPS is the playback rate used for new scenes.
	FPS int `toml:"fps"`
	// ScenesDir is where scene files are created by default ("" = cwd).
	ScenesDir string `toml:"scenes_dir"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		LEDCount: 100,
		FPS:      60,
	}
}

// Load loads configuration from the explicit path, or the first existing
// search path when none is given. A missing file yields defaults and an
// error; parse errors also return defaults plus the error, so callers can
// keep running and just report the problem.
func Load(path string) (*Config, error) {
	defaults := Defaults()
	chosen := path
	if chosen == "" {
		for _, p := range searchPaths() {
			if _, err := os.Stat(p); err == nil {
				chosen = p
				break
			}
		}
	}
	if chosen == "" {
		return defaults, errors.New("no config file found; using defaults")
	}

	data, err := os.ReadFile(chosen)
	if err != nil {
		return defaults, fmt.Errorf("read config: %w", err)
	}
	if _, err := toml.Decode(string(data), defaults); err != nil {
		return Defaults(), fmt.Errorf("parse config: %w", err)
	}
	defaults.normalize()
	return defaults, nil
}

func searchPaths() []string {
	var out []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		out = append(out, filepath.Join(xdg, "ledscene", ConfigFileName))
	}
	if home, _ := os.UserHomeDir(); home != "" {
		out = append(out, filepath.Join(home, ".config", "ledscene", ConfigFileName))
	}
	return out
}

// normalize clamps values a hand-edited file may have broken.
func (c *Config) normalize() {
	if c.LEDCount <= 0 {
		c.LEDCount = 100
	}
	if c.FPS <= 0 {
		c.FPS = 60
	}
	if c.FPS > 240 {
		c.FPS = 240
	}
}
