// Package config loads the TOML runtime configuration and builds the
// logger from it.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the full runtime configuration.
type Config struct {
	Frame  FrameConfig  `toml:"frame"`
	Log    LogConfig    `toml:"log"`
	Render RenderConfig `toml:"render"`
}

// FrameConfig controls the frame loop.
type FrameConfig struct {
	// Rate is the tick frequency in frames per second.
	Rate int `toml:"rate"`
}

// LogConfig controls the file logger. The terminal belongs to the
// screen while the app runs, so there is no console destination.
type LogConfig struct {
	Level string `toml:"level"` // none, info, debug
	File  string `toml:"file"`
	Mode  string `toml:"mode"` // append, overwrite
}

// RenderConfig selects presentation options.
type RenderConfig struct {
	Theme string `toml:"theme"` // default, light
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Frame:  FrameConfig{Rate: 30},
		Log:    LogConfig{Level: "none", Mode: "append"},
		Render: RenderConfig{Theme: "default"},
	}
}

// Load reads the configuration at path, layered over the defaults. A
// missing file is not an error; an unreadable or invalid one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values against their documented domains.
func (c Config) Validate() error {
	if c.Frame.Rate < 1 || c.Frame.Rate > 240 {
		return fmt.Errorf("frame rate %d outside 1..240", c.Frame.Rate)
	}
	switch c.Log.Level {
	case "", "none", "info", "debug":
	default:
		return fmt.Errorf("unsupported log level %q", c.Log.Level)
	}
	switch c.Log.Mode {
	case "", "append", "overwrite":
	default:
		return fmt.Errorf("unsupported log mode %q", c.Log.Mode)
	}
	switch c.Render.Theme {
	case "", "default", "light":
	default:
		return fmt.Errorf("unsupported theme %q", c.Render.Theme)
	}
	return nil
}
