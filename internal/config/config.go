// Package config loads gridpaint settings from a TOML file.
//
// A missing config file is not an error: the defaults stand in. Explicitly
// provided but unreadable or malformed files do error, so typos in -config
// are not silently ignored.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds all tunable settings.
type Config struct {
	Canvas  CanvasConfig  `toml:"canvas"`
	History HistoryConfig `toml:"history"`
	Script  ScriptConfig  `toml:"script"`
	Log     LogConfig     `toml:"log"`
}

// CanvasConfig configures the drawing surface.
type CanvasConfig struct {
	// Width and Height are the default canvas dimensions, used when the
	// command line does not supply them.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Pen is the initial pen character.
	Pen string `toml:"pen"`
}

// HistoryConfig configures the command log and its persistence.
type HistoryConfig struct {
	// File is the default save/load filename.
	File string `toml:"file"`

	// MaxCommand bounds the byte length of one command line.
	MaxCommand int `toml:"max_command"`

	// SeedPen records the initial pen as a chpen entry at startup.
	SeedPen bool `toml:"seed_pen"`
}

// ScriptConfig configures Lua scripting.
type ScriptConfig struct {
	// Enabled turns the script verb on.
	Enabled bool `toml:"enabled"`

	// TimeoutSeconds bounds one script run.
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// LogConfig configures diagnostics.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Canvas: CanvasConfig{
			Width:  40,
			Height: 20,
			Pen:    "*",
		},
		History: HistoryConfig{
			File:       "history.txt",
			MaxCommand: 1000,
			SeedPen:    true,
		},
		Script: ScriptConfig{
			Enabled:        true,
			TimeoutSeconds: 5,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the TOML file at path, layered over the defaults. An empty
// path or a nonexistent file yields the defaults.
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
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas dimensions must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if len([]rune(c.Canvas.Pen)) != 1 {
		return fmt.Errorf("canvas pen must be a single character, got %q", c.Canvas.Pen)
	}
	if c.History.MaxCommand <= 0 {
		return fmt.Errorf("history max_command must be positive, got %d", c.History.MaxCommand)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	return nil
}

// PenRune returns the configured pen as a rune.
func (c Config) PenRune() rune {
	return []rune(c.Canvas.Pen)[0]
}
