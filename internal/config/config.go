// Package config provides the editor configuration: typed settings with
// defaults, an optional TOML file, and KILO_ environment overrides.
//
// Precedence, lowest first:
//
//	defaults < config file < environment < command-line flags
//
// Command-line flags are applied by the caller after Load returns.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/kilo/internal/renderer/core"
)

// Config holds all editor settings.
type Config struct {
	Editor  EditorConfig  `toml:"editor"`
	UI      UIConfig      `toml:"ui"`
	Logging LoggingConfig `toml:"logging"`
}

// EditorConfig holds editing behavior settings.
type EditorConfig struct {
	// QuitTimes is how many consecutive Ctrl-Q presses quit with unsaved
	// changes.
	QuitTimes int `toml:"quit_times"`

	// MessageTimeout is how long, in seconds, a status message stays visible.
	MessageTimeout int `toml:"message_timeout"`

	// WASDMovement enables Alt+w/a/s/d as cursor movement keys.
	WASDMovement bool `toml:"wasd_movement"`

	// ShowWelcome draws the welcome banner over an empty document.
	ShowWelcome bool `toml:"show_welcome"`
}

// UIConfig holds colors as "#rrggbb" strings; "default" uses the terminal's
// color.
type UIConfig struct {
	StatusFG  string `toml:"status_fg"`
	StatusBG  string `toml:"status_bg"`
	MessageFG string `toml:"message_fg"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `toml:"level"`

	// File is the log destination. Empty discards logs, since the terminal
	// belongs to the editor.
	File string `toml:"file"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			QuitTimes:      3,
			MessageTimeout: 5,
			WASDMovement:   false,
			ShowWelcome:    true,
		},
		UI: UIConfig{
			StatusFG:  "#ffffff",
			StatusBG:  "#8b008b",
			MessageFG: "default",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// MessageDuration returns the status message timeout as a duration.
func (c *Config) MessageDuration() time.Duration {
	return time.Duration(c.Editor.MessageTimeout) * time.Second
}

// DefaultPath returns the default config file location,
// $XDG_CONFIG_HOME/kilo/config.toml on Linux.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "kilo", "config.toml")
}

// Load builds the configuration from defaults, the file at path and the
// environment, then validates it. A missing file is not an error; an empty
// path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile merges the TOML file at path into c. Settings absent from the
// file keep their current values. A missing file is not an error.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	return c.parse(path, data)
}

// parse decodes TOML data into c. Unknown keys are rejected.
func (c *Config) parse(source string, data []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(c); err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}

		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return perr
	}
	return nil
}

// Styles returns the status bar and message line styles. Colors that fail
// to parse fall back to the terminal default; Validate reports them.
func (c *Config) Styles() (status, message core.Style) {
	status = core.DefaultStyle().
		WithForeground(colorOrDefault(c.UI.StatusFG)).
		WithBackground(colorOrDefault(c.UI.StatusBG))
	message = core.DefaultStyle().WithForeground(colorOrDefault(c.UI.MessageFG))
	return status, message
}

func colorOrDefault(hex string) core.Color {
	c, err := core.ColorFromHex(hex)
	if err != nil {
		return core.ColorDefault
	}
	return c
}
