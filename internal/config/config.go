// Package config loads editor settings from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the user-tunable editor settings.
type Config struct {
	// QuitConfirmations is how many extra quit presses a dirty
	// buffer demands before the editor exits.
	QuitConfirmations int `toml:"quit_confirmations"`

	// StatusMessageTTLSeconds is how long a transient status
	// message stays on the message bar.
	StatusMessageTTLSeconds int `toml:"status_message_ttl"`

	// PollIntervalMillis bounds the input wait so resize
	// notifications stay responsive.
	PollIntervalMillis int `toml:"poll_interval_ms"`

	// TabWidth is reserved for tab expansion; rendering currently
	// substitutes a single space per tab.
	TabWidth int `toml:"tab_width"`

	Theme Theme `toml:"theme"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		QuitConfirmations:       3,
		StatusMessageTTLSeconds: 5,
		PollIntervalMillis:      100,
		TabWidth:                4,
		Theme:                   DefaultTheme(),
	}
}

// StatusMessageTTL returns the message lifetime as a duration.
func (c Config) StatusMessageTTL() time.Duration {
	return time.Duration(c.StatusMessageTTLSeconds) * time.Second
}

// PollInterval returns the input poll timeout as a duration.
func (c Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMillis) * time.Millisecond
}

// Load reads settings from the TOML file at path, layered over the
// defaults. A missing file is not an error and yields the defaults;
// a malformed file is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}
	cfg.sanitize()
	return cfg, nil
}

func (c *Config) sanitize() {
	if c.QuitConfirmations < 0 {
		c.QuitConfirmations = 0
	}
	if c.StatusMessageTTLSeconds < 1 {
		c.StatusMessageTTLSeconds = 1
	}
	if c.PollIntervalMillis < 10 {
		c.PollIntervalMillis = 10
	}
	if c.TabWidth < 1 {
		c.TabWidth = 1
	}
}

// Dir returns the slate configuration directory, honoring
// XDG_CONFIG_HOME.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "slate")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "slate")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.toml")
}

// InitScriptPath returns the location of the optional init.lua user
// script.
func InitScriptPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "init.lua")
}
