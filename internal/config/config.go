// Package config loads todo settings from defaults, TOML files, the
// environment and command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeAuto  = "auto"
)

const (
	DefaultTheme    = ThemeAuto
	DefaultSamples  = true
	DefaultLogLevel = "info"
)

// Config holds all settings. Field tags match the TOML keys.
type Config struct {
	// Theme is light, dark or auto (follow the terminal background).
	Theme string `toml:"theme"`
	// Samples seeds the list with the demo tasks on start.
	Samples bool `toml:"samples"`
	// LogFile receives logs while the TUI owns the terminal. Empty discards.
	LogFile  string `toml:"log_file"`
	LogLevel string `toml:"log_level"`
}

func setDefaults(cfg *Config) {
	cfg.Theme = DefaultTheme
	cfg.Samples = DefaultSamples
	cfg.LogLevel = DefaultLogLevel
}

// Level returns the parsed log level.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// DarkMode resolves the theme to the initial dark-mode flag. detect is only
// consulted for the auto theme.
func (c *Config) DarkMode(detect func() bool) bool {
	switch c.Theme {
	case ThemeDark:
		return true
	case ThemeLight:
		return false
	default:
		return detect != nil && detect()
	}
}

// finalizeConfig normalises values and rejects invalid ones.
func finalizeConfig(cfg *Config) error {
	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	switch cfg.Theme {
	case ThemeLight, ThemeDark, ThemeAuto:
	default:
		return fmt.Errorf("invalid theme %q (want light, dark or auto)", cfg.Theme)
	}

	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	cfg.LogFile = expandPath(cfg.LogFile)
	return nil
}

// expandPath expands environment variables and a leading ~/.
func expandPath(p string) string {
	if p == "" {
		return p
	}
	expanded := os.ExpandEnv(p)
	if expanded == "~" || strings.HasPrefix(expanded, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return expanded
		}
		return filepath.Join(home, strings.TrimPrefix(expanded[1:], "/"))
	}
	return expanded
}
