package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
)

// Flag names read by Load. Register them with RegisterFlags.
const (
	FlagConfig   = "config"
	FlagTheme    = "theme"
	FlagSamples  = "samples"
	FlagLogFile  = "log-file"
	FlagLogLevel = "log-level"
)

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagConfig, "", "Path to a TOML config file (replaces ./todo.toml)")
	fs.String(FlagTheme, DefaultTheme, "Theme: light, dark or auto")
	fs.Bool(FlagSamples, DefaultSamples, "Start with the sample tasks")
	fs.String(FlagLogFile, "", "Write logs to this file")
	fs.String(FlagLogLevel, DefaultLogLevel, "Log level: debug, info, warn, error")
}

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file ($XDG_CONFIG_HOME/todo/config.toml)
// 3. Project config file (todo.toml or .todo.toml in the current
// directory), or the file named by --config
// 4. Environment variables
// 5. Flags that were set explicitly
//
// fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if path := findUserConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", path, err)
		}
	}

	explicit := ""
	if fs != nil {
		if v, err := fs.GetString(FlagConfig); err == nil {
			explicit = v
		}
	}
	if explicit != "" {
		if err := loadConfigFile(cfg, explicit); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", explicit, err)
		}
	} else if path := findProjectConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", path, err)
		}
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, err
	}

	if fs != nil {
		if err := loadFromFlags(cfg, fs); err != nil {
			return nil, fmt.Errorf("parsing flags: %w", err)
		}
	}

	if err := finalizeConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadConfigFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

func findUserConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return existing(filepath.Join(dir, "todo", "config.toml"))
}

func findProjectConfigFile() string {
	for _, name := range []string{"todo.toml", ".todo.toml"} {
		if path := existing(name); path != "" {
			return path
		}
	}
	return ""
}

func existing(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return path
		}
		return ""
	}
	if info.IsDir() {
		return ""
	}
	return path
}

// loadFromEnv overrides config from TODO_* environment variables.
func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("TODO_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("TODO_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("TODO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TODO_SAMPLES"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid TODO_SAMPLES %q: %w", v, err)
		}
		cfg.Samples = b
	}
	return nil
}

func loadFromFlags(cfg *Config, fs *pflag.FlagSet) error {
	var err error
	if fs.Changed(FlagTheme) {
		if cfg.Theme, err = fs.GetString(FlagTheme); err != nil {
			return err
		}
	}
	if fs.Changed(FlagSamples) {
		if cfg.Samples, err = fs.GetBool(FlagSamples); err != nil {
			return err
		}
	}
	if fs.Changed(FlagLogFile) {
		if cfg.LogFile, err = fs.GetString(FlagLogFile); err != nil {
			return err
		}
	}
	if fs.Changed(FlagLogLevel) {
		if cfg.LogLevel, err = fs.GetString(FlagLogLevel); err != nil {
			return err
		}
	}
	return nil
}
