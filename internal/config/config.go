// Package config loads modern's configuration from file, environment and
// defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/opencode-ai/modern/internal/theme"
)

// EnvPrefix prefixes every environment override, e.g. MODERN_THEME_MODE.
const EnvPrefix = "MODERN"

// ModeAuto picks light or dark from the terminal background.
const ModeAuto = "auto"

// Config is the full configuration.
type Config struct {
	Theme   ThemeConfig   `mapstructure:"theme"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

// ThemeConfig selects the palette.
type ThemeConfig struct {
	Mode string `mapstructure:"mode"`
}

// OutputConfig controls how records are printed.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// LoggingConfig controls the zerolog logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var (
	validFormats    = []string{"text", "json", "yaml"}
	validLogFormats = []string{"console", "json"}
	validLogLevels  = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Theme:   ThemeConfig{Mode: ModeAuto},
		Output:  OutputConfig{Format: "text"},
		Logging: LoggingConfig{Level: "warn", Format: "console"},
	}
}

// DefaultDir returns $XDG_CONFIG_HOME/modern or ~/.config/modern.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "modern")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "modern")
	}
	return filepath.Join(home, ".config", "modern")
}

// Load reads configuration. An explicit path must exist; otherwise
// config.yaml in DefaultDir is read when present.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("theme.mode", defaults.Theme.Mode)
	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultDir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects unknown values.
func (c *Config) Validate() error {
	if !strings.EqualFold(strings.TrimSpace(c.Theme.Mode), ModeAuto) {
		if _, err := theme.ParseMode(c.Theme.Mode); err != nil {
			return fmt.Errorf("theme.mode: %w", err)
		}
	}
	if !contains(validFormats, c.Output.Format) {
		return fmt.Errorf("output.format %q: expected one of %s", c.Output.Format, strings.Join(validFormats, ", "))
	}
	if !contains(validLogLevels, c.Logging.Level) {
		return fmt.Errorf("logging.level %q: expected one of %s", c.Logging.Level, strings.Join(validLogLevels, ", "))
	}
	if !contains(validLogFormats, c.Logging.Format) {
		return fmt.Errorf("logging.format %q: expected one of %s", c.Logging.Format, strings.Join(validLogFormats, ", "))
	}
	return nil
}

// ResolveMode turns the configured mode into a theme.Mode. detectDark is
// consulted only for "auto".
func (c ThemeConfig) ResolveMode(detectDark func() bool) (theme.Mode, error) {
	if strings.EqualFold(strings.TrimSpace(c.Mode), ModeAuto) {
		if detectDark == nil {
			return theme.Light, nil
		}
		return theme.ModeFromDark(detectDark()), nil
	}
	return theme.ParseMode(c.Mode)
}

func contains(values []string, value string) bool {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
