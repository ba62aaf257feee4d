// Package config provides configuration types and defaults for taptempo.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds all configuration for taptempo.
type Config struct {
	Tap         TapConfig         `yaml:"tap" mapstructure:"tap"`
	Defaults    DefaultsConfig    `yaml:"defaults" mapstructure:"defaults"`
	Paths       PathsConfig       `yaml:"paths" mapstructure:"paths"`
	LogRotation LogRotationConfig `yaml:"log_rotation" mapstructure:"log_rotation"`
}

// TapConfig holds the tap state machine settings.
type TapConfig struct {
	IdleTimeout time.Duration `yaml:"idle_timeout" mapstructure:"idle_timeout"` // Idle window before the session pauses or resets
	WindowSize  int           `yaml:"window_size" mapstructure:"window_size"`   // Rolling interval window capacity
}

// DefaultsConfig holds the startup meter/method selection.
type DefaultsConfig struct {
	Meter  string `yaml:"meter" mapstructure:"meter"`   // beat, double, waltz, or common
	Method string `yaml:"method" mapstructure:"method"` // beat or measure
}

// PathsConfig holds file paths for session logs.
type PathsConfig struct {
	Log string `yaml:"log" mapstructure:"log"`
}

// LogRotationConfig holds settings for log file rotation
// (lumberjack-based automatic rotation).
type LogRotationConfig struct {
	MaxSizeMB  int  `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days" mapstructure:"max_age_days"`
	Compress   bool `yaml:"compress" mapstructure:"compress"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Tap: TapConfig{
			IdleTimeout: 5 * time.Second,
			WindowSize:  10,
		},
		Defaults: DefaultsConfig{
			Meter:  "common",
			Method: "beat",
		},
		Paths: PathsConfig{
			Log: defaultLogPath(),
		},
		LogRotation: LogRotationConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}

// defaultLogPath places the session log under the user cache directory,
// falling back to the working directory when none is available.
func defaultLogPath() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "taptempo.log"
	}
	return filepath.Join(cacheDir, "taptempo", "taptempo.log")
}
