package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces the environment variables read by the loader,
// e.g. CLIPCUT_FFMPEG_PATH and CLIPCUT_LOG_LEVEL
const EnvPrefix = "CLIPCUT"

// Defaults
const (
	DefaultFFmpegPath = "ffmpeg"
	DefaultLogLevel   = "warn"
)

// Flag names bound by BindFlags
const (
	FFmpegFlag   = "ffmpeg"
	LogLevelFlag = "log-level"
)

// Config holds the runtime settings. There is no configuration file:
// values come from flags, then the environment, then the defaults.
type Config struct {
	FFmpegPath string `mapstructure:"ffmpeg_path"`
	LogLevel   string `mapstructure:"log_level"`
}

// Loader resolves Config from flags and environment variables
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader with defaults and environment lookup configured
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault("ffmpeg_path", DefaultFFmpegPath)
	v.SetDefault("log_level", DefaultLogLevel)
	return &Loader{v: v}
}

// BindFlags lets explicitly set flags take precedence over the environment
func (l *Loader) BindFlags(flags *pflag.FlagSet) error {
	bindings := map[string]string{
		"ffmpeg_path": FFmpegFlag,
		"log_level":   LogLevelFlag,
	}
	for key, name := range bindings {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := l.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}
	return nil
}

// Load unmarshals and validates the configuration
func (l *Loader) Load() (*Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	cfg.FFmpegPath = strings.TrimSpace(cfg.FFmpegPath)
	if cfg.FFmpegPath == "" {
		cfg.FFmpegPath = DefaultFFmpegPath // Default to the one that's in PATH
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if !isValidLogLevel(cfg.LogLevel) {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}

	return nil
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}
