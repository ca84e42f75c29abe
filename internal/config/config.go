package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config captures the runtime knobs that are not user settings: endpoints,
// credentials and logging.
type Config struct {
	QuotesURL      string        `mapstructure:"quotes_url"`
	HistoryURL     string        `mapstructure:"history_url"`
	LinkBase       string        `mapstructure:"link_base"`
	APIKey         string        `mapstructure:"api_key"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	NoticeDuration time.Duration `mapstructure:"notice_duration"`
	SettingsPath   string        `mapstructure:"settings_path"`
	Log            LogConfig     `mapstructure:"log"`
}

// LogConfig configures the rotating log file.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
}

const (
	envPrefix         = "XENQUOTES"
	defaultConfigPath = "~/.config/xenquotes/config.toml"
	defaultLogFile    = "~/.local/state/xenquotes/xenquotes.log"
)

// Load locates and parses the config file, applying XENQUOTES_* environment
// overrides and falling back to defaults when the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(resolved)
	v.SetConfigType("toml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg.QuotesURL = strings.TrimSpace(cfg.QuotesURL)
	cfg.HistoryURL = strings.TrimSpace(cfg.HistoryURL)
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.File = strings.TrimSpace(cfg.Log.File); cfg.Log.File == "" {
		cfg.Log.File = defaultLogFile
	}
	cfg.Log.File = mustExpand(cfg.Log.File)
	if strings.TrimSpace(cfg.SettingsPath) != "" {
		cfg.SettingsPath = mustExpand(cfg.SettingsPath)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("quotes_url", "https://zenquotes.io")
	v.SetDefault("history_url", "https://today.zenquotes.io")
	v.SetDefault("link_base", "https://en.wikipedia.org/wiki")
	v.SetDefault("api_key", "")
	v.SetDefault("request_timeout", 10*time.Second)
	v.SetDefault("notice_duration", 4*time.Second)
	v.SetDefault("settings_path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", defaultLogFile)
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
}

// Validate checks the config for values the rest of the program cannot use.
func (c Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (must be debug, info, warn or error)", c.Log.Level)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive")
	}
	if c.NoticeDuration <= 0 {
		return fmt.Errorf("notice_duration must be positive")
	}
	return nil
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
