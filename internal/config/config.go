// Package config loads application configuration from an optional YAML file
// with environment variable overrides.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// envKeyReplacer maps nested keys to env names: gemini.api_key ->
// TRAFFIC_GEMINI_API_KEY.
var envKeyReplacer = strings.NewReplacer(".", "_")

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Dataset DatasetConfig `mapstructure:"dataset"`
	Gemini  GeminiConfig  `mapstructure:"gemini"`
	Chat    ChatConfig    `mapstructure:"chat"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr       string        `mapstructure:"addr"`
	RateLimit  int           `mapstructure:"rate_limit"`
	RateWindow time.Duration `mapstructure:"rate_window"`
}

// DatasetConfig holds cluster CSV configuration
type DatasetConfig struct {
	Path            string        `mapstructure:"path"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval"` // 0 disables
}

// GeminiConfig holds generative fallback configuration
type GeminiConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// ChatConfig holds query router configuration
type ChatConfig struct {
	TopK        int    `mapstructure:"top_k"`
	MaxRows     int    `mapstructure:"max_rows"`
	HistoryPath string `mapstructure:"history_path"` // empty disables persistence
}

// AuthConfig holds admin endpoint authentication configuration
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"` // empty disables admin endpoints
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Debug bool `mapstructure:"debug"`
}

// Load reads configuration from the file at path (optional) and environment
// variables prefixed TRAFFIC_ (e.g. TRAFFIC_GEMINI_API_KEY).
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("TRAFFIC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(envKeyReplacer)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.rate_limit", 60)
	v.SetDefault("server.rate_window", "1m")

	v.SetDefault("dataset.path", "./data/road_segment_traffic_clusters.csv")
	v.SetDefault("dataset.refresh_interval", "0")

	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-2.0-flash")
	v.SetDefault("gemini.base_url", "")
	v.SetDefault("gemini.timeout", "10s")

	v.SetDefault("chat.top_k", 5)
	v.SetDefault("chat.max_rows", 10)
	v.SetDefault("chat.history_path", "./data/chat_history.db")

	v.SetDefault("auth.jwt_secret", "")

	v.SetDefault("logging.debug", false)
}

// Validate checks that all configuration values are usable.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Dataset.Path == "" {
		return fmt.Errorf("dataset.path is required")
	}
	if c.Gemini.Timeout <= 0 {
		return fmt.Errorf("gemini.timeout must be positive")
	}
	if c.Chat.TopK < 1 {
		return fmt.Errorf("chat.top_k must be at least 1")
	}
	if c.Chat.MaxRows < 1 {
		return fmt.Errorf("chat.max_rows must be at least 1")
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must not be negative")
	}
	if c.Server.RateLimit > 0 && c.Server.RateWindow <= 0 {
		return fmt.Errorf("server.rate_window must be positive when rate limiting is on")
	}
	return nil
}
