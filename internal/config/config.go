package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Fetch     FetchConfig
	Archive   ArchiveConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// FetchConfig holds outbound answer-key fetch configuration.
type FetchConfig struct {
	Timeout     time.Duration `envconfig:"FETCH_TIMEOUT" default:"15s"`
	UserAgent   string        `envconfig:"FETCH_USER_AGENT" default:"Mozilla/5.0 (compatible; RankwalaBot/0.1; +https://rankwala.app)"`
	MaxBodySize int64         `envconfig:"FETCH_MAX_BODY_SIZE" default:"10485760"`
}

// ArchiveConfig holds sanitized-copy storage configuration.
type ArchiveConfig struct {
	Dir string `envconfig:"ARCHIVE_DIR" default:"saved-keys"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"20"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"40"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
		},
		Fetch: FetchConfig{
			Timeout:     15 * time.Second,
			UserAgent:   "Mozilla/5.0 (compatible; RankwalaBot/0.1; +https://rankwala.app)",
			MaxBodySize: 10 * 1024 * 1024,
		},
		Archive: ArchiveConfig{
			Dir: "saved-keys",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 20,
			Burst:             40,
			Enabled:           true,
		},
	}
}
