// Package config handles application configuration from environment variables
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration
type Config struct {
	// StoreBackend selects the key/value store: memory, file, redis, postgres.
	StoreBackend string `env:"STORE_BACKEND" envDefault:"memory"`
	// CacheDir is the root directory for the file backend.
	CacheDir string `env:"CACHE_DIR"`
	// RedisAddr is the host:port for the redis backend.
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	// DatabaseURL is the connection string for the postgres backend.
	DatabaseURL string `env:"DATABASE_URL"`
	// APIBaseURL is the products API root.
	APIBaseURL string `env:"API_BASE_URL" envDefault:"https://api.trustudsel.com"`
	// CacheTTL is the expiry window for cached search results.
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	// RecentLimit bounds the recent-search list.
	RecentLimit int `env:"RECENT_LIMIT" envDefault:"10"`
}

// Load reads configuration from environment variables
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks backend-specific requirements
func (c Config) Validate() error {
	switch c.StoreBackend {
	case "memory", "file":
	case "redis":
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR required for redis backend")
		}
	case "postgres":
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL required for postgres backend")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive, got %v", c.CacheTTL)
	}
	if c.RecentLimit <= 0 {
		return fmt.Errorf("RECENT_LIMIT must be positive, got %d", c.RecentLimit)
	}
	return nil
}
