package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabaseDSN     string
	Env             string
	CatalogCacheTTL time.Duration
}

// Load loads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (if loaded by caller) > default.
func Load() Config {
	cfg := Config{}
	cfg.DatabaseDSN = getEnv("DATABASE_DSN", "file:invoices.db")
	cfg.Env = getEnv("APP_ENV", "development")
	cfg.CatalogCacheTTL = ParseDuration("CATALOG_CACHE_TTL", 5*time.Minute)
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// ParseBool reads an env var as bool with default.
func ParseBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %s", key, v)
			return def
		}
		return b
	}
	return def
}

// ParseDuration reads an env var as a time.Duration with default.
func ParseDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %s", key, v)
			return def
		}
		return d
	}
	return def
}
