package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("CATALOG_CACHE_TTL", "")

	cfg := Load()
	if cfg.DatabaseDSN != "file:invoices.db" {
		t.Errorf("DatabaseDSN = %q", cfg.DatabaseDSN)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q", cfg.Env)
	}
	if cfg.CatalogCacheTTL != 5*time.Minute {
		t.Errorf("CatalogCacheTTL = %v", cfg.CatalogCacheTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://u@h/pos")
	t.Setenv("APP_ENV", "production")
	t.Setenv("CATALOG_CACHE_TTL", "30s")

	cfg := Load()
	if cfg.DatabaseDSN != "postgres://u@h/pos" {
		t.Errorf("DatabaseDSN = %q", cfg.DatabaseDSN)
	}
	if cfg.Env != "production" {
		t.Errorf("Env = %q", cfg.Env)
	}
	if cfg.CatalogCacheTTL != 30*time.Second {
		t.Errorf("CatalogCacheTTL = %v", cfg.CatalogCacheTTL)
	}
}

func TestParseDurationInvalid(t *testing.T) {
	t.Setenv("CATALOG_CACHE_TTL", "not-a-duration")
	if got := ParseDuration("CATALOG_CACHE_TTL", time.Minute); got != time.Minute {
		t.Errorf("ParseDuration fallback = %v, want 1m", got)
	}
}

func TestParseBool(t *testing.T) {
	t.Setenv("FLAG", "true")
	if !ParseBool("FLAG", false) {
		t.Errorf("expected true")
	}
	t.Setenv("FLAG", "bogus")
	if ParseBool("FLAG", false) {
		t.Errorf("expected fallback false")
	}
	t.Setenv("FLAG", "")
	if !ParseBool("FLAG", true) {
		t.Errorf("expected default true")
	}
}
