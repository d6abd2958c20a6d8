package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SESSION_TTL", "CATALOG_PATH", "CATALOG_URL", "CATALOG_DB", "CATALOG_CONTAINER", "CATALOG_BLOB"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Catalog.Path != "recipes.json" {
		t.Errorf("expected default catalog path recipes.json, got %q", cfg.Catalog.Path)
	}
	if cfg.Catalog.Container != "catalogs" {
		t.Errorf("expected default container catalogs, got %q", cfg.Catalog.Container)
	}
	if cfg.Sessions.TTL != 2*time.Hour {
		t.Errorf("expected default session ttl 2h, got %v", cfg.Sessions.TTL)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CATALOG_URL", "https://example.com/recipes.json")
	t.Setenv("CATALOG_DB", "recipes.db")
	t.Setenv("SESSION_TTL", "30m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Catalog.URL != "https://example.com/recipes.json" {
		t.Errorf("unexpected catalog url %q", cfg.Catalog.URL)
	}
	if cfg.Catalog.DB != "recipes.db" {
		t.Errorf("unexpected catalog db %q", cfg.Catalog.DB)
	}
	if cfg.Sessions.TTL != 30*time.Minute {
		t.Errorf("expected session ttl 30m, got %v", cfg.Sessions.TTL)
	}
}

func TestLoad_InvalidTTL(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error for an unparsable SESSION_TTL")
	}
}
