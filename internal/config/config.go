package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Catalog  CatalogConfig  `json:"catalog"`
	Sessions SessionsConfig `json:"sessions"`
}

type CatalogConfig struct {
	Path      string `json:"path"`      // local file, the default source
	URL       string `json:"url"`       // http(s) endpoint, wins over path
	DB        string `json:"db"`        // sqlite database path
	Container string `json:"container"` // azure blob container
	Blob      string `json:"blob"`      // azure blob name
}

type SessionsConfig struct {
	TTL time.Duration `json:"ttl"`
}

func Load() (*Config, error) {
	ttl, err := time.ParseDuration(getEnvOrDefault("SESSION_TTL", "2h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	config := &Config{
		Catalog: CatalogConfig{
			Path:      getEnvOrDefault("CATALOG_PATH", "recipes.json"),
			URL:       os.Getenv("CATALOG_URL"),
			DB:        os.Getenv("CATALOG_DB"),
			Container: getEnvOrDefault("CATALOG_CONTAINER", "catalogs"),
			Blob:      os.Getenv("CATALOG_BLOB"),
		},
		Sessions: SessionsConfig{
			TTL: ttl,
		},
	}

	return config, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
