package catalog

import (
	"log/slog"
	"os"

	"semainier/internal/config"
)

// MakeSource picks the catalog source from configuration: an explicit URL
// wins, then a sqlite path, then an Azure blob when storage credentials are
// present, then the local file path.
func MakeSource(cfg *config.Config) (Source, error) {
	if cfg.Catalog.URL != "" {
		slog.Info("using http catalog source", "url", cfg.Catalog.URL)
		return NewHTTPSource(cfg.Catalog.URL), nil
	}

	if cfg.Catalog.DB != "" {
		slog.Info("using sqlite catalog source", "path", cfg.Catalog.DB)
		return NewSQLiteSource(cfg.Catalog.DB), nil
	}

	if _, ok := os.LookupEnv("AZURE_STORAGE_ACCOUNT_NAME"); ok && cfg.Catalog.Blob != "" {
		slog.Info("using azure blob catalog source", "container", cfg.Catalog.Container, "blob", cfg.Catalog.Blob)
		return NewBlobSource(cfg.Catalog.Container, cfg.Catalog.Blob)
	}

	slog.Info("using file catalog source", "path", cfg.Catalog.Path)
	return NewFileSource(cfg.Catalog.Path), nil
}
