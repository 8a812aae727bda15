/*
Package store selects the persistence backend.

The decision is a single boolean made once at process start: remote-store
configuration present -> relational adapter; otherwise the flat-record
adapter, durable if a data dir is configured, ephemeral if not. The
returned value is the one vacation.Store handle injected into every
consumer; nothing downstream knows or cares which adapter is behind it.
*/
package store

import (
	"context"
	"log/slog"

	"github.com/unchain0/sistema-ferias/config"
	"github.com/unchain0/sistema-ferias/store/flatfile"
	"github.com/unchain0/sistema-ferias/store/postgres"
	"github.com/unchain0/sistema-ferias/vacation"
)

// Open resolves the backend from explicit configuration, exactly once.
func Open(ctx context.Context, cfg config.Storage, logger *slog.Logger) (vacation.Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.DatabaseURL != "" {
		logger.Info("storage backend selected", "backend", "postgres")
		return postgres.New(ctx, cfg.DatabaseURL, logger)
	}

	if cfg.DataDir != "" {
		logger.Info("storage backend selected", "backend", "flatfile", "dir", cfg.DataDir)
		return flatfile.New(cfg.DataDir)
	}

	logger.Info("storage backend selected", "backend", "memory")
	return flatfile.NewMemory(), nil
}
