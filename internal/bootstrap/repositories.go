package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/InventoryHub_Go/internal/config"
	"github.com/osse101/InventoryHub_Go/internal/database"
	"github.com/osse101/InventoryHub_Go/internal/database/memory"
	"github.com/osse101/InventoryHub_Go/internal/database/migrations"
	"github.com/osse101/InventoryHub_Go/internal/database/postgres"
	"github.com/osse101/InventoryHub_Go/internal/repository"
)

// Storage is the selected store and, for PostgreSQL, the pool behind it.
type Storage struct {
	Store repository.Store
	// Pool is nil for the in-memory store
	Pool *pgxpool.Pool
}

// Close releases the database pool, if any
func (s *Storage) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}

// InitializeStorage opens the store selected by DB_DRIVER. The PostgreSQL store
// is migrated to the latest schema before use.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	if !cfg.UsesPostgres() {
		slog.Warn(LogMsgUsingMemoryStore)
		return &Storage{Store: memory.NewStore()}, nil
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
	}
	if err := migrations.Up(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}
	slog.Info(LogMsgMigrationsApplied)
	slog.Info(LogMsgUsingPostgresStore, "host", cfg.DBHost, "database", cfg.DBName)

	return &Storage{Store: postgres.NewStore(pool), Pool: pool}, nil
}
