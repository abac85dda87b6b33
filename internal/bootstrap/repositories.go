package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/WheelOfFortune_Go/internal/config"
	"github.com/osse101/WheelOfFortune_Go/internal/database"
	"github.com/osse101/WheelOfFortune_Go/internal/database/memory"
	"github.com/osse101/WheelOfFortune_Go/internal/database/postgres"
	"github.com/osse101/WheelOfFortune_Go/internal/database/prefs"
	"github.com/osse101/WheelOfFortune_Go/internal/logger"
	"github.com/osse101/WheelOfFortune_Go/internal/repository"
)

// Storage holds the progress store and, for the postgres backend, its pool
type Storage struct {
	Progress repository.ProgressStore
	Pool     *pgxpool.Pool
}

// InitializeStorage opens the configured progress store. The postgres backend
// connects, applies pending migrations and keys progress by cfg.PlayerID.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	s := &Storage{}

	switch cfg.StoreBackend {
	case config.StoreBackendMemory, "":
		s.Progress = memory.NewProgressStore()

	case config.StoreBackendFile:
		s.Progress = prefs.NewStore(cfg.PrefsPath)

	case config.StoreBackendPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		s.Pool = pool
		s.Progress = postgres.NewProgressRepository(pool, cfg.PlayerID)

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownBackend, cfg.StoreBackend)
	}

	logger.FromContext(ctx).Info(LogMsgStorageInitialized, "backend", cfg.StoreBackend)
	return s, nil
}

// Close releases the database pool, if any
func (s *Storage) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}
