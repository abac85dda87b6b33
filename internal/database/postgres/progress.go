package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/WheelOfFortune_Go/internal/domain"
	"github.com/osse101/WheelOfFortune_Go/internal/repository"
)

const (
	queryGetProgress = `SELECT pref_value FROM player_progress WHERE player_id = $1 AND pref_key = $2`

	queryUpsertProgress = `
INSERT INTO player_progress (player_id, pref_key, pref_value, updated_at)
VALUES ($1, $2, $3, NOW())
ON CONFLICT (player_id, pref_key)
DO UPDATE SET pref_value = EXCLUDED.pref_value, updated_at = NOW()`

	queryDeleteProgress = `DELETE FROM player_progress WHERE player_id = $1 AND pref_key = $2`
)

// ProgressRepository stores one player's progress keys in PostgreSQL
type ProgressRepository struct {
	pool     *pgxpool.Pool
	playerID string
}

// NewProgressRepository creates a progress store scoped to playerID
func NewProgressRepository(pool *pgxpool.Pool, playerID string) repository.ProgressStore {
	if playerID == "" {
		playerID = DefaultPlayerID
	}
	return &ProgressRepository{pool: pool, playerID: playerID}
}

// GetInt reads one key; a missing row is reported as not found, not as an error
func (r *ProgressRepository) GetInt(ctx context.Context, key string) (int, bool, error) {
	var value int32
	err := r.pool.QueryRow(ctx, queryGetProgress, r.playerID, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("%w: get %s: %v", domain.ErrPersistenceUnavailable, key, err)
	}
	return int(value), true, nil
}

// SetInt upserts one key
func (r *ProgressRepository) SetInt(ctx context.Context, key string, value int) error {
	if _, err := r.pool.Exec(ctx, queryUpsertProgress, r.playerID, key, int32(value)); err != nil {
		return fmt.Errorf("%w: set %s: %v", domain.ErrPersistenceUnavailable, key, err)
	}
	return nil
}

// Delete removes one key
func (r *ProgressRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.pool.Exec(ctx, queryDeleteProgress, r.playerID, key); err != nil {
		return fmt.Errorf("%w: delete %s: %v", domain.ErrPersistenceUnavailable, key, err)
	}
	return nil
}

// Ping checks the database connection
func (r *ProgressRepository) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistenceUnavailable, err)
	}
	return nil
}
