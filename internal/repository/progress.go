package repository

import "context"

// Progress keys persisted by the zone progression controller
const (
	KeyCurrentZone = "CurrentZone"
	KeyHighestZone = "HighestZone"
)

// ProgressStore is a small integer key-value store for player progress
type ProgressStore interface {
	// GetInt returns the stored value and whether the key exists
	GetInt(ctx context.Context, key string) (int, bool, error)
	SetInt(ctx context.Context, key string, value int) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
