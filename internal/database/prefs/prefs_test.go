package prefs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WheelOfFortune_Go/internal/domain"
	"github.com/osse101/WheelOfFortune_Go/internal/repository"
)

func TestStore_MissingFileIsEmpty(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "prefs.json"))

	_, ok, err := s.GetInt(context.Background(), repository.KeyHighestZone)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, s.Ping(context.Background()))
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")

	first := NewStore(path)
	require.NoError(t, first.SetInt(ctx, repository.KeyCurrentZone, 12))
	require.NoError(t, first.SetInt(ctx, repository.KeyHighestZone, 15))

	second := NewStore(path)
	v, ok, err := second.GetInt(ctx, repository.KeyCurrentZone)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 12, v)

	v, _, _ = second.GetInt(ctx, repository.KeyHighestZone)
	assert.Equal(t, 15, v)

	require.NoError(t, second.Delete(ctx, repository.KeyCurrentZone))
	third := NewStore(path)
	_, ok, _ = third.GetInt(ctx, repository.KeyCurrentZone)
	assert.False(t, ok)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	s := NewStore(path)

	_, _, err := s.GetInt(context.Background(), repository.KeyCurrentZone)
	assert.ErrorIs(t, err, domain.ErrPersistenceUnavailable)
	assert.ErrorIs(t, s.Ping(context.Background()), domain.ErrPersistenceUnavailable)
}

func TestStore_WriteFailureKeepsPreviousValue(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	// A directory where the file should be makes every rename fail
	path := filepath.Join(dir, "prefs.json")
	require.NoError(t, os.Mkdir(path, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(path, "keep"), []byte("x"), 0o644))

	s := &Store{path: path, values: map[string]int{repository.KeyCurrentZone: 3}, loaded: true}

	err := s.SetInt(ctx, repository.KeyCurrentZone, 4)
	assert.ErrorIs(t, err, domain.ErrPersistenceUnavailable)

	v, _, _ := s.GetInt(ctx, repository.KeyCurrentZone)
	assert.Equal(t, 3, v)
}
