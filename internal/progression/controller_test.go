package progression

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WheelOfFortune_Go/internal/catalog"
	"github.com/osse101/WheelOfFortune_Go/internal/config"
	"github.com/osse101/WheelOfFortune_Go/internal/database/memory"
	"github.com/osse101/WheelOfFortune_Go/internal/domain"
	"github.com/osse101/WheelOfFortune_Go/internal/event"
	"github.com/osse101/WheelOfFortune_Go/internal/repository"
	"github.com/osse101/WheelOfFortune_Go/internal/utils"
	"github.com/osse101/WheelOfFortune_Go/internal/wheel"
	"github.com/osse101/WheelOfFortune_Go/internal/zone"
)

// MockProgressStore is a testify mock of repository.ProgressStore
type MockProgressStore struct {
	mock.Mock
}

func (m *MockProgressStore) GetInt(ctx context.Context, key string) (int, bool, error) {
	args := m.Called(ctx, key)
	return args.Int(0), args.Bool(1), args.Error(2)
}

func (m *MockProgressStore) SetInt(ctx context.Context, key string, value int) error {
	return m.Called(ctx, key, value).Error(0)
}

func (m *MockProgressStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockProgressStore) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type recorder struct {
	events []event.Event
}

func (r *recorder) types() []event.Type {
	out := make([]event.Type, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func setup(t *testing.T, store repository.ProgressStore) (Controller, *recorder) {
	t.Helper()
	cfg := config.DefaultGameConfig()
	cat, err := catalog.Default()
	require.NoError(t, err)

	resolver := zone.NewResolver(cfg.Wheel, zone.NewClassifier(cfg.Zones.SafeInterval, cfg.Zones.SuperInterval), cat)
	generator := wheel.NewGenerator(utils.NewSeededSource(42))

	bus := event.NewMemoryBus()
	rec := &recorder{}
	bus.Subscribe(event.AnyType, func(_ context.Context, e event.Event) error {
		rec.events = append(rec.events, e)
		return nil
	})

	return NewController(cfg.Zones, resolver, generator, store, bus), rec
}

func TestLoad_DefaultsWhenEmpty(t *testing.T) {
	ctx := context.Background()
	c, rec := setup(t, memory.NewProgressStore())

	c.Load(ctx)

	assert.Equal(t, 1, c.CurrentZone())
	assert.Equal(t, 1, c.HighestZone())
	assert.Len(t, c.ActiveSlices(), config.DefaultSliceCount)
	assert.Equal(t, 1, c.ActiveConfig().ZoneNumber)
	assert.Empty(t, rec.events, "loading is not a zone change")
}

func TestLoad_RestoresAndClamps(t *testing.T) {
	tests := []struct {
		name            string
		current         int
		highest         int
		expectedCurrent int
		expectedHighest int
	}{
		{"restores stored values", 12, 20, 12, 20},
		{"highest raised to current", 15, 3, 15, 15},
		{"current clamped to max", 250, 250, 100, 100},
		{"current clamped to one", -4, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := memory.NewProgressStore()
			require.NoError(t, store.SetInt(ctx, repository.KeyCurrentZone, tt.current))
			require.NoError(t, store.SetInt(ctx, repository.KeyHighestZone, tt.highest))
			c, _ := setup(t, store)

			c.Load(ctx)

			assert.Equal(t, tt.expectedCurrent, c.CurrentZone())
			assert.Equal(t, tt.expectedHighest, c.HighestZone())
		})
	}
}

func TestAdvance(t *testing.T) {
	ctx := context.Background()
	store := memory.NewProgressStore()
	c, rec := setup(t, store)
	c.Load(ctx)

	info := c.Advance(ctx)

	assert.Equal(t, 2, info.Current)
	assert.Equal(t, 2, info.Highest)
	assert.Equal(t, domain.WheelTierBronze, info.Tier)
	assert.Equal(t, 2, c.ActiveConfig().ZoneNumber)

	stored, ok, err := store.GetInt(ctx, repository.KeyCurrentZone)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, stored)

	require.Len(t, rec.events, 1)
	payload, err := event.DecodePayload[event.ZoneChangedPayloadV1](rec.events[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, 2, payload.Zone)
	assert.Equal(t, 1, payload.PreviousZone)
}

func TestAdvance_PublishesZoneKindEvents(t *testing.T) {
	ctx := context.Background()
	c, rec := setup(t, memory.NewProgressStore())
	c.Load(ctx)

	c.ResetTo(ctx, 4)
	rec.events = nil
	c.Advance(ctx)
	assert.Equal(t, []event.Type{event.ZoneChanged, event.SafeZoneEntered}, rec.types())
	assert.Zero(t, c.ActiveConfig().BombCount)

	c.ResetTo(ctx, 29)
	rec.events = nil
	c.Advance(ctx)
	assert.Equal(t, []event.Type{event.ZoneChanged, event.SuperZoneEntered}, rec.types(),
		"super zones publish super-zone-entered only")
	assert.Equal(t, domain.WheelTierGolden, c.Info().Tier)
}

func TestAdvance_CappedAtMaxZone(t *testing.T) {
	ctx := context.Background()
	store := memory.NewProgressStore()
	c, rec := setup(t, store)
	c.Load(ctx)
	c.ResetTo(ctx, 100)
	rec.events = nil
	require.NoError(t, store.Delete(ctx, repository.KeyCurrentZone))
	require.NoError(t, store.Delete(ctx, repository.KeyHighestZone))

	info := c.Advance(ctx)

	assert.Equal(t, 100, info.Current)
	assert.Equal(t, 100, info.Highest)
	assert.Len(t, c.ActiveSlices(), config.DefaultSliceCount)

	current, ok, err := store.GetInt(ctx, repository.KeyCurrentZone)
	require.NoError(t, err)
	require.True(t, ok, "advancing at the cap still persists")
	assert.Equal(t, 100, current)
	highest, ok, err := store.GetInt(ctx, repository.KeyHighestZone)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 100, highest)

	require.NotEmpty(t, rec.events)
	assert.Equal(t, event.ZoneChanged, rec.events[0].Type)
	changed, err := event.DecodePayload[event.ZoneChangedPayloadV1](rec.events[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, 100, changed.Zone)
}

func TestResetTo(t *testing.T) {
	ctx := context.Background()
	c, _ := setup(t, memory.NewProgressStore())
	c.Load(ctx)
	for i := 0; i < 9; i++ {
		c.Advance(ctx)
	}
	require.Equal(t, 10, c.HighestZone())

	info := c.ResetTo(ctx, 3)
	assert.Equal(t, 3, info.Current)
	assert.Equal(t, 10, info.Highest, "rewinding keeps the best run")

	info = c.ResetTo(ctx, 0)
	assert.Equal(t, 1, info.Current)

	info = c.ResetToStart(ctx)
	assert.Equal(t, 1, info.Current)
	assert.Equal(t, 10, info.Highest)

	info = c.ResetTo(ctx, 40)
	assert.Equal(t, 40, info.Current)
	assert.Equal(t, 10, info.Highest, "jumping ahead does not count as reached")
}

func TestResetTo_FreshControllerKeepsHighest(t *testing.T) {
	ctx := context.Background()
	store := memory.NewProgressStore()
	c, _ := setup(t, store)
	c.Load(ctx)

	info := c.ResetTo(ctx, 40)

	assert.Equal(t, 40, info.Current)
	assert.Equal(t, 1, info.Highest)
	highest, _, err := store.GetInt(ctx, repository.KeyHighestZone)
	require.NoError(t, err)
	assert.Equal(t, 1, highest)
}

func TestResetProgress(t *testing.T) {
	ctx := context.Background()
	store := memory.NewProgressStore()
	c, _ := setup(t, store)
	c.Load(ctx)
	c.ResetTo(ctx, 25)

	info := c.ResetProgress(ctx)

	assert.Equal(t, 1, info.Current)
	assert.Equal(t, 1, info.Highest)
	highest, _, err := store.GetInt(ctx, repository.KeyHighestZone)
	require.NoError(t, err)
	assert.Equal(t, 1, highest)
}

func TestRegenerate_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	c, _ := setup(t, memory.NewProgressStore())
	c.Load(ctx)

	slices := c.Regenerate(ctx)
	require.Len(t, slices, config.DefaultSliceCount)
	assert.Equal(t, slices, c.ActiveSlices())

	slices[0].Name = "mutated"
	assert.NotEqual(t, "mutated", c.ActiveSlices()[0].Name)
}

func TestPersistenceFailureIsAbsorbed(t *testing.T) {
	ctx := context.Background()
	store := &MockProgressStore{}
	boom := errors.New("disk full")
	store.On("GetInt", mock.Anything, mock.Anything).Return(0, false, boom)
	store.On("SetInt", mock.Anything, mock.Anything, mock.Anything).Return(boom)
	c, rec := setup(t, store)

	c.Load(ctx)
	info := c.Advance(ctx)

	assert.Equal(t, 2, info.Current, "in-memory progress keeps going")
	assert.Len(t, rec.events, 1)
	store.AssertCalled(t, "SetInt", mock.Anything, repository.KeyCurrentZone, 2)
	store.AssertCalled(t, "SetInt", mock.Anything, repository.KeyHighestZone, 2)
}
