package progression

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/WheelOfFortune_Go/internal/config"
	"github.com/osse101/WheelOfFortune_Go/internal/domain"
	"github.com/osse101/WheelOfFortune_Go/internal/event"
	"github.com/osse101/WheelOfFortune_Go/internal/logger"
	"github.com/osse101/WheelOfFortune_Go/internal/repository"
	"github.com/osse101/WheelOfFortune_Go/internal/wheel"
	"github.com/osse101/WheelOfFortune_Go/internal/zone"
)

// Controller owns the player's position on the zone ladder and the wheel generated for it
type Controller interface {
	// Load restores persisted progress and builds the first wheel
	Load(ctx context.Context)
	// Advance moves one zone forward, capped at the max zone
	Advance(ctx context.Context) domain.ZoneInfo
	// ResetTo jumps to zone z (clamped into range)
	ResetTo(ctx context.Context, z int) domain.ZoneInfo
	ResetToStart(ctx context.Context) domain.ZoneInfo
	// ResetProgress forgets the highest zone reached and returns to the start
	ResetProgress(ctx context.Context) domain.ZoneInfo
	// Regenerate builds a fresh wheel for the current zone
	Regenerate(ctx context.Context) []domain.WheelSlice

	CurrentZone() int
	HighestZone() int
	Info() domain.ZoneInfo
	ActiveConfig() domain.ZoneWheelConfig
	ActiveSlices() []domain.WheelSlice
}

type controller struct {
	zones     config.ZoneSettings
	resolver  zone.Resolver
	generator wheel.Generator
	store     repository.ProgressStore
	bus       event.Bus

	mu      sync.RWMutex
	current int
	highest int
	active  domain.ZoneWheelConfig
	slices  []domain.WheelSlice
}

// NewController creates a controller positioned on the starting zone.
// Call Load to restore persisted progress.
func NewController(zones config.ZoneSettings, resolver zone.Resolver, generator wheel.Generator, store repository.ProgressStore, bus event.Bus) Controller {
	if zones.MaxZone < 1 {
		zones.MaxZone = config.DefaultMaxZone
	}
	if zones.StartingZone < 1 || zones.StartingZone > zones.MaxZone {
		zones.StartingZone = config.DefaultStartingZone
	}
	return &controller{
		zones:     zones,
		resolver:  resolver,
		generator: generator,
		store:     store,
		bus:       bus,
		current:   zones.StartingZone,
		highest:   zones.StartingZone,
	}
}

func (c *controller) Load(ctx context.Context) {
	log := logger.FromContext(ctx)

	current := c.readInt(ctx, repository.KeyCurrentZone)
	highest := c.readInt(ctx, repository.KeyHighestZone)

	c.mu.Lock()
	c.current = c.clamp(current)
	c.highest = max(c.clamp(highest), c.current)
	c.rebuildLocked(ctx)
	info := c.infoLocked()
	c.mu.Unlock()

	log.Info(LogMsgProgressLoaded, "zone", info.Current, "highest", info.Highest)
}

func (c *controller) Advance(ctx context.Context) domain.ZoneInfo {
	log := logger.FromContext(ctx)

	c.mu.Lock()
	previous := c.current
	c.current = c.clamp(previous + 1)
	if c.current > c.highest {
		c.highest = c.current
	}
	// written at the cap too so the stored keys always match the last advance
	c.persistLocked(ctx)
	c.rebuildLocked(ctx)
	info := c.infoLocked()
	c.mu.Unlock()

	if info.Current == previous {
		log.Info(LogMsgMaxZoneReached, "zone", previous)
	} else {
		log.Info(LogMsgZoneAdvanced, "zone", info.Current, "tier", info.Tier, "highest", info.Highest)
	}
	c.publishZoneChange(ctx, previous, info)
	return info
}

func (c *controller) ResetTo(ctx context.Context, z int) domain.ZoneInfo {
	c.mu.Lock()
	previous := c.current
	c.current = c.clamp(z)
	c.persistLocked(ctx)
	c.rebuildLocked(ctx)
	info := c.infoLocked()
	c.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgZoneReset, "requested", z, "zone", info.Current)
	c.publishZoneChange(ctx, previous, info)
	return info
}

func (c *controller) ResetToStart(ctx context.Context) domain.ZoneInfo {
	return c.ResetTo(ctx, c.zones.StartingZone)
}

func (c *controller) ResetProgress(ctx context.Context) domain.ZoneInfo {
	c.mu.Lock()
	previous := c.current
	c.current = c.zones.StartingZone
	c.highest = c.zones.StartingZone
	c.persistLocked(ctx)
	c.rebuildLocked(ctx)
	info := c.infoLocked()
	c.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgProgressReset, "zone", info.Current)
	c.publishZoneChange(ctx, previous, info)
	return info
}

func (c *controller) Regenerate(ctx context.Context) []domain.WheelSlice {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rebuildLocked(ctx)
	logger.FromContext(ctx).Debug(LogMsgSlicesRegenerated, "zone", c.current, "slices", len(c.slices))
	return append([]domain.WheelSlice(nil), c.slices...)
}

func (c *controller) CurrentZone() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

func (c *controller) HighestZone() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.highest
}

func (c *controller) Info() domain.ZoneInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.infoLocked()
}

func (c *controller) ActiveConfig() domain.ZoneWheelConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.active.Clone()
}

func (c *controller) ActiveSlices() []domain.WheelSlice {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.WheelSlice(nil), c.slices...)
}

func (c *controller) clamp(z int) int {
	return min(max(z, 1), c.zones.MaxZone)
}

func (c *controller) infoLocked() domain.ZoneInfo {
	classifier := c.resolver.Classifier()
	return domain.ZoneInfo{
		Current: c.current,
		Highest: c.highest,
		Max:     c.zones.MaxZone,
		Tier:    classifier.Tier(c.current),
		Kind:    classifier.Kind(c.current),
	}
}

// rebuildLocked re-resolves the current zone and draws a new wheel; slices are never carried across zones
func (c *controller) rebuildLocked(ctx context.Context) {
	c.active = c.resolver.Resolve(ctx, c.current)
	c.slices = c.generator.Generate(ctx, c.active)
}

func (c *controller) readInt(ctx context.Context, key string) int {
	v, ok, err := c.store.GetInt(ctx, key)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgProgressReadFailed,
			"key", key,
			"error", fmt.Errorf("%w: %v", domain.ErrPersistenceUnavailable, err))
		return c.zones.StartingZone
	}
	if !ok {
		return c.zones.StartingZone
	}
	return v
}

func (c *controller) persistLocked(ctx context.Context) {
	for _, kv := range []struct {
		key   string
		value int
	}{
		{repository.KeyCurrentZone, c.current},
		{repository.KeyHighestZone, c.highest},
	} {
		if err := c.store.SetInt(ctx, kv.key, kv.value); err != nil {
			logger.FromContext(ctx).Warn(LogMsgProgressWriteFailed,
				"key", kv.key,
				"value", kv.value,
				"error", fmt.Errorf("%w: %v", domain.ErrPersistenceUnavailable, err))
		}
	}
}

func (c *controller) publishZoneChange(ctx context.Context, previous int, info domain.ZoneInfo) {
	if c.bus == nil {
		return
	}
	events := []event.Event{event.NewZoneChangedEvent(info.Current, previous, info.Highest, info.Tier)}
	switch info.Kind {
	case domain.ZoneKindSuper:
		events = append(events, event.NewSuperZoneEnteredEvent(info.Current))
	case domain.ZoneKindSafe:
		events = append(events, event.NewSafeZoneEnteredEvent(info.Current))
	}
	for _, evt := range events {
		if err := c.bus.Publish(ctx, evt); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
		}
	}
}
