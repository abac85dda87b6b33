package zone

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/WheelOfFortune_Go/internal/config"
	"github.com/osse101/WheelOfFortune_Go/internal/domain"
	"github.com/osse101/WheelOfFortune_Go/internal/logger"
)

// ItemSource supplies the items available in a zone
type ItemSource interface {
	EligibleFor(zone int) []domain.ItemDefinition
}

// Resolver produces the wheel layout for a zone number
type Resolver interface {
	// Resolve never fails; a zone with no eligible items still gets a config.
	Resolve(ctx context.Context, zone int) domain.ZoneWheelConfig
	// Forget drops one cached zone
	Forget(zone int)
	// Invalidate drops every cached zone
	Invalidate(ctx context.Context)
	Classifier() Classifier
}

type cachedConfig struct {
	Version  string
	Config   domain.ZoneWheelConfig
	CachedAt time.Time
}

type resolver struct {
	wheel      config.WheelSettings
	classifier Classifier
	items      ItemSource
	cache      *expirable.LRU[int, *cachedConfig]
}

// NewResolver creates a caching resolver over the given tuning and item source
func NewResolver(wheel config.WheelSettings, classifier Classifier, items ItemSource) Resolver {
	size := wheel.CacheSize
	if size <= 0 {
		size = config.DefaultZoneCacheSize
	}
	return &resolver{
		wheel:      wheel,
		classifier: classifier,
		items:      items,
		cache:      expirable.NewLRU[int, *cachedConfig](size, nil, wheel.CacheTTL),
	}
}

func (r *resolver) Classifier() Classifier {
	return r.classifier
}

func (r *resolver) Resolve(ctx context.Context, zone int) domain.ZoneWheelConfig {
	if entry, ok := r.cache.Get(zone); ok {
		if entry.Version == CacheSchemaVersion {
			return entry.Config.Clone()
		}
		r.cache.Remove(zone)
	}

	cfg := r.build(zone)
	r.cache.Add(zone, &cachedConfig{Version: CacheSchemaVersion, Config: cfg, CachedAt: time.Now()})

	logger.FromContext(ctx).Debug(LogMsgZoneConfigResolved,
		"zone", zone,
		"tier", cfg.Tier,
		"bombs", cfg.BombCount,
		"eligible", len(cfg.EligibleItems))

	return cfg.Clone()
}

func (r *resolver) build(zone int) domain.ZoneWheelConfig {
	sliceCount := r.wheel.SliceCount
	if sliceCount < 1 {
		sliceCount = 1
	}

	isSafe := r.classifier.IsSafe(zone)

	bombCount := 0
	switch {
	case r.wheel.BombTest:
		bombCount = sliceCount
	case !isSafe:
		bombCount = min(max(r.wheel.BombCount, 0), sliceCount-1)
	}

	return domain.ZoneWheelConfig{
		ZoneNumber:     zone,
		Tier:           r.classifier.Tier(zone),
		IsSafe:         isSafe,
		IsSuper:        r.classifier.IsSuper(zone),
		SliceCount:     sliceCount,
		BombCount:      bombCount,
		BombTest:       r.wheel.BombTest,
		EligibleItems:  r.items.EligibleFor(zone),
		CashMultiplier: r.wheel.CashCurve.At(zone),
		GoldMultiplier: r.wheel.GoldCurve.At(zone),
	}
}

func (r *resolver) Forget(zone int) {
	r.cache.Remove(zone)
}

func (r *resolver) Invalidate(ctx context.Context) {
	n := r.cache.Len()
	r.cache.Purge()
	logger.FromContext(ctx).Info(LogMsgZoneCacheCleared, "entries", n)
}
