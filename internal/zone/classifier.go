package zone

import (
	"github.com/osse101/WheelOfFortune_Go/internal/config"
	"github.com/osse101/WheelOfFortune_Go/internal/domain"
)

// Classifier decides zone kind and wheel tier from the zone number alone
type Classifier struct {
	safeInterval  int
	superInterval int
}

// NewClassifier creates a classifier. Non-positive intervals fall back to the defaults.
func NewClassifier(safeInterval, superInterval int) Classifier {
	if safeInterval <= 0 {
		safeInterval = config.DefaultSafeInterval
	}
	if superInterval <= 0 {
		superInterval = config.DefaultSuperInterval
	}
	return Classifier{safeInterval: safeInterval, superInterval: superInterval}
}

// IsSuper reports whether z is a super zone
func (c Classifier) IsSuper(z int) bool {
	return z%c.superInterval == 0
}

// IsSafe reports whether z is bomb-free. Every super zone is safe.
func (c Classifier) IsSafe(z int) bool {
	return c.IsSuper(z) || z%c.safeInterval == 0
}

// Tier returns Golden for super zones, Silver for other safe zones, Bronze otherwise
func (c Classifier) Tier(z int) domain.WheelTier {
	switch {
	case c.IsSuper(z):
		return domain.WheelTierGolden
	case c.IsSafe(z):
		return domain.WheelTierSilver
	default:
		return domain.WheelTierBronze
	}
}

// Kind returns the zone kind matching Tier
func (c Classifier) Kind(z int) domain.ZoneKind {
	switch {
	case c.IsSuper(z):
		return domain.ZoneKindSuper
	case c.IsSafe(z):
		return domain.ZoneKindSafe
	default:
		return domain.ZoneKindNormal
	}
}
