package zone

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/WheelOfFortune_Go/internal/domain"
)

func TestClassifier_Defaults(t *testing.T) {
	c := NewClassifier(5, 30)

	tests := []struct {
		zone  int
		safe  bool
		super bool
		tier  domain.WheelTier
		kind  domain.ZoneKind
	}{
		{1, false, false, domain.WheelTierBronze, domain.ZoneKindNormal},
		{4, false, false, domain.WheelTierBronze, domain.ZoneKindNormal},
		{5, true, false, domain.WheelTierSilver, domain.ZoneKindSafe},
		{10, true, false, domain.WheelTierSilver, domain.ZoneKindSafe},
		{29, false, false, domain.WheelTierBronze, domain.ZoneKindNormal},
		{30, true, true, domain.WheelTierGolden, domain.ZoneKindSuper},
		{60, true, true, domain.WheelTierGolden, domain.ZoneKindSuper},
		{100, true, false, domain.WheelTierSilver, domain.ZoneKindSafe},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.safe, c.IsSafe(tt.zone), "IsSafe(%d)", tt.zone)
		assert.Equal(t, tt.super, c.IsSuper(tt.zone), "IsSuper(%d)", tt.zone)
		assert.Equal(t, tt.tier, c.Tier(tt.zone), "Tier(%d)", tt.zone)
		assert.Equal(t, tt.kind, c.Kind(tt.zone), "Kind(%d)", tt.zone)
	}
}

func TestClassifier_Implications(t *testing.T) {
	intervals := [][2]int{{5, 30}, {3, 7}, {4, 12}, {1, 1}}

	for _, iv := range intervals {
		c := NewClassifier(iv[0], iv[1])
		for z := 1; z <= 500; z++ {
			if c.IsSuper(z) {
				assert.True(t, c.IsSafe(z), "super zone %d must be safe (intervals %v)", z, iv)
				assert.Equal(t, domain.WheelTierGolden, c.Tier(z))
			}
			if !c.IsSafe(z) {
				assert.Equal(t, domain.WheelTierBronze, c.Tier(z))
			}
			if c.IsSafe(z) && !c.IsSuper(z) {
				assert.Equal(t, domain.WheelTierSilver, c.Tier(z))
			}
		}
	}
}

func TestNewClassifier_FallsBackOnNonPositiveIntervals(t *testing.T) {
	c := NewClassifier(0, -3)

	assert.True(t, c.IsSafe(5))
	assert.False(t, c.IsSafe(6))
	assert.True(t, c.IsSuper(30))
	assert.False(t, c.IsSuper(15))
}
