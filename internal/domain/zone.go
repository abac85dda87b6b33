package domain

// WheelTier is the visual/balance classification of a zone's wheel
type WheelTier string

const (
	WheelTierBronze WheelTier = "Bronze"
	WheelTierSilver WheelTier = "Silver"
	WheelTierGolden WheelTier = "Golden"
)

// ZoneKind classifies a zone by its bomb guarantees
type ZoneKind string

const (
	ZoneKindNormal ZoneKind = "Normal"
	ZoneKindSafe   ZoneKind = "Safe"
	ZoneKindSuper  ZoneKind = "Super"
)

// ZoneWheelConfig is the resolved wheel layout for one zone number.
// Treat it as immutable once produced; resolvers hand out copies.
type ZoneWheelConfig struct {
	ZoneNumber     int              `json:"zone_number"`
	Tier           WheelTier        `json:"tier"`
	IsSafe         bool             `json:"is_safe"`
	IsSuper        bool             `json:"is_super"`
	SliceCount     int              `json:"slice_count"`
	BombCount      int              `json:"bomb_count"`
	BombTest       bool             `json:"bomb_test,omitempty"`
	EligibleItems  []ItemDefinition `json:"eligible_items"`
	CashMultiplier float64          `json:"cash_multiplier"`
	GoldMultiplier float64          `json:"gold_multiplier"`
}

// RewardSlots is the number of non-bomb slices the generator must fill
func (c ZoneWheelConfig) RewardSlots() int {
	if c.BombTest || c.BombCount >= c.SliceCount {
		return 0
	}
	return c.SliceCount - c.BombCount
}

// MultiplierFor returns the zone multiplier applied to a rolled amount of the given type
func (c ZoneWheelConfig) MultiplierFor(t ItemType) float64 {
	switch t {
	case ItemTypeCash:
		return c.CashMultiplier
	case ItemTypeGold:
		return c.GoldMultiplier
	default:
		return 1.0
	}
}

// Clone returns a copy whose eligible item slice is not shared with the receiver
func (c ZoneWheelConfig) Clone() ZoneWheelConfig {
	out := c
	out.EligibleItems = append([]ItemDefinition(nil), c.EligibleItems...)
	return out
}
