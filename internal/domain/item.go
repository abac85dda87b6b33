package domain

import (
	"fmt"
	"strings"
)

// ItemType is the authored category of a wheel item
type ItemType string

const (
	ItemTypeCash        ItemType = "Cash"
	ItemTypeGold        ItemType = "Gold"
	ItemTypeChest       ItemType = "Chest"
	ItemTypeWeapon      ItemType = "Weapon"
	ItemTypeArmor       ItemType = "Armor"
	ItemTypeConsumable  ItemType = "Consumable"
	ItemTypeSpecialItem ItemType = "SpecialItem"
	ItemTypeBomb        ItemType = "Bomb"
)

// ItemTypes lists every authored item type in declaration order
var ItemTypes = []ItemType{
	ItemTypeCash,
	ItemTypeGold,
	ItemTypeChest,
	ItemTypeWeapon,
	ItemTypeArmor,
	ItemTypeConsumable,
	ItemTypeSpecialItem,
	ItemTypeBomb,
}

// Rarity is an ordinal from Common to Legendary
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
)

var rarityNames = [...]string{"Common", "Uncommon", "Rare", "Epic", "Legendary"}

// String returns the display name of the rarity
func (r Rarity) String() string {
	if r < RarityCommon || r > RarityLegendary {
		return fmt.Sprintf("Rarity(%d)", int(r))
	}
	return rarityNames[r]
}

// MarshalText encodes the rarity by name so catalogs stay human-editable
func (r Rarity) MarshalText() ([]byte, error) {
	if r < RarityCommon || r > RarityLegendary {
		return nil, fmt.Errorf("%w: rarity %d", ErrInvalidArgument, int(r))
	}
	return []byte(rarityNames[r]), nil
}

// UnmarshalText accepts rarity names case-insensitively
func (r *Rarity) UnmarshalText(text []byte) error {
	name := strings.TrimSpace(string(text))
	for i, n := range rarityNames {
		if strings.EqualFold(n, name) {
			*r = Rarity(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown rarity %q", ErrInvalidArgument, name)
}

// ItemDefinition is an authored, immutable catalog entry
type ItemDefinition struct {
	ID                 string   `json:"id" validate:"required,max=64"`
	Name               string   `json:"name" validate:"required,max=64"`
	Type               ItemType `json:"type" validate:"required,oneof=Cash Gold Chest Weapon Armor Consumable SpecialItem Bomb"`
	Rarity             Rarity   `json:"rarity" validate:"gte=0,lte=4"`
	Icon               string   `json:"icon,omitempty"`
	MinAmount          int      `json:"min_amount" validate:"gte=0"`
	MaxAmount          int      `json:"max_amount" validate:"gtefield=MinAmount"`
	AvailableFromZone  int      `json:"available_from_zone" validate:"gte=1"`
	AvailableUntilZone int      `json:"available_until_zone" validate:"gtefield=AvailableFromZone"`
	SpawnWeight        float64  `json:"spawn_weight" validate:"gte=0"`
}

// AvailableIn reports whether the item may appear on the wheel of the given zone
func (d ItemDefinition) AvailableIn(zone int) bool {
	return zone >= d.AvailableFromZone && zone <= d.AvailableUntilZone
}
