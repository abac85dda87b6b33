package catalog

import "github.com/osse101/WheelOfFortune_Go/internal/domain"

// DefaultItems is the built-in catalog used when no file is configured
func DefaultItems() []domain.ItemDefinition {
	return []domain.ItemDefinition{
		{ID: "cash", Name: "Cash", Type: domain.ItemTypeCash, Rarity: domain.RarityCommon, Icon: "icon_cash",
			MinAmount: 50, MaxAmount: 150, AvailableFromZone: 1, AvailableUntilZone: DefaultAvailableUntilZone, SpawnWeight: 30},
		{ID: "cash_stack", Name: "Cash Stack", Type: domain.ItemTypeCash, Rarity: domain.RarityUncommon, Icon: "icon_cash_stack",
			MinAmount: 200, MaxAmount: 500, AvailableFromZone: 5, AvailableUntilZone: DefaultAvailableUntilZone, SpawnWeight: 15},
		{ID: "gold", Name: "Gold", Type: domain.ItemTypeGold, Rarity: domain.RarityUncommon, Icon: "icon_gold",
			MinAmount: 1, MaxAmount: 5, AvailableFromZone: 1, AvailableUntilZone: DefaultAvailableUntilZone, SpawnWeight: 12},
		{ID: "chest", Name: "Chest", Type: domain.ItemTypeChest, Rarity: domain.RarityRare, Icon: "icon_chest",
			MinAmount: 1, MaxAmount: 1, AvailableFromZone: 1, AvailableUntilZone: DefaultAvailableUntilZone, SpawnWeight: 6},
		{ID: "weapon", Name: "Weapon", Type: domain.ItemTypeWeapon, Rarity: domain.RarityEpic, Icon: "icon_weapon",
			MinAmount: 1, MaxAmount: 1, AvailableFromZone: 10, AvailableUntilZone: DefaultAvailableUntilZone, SpawnWeight: 3},
		{ID: "medkit", Name: "Medkit", Type: domain.ItemTypeConsumable, Rarity: domain.RarityCommon, Icon: "icon_medkit",
			MinAmount: 1, MaxAmount: 3, AvailableFromZone: 1, AvailableUntilZone: DefaultAvailableUntilZone, SpawnWeight: 10},
	}
}

// Default builds a catalog over DefaultItems
func Default() (*Catalog, error) {
	return New(DefaultItems())
}
