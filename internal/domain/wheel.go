package domain

// Bomb and placeholder sentinels shown by the presentation layer
const (
	BombSliceID   = "bomb"
	BombSliceName = "Bomb"
	BombSliceIcon = "icon_bomb"

	PlaceholderSliceID   = "empty"
	PlaceholderSliceName = "Empty"
	PlaceholderSliceIcon = "icon_empty"
)

// WheelSlice is one wedge of a generated wheel
type WheelSlice struct {
	IsBomb        bool     `json:"is_bomb"`
	IsPlaceholder bool     `json:"is_placeholder,omitempty"`
	ItemID        string   `json:"item_id,omitempty"`
	ItemType      ItemType `json:"item_type,omitempty"`
	Name          string   `json:"name"`
	Icon          string   `json:"icon,omitempty"`
	Amount        int      `json:"amount"`
	Rarity        Rarity   `json:"rarity"`
}

// NewBombSlice builds the bomb sentinel slice
func NewBombSlice() WheelSlice {
	return WheelSlice{
		IsBomb:   true,
		ItemID:   BombSliceID,
		ItemType: ItemTypeBomb,
		Name:     BombSliceName,
		Icon:     BombSliceIcon,
	}
}

// NewPlaceholderSlice builds the no-drop slice used when a zone has nothing eligible
func NewPlaceholderSlice() WheelSlice {
	return WheelSlice{
		IsPlaceholder: true,
		ItemID:        PlaceholderSliceID,
		Name:          PlaceholderSliceName,
		Icon:          PlaceholderSliceIcon,
	}
}
