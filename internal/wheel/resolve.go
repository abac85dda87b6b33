package wheel

import (
	"fmt"
	"strings"

	"github.com/osse101/WheelOfFortune_Go/internal/domain"
)

// Resolve turns the slice under targetIndex into a reward record
func Resolve(slices []domain.WheelSlice, targetIndex int) (domain.RewardRecord, error) {
	if len(slices) == 0 {
		return domain.RewardRecord{}, fmt.Errorf(ErrFmtEmptyWheel, domain.ErrInvalidArgument)
	}
	if targetIndex < 0 || targetIndex >= len(slices) {
		return domain.RewardRecord{}, fmt.Errorf(ErrFmtTargetOutOfRange, domain.ErrInvalidArgument, targetIndex, len(slices))
	}

	slice := slices[targetIndex]

	switch {
	case slice.IsBomb || slice.ItemType == domain.ItemTypeBomb:
		return BombReward(), nil
	case slice.IsPlaceholder:
		return domain.RewardRecord{
			ID:              domain.PlaceholderSliceID,
			Name:            domain.PlaceholderSliceName,
			Icon:            domain.PlaceholderSliceIcon,
			Kind:            domain.RewardKindBonusItem,
			MultiplierValue: domain.DefaultMultiplierValue,
		}, nil
	}

	return domain.RewardRecord{
		ID:              RewardID(slice.ItemType, slice.Name),
		Name:            slice.Name,
		Icon:            slice.Icon,
		Kind:            RewardKindFor(slice.ItemType),
		Amount:          slice.Amount,
		MultiplierValue: domain.DefaultMultiplierValue,
		Rarity:          slice.Rarity,
	}, nil
}

// BombReward is the record produced by landing on a bomb
func BombReward() domain.RewardRecord {
	return domain.RewardRecord{
		ID:              domain.BombSliceID,
		Name:            domain.BombSliceName,
		Icon:            domain.BombSliceIcon,
		Kind:            domain.RewardKindBomb,
		MultiplierValue: domain.DefaultMultiplierValue,
	}
}

// RewardKindFor maps an item type to its economic effect
func RewardKindFor(t domain.ItemType) domain.RewardKind {
	switch t {
	case domain.ItemTypeCash:
		return domain.RewardKindCoin
	case domain.ItemTypeGold:
		return domain.RewardKindGem
	case domain.ItemTypeBomb:
		return domain.RewardKindBomb
	default:
		return domain.RewardKindBonusItem
	}
}

// RewardID builds the stable reward id, e.g. Weapon + "Assault Rifle" -> "weapon_assault_rifle"
func RewardID(t domain.ItemType, name string) string {
	id := strings.ToLower(string(t) + "_" + name)
	return strings.ReplaceAll(id, " ", "_")
}
