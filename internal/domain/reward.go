package domain

// RewardKind is the economic effect of a collected reward
type RewardKind string

const (
	RewardKindCoin       RewardKind = "Coin"
	RewardKindGem        RewardKind = "Gem"
	RewardKindMultiplier RewardKind = "Multiplier"
	RewardKindBonusItem  RewardKind = "BonusItem"
	RewardKindBomb       RewardKind = "Bomb"
)

// DefaultMultiplierValue is the neutral multiplier carried by non-multiplier rewards
const DefaultMultiplierValue = 1.0

// RewardRecord is the normalized outcome of a resolved spin
type RewardRecord struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Icon            string     `json:"icon,omitempty"`
	Kind            RewardKind `json:"kind"`
	Amount          int        `json:"amount"`
	MultiplierValue float64    `json:"multiplier_value"`
	Rarity          Rarity     `json:"rarity"`
}

// IsBomb reports whether the record is the bomb outcome
func (r RewardRecord) IsBomb() bool {
	return r.Kind == RewardKindBomb
}

// LedgerState is a point-in-time copy of the reward ledger
type LedgerState struct {
	TotalCoins        int64          `json:"total_coins"`
	TotalGems         int64          `json:"total_gems"`
	CurrentMultiplier float64        `json:"current_multiplier"`
	CollectedRewards  []RewardRecord `json:"collected_rewards"`
	TotalCount        int            `json:"total_count"`
}

// RewardSummary aggregates every collection of one reward id
type RewardSummary struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Icon        string     `json:"icon,omitempty"`
	Kind        RewardKind `json:"kind"`
	TotalAmount int64      `json:"total_amount"`
	Count       int        `json:"count"`
}
