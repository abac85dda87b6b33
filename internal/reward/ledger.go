package reward

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/WheelOfFortune_Go/internal/domain"
	"github.com/osse101/WheelOfFortune_Go/internal/logger"
	"github.com/osse101/WheelOfFortune_Go/internal/utils"
)

// Ledger accumulates the rewards of one run
type Ledger struct {
	mu         sync.RWMutex
	coins      int64
	gems       int64
	multiplier float64
	collected  []domain.RewardRecord
}

// NewLedger creates an empty ledger with a neutral multiplier
func NewLedger() *Ledger {
	return &Ledger{multiplier: domain.DefaultMultiplierValue}
}

// Collect applies a reward. Bombs and malformed records are rejected without changing state.
// Coins are scaled by the running multiplier; gems are added as-is.
func (l *Ledger) Collect(ctx context.Context, r domain.RewardRecord) error {
	log := logger.FromContext(ctx)

	if reason := rejection(r); reason != "" {
		log.Warn(LogMsgRewardRejected, "reward_id", r.ID, "kind", r.Kind, "reason", reason)
		return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, reason)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	switch r.Kind {
	case domain.RewardKindCoin:
		l.coins += utils.ScaleAmount(r.Amount, l.multiplier)
	case domain.RewardKindGem:
		l.gems += int64(r.Amount)
	case domain.RewardKindMultiplier:
		l.multiplier *= r.MultiplierValue
	case domain.RewardKindBonusItem:
		// recorded only
	}
	l.collected = append(l.collected, r)

	log.Debug(LogMsgRewardCollected,
		"reward_id", r.ID,
		"kind", r.Kind,
		"amount", r.Amount,
		"coins", l.coins,
		"gems", l.gems,
		"multiplier", l.multiplier)

	return nil
}

func rejection(r domain.RewardRecord) string {
	switch {
	case r.IsBomb():
		return ReasonBomb
	case r.ID == "":
		return ReasonMissingID
	case r.Name == "":
		return ReasonMissingName
	case r.Amount < 0:
		return ReasonNegativeAmount
	}

	switch r.Kind {
	case domain.RewardKindCoin, domain.RewardKindGem, domain.RewardKindBonusItem:
		return ""
	case domain.RewardKindMultiplier:
		if r.MultiplierValue <= 0 {
			return ReasonInvalidMultiplier
		}
		return ""
	default:
		return ReasonUnknownKind
	}
}

// LoseAll forfeits everything collected this run
func (l *Ledger) LoseAll(ctx context.Context) {
	l.clear(ctx, ClearReasonLoseAll)
}

// Reset clears the ledger for a fresh run
func (l *Ledger) Reset(ctx context.Context) {
	l.clear(ctx, ClearReasonReset)
}

func (l *Ledger) clear(ctx context.Context, reason string) {
	l.mu.Lock()
	lost := len(l.collected)
	l.coins = 0
	l.gems = 0
	l.multiplier = domain.DefaultMultiplierValue
	l.collected = nil
	l.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgLedgerCleared, "reason", reason, "rewards", lost)
}

// Snapshot returns a copy of the current state
func (l *Ledger) Snapshot() domain.LedgerState {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return domain.LedgerState{
		TotalCoins:        l.coins,
		TotalGems:         l.gems,
		CurrentMultiplier: l.multiplier,
		CollectedRewards:  append([]domain.RewardRecord{}, l.collected...),
		TotalCount:        len(l.collected),
	}
}

// TotalCoins returns the coin balance
func (l *Ledger) TotalCoins() int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.coins
}

// TotalGems returns the gem balance
func (l *Ledger) TotalGems() int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.gems
}

// CurrentMultiplier returns the running coin multiplier
func (l *Ledger) CurrentMultiplier() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.multiplier
}

// Summary groups collected rewards by id in first-collected order
func (l *Ledger) Summary() []domain.RewardSummary {
	l.mu.RLock()
	defer l.mu.RUnlock()

	index := make(map[string]int)
	var out []domain.RewardSummary
	for _, r := range l.collected {
		i, ok := index[r.ID]
		if !ok {
			i = len(out)
			index[r.ID] = i
			out = append(out, domain.RewardSummary{ID: r.ID, Name: r.Name, Icon: r.Icon, Kind: r.Kind})
		}
		out[i].TotalAmount += int64(r.Amount)
		out[i].Count++
	}
	return out
}
