package wheel

import (
	"context"

	"github.com/osse101/WheelOfFortune_Go/internal/domain"
	"github.com/osse101/WheelOfFortune_Go/internal/logger"
	"github.com/osse101/WheelOfFortune_Go/internal/utils"
)

// Generator lays out the slices of a zone's wheel
type Generator interface {
	// Generate returns exactly cfg.SliceCount slices: cfg.BombCount bombs and
	// weighted item draws for the rest, in shuffled order.
	Generate(ctx context.Context, cfg domain.ZoneWheelConfig) []domain.WheelSlice
}

type generator struct {
	rng utils.RandomSource
}

// NewGenerator creates a generator drawing from rng
func NewGenerator(rng utils.RandomSource) Generator {
	return &generator{rng: rng}
}

func (g *generator) Generate(ctx context.Context, cfg domain.ZoneWheelConfig) []domain.WheelSlice {
	log := logger.FromContext(ctx)

	bombs := min(cfg.BombCount, cfg.SliceCount)
	if cfg.BombTest {
		bombs = cfg.SliceCount
	}

	slices := make([]domain.WheelSlice, 0, cfg.SliceCount)
	for i := 0; i < bombs; i++ {
		slices = append(slices, domain.NewBombSlice())
	}

	rewardSlots := cfg.SliceCount - bombs
	if rewardSlots > 0 {
		switch {
		case len(cfg.EligibleItems) == 0:
			log.Warn(LogMsgNoEligibleItems,
				"zone", cfg.ZoneNumber,
				"slots", rewardSlots,
				"error", domain.ErrDegenerateConfiguration)
			for i := 0; i < rewardSlots; i++ {
				slices = append(slices, domain.NewPlaceholderSlice())
			}
		default:
			if totalWeight(cfg.EligibleItems) <= 0 {
				log.Debug(LogMsgZeroTotalWeight, "zone", cfg.ZoneNumber)
			}
			for i := 0; i < rewardSlots; i++ {
				slices = append(slices, g.itemSlice(cfg, g.pick(cfg.EligibleItems)))
			}
		}
	}

	Shuffle(g.rng, slices)

	log.Debug(LogMsgWheelGenerated,
		"zone", cfg.ZoneNumber,
		"slices", len(slices),
		"bombs", bombs)

	return slices
}

// pick draws one item by spawn weight. A draw past the last boundary lands on
// the last item; a pool with no positive weight is drawn uniformly.
func (g *generator) pick(items []domain.ItemDefinition) domain.ItemDefinition {
	total := totalWeight(items)
	if total <= 0 {
		return items[g.rng.IntN(len(items))]
	}

	roll := g.rng.Float64() * total
	cumulative := 0.0
	for _, item := range items {
		cumulative += max(item.SpawnWeight, 0)
		if roll < cumulative {
			return item
		}
	}
	return items[len(items)-1]
}

func (g *generator) itemSlice(cfg domain.ZoneWheelConfig, item domain.ItemDefinition) domain.WheelSlice {
	base := utils.RandomInt(g.rng, item.MinAmount, item.MaxAmount)
	amount := utils.ScaleAmount(base, cfg.MultiplierFor(item.Type))

	return domain.WheelSlice{
		ItemID:   item.ID,
		ItemType: item.Type,
		Name:     item.Name,
		Icon:     item.Icon,
		Amount:   int(amount),
		Rarity:   item.Rarity,
	}
}

func totalWeight(items []domain.ItemDefinition) float64 {
	total := 0.0
	for _, item := range items {
		total += max(item.SpawnWeight, 0)
	}
	return total
}

// Shuffle permutes s in place with Fisher-Yates: for n from len-1 down to 1,
// swap s[n] with s[k] for k uniform in [0, n].
func Shuffle[T any](rng utils.RandomSource, s []T) {
	for n := len(s) - 1; n > 0; n-- {
		k := rng.IntN(n + 1)
		s[n], s[k] = s[k], s[n]
	}
}
