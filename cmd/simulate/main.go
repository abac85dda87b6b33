// Command simulate plays headless runs against the built-in or configured
// content and prints how far each run got. Runs with the same -seed replay
// identically.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/osse101/WheelOfFortune_Go/internal/bootstrap"
	"github.com/osse101/WheelOfFortune_Go/internal/config"
	"github.com/osse101/WheelOfFortune_Go/internal/domain"
	"github.com/osse101/WheelOfFortune_Go/internal/event"
	"github.com/osse101/WheelOfFortune_Go/internal/game"
	"github.com/osse101/WheelOfFortune_Go/internal/logger"
)

type runResult struct {
	Zone    int
	Spins   int
	Coins   int64
	Gems    int64
	Outcome string
}

func main() {
	seed := flag.Uint64("seed", 1, "random seed (0 for a crypto-seeded run)")
	runs := flag.Int("runs", 10, "number of runs to play")
	cashOutAt := flag.Int("cash-out-at", 0, "cash out on reaching this zone when it is safe (0 never cashes out)")
	maxSpins := flag.Int("max-spins", 500, "spin limit per run")
	gameConfig := flag.String("game-config", "", "game tuning YAML (built-in defaults when empty)")
	catalogPath := flag.String("catalog", "", "item catalog JSON (built-in items when empty)")
	verbose := flag.Bool("v", false, "log every session event")
	flag.Parse()

	level := "warn"
	if *verbose {
		level = "debug"
	}
	logger.InitLogger(logger.NewConfig(level, "text", "wheel-simulate", "dev", "dev", false))

	cfg := &config.Config{
		StoreBackend:   config.StoreBackendMemory,
		SpinMode:       config.SpinModeInstant,
		Seed:           *seed,
		GameConfigPath: *gameConfig,
		CatalogPath:    *catalogPath,
	}

	ctx := context.Background()
	content, err := bootstrap.LoadContent(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load content: %v\n", err)
		os.Exit(1)
	}
	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "storage: %v\n", err)
		os.Exit(1)
	}

	components := bootstrap.BuildGame(ctx, cfg, content, storage.Progress, event.NewMemoryBus())
	defer func() { _ = components.Shutdown(context.Background()) }()

	fmt.Printf("%-4s %-6s %-6s %-10s %-8s %s\n", "RUN", "ZONE", "SPINS", "COINS", "GEMS", "OUTCOME")
	var best runResult
	for i := 1; i <= *runs; i++ {
		res, err := play(ctx, components.Session, *cashOutAt, *maxSpins)
		if err != nil {
			fmt.Fprintf(os.Stderr, "run %d: %v\n", i, err)
			os.Exit(1)
		}
		fmt.Printf("%-4d %-6d %-6d %-10d %-8d %s\n", i, res.Zone, res.Spins, res.Coins, res.Gems, res.Outcome)
		if res.Zone > best.Zone {
			best = res
		}
	}
	fmt.Printf("\nfurthest zone: %d (%s)\n", best.Zone, best.Outcome)
}

// play spins until a bomb, a cash out or the spin limit, then leaves the
// session idle at the start of the ladder for the next run
func play(ctx context.Context, session *game.Session, cashOutAt, maxSpins int) (runResult, error) {
	var res runResult

	for res.Spins < maxSpins {
		snap := session.Snapshot()
		if cashOutAt > 0 && snap.Zone.Current >= cashOutAt && snap.Zone.Kind != domain.ZoneKindNormal {
			out, err := session.CashOut(ctx)
			if err != nil {
				return res, err
			}
			res.Zone, res.Coins, res.Gems = out.Zone, out.Ledger.TotalCoins, out.Ledger.TotalGems
			res.Outcome = "cashed out"
			return res, nil
		}

		if _, err := session.RequestSpin(ctx); err != nil {
			return res, err
		}
		res.Spins++

		switch session.State() {
		case domain.GameStateGameOver:
			snap = session.Snapshot()
			res.Zone, res.Coins, res.Gems = snap.Zone.Current, snap.Ledger.TotalCoins, snap.Ledger.TotalGems
			res.Outcome = "bomb"
			return res, session.Trash(ctx)
		case domain.GameStateShowingResult:
			if err := session.ClosePopup(ctx, false); err != nil {
				return res, err
			}
		}
	}

	snap := session.Snapshot()
	res.Zone, res.Coins, res.Gems = snap.Zone.Current, snap.Ledger.TotalCoins, snap.Ledger.TotalGems
	res.Outcome = "spin limit"
	_, err := session.CashOut(ctx)
	return res, err
}
