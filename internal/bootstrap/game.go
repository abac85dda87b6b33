package bootstrap

import (
	"context"

	"github.com/osse101/WheelOfFortune_Go/internal/config"
	"github.com/osse101/WheelOfFortune_Go/internal/event"
	"github.com/osse101/WheelOfFortune_Go/internal/game"
	"github.com/osse101/WheelOfFortune_Go/internal/logger"
	"github.com/osse101/WheelOfFortune_Go/internal/progression"
	"github.com/osse101/WheelOfFortune_Go/internal/repository"
	"github.com/osse101/WheelOfFortune_Go/internal/reward"
	"github.com/osse101/WheelOfFortune_Go/internal/scheduler"
	"github.com/osse101/WheelOfFortune_Go/internal/utils"
	"github.com/osse101/WheelOfFortune_Go/internal/wheel"
	"github.com/osse101/WheelOfFortune_Go/internal/worker"
	"github.com/osse101/WheelOfFortune_Go/internal/zone"
)

// GameComponents is a started session and the infrastructure it runs on
type GameComponents struct {
	Session   *game.Session
	Resolver  zone.Resolver
	Scheduler *scheduler.Scheduler
	Pool      *worker.Pool
}

// BuildGame wires zone resolution, slice generation, progression and a session
// over the given store and bus, then starts the session.
func BuildGame(ctx context.Context, cfg *config.Config, content *Content, store repository.ProgressStore, bus event.Bus) *GameComponents {
	rng := newRandomSource(cfg.Seed)

	pool := worker.NewPool(DefaultWorkerCount, DefaultWorkerQueueSize)
	pool.Start()
	sched := scheduler.New(pool)

	classifier := zone.NewClassifier(content.Game.Zones.SafeInterval, content.Game.Zones.SuperInterval)
	resolver := zone.NewResolver(content.Game.Wheel, classifier, content.Catalog)
	progress := progression.NewController(content.Game.Zones, resolver, wheel.NewGenerator(rng), store, bus)

	session := game.NewSession(game.Dependencies{
		Spin:      content.Game.Spin,
		Progress:  progress,
		Ledger:    reward.NewLedger(),
		Bus:       bus,
		Scheduler: sched,
		Animator:  newAnimator(cfg.SpinMode, sched),
		RNG:       rng,
	})
	session.Start(ctx)

	logger.FromContext(session.Context(ctx)).Info(LogMsgGameInitialized,
		"spin_mode", cfg.SpinMode,
		"seeded", cfg.Seed != 0)

	return &GameComponents{
		Session:   session,
		Resolver:  resolver,
		Scheduler: sched,
		Pool:      pool,
	}
}

func newRandomSource(seed uint64) utils.RandomSource {
	if seed == 0 {
		return utils.NewRandomSource()
	}
	return utils.NewSeededSource(seed)
}

func newAnimator(mode string, sched *scheduler.Scheduler) game.Animator {
	switch mode {
	case config.SpinModeManual:
		return game.ManualAnimator{}
	case config.SpinModeInstant:
		return game.InstantAnimator{}
	default:
		return game.NewTimedAnimator(sched)
	}
}

// Shutdown cancels pending spins and stops the workers
func (g *GameComponents) Shutdown(ctx context.Context) error {
	g.Session.Shutdown(ctx)
	err := g.Scheduler.Shutdown(ctx)
	g.Pool.Stop()
	return err
}
