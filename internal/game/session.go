package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/WheelOfFortune_Go/internal/config"
	"github.com/osse101/WheelOfFortune_Go/internal/domain"
	"github.com/osse101/WheelOfFortune_Go/internal/event"
	"github.com/osse101/WheelOfFortune_Go/internal/logger"
	"github.com/osse101/WheelOfFortune_Go/internal/progression"
	"github.com/osse101/WheelOfFortune_Go/internal/reward"
	"github.com/osse101/WheelOfFortune_Go/internal/scheduler"
	"github.com/osse101/WheelOfFortune_Go/internal/utils"
	"github.com/osse101/WheelOfFortune_Go/internal/wheel"
	"github.com/osse101/WheelOfFortune_Go/internal/worker"
)

// Service is the set of player actions a game session accepts
type Service interface {
	Completer

	// RequestSpin starts a spin on a randomly chosen slice
	RequestSpin(ctx context.Context) (domain.Spin, error)
	// SpinTo starts a spin that will stop on index (clamped to the wheel)
	SpinTo(ctx context.Context, index int) (domain.Spin, error)
	// ClosePopup dismisses the result popup, optionally chaining another spin
	ClosePopup(ctx context.Context, autoContinue bool) error
	// Revive keeps rewards and zone after a bomb
	Revive(ctx context.Context) error
	// Trash forfeits rewards after a bomb and returns to the starting zone
	Trash(ctx context.Context) error
	// CashOut leaves the run with the collected rewards
	CashOut(ctx context.Context) (domain.CashOutResult, error)
	// ResetProgress wipes the run and the best zone reached
	ResetProgress(ctx context.Context) error

	Snapshot() domain.SessionSnapshot
	// Summary groups the collected rewards by id
	Summary() []domain.RewardSummary
	State() domain.GameState
	ID() uuid.UUID
}

// Dependencies are the services a session is built from
type Dependencies struct {
	Spin      config.SpinSettings
	Progress  progression.Controller
	Ledger    *reward.Ledger
	Bus       event.Bus
	Scheduler *scheduler.Scheduler
	Animator  Animator
	RNG       utils.RandomSource
}

// Session is one player's run through the zone ladder.
// Mutating actions are serialized; the state machine decides which are legal.
type Session struct {
	id       uuid.UUID
	spinCfg  config.SpinSettings
	machine  *StateMachine
	ledger   *reward.Ledger
	progress progression.Controller
	bus      event.Bus
	sched    *scheduler.Scheduler
	animator Animator
	rng      utils.RandomSource

	mu       sync.Mutex
	spin     *domain.Spin
	autoSpin uuid.UUID
}

// NewSession wires a session over deps. Call Start before the first spin.
func NewSession(deps Dependencies) *Session {
	id := uuid.New()
	bus := deps.Bus
	if bus == nil {
		bus = event.NewMemoryBus()
	}
	bus = event.Tagged(bus, event.MetadataKeySessionID, id.String())

	ledger := deps.Ledger
	if ledger == nil {
		ledger = reward.NewLedger()
	}
	animator := deps.Animator
	if animator == nil {
		animator = ManualAnimator{}
	}
	rng := deps.RNG
	if rng == nil {
		rng = utils.NewRandomSource()
	}

	s := &Session{
		id:       id,
		spinCfg:  deps.Spin,
		ledger:   ledger,
		progress: deps.Progress,
		bus:      bus,
		sched:    deps.Scheduler,
		animator: animator,
		rng:      rng,
	}
	s.machine = NewStateMachine(bus, WithGameOverSource(func() (int, domain.LedgerState) {
		return s.progress.CurrentZone(), s.ledger.Snapshot()
	}))
	return s
}

// Context tags ctx with the session id for logging
func (s *Session) Context(ctx context.Context) context.Context {
	return logger.WithSessionID(ctx, s.id.String())
}

// Start restores persisted progress and builds the first wheel
func (s *Session) Start(ctx context.Context) {
	ctx = s.Context(ctx)
	s.progress.Load(ctx)

	info := s.progress.Info()
	logger.FromContext(ctx).Info(LogMsgSessionStarted, "zone", info.Current, "highest", info.Highest)
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) State() domain.GameState {
	return s.machine.State()
}

// Bus returns the session-tagged bus notifications are published on
func (s *Session) Bus() event.Bus {
	return s.bus
}

func (s *Session) RequestSpin(ctx context.Context) (domain.Spin, error) {
	return s.startSpin(ctx, -1)
}

func (s *Session) SpinTo(ctx context.Context, index int) (domain.Spin, error) {
	return s.startSpin(ctx, max(index, 0))
}

// startSpin enters Spinning and hands the spin to the animator.
// A negative target picks a slice at random.
func (s *Session) startSpin(ctx context.Context, target int) (domain.Spin, error) {
	ctx = s.Context(ctx)

	s.mu.Lock()
	if err := s.machine.Transition(ctx, domain.GameStateSpinning); err != nil {
		s.mu.Unlock()
		return domain.Spin{}, err
	}

	slices := s.progress.ActiveSlices()
	if target < 0 {
		target = s.rng.IntN(len(slices))
	}
	spin := domain.Spin{
		ID:          uuid.New(),
		Zone:        s.progress.CurrentZone(),
		TargetIndex: min(target, len(slices)-1),
		Duration:    utils.RandomDuration(s.rng, s.spinCfg.MinDuration, s.spinCfg.MaxDuration),
		StartedAt:   time.Now(),
	}
	s.spin = &spin
	s.cancelAutoSpinLocked()
	s.publish(ctx, event.NewSpinStartedEvent(spin))
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgSpinStarted,
		"spin_id", spin.ID,
		"zone", spin.Zone,
		"target", spin.TargetIndex,
		"duration", spin.Duration)

	s.animator.Animate(ctx, spin, s)
	return spin, nil
}

// CompleteSpin resolves the in-flight spin once its animation has stopped.
// A bomb ends in GameOver with the ledger and zone untouched; anything else is
// collected, the zone advances and the result popup is shown.
func (s *Session) CompleteSpin(ctx context.Context, spinID uuid.UUID) (domain.SpinOutcome, error) {
	ctx = s.Context(ctx)
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.spin == nil || s.spin.ID != spinID {
		return domain.SpinOutcome{}, fmt.Errorf(ErrFmtUnknownSpin, domain.ErrSpinNotFound, spinID)
	}
	spin := *s.spin
	s.spin = nil

	s.publish(ctx, event.NewSpinCompletedEvent(spin))

	outcome := domain.SpinOutcome{
		SpinID:      spin.ID,
		TargetIndex: spin.TargetIndex,
		Zone:        spin.Zone,
		NextZone:    spin.Zone,
	}

	record, err := wheel.Resolve(s.progress.ActiveSlices(), spin.TargetIndex)
	if err != nil {
		// the spin still has to land somewhere
		log.Error(LogMsgSpinResolveFailed, "spin_id", spin.ID, "error", err)
		_ = s.machine.Transition(ctx, domain.GameStateShowingResult)
		outcome.State = s.machine.State()
		return outcome, err
	}
	outcome.Reward = record

	if record.IsBomb() {
		outcome.BombHit = true
		s.publish(ctx, event.NewBombHitEvent(spin))
		log.Info(LogMsgBombHit, "spin_id", spin.ID, "zone", spin.Zone, "coins", s.ledger.TotalCoins())
		if err := s.machine.Transition(ctx, domain.GameStateGameOver); err != nil {
			return outcome, err
		}
		outcome.State = domain.GameStateGameOver
		return outcome, nil
	}

	if err := s.ledger.Collect(ctx, record); err != nil {
		log.Warn(LogMsgCollectFailed, "reward_id", record.ID, "error", err)
	} else {
		s.publish(ctx, event.NewRewardCollectedEvent(record, spin.Zone, s.ledger.Snapshot()))
		log.Info(LogMsgRewardCollected, "reward_id", record.ID, "kind", record.Kind, "amount", record.Amount)
	}

	outcome.NextZone = s.progress.Advance(ctx).Current
	if err := s.machine.Transition(ctx, domain.GameStateShowingResult); err != nil {
		return outcome, err
	}
	outcome.State = domain.GameStateShowingResult
	return outcome, nil
}

// ClosePopup dismisses the result popup. Game over is left only through Revive or Trash.
func (s *Session) ClosePopup(ctx context.Context, autoContinue bool) error {
	ctx = s.Context(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLocked(domain.GameStateShowingResult, "close popup"); err != nil {
		return err
	}
	if err := s.machine.Transition(ctx, domain.GameStateIdle); err != nil {
		return err
	}
	s.popupClosedLocked(ctx, autoContinue)
	return nil
}

func (s *Session) Revive(ctx context.Context) error {
	ctx = s.Context(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLocked(domain.GameStateGameOver, "revive"); err != nil {
		return err
	}

	s.progress.Regenerate(ctx)
	if err := s.machine.Transition(ctx, domain.GameStateIdle); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgRevived, "zone", s.progress.CurrentZone(), "coins", s.ledger.TotalCoins())
	s.popupClosedLocked(ctx, s.spinCfg.ReviveAutoSpin)
	return nil
}

func (s *Session) Trash(ctx context.Context) error {
	ctx = s.Context(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLocked(domain.GameStateGameOver, "trash"); err != nil {
		return err
	}

	s.ledger.LoseAll(ctx)
	info := s.progress.ResetToStart(ctx)
	s.publish(ctx, event.NewGameRestartedEvent(event.RestartReasonTrash, info.Current))
	if err := s.machine.Transition(ctx, domain.GameStateIdle); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgTrashed, "zone", info.Current)
	s.popupClosedLocked(ctx, false)
	return nil
}

func (s *Session) CashOut(ctx context.Context) (domain.CashOutResult, error) {
	ctx = s.Context(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLocked(domain.GameStateIdle, "cash out"); err != nil {
		return domain.CashOutResult{}, err
	}

	result := domain.CashOutResult{
		Ledger:  s.ledger.Snapshot(),
		Summary: s.ledger.Summary(),
		Zone:    s.progress.CurrentZone(),
	}
	s.cancelAutoSpinLocked()
	s.ledger.Reset(ctx)
	info := s.progress.ResetToStart(ctx)
	s.publish(ctx, event.NewGameRestartedEvent(event.RestartReasonCashOut, info.Current))

	logger.FromContext(ctx).Info(LogMsgCashedOut,
		"zone", result.Zone,
		"coins", result.Ledger.TotalCoins,
		"gems", result.Ledger.TotalGems)
	return result, nil
}

func (s *Session) ResetProgress(ctx context.Context) error {
	ctx = s.Context(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLocked(domain.GameStateIdle, "reset progress"); err != nil {
		return err
	}

	s.cancelAutoSpinLocked()
	s.ledger.Reset(ctx)
	info := s.progress.ResetProgress(ctx)
	s.publish(ctx, event.NewGameRestartedEvent(event.RestartReasonReset, info.Current))
	logger.FromContext(ctx).Info(LogMsgProgressReset, "zone", info.Current)
	return nil
}

// Snapshot returns a read-only view of the session
func (s *Session) Snapshot() domain.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := domain.SessionSnapshot{
		SessionID: s.id,
		State:     s.machine.State(),
		Zone:      s.progress.Info(),
		Ledger:    s.ledger.Snapshot(),
		Slices:    s.progress.ActiveSlices(),
	}
	if s.spin != nil {
		spin := *s.spin
		snap.Spin = &spin
	}
	return snap
}

// Ledger exposes the reward ledger read-only helpers such as Summary
func (s *Session) Ledger() *reward.Ledger {
	return s.ledger
}

func (s *Session) Summary() []domain.RewardSummary {
	return s.ledger.Summary()
}

// Shutdown drops a pending auto spin. In-flight callbacks finish on the scheduler.
func (s *Session) Shutdown(ctx context.Context) {
	ctx = s.Context(ctx)

	s.mu.Lock()
	s.cancelAutoSpinLocked()
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgSessionShutdown, "state", s.machine.State())
}

// requireLocked rejects an action that is only legal in one state
func (s *Session) requireLocked(want domain.GameState, action string) error {
	if state := s.machine.State(); state != want {
		return fmt.Errorf(ErrFmtNotInState, domain.ErrIllegalStateTransition, action, want, state)
	}
	return nil
}

// popupClosedLocked publishes the popup close and queues at most one chained spin.
// The chained spin goes through RequestSpin, so it is still gated by Idle -> Spinning.
func (s *Session) popupClosedLocked(ctx context.Context, autoSpin bool) {
	s.publish(ctx, event.NewResultPopupClosedEvent(autoSpin))
	if !autoSpin || s.sched == nil {
		return
	}

	s.cancelAutoSpinLocked()
	var taskID uuid.UUID
	taskID = s.sched.After(s.spinCfg.AutoSpinDelay, TaskAutoSpin, worker.JobFunc(func(jobCtx context.Context) error {
		s.mu.Lock()
		if s.autoSpin == taskID {
			s.autoSpin = uuid.Nil
		}
		s.mu.Unlock()

		if _, err := s.RequestSpin(jobCtx); err != nil {
			logger.FromContext(s.Context(jobCtx)).Warn(LogMsgAutoSpinFailed, "error", err)
		}
		return nil
	}))
	s.autoSpin = taskID
	logger.FromContext(ctx).Debug(LogMsgAutoSpinScheduled, "delay", s.spinCfg.AutoSpinDelay, "task_id", s.autoSpin)
}

func (s *Session) cancelAutoSpinLocked() {
	if s.autoSpin == uuid.Nil || s.sched == nil {
		return
	}
	s.sched.Cancel(s.autoSpin)
	s.autoSpin = uuid.Nil
}

func (s *Session) publish(ctx context.Context, evt event.Event) {
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
