package game

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/WheelOfFortune_Go/internal/domain"
	"github.com/osse101/WheelOfFortune_Go/internal/event"
	"github.com/osse101/WheelOfFortune_Go/internal/logger"
)

// transitions is the complete table of legal state changes
var transitions = map[domain.GameState][]domain.GameState{
	domain.GameStateIdle:          {domain.GameStateSpinning},
	domain.GameStateSpinning:      {domain.GameStateShowingResult, domain.GameStateGameOver},
	domain.GameStateShowingResult: {domain.GameStateIdle},
	domain.GameStateGameOver:      {domain.GameStateIdle},
}

// GameOverSource reports the zone and ledger published with game-over
type GameOverSource func() (zone int, ledger domain.LedgerState)

// StateMachine gates which session actions are legal
type StateMachine struct {
	mu       sync.RWMutex
	state    domain.GameState
	bus      event.Bus
	gameOver GameOverSource
}

// StateMachineOption configures a StateMachine
type StateMachineOption func(*StateMachine)

// WithGameOverSource sets where the game-over payload comes from
func WithGameOverSource(src GameOverSource) StateMachineOption {
	return func(m *StateMachine) {
		m.gameOver = src
	}
}

// NewStateMachine creates a machine in the Idle state
func NewStateMachine(bus event.Bus, opts ...StateMachineOption) *StateMachine {
	m := &StateMachine{state: domain.GameStateIdle, bus: bus}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the current state
func (m *StateMachine) State() domain.GameState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// CanTransition reports whether moving to the given state is legal right now
func (m *StateMachine) CanTransition(to domain.GameState) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return allowed(m.state, to)
}

func allowed(from, to domain.GameState) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Transition moves to the given state. Illegal moves leave the state unchanged.
func (m *StateMachine) Transition(ctx context.Context, to domain.GameState) error {
	m.mu.Lock()
	from := m.state
	if !allowed(from, to) {
		m.mu.Unlock()
		logger.FromContext(ctx).Warn(LogMsgIllegalTransition, "from", from, "to", to)
		return fmt.Errorf(ErrFmtIllegalTransition, domain.ErrIllegalStateTransition, from, to)
	}
	m.state = to
	m.mu.Unlock()

	logger.FromContext(ctx).Debug(LogMsgStateChanged, "from", from, "to", to)
	m.publish(ctx, event.NewStateChangedEvent(from, to))
	if to == domain.GameStateGameOver {
		m.publish(ctx, m.gameOverEvent())
	}
	return nil
}

// Reset forces the machine back to Idle for a fresh session
func (m *StateMachine) Reset(ctx context.Context) {
	m.mu.Lock()
	from := m.state
	m.state = domain.GameStateIdle
	m.mu.Unlock()

	if from != domain.GameStateIdle {
		m.publish(ctx, event.NewStateChangedEvent(from, domain.GameStateIdle))
	}
}

func (m *StateMachine) gameOverEvent() event.Event {
	if m.gameOver == nil {
		return event.NewGameOverEvent(0, domain.LedgerState{})
	}
	zone, ledger := m.gameOver()
	return event.NewGameOverEvent(zone, ledger)
}

func (m *StateMachine) publish(ctx context.Context, evt event.Event) {
	if m.bus == nil {
		return
	}
	if err := m.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
