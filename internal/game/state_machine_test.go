package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WheelOfFortune_Go/internal/domain"
	"github.com/osse101/WheelOfFortune_Go/internal/event"
)

var allStates = []domain.GameState{
	domain.GameStateIdle,
	domain.GameStateSpinning,
	domain.GameStateShowingResult,
	domain.GameStateGameOver,
}

// machineIn drives a fresh machine into the requested state through legal moves only
func machineIn(t *testing.T, bus event.Bus, state domain.GameState) *StateMachine {
	t.Helper()
	ctx := context.Background()
	m := NewStateMachine(bus)

	switch state {
	case domain.GameStateIdle:
	case domain.GameStateSpinning:
		require.NoError(t, m.Transition(ctx, domain.GameStateSpinning))
	case domain.GameStateShowingResult:
		require.NoError(t, m.Transition(ctx, domain.GameStateSpinning))
		require.NoError(t, m.Transition(ctx, domain.GameStateShowingResult))
	case domain.GameStateGameOver:
		require.NoError(t, m.Transition(ctx, domain.GameStateSpinning))
		require.NoError(t, m.Transition(ctx, domain.GameStateGameOver))
	}
	require.Equal(t, state, m.State())
	return m
}

func TestStateMachine_InitialState(t *testing.T) {
	m := NewStateMachine(nil)
	assert.Equal(t, domain.GameStateIdle, m.State())
}

func TestStateMachine_TransitionTable(t *testing.T) {
	legal := map[domain.GameState]map[domain.GameState]bool{
		domain.GameStateIdle:          {domain.GameStateSpinning: true},
		domain.GameStateSpinning:      {domain.GameStateShowingResult: true, domain.GameStateGameOver: true},
		domain.GameStateShowingResult: {domain.GameStateIdle: true},
		domain.GameStateGameOver:      {domain.GameStateIdle: true},
	}

	for _, from := range allStates {
		for _, to := range allStates {
			name := string(from) + "->" + string(to)
			t.Run(name, func(t *testing.T) {
				m := machineIn(t, nil, from)
				assert.Equal(t, legal[from][to], m.CanTransition(to))

				err := m.Transition(context.Background(), to)
				if legal[from][to] {
					require.NoError(t, err)
					assert.Equal(t, to, m.State())
					return
				}
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrIllegalStateTransition)
				assert.Contains(t, err.Error(), domain.ErrMsgIllegalStateTransition)
				assert.Equal(t, from, m.State(), "rejected transitions leave the state unchanged")
			})
		}
	}
}

func TestStateMachine_PublishesTransitions(t *testing.T) {
	bus := event.NewMemoryBus()
	var seen []event.Event
	bus.Subscribe(event.AnyType, func(_ context.Context, e event.Event) error {
		seen = append(seen, e)
		return nil
	})

	ledger := domain.LedgerState{TotalCoins: 150}
	m := NewStateMachine(bus, WithGameOverSource(func() (int, domain.LedgerState) {
		return 7, ledger
	}))
	ctx := context.Background()

	require.NoError(t, m.Transition(ctx, domain.GameStateSpinning))
	require.NoError(t, m.Transition(ctx, domain.GameStateGameOver))
	require.Error(t, m.Transition(ctx, domain.GameStateSpinning))

	require.Len(t, seen, 3, "rejected transitions publish nothing")
	assert.Equal(t, event.StateChanged, seen[0].Type)
	assert.Equal(t, event.StateChanged, seen[1].Type)
	assert.Equal(t, event.GameOver, seen[2].Type)

	changed, err := event.DecodePayload[event.StateChangedPayloadV1](seen[1].Payload)
	require.NoError(t, err)
	assert.Equal(t, domain.GameStateSpinning, changed.From)
	assert.Equal(t, domain.GameStateGameOver, changed.To)

	over, err := event.DecodePayload[event.GameOverPayloadV1](seen[2].Payload)
	require.NoError(t, err)
	assert.Equal(t, 7, over.Zone)
	assert.Equal(t, int64(150), over.TotalCoins)
}

func TestStateMachine_Reset(t *testing.T) {
	m := machineIn(t, nil, domain.GameStateGameOver)
	m.Reset(context.Background())
	assert.Equal(t, domain.GameStateIdle, m.State())
}
