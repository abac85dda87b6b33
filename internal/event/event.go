package event

import (
	"context"
	"time"

	"github.com/osse101/WheelOfFortune_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// WithMetadata returns a copy of the event with key set in its metadata
func (e Event) WithMetadata(key string, value interface{}) Event {
	md := make(Metadata, len(e.Metadata)+1)
	for k, v := range e.Metadata {
		md[k] = v
	}
	md[key] = value
	e.Metadata = md
	return e
}

// Game event types
const (
	SpinStarted       Type = "wheel.spin_started"
	SpinCompleted     Type = "wheel.spin_completed"
	BombHit           Type = "wheel.bomb_hit"
	RewardCollected   Type = "reward.collected"
	ZoneChanged       Type = "zone.changed"
	SafeZoneEntered   Type = "zone.safe_entered"
	SuperZoneEntered  Type = "zone.super_entered"
	GameOver          Type = "game.over"
	GameRestarted     Type = "game.restarted"
	ResultPopupClosed Type = "game.result_popup_closed"
	StateChanged      Type = "game.state_changed"

	// AnyType subscribes a handler to every published event
	AnyType Type = "*"
)

// GameTypes lists every game notification in the order a spin cycle produces them
var GameTypes = []Type{
	SpinStarted,
	SpinCompleted,
	BombHit,
	RewardCollected,
	ZoneChanged,
	SafeZoneEntered,
	SuperZoneEntered,
	GameOver,
	GameRestarted,
	ResultPopupClosed,
	StateChanged,
}

// Restart reasons carried by GameRestarted
const (
	RestartReasonTrash   = "trash"
	RestartReasonCashOut = "cash_out"
	RestartReasonReset   = "reset"
)

// Typed event payloads for type safety

// SpinStartedPayloadV1 is the typed payload for spin started events
type SpinStartedPayloadV1 struct {
	SpinID      string `json:"spin_id"`
	Zone        int    `json:"zone"`
	TargetIndex int    `json:"target_index"`
	DurationMs  int64  `json:"duration_ms"`
}

// SpinCompletedPayloadV1 is the typed payload for spin completed events
type SpinCompletedPayloadV1 struct {
	SpinID      string `json:"spin_id"`
	TargetIndex int    `json:"target_index"`
}

// BombHitPayloadV1 is the typed payload for bomb hit events
type BombHitPayloadV1 struct {
	SpinID string `json:"spin_id"`
	Zone   int    `json:"zone"`
}

// RewardCollectedPayloadV1 is the typed payload for reward collected events
type RewardCollectedPayloadV1 struct {
	Reward     domain.RewardRecord `json:"reward"`
	Zone       int                 `json:"zone"`
	TotalCoins int64               `json:"total_coins"`
	TotalGems  int64               `json:"total_gems"`
}

// ZoneChangedPayloadV1 is the typed payload for zone changed events
type ZoneChangedPayloadV1 struct {
	Zone         int              `json:"zone"`
	PreviousZone int              `json:"previous_zone"`
	HighestZone  int              `json:"highest_zone"`
	Tier         domain.WheelTier `json:"tier"`
}

// ZoneEnteredPayloadV1 is the typed payload for safe and super zone entered events
type ZoneEnteredPayloadV1 struct {
	Zone int `json:"zone"`
}

// GameOverPayloadV1 is the typed payload for game over events
type GameOverPayloadV1 struct {
	Zone       int   `json:"zone"`
	TotalCoins int64 `json:"total_coins"`
	TotalGems  int64 `json:"total_gems"`
}

// GameRestartedPayloadV1 is the typed payload for game restarted events
type GameRestartedPayloadV1 struct {
	Reason string `json:"reason"`
	Zone   int    `json:"zone"`
}

// ResultPopupClosedPayloadV1 is the typed payload for result popup closed events
type ResultPopupClosedPayloadV1 struct {
	AutoSpin bool `json:"auto_spin"`
}

// StateChangedPayloadV1 is the typed payload for game state transitions
type StateChangedPayloadV1 struct {
	From      domain.GameState `json:"from"`
	To        domain.GameState `json:"to"`
	Timestamp int64            `json:"timestamp"`
}

// Type-safe event constructors

func newEvent(t Type, payload interface{}) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: payload,
	}
}

// NewSpinStartedEvent creates a new spin started event
func NewSpinStartedEvent(spin domain.Spin) Event {
	return newEvent(SpinStarted, SpinStartedPayloadV1{
		SpinID:      spin.ID.String(),
		Zone:        spin.Zone,
		TargetIndex: spin.TargetIndex,
		DurationMs:  spin.Duration.Milliseconds(),
	})
}

// NewSpinCompletedEvent creates a new spin completed event
func NewSpinCompletedEvent(spin domain.Spin) Event {
	return newEvent(SpinCompleted, SpinCompletedPayloadV1{
		SpinID:      spin.ID.String(),
		TargetIndex: spin.TargetIndex,
	})
}

// NewBombHitEvent creates a new bomb hit event
func NewBombHitEvent(spin domain.Spin) Event {
	return newEvent(BombHit, BombHitPayloadV1{
		SpinID: spin.ID.String(),
		Zone:   spin.Zone,
	})
}

// NewRewardCollectedEvent creates a new reward collected event
func NewRewardCollectedEvent(reward domain.RewardRecord, zone int, ledger domain.LedgerState) Event {
	return newEvent(RewardCollected, RewardCollectedPayloadV1{
		Reward:     reward,
		Zone:       zone,
		TotalCoins: ledger.TotalCoins,
		TotalGems:  ledger.TotalGems,
	})
}

// NewZoneChangedEvent creates a new zone changed event
func NewZoneChangedEvent(zone, previous, highest int, tier domain.WheelTier) Event {
	return newEvent(ZoneChanged, ZoneChangedPayloadV1{
		Zone:         zone,
		PreviousZone: previous,
		HighestZone:  highest,
		Tier:         tier,
	})
}

// NewSafeZoneEnteredEvent creates a new safe zone entered event
func NewSafeZoneEnteredEvent(zone int) Event {
	return newEvent(SafeZoneEntered, ZoneEnteredPayloadV1{Zone: zone})
}

// NewSuperZoneEnteredEvent creates a new super zone entered event
func NewSuperZoneEnteredEvent(zone int) Event {
	return newEvent(SuperZoneEntered, ZoneEnteredPayloadV1{Zone: zone})
}

// NewGameOverEvent creates a new game over event
func NewGameOverEvent(zone int, ledger domain.LedgerState) Event {
	return newEvent(GameOver, GameOverPayloadV1{
		Zone:       zone,
		TotalCoins: ledger.TotalCoins,
		TotalGems:  ledger.TotalGems,
	})
}

// NewGameRestartedEvent creates a new game restarted event
func NewGameRestartedEvent(reason string, zone int) Event {
	return newEvent(GameRestarted, GameRestartedPayloadV1{
		Reason: reason,
		Zone:   zone,
	})
}

// NewResultPopupClosedEvent creates a new result popup closed event
func NewResultPopupClosedEvent(autoSpin bool) Event {
	return newEvent(ResultPopupClosed, ResultPopupClosedPayloadV1{AutoSpin: autoSpin})
}

// NewStateChangedEvent creates a new state changed event
func NewStateChangedEvent(from, to domain.GameState) Event {
	return newEvent(StateChanged, StateChangedPayloadV1{
		From:      from,
		To:        to,
		Timestamp: time.Now().Unix(),
	})
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Subscription is the handle returned by Subscribe. Unsubscribe is idempotent.
type Subscription interface {
	Unsubscribe()
}

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler) Subscription
}
