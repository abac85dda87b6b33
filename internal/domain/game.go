package domain

import (
	"time"

	"github.com/google/uuid"
)

// GameState represents the top-level state of a game session
type GameState string

const (
	GameStateIdle          GameState = "Idle"
	GameStateSpinning      GameState = "Spinning"
	GameStateShowingResult GameState = "ShowingResult"
	GameStateGameOver      GameState = "GameOver"
)

// Spin is a single in-flight wheel spin
type Spin struct {
	ID          uuid.UUID     `json:"id"`
	Zone        int           `json:"zone"`
	TargetIndex int           `json:"target_index"`
	Duration    time.Duration `json:"duration"`
	StartedAt   time.Time     `json:"started_at"`
}

// SpinOutcome is what a completed spin produced
type SpinOutcome struct {
	SpinID      uuid.UUID    `json:"spin_id"`
	TargetIndex int          `json:"target_index"`
	Reward      RewardRecord `json:"reward"`
	BombHit     bool         `json:"bomb_hit"`
	Zone        int          `json:"zone"`
	NextZone    int          `json:"next_zone"`
	State       GameState    `json:"state"`
}

// ZoneInfo describes the player's position in the zone ladder
type ZoneInfo struct {
	Current int       `json:"current"`
	Highest int       `json:"highest"`
	Max     int       `json:"max"`
	Tier    WheelTier `json:"tier"`
	Kind    ZoneKind  `json:"kind"`
}

// SessionSnapshot is a read-only view of a game session
type SessionSnapshot struct {
	SessionID uuid.UUID    `json:"session_id"`
	State     GameState    `json:"state"`
	Zone      ZoneInfo     `json:"zone"`
	Ledger    LedgerState  `json:"ledger"`
	Slices    []WheelSlice `json:"slices"`
	Spin      *Spin        `json:"spin,omitempty"`
}

// CashOutResult is what the player walked away with when leaving a run
type CashOutResult struct {
	Ledger  LedgerState     `json:"ledger"`
	Summary []RewardSummary `json:"summary"`
	Zone    int             `json:"zone"`
}
