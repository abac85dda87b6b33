package game

// Error formats
const (
	ErrFmtIllegalTransition = "%w: %s -> %s"
	ErrFmtNotInState        = "%w: %s requires %s, current state is %s"
	ErrFmtUnknownSpin       = "%w: %s"
)

// Scheduled task names
const (
	TaskAutoSpin     = "auto_spin"
	TaskSpinComplete = "spin_complete"
)

// Log messages
const (
	LogMsgStateChanged      = "Game state changed"
	LogMsgIllegalTransition = "Rejected illegal state transition"
	LogMsgPublishFailed     = "Failed to publish game event"

	LogMsgSessionStarted    = "Game session started"
	LogMsgSpinStarted       = "Spin started"
	LogMsgSpinResolveFailed = "Failed to resolve spin"
	LogMsgBombHit           = "Bomb hit, game over"
	LogMsgRewardCollected   = "Reward collected"
	LogMsgCollectFailed     = "Ledger rejected reward"
	LogMsgAutoSpinScheduled = "Auto spin scheduled"
	LogMsgAutoSpinFailed    = "Auto spin failed"
	LogMsgRevived           = "Player revived"
	LogMsgTrashed           = "Player gave up, rewards lost"
	LogMsgCashedOut         = "Player cashed out"
	LogMsgProgressReset     = "Progress reset"
	LogMsgSessionShutdown   = "Game session shut down"
)
