package reward

// Log messages
const (
	LogMsgRewardRejected  = "Reward rejected by ledger"
	LogMsgRewardCollected = "Reward collected"
	LogMsgLedgerCleared   = "Ledger cleared"
)

// Rejection reasons
const (
	ReasonBomb              = "bomb outcomes are not collectable"
	ReasonMissingID         = "reward id is required"
	ReasonMissingName       = "reward name is required"
	ReasonNegativeAmount    = "reward amount must not be negative"
	ReasonInvalidMultiplier = "multiplier value must be positive"
	ReasonUnknownKind       = "unknown reward kind"
)

// Clear reasons logged with LogMsgLedgerCleared
const (
	ClearReasonLoseAll = "lose_all"
	ClearReasonReset   = "reset"
)
