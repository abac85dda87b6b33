package wheel

// Log messages
const (
	LogMsgWheelGenerated  = "Wheel generated"
	LogMsgNoEligibleItems = "Zone has no eligible items, filling reward slots with placeholders"
	LogMsgZeroTotalWeight = "Eligible items carry no spawn weight, drawing uniformly"
)

// Error format strings
const (
	ErrFmtTargetOutOfRange = "%w: target index %d outside [0, %d)"
	ErrFmtEmptyWheel       = "%w: wheel has no slices"
)
