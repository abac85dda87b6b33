package progression

// Log messages
const (
	LogMsgProgressLoaded      = "Zone progress loaded"
	LogMsgZoneAdvanced        = "Advanced to next zone"
	LogMsgMaxZoneReached      = "Max zone reached, staying on current zone"
	LogMsgZoneReset           = "Zone reset"
	LogMsgProgressReset       = "Zone progress reset"
	LogMsgSlicesRegenerated   = "Wheel slices regenerated"
	LogMsgProgressReadFailed  = "Failed to read zone progress, using defaults"
	LogMsgProgressWriteFailed = "Failed to persist zone progress"
	LogMsgPublishFailed       = "Failed to publish zone event"
)
