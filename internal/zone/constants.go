package zone

// CacheSchemaVersion is the version stamped on cached zone configs.
// Increment it when ZoneWheelConfig changes shape to drop stale entries.
const CacheSchemaVersion = "1.0"

// Log messages
const (
	LogMsgZoneConfigResolved = "Resolved zone wheel config"
	LogMsgZoneCacheCleared   = "Zone config cache cleared"
)
