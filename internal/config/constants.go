package config

const (
	// DefaultServiceName names the service in logs when SERVICE_NAME is unset
	DefaultServiceName = "wheel-of-fortune"

	// Configuration file paths
	ConfigPathGame           = "configs/game.yaml"
	ConfigPathItems          = "configs/items/wheel_items.json"
	ConfigPathItemsSchema    = "configs/schemas/wheel_items.schema.json"
	DefaultPrefsPath         = "data/player_prefs.json"
	DefaultPlayerID          = "local"
	ExpectedEnvSchemaVersion = "1.0"
)

// Progress store backends
const (
	StoreBackendMemory   = "memory"
	StoreBackendFile     = "file"
	StoreBackendPostgres = "postgres"
)

// How a started spin gets resolved
const (
	SpinModeTimed   = "timed"   // the server completes it after the spin duration
	SpinModeManual  = "manual"  // the client reports completion
	SpinModeInstant = "instant" // resolved inside the spin request
)

// Game tuning defaults
const (
	DefaultStartingZone   = 1
	DefaultMaxZone        = 100
	DefaultSafeInterval   = 5
	DefaultSuperInterval  = 30
	DefaultSliceCount     = 8
	DefaultBombCount      = 1
	DefaultCashBase       = 1.0
	DefaultCashStep       = 0.1
	DefaultGoldBase       = 1.0
	DefaultGoldStep       = 0.05
	DefaultZoneCacheSize  = 128
	DefaultReviveAutoSpin = true
)

// Error message constants
const (
	ErrMsgReadGameConfig    = "failed to read game config"
	ErrMsgParseGameConfig   = "failed to parse game config"
	ErrMsgInvalidGameConfig = "invalid game config"
)
