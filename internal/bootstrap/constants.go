package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept beside the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting wheel service"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Storage
// =============================================================================

const (
	LogMsgStorageInitialized = "Progress store initialized"
	ErrMsgFailedConnectDB    = "failed to connect to database"
	ErrMsgFailedMigrate      = "failed to apply migrations"
	ErrMsgUnknownBackend     = "unknown store backend"
)

// =============================================================================
// Content Loading
// =============================================================================

const (
	LogMsgGameConfigLoaded = "Game config loaded"
	LogMsgCatalogLoaded    = "Item catalog loaded"

	ErrMsgFailedLoadGameConfig = "failed to load game config"
	ErrMsgFailedLoadCatalog    = "failed to load item catalog"
)

// =============================================================================
// Game Wiring
// =============================================================================

const (
	// DefaultWorkerCount runs timed spin callbacks and auto spins
	DefaultWorkerCount = 2

	// DefaultWorkerQueueSize bounds queued callbacks; a session has at most two in flight
	DefaultWorkerQueueSize = 16

	LogMsgGameInitialized = "Game session initialized"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgSSESubscriberRegistered    = "SSE subscriber registered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	// DefaultShutdownTimeout bounds the whole graceful shutdown
	DefaultShutdownTimeout = 10 * time.Second

	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgSchedulerShutdown    = "Scheduler shutdown failed"
)
