package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
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

	// LogFileRetentionCount is the number of older log files kept next to the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting InventoryHub"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Event System
// =============================================================================

const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
	LogMsgMetricsCollectorRegistered     = "Metrics collector registered"
	LogMsgDiscussionSubscriberRegistered = "Discussion subscriber registered"
	ErrMsgFailedRegisterMetrics          = "failed to register metrics collector"
)

// =============================================================================
// Storage and Auth
// =============================================================================

const (
	LogMsgUsingMemoryStore       = "Using in-memory store; data is lost on restart"
	LogMsgUsingPostgresStore     = "Using PostgreSQL store"
	LogMsgMigrationsApplied      = "Database migrations applied"
	LogMsgUsingRedisRevocations  = "Token revocations shared through Redis"
	LogMsgUsingMemoryRevocations = "Token revocations kept in memory"
	ErrMsgFailedConnectDatabase  = "failed to connect to database"
	ErrMsgFailedMigrate          = "failed to apply migrations"
	ErrMsgFailedConnectRedis     = "failed to connect to redis"
	ErrMsgFailedCreateTokens     = "failed to create token manager"
)

// =============================================================================
// Services
// =============================================================================

const (
	LogMsgServicesInitialized      = "Services initialized"
	ErrMsgInvalidPublicWritePolicy = "invalid PUBLIC_WRITE_POLICY"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgClosingLiveConnections     = "Closing live discussion connections..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgRevocationStoreCloseFailed = "Revocation store close failed"
)
