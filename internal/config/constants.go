package config

import "time"

// Storage drivers
const (
	DBDriverMemory   = "memory"
	DBDriverPostgres = "postgres"
)

// Defaults
const (
	DefaultPort              = 8080
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultUserCacheSize     = 1000
	DefaultUserCacheTTL      = 5 * time.Minute
	DefaultEventMaxRetries   = 5
	DefaultEventRetryDelay   = 2 * time.Second
	DefaultDeadLetterPath    = "logs/deadletter.jsonl"
	DefaultShutdownTimeout   = 15 * time.Second
)
