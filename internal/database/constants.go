package database

import "time"

// Pool sizing
const (
	// DefaultMinConnections is the number of connections the pool keeps open when idle
	DefaultMinConnections = 2

	// PingTimeout bounds the connectivity check in NewPool
	PingTimeout = 5 * time.Second
)

// Error messages
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
)

// Log messages
const (
	LogMsgConnectedToDatabase = "Connected to inventory database"
)
