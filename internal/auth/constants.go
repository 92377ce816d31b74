package auth

import "time"

// Token settings
const (
	DefaultTokenTTL = 24 * time.Hour
	TokenIssuer     = "inventory-hub"
	MinSecretLength = 32
)

// Revocation store settings
const (
	RevokedKeyPrefix          = "revoked:"
	RedisConnectTimeout       = 5 * time.Second
	MemoryRevocationCacheSize = 10000
)

// Log messages
const (
	LogMsgTokenRejected   = "Bearer token rejected"
	LogMsgTokenRevoked    = "Token revoked"
	LogMsgRevocationCheck = "Revocation check failed"
)
