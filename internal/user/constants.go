package user

import "time"

// ============================================================================
// Cache Configuration
// ============================================================================

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// DefaultCacheSize is the default maximum number of cache entries
const DefaultCacheSize = 1000

// DefaultCacheTTL is the default time-to-live for cache entries
const DefaultCacheTTL = 5 * time.Minute

// ============================================================================
// Search
// ============================================================================

// DefaultSearchLimit caps user search results
const DefaultSearchLimit = 10

// MinSearchQueryLength is the shortest query that hits the store
const MinSearchQueryLength = 2

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgUserRegistered   = "User registered"
	LogMsgLoginSucceeded   = "User logged in"
	LogMsgLoginFailed      = "Login failed"
	LogMsgLoggedOut        = "User logged out"
	LogErrFailedToRegister = "Failed to register user"
	LogErrFailedToHash     = "Failed to hash password"
	LogErrFailedToIssue    = "Failed to issue token"
)
