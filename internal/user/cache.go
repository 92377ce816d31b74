package user

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/InventoryHub_Go/internal/domain"
)

// CacheConfig sizes the profile cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// CacheStats reports cache effectiveness
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// cachedUserEntry wraps a user with version metadata for cache invalidation
type cachedUserEntry struct {
	Version  string
	User     domain.User
	CachedAt time.Time
}

// userCache is an in-memory LRU of user profiles keyed by ID, with time-based expiration.
// Users carry no version, so a stale entry lives at most TTL.
type userCache struct {
	lru    *expirable.LRU[string, *cachedUserEntry]
	hits   atomic.Int64
	misses atomic.Int64
}

func newUserCache(config CacheConfig) *userCache {
	if config.Size <= 0 {
		config.Size = DefaultCacheSize
	}
	if config.TTL <= 0 {
		config.TTL = DefaultCacheTTL
	}
	return &userCache{
		lru: expirable.NewLRU[string, *cachedUserEntry](config.Size, nil, config.TTL),
	}
}

// Get returns a copy of the cached user. Entries from an older schema are dropped.
func (c *userCache) Get(userID string) (*domain.User, bool) {
	entry, found := c.lru.Get(userID)
	if !found || entry.Version != CacheSchemaVersion {
		if found {
			c.lru.Remove(userID)
		}
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	u := entry.User
	return &u, true
}

// Set stores a copy of the user
func (c *userCache) Set(user *domain.User) {
	c.lru.Add(user.ID, &cachedUserEntry{
		Version:  CacheSchemaVersion,
		User:     *user,
		CachedAt: time.Now(),
	})
}

// Invalidate removes a user from the cache
func (c *userCache) Invalidate(userID string) {
	c.lru.Remove(userID)
}

// GetStats returns hit, miss and size counters
func (c *userCache) GetStats() CacheStats {
	return CacheStats{Hits: c.hits.Load(), Misses: c.misses.Load(), Size: c.lru.Len()}
}
