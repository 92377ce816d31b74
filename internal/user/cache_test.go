package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/InventoryHub_Go/internal/domain"
)

func TestCacheInvalidation(t *testing.T) {
	cache := newUserCache(CacheConfig{Size: 10, TTL: time.Minute})
	user := &domain.User{ID: "user-1", Name: "testuser"}

	cache.Set(user)
	retrieved, found := cache.Get("user-1")
	assert.True(t, found)
	assert.Equal(t, user, retrieved)

	cache.Invalidate("user-1")
	retrieved, found = cache.Get("user-1")
	assert.False(t, found)
	assert.Nil(t, retrieved)
}

func TestCacheReturnsCopies(t *testing.T) {
	cache := newUserCache(CacheConfig{Size: 10, TTL: time.Minute})
	cache.Set(&domain.User{ID: "user-1", Name: "before"})

	got, _ := cache.Get("user-1")
	got.Name = "mutated"

	again, _ := cache.Get("user-1")
	assert.Equal(t, "before", again.Name)
}

func TestCacheStats(t *testing.T) {
	cache := newUserCache(CacheConfig{})

	stats := cache.GetStats()
	assert.Equal(t, int64(0), stats.Hits)
	assert.Equal(t, 0, stats.Size)

	cache.Get("missing")
	cache.Set(&domain.User{ID: "user-1"})
	cache.Get("user-1")

	stats = cache.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.Size)
}

func TestCacheSchemaMismatchIsDropped(t *testing.T) {
	cache := newUserCache(CacheConfig{Size: 10, TTL: time.Minute})
	cache.lru.Add("user-1", &cachedUserEntry{Version: "0.9", User: domain.User{ID: "user-1"}})

	_, found := cache.Get("user-1")
	assert.False(t, found)
	assert.Equal(t, 0, cache.GetStats().Size)
}
