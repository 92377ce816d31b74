package concurrency

import (
	"sync"
)

// Lock key prefixes
const (
	fieldsKeyPrefix = "fields:"
	postsKeyPrefix  = "posts:"
)

// FieldsKey serializes custom-field slot allocation within one inventory.
func FieldsKey(inventoryID string) string {
	return fieldsKeyPrefix + inventoryID
}

// PostsKey serializes persist-then-broadcast of discussion posts within one inventory.
func PostsKey(inventoryID string) string {
	return postsKeyPrefix + inventoryID
}

// LockManager handles named locks
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// WithLock runs fn while holding the lock for key
func (lm *LockManager) WithLock(key string, fn func() error) error {
	mu := lm.GetLock(key)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}

// ForgetInventory drops the locks of a deleted inventory.
// A goroutine still holding one keeps its own reference.
func (lm *LockManager) ForgetInventory(inventoryID string) {
	lm.locks.Delete(FieldsKey(inventoryID))
	lm.locks.Delete(PostsKey(inventoryID))
}
