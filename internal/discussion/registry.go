package discussion

import (
	"context"
	"errors"
	"sync"

	"github.com/osse101/InventoryHub_Go/internal/logger"
	"github.com/osse101/InventoryHub_Go/internal/metrics"
)

// Registry groups live connections by inventory.
type Registry struct {
	mu     sync.Mutex
	groups map[string]map[string]Conn
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{groups: make(map[string]map[string]Conn)}
}

// Add places the connection in its inventory's group
func (r *Registry) Add(c Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	group, ok := r.groups[c.InventoryID()]
	if !ok {
		group = make(map[string]Conn)
		r.groups[c.InventoryID()] = group
	}
	group[c.ID()] = c
}

// Remove takes the connection out of its group. Empty groups are dropped.
func (r *Registry) Remove(c Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removeLocked(c)
}

func (r *Registry) removeLocked(c Conn) {
	group, ok := r.groups[c.InventoryID()]
	if !ok {
		return
	}
	delete(group, c.ID())
	if len(group) == 0 {
		delete(r.groups, c.InventoryID())
	}
}

// Broadcast enqueues msg on every connection of the inventory and returns how many accepted it.
// Connections already closing are skipped; their transport removes them on exit. A connection
// whose queue is full is closed with CloseTryAgainLater and removed, so its feed never has a gap.
func (r *Registry) Broadcast(inventoryID string, msg Message) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	delivered := 0
	for _, c := range r.groups[inventoryID] {
		err := c.Send(msg)
		if err == nil {
			delivered++
			continue
		}
		if errors.Is(err, ErrClientClosed) {
			continue
		}
		metrics.DiscussionDroppedMessages.Inc()
		logger.FromContext(context.Background()).Warn(LogMsgSlowConsumer, "client_id", c.ID(), "inventory_id", inventoryID)
		c.Close(CloseTryAgainLater, ReasonSlowConsumer)
		r.removeLocked(c)
	}
	if delivered > 0 {
		metrics.DiscussionBroadcasts.Inc()
	}
	return delivered
}

// CloseGroup closes and forgets every connection of the inventory
func (r *Registry) CloseGroup(inventoryID string, code int, reason string) int {
	r.mu.Lock()
	group := r.groups[inventoryID]
	delete(r.groups, inventoryID)
	r.mu.Unlock()

	for _, c := range group {
		c.Close(code, reason)
	}
	return len(group)
}

// CloseAll closes every connection, used on shutdown
func (r *Registry) CloseAll(code int, reason string) {
	r.mu.Lock()
	groups := r.groups
	r.groups = make(map[string]map[string]Conn)
	r.mu.Unlock()

	for _, group := range groups {
		for _, c := range group {
			c.Close(code, reason)
		}
	}
}

// ConnectionCount returns the number of connections open on the inventory
func (r *Registry) ConnectionCount(inventoryID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.groups[inventoryID])
}

// GroupCount returns the number of inventories with at least one connection
func (r *Registry) GroupCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.groups)
}
