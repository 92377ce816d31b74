package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/InventoryHub_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from map metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Event types
const (
	// PostCreated is published after a discussion post is persisted. Live channels fan it out.
	PostCreated Type = "discussion.post_created"
	// InventoryDeleted is published after an inventory and its children are removed.
	InventoryDeleted Type = "inventory.deleted"

	InventoryCreated Type = "inventory.created"
	ItemCreated      Type = "item.created"
	ItemLiked        Type = "item.liked"
	ItemUnliked      Type = "item.unliked"
	AccessGranted    Type = "access.granted"
	AccessRevoked    Type = "access.revoked"
)

// PostCreatedPayloadV1 carries the persisted post
type PostCreatedPayloadV1 struct {
	Post domain.Post `json:"post"`
}

// InventoryPayloadV1 identifies an inventory lifecycle change
type InventoryPayloadV1 struct {
	InventoryID string `json:"inventory_id"`
	OwnerID     string `json:"owner_id"`
	Timestamp   int64  `json:"timestamp"`
}

// ItemPayloadV1 identifies an item-level action by a user
type ItemPayloadV1 struct {
	InventoryID string `json:"inventory_id"`
	ItemID      string `json:"item_id"`
	UserID      string `json:"user_id"`
	Timestamp   int64  `json:"timestamp"`
}

// AccessPayloadV1 describes a grant change
type AccessPayloadV1 struct {
	InventoryID string `json:"inventory_id"`
	UserID      string `json:"user_id"`
	Level       string `json:"level,omitempty"`
	Timestamp   int64  `json:"timestamp"`
}

// NewPostCreatedEvent creates a post created event
func NewPostCreatedEvent(post domain.Post) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PostCreated,
		Payload: PostCreatedPayloadV1{Post: post},
		Metadata: map[string]interface{}{
			"inventory_id": post.InventoryID,
		},
	}
}

// NewInventoryEvent creates an inventory lifecycle event
func NewInventoryEvent(eventType Type, inventoryID, ownerID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: InventoryPayloadV1{
			InventoryID: inventoryID,
			OwnerID:     ownerID,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// NewItemEvent creates an item event
func NewItemEvent(eventType Type, inventoryID, itemID, userID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: ItemPayloadV1{
			InventoryID: inventoryID,
			ItemID:      itemID,
			UserID:      userID,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// NewAccessEvent creates a grant change event. Level is empty for revocations.
func NewAccessEvent(eventType Type, inventoryID, userID, level string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: AccessPayloadV1{
			InventoryID: inventoryID,
			UserID:      userID,
			Level:       level,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously in subscription order.
// Callers that publish under a lock get delivery in lock order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
