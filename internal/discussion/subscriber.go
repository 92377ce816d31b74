package discussion

import (
	"context"

	"github.com/osse101/InventoryHub_Go/internal/concurrency"
	"github.com/osse101/InventoryHub_Go/internal/event"
	"github.com/osse101/InventoryHub_Go/internal/logger"
)

// Subscriber bridges the event bus to the registry
type Subscriber struct {
	registry *Registry
	locks    *concurrency.LockManager
}

// NewSubscriber creates a new discussion subscriber
func NewSubscriber(registry *Registry, locks *concurrency.LockManager) *Subscriber {
	return &Subscriber{registry: registry, locks: locks}
}

// Subscribe registers handlers for post and inventory lifecycle events
func (s *Subscriber) Subscribe(bus event.Bus) {
	bus.Subscribe(event.PostCreated, s.handlePostCreated)
	bus.Subscribe(event.InventoryDeleted, s.handleInventoryDeleted)
}

func (s *Subscriber) handlePostCreated(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.PostCreatedPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgUnexpectedPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	n := s.registry.Broadcast(payload.Post.InventoryID, NewNewPostMessage(payload.Post))
	logger.FromContext(ctx).Debug(LogMsgPostBroadcast,
		"post_id", payload.Post.ID,
		"inventory_id", payload.Post.InventoryID,
		"recipients", n)
	return nil
}

func (s *Subscriber) handleInventoryDeleted(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.InventoryPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgUnexpectedPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	n := s.registry.CloseGroup(payload.InventoryID, CloseInventoryNotFound, ReasonInventoryDeleted)
	s.locks.ForgetInventory(payload.InventoryID)
	if n > 0 {
		logger.FromContext(ctx).Info(LogMsgGroupClosed, "inventory_id", payload.InventoryID, "connections", n)
	}
	return nil
}
