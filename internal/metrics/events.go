package metrics

import (
	"context"

	"github.com/osse101/InventoryHub_Go/internal/event"
	"github.com/osse101/InventoryHub_Go/internal/logger"
)

// EventMetricsCollector subscribes to domain events and records business metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every event type the collector counts
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.InventoryCreated,
		event.InventoryDeleted,
		event.ItemCreated,
		event.ItemLiked,
		event.ItemUnliked,
		event.PostCreated,
		event.AccessGranted,
		event.AccessRevoked,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.InventoryCreated:
		InventoriesCreated.Inc()
	case event.ItemCreated:
		ItemsCreated.Inc()
	case event.ItemLiked:
		Likes.WithLabelValues(LikeActionLike).Inc()
	case event.ItemUnliked:
		Likes.WithLabelValues(LikeActionUnlike).Inc()
	case event.PostCreated:
		if _, err := event.DecodePayload[event.PostCreatedPayloadV1](evt.Payload); err != nil {
			logger.FromContext(ctx).Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		PostsCreated.Inc()
	}
	return nil
}
