package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InventoryHub_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	post := domain.Post{ID: "p1", InventoryID: "inv1", Content: "hello"}

	var got *domain.Post
	bus.Subscribe(PostCreated, func(ctx context.Context, evt Event) error {
		payload, err := DecodePayload[PostCreatedPayloadV1](evt.Payload)
		require.NoError(t, err)
		got = &payload.Post
		return nil
	})

	require.NoError(t, bus.Publish(context.Background(), NewPostCreatedEvent(post)))
	require.NotNil(t, got)
	assert.Equal(t, "hello", got.Content)
}

func TestMemoryBus_HandlersRunInSubscriptionOrder(t *testing.T) {
	bus := NewMemoryBus()
	var order []int
	for i := 0; i < 3; i++ {
		i := i
		bus.Subscribe(ItemLiked, func(ctx context.Context, evt Event) error {
			order = append(order, i)
			return nil
		})
	}

	require.NoError(t, bus.Publish(context.Background(), NewItemEvent(ItemLiked, "inv", "item", "user")))
	assert.Equal(t, []int{0, 1, 2}, order)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), NewInventoryEvent(InventoryDeleted, "inv", "owner")))
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	calls := 0
	bus.Subscribe(AccessGranted, func(ctx context.Context, evt Event) error {
		calls++
		return errors.New("handler error")
	})
	bus.Subscribe(AccessGranted, func(ctx context.Context, evt Event) error {
		calls++
		return nil
	})

	err := bus.Publish(context.Background(), NewAccessEvent(AccessGranted, "inv", "user", "READ"))
	assert.Error(t, err)
	assert.Equal(t, 2, calls, "a failing handler must not stop later handlers")
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	raw := map[string]interface{}{"inventory_id": "inv", "owner_id": "owner", "timestamp": 5}
	p, err := DecodePayload[InventoryPayloadV1](raw)
	require.NoError(t, err)
	assert.Equal(t, "inv", p.InventoryID)
	assert.Equal(t, int64(5), p.Timestamp)
}

func TestDecodePayload_Sources(t *testing.T) {
	want := InventoryPayloadV1{InventoryID: "inv", OwnerID: "owner", Timestamp: 7}
	raw := []byte(`{"inventory_id":"inv","owner_id":"owner","timestamp":7}`)

	tests := []struct {
		name  string
		input any
	}{
		{"value", want},
		{"pointer", &want},
		{"bytes", raw},
		{"raw message", json.RawMessage(raw)},
		{"map", map[string]any{"inventory_id": "inv", "owner_id": "owner", "timestamp": 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodePayload[InventoryPayloadV1](tt.input)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestDecodePayload_Rejects(t *testing.T) {
	_, err := DecodePayload[InventoryPayloadV1](nil)
	assert.ErrorIs(t, err, ErrEmptyPayload)

	_, err = DecodePayload[InventoryPayloadV1]((*InventoryPayloadV1)(nil))
	assert.ErrorIs(t, err, ErrEmptyPayload)

	_, err = DecodePayload[InventoryPayloadV1]([]byte{})
	assert.ErrorIs(t, err, ErrEmptyPayload)

	_, err = DecodePayload[InventoryPayloadV1]([]byte(`{"timestamp":"soon"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode event.InventoryPayloadV1 payload")
}

func TestDecodePayload_DeadLetterRoundTrip(t *testing.T) {
	evt := NewPostCreatedEvent(domain.Post{ID: "p1", InventoryID: "inv1", Content: "hi"})
	data, err := json.Marshal(DeadLetterEntry{SchemaVersion: DeadLetterSchemaVersion, Event: evt, Attempts: 3})
	require.NoError(t, err)

	var entry DeadLetterEntry
	require.NoError(t, json.Unmarshal(data, &entry))

	payload, err := DecodePayload[PostCreatedPayloadV1](entry.Event.Payload)
	require.NoError(t, err)
	assert.Equal(t, "p1", payload.Post.ID)
	assert.Equal(t, "hi", payload.Post.Content)
}

func TestGetMetadataValue(t *testing.T) {
	evt := NewPostCreatedEvent(domain.Post{InventoryID: "inv1"})
	assert.Equal(t, "inv1", evt.GetMetadataValue("inventory_id"))
	assert.Nil(t, Event{}.GetMetadataValue("inventory_id"))
}
