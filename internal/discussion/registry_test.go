package discussion

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InventoryHub_Go/internal/access"
	"github.com/osse101/InventoryHub_Go/internal/domain"
	"github.com/osse101/InventoryHub_Go/internal/metrics"
)

func newTestClient(inventoryID string, queueSize int) *Client {
	return NewClient(Session{InventoryID: inventoryID}, queueSize)
}

func post(id, inventoryID string) NewPostMessage {
	return NewNewPostMessage(domain.Post{ID: id, InventoryID: inventoryID})
}

func TestRegistry_BroadcastOnlyReachesGroup(t *testing.T) {
	r := NewRegistry()
	a1, a2 := newTestClient("a", 4), newTestClient("a", 4)
	b := newTestClient("b", 4)
	r.Add(a1)
	r.Add(a2)
	r.Add(b)

	assert.Equal(t, 2, r.Broadcast("a", post("p1", "a")))
	assert.Len(t, drain(a1), 1)
	assert.Len(t, drain(a2), 1)
	assert.Empty(t, drain(b))

	assert.Equal(t, 0, r.Broadcast("missing", post("p2", "missing")))
}

func TestRegistry_PreservesOrderPerConnection(t *testing.T) {
	r := NewRegistry()
	c := newTestClient("a", 16)
	r.Add(c)

	for _, id := range []string{"p1", "p2", "p3", "p4"} {
		r.Broadcast("a", post(id, "a"))
	}

	var got []string
	for _, m := range drain(c) {
		got = append(got, m.(NewPostMessage).Data.ID)
	}
	assert.Equal(t, []string{"p1", "p2", "p3", "p4"}, got)
}

func TestRegistry_DropsSlowConsumer(t *testing.T) {
	r := NewRegistry()
	slow := newTestClient("a", 1)
	fast := newTestClient("a", 8)
	r.Add(slow)
	r.Add(fast)

	r.Broadcast("a", post("p1", "a"))
	delivered := r.Broadcast("a", post("p2", "a"))

	assert.Equal(t, 1, delivered)
	assert.Equal(t, 1, r.ConnectionCount("a"))
	select {
	case <-slow.Done():
	default:
		t.Fatal("slow consumer should be closed")
	}
	code, reason := slow.CloseStatus()
	assert.Equal(t, CloseTryAgainLater, code)
	assert.Equal(t, ReasonSlowConsumer, reason)

	// The message it already held is still readable for a final flush.
	assert.Len(t, drain(slow), 1)
	assert.Len(t, drain(fast), 2)
}

func TestRegistry_SkipsClosedClientsSilently(t *testing.T) {
	r := NewRegistry()
	leaving := newTestClient("a", 1)
	open := newTestClient("a", 1)
	r.Add(leaving)
	r.Add(open)
	leaving.Close(CloseNormal, "bye")

	dropped := testutil.ToFloat64(metrics.DiscussionDroppedMessages)
	assert.Equal(t, 1, r.Broadcast("a", post("p1", "a")))
	assert.Equal(t, dropped, testutil.ToFloat64(metrics.DiscussionDroppedMessages))

	code, reason := leaving.CloseStatus()
	assert.Equal(t, CloseNormal, code, "a closing client keeps its own close status")
	assert.Equal(t, "bye", reason)
	assert.Empty(t, drain(leaving))
	assert.Len(t, drain(open), 1)
	assert.Equal(t, 2, r.ConnectionCount("a"), "the transport removes it on exit")
}

func TestClient_SendErrors(t *testing.T) {
	c := newTestClient("a", 1)
	require.NoError(t, c.Send(post("p1", "a")))
	assert.ErrorIs(t, c.Send(post("p2", "a")), ErrQueueFull)
	assert.False(t, c.HasWriteAccess())

	writer := NewClient(Session{InventoryID: "a", Access: access.Result{Level: domain.LevelWrite}}, 1)
	assert.True(t, writer.HasWriteAccess())

	c.Close(CloseNormal, "")
	assert.ErrorIs(t, c.Send(post("p3", "a")), ErrClientClosed)
}

func TestRegistry_RemoveDropsEmptyGroup(t *testing.T) {
	r := NewRegistry()
	c := newTestClient("a", 1)
	r.Add(c)
	require.Equal(t, 1, r.GroupCount())

	r.Remove(c)
	r.Remove(c)
	assert.Equal(t, 0, r.GroupCount())
	assert.Equal(t, 0, r.ConnectionCount("a"))
}

func TestRegistry_CloseGroup(t *testing.T) {
	r := NewRegistry()
	a1, a2 := newTestClient("a", 1), newTestClient("a", 1)
	b := newTestClient("b", 1)
	r.Add(a1)
	r.Add(a2)
	r.Add(b)

	assert.Equal(t, 2, r.CloseGroup("a", CloseInventoryNotFound, ReasonInventoryDeleted))
	for _, c := range []*Client{a1, a2} {
		code, _ := c.CloseStatus()
		assert.Equal(t, CloseInventoryNotFound, code)
	}
	assert.Equal(t, 1, r.GroupCount())
	assert.NoError(t, b.Send(post("p", "b")))
}

func TestRegistry_CloseAll(t *testing.T) {
	r := NewRegistry()
	clients := []*Client{newTestClient("a", 1), newTestClient("b", 1)}
	for _, c := range clients {
		r.Add(c)
	}

	r.CloseAll(CloseGoingAway, ReasonShutdown)
	for _, c := range clients {
		code, reason := c.CloseStatus()
		assert.Equal(t, CloseGoingAway, code)
		assert.Equal(t, ReasonShutdown, reason)
	}
}

func TestClient_CloseIsIdempotent(t *testing.T) {
	c := newTestClient("a", 1)
	c.Close(CloseNormal, "first")
	c.Close(CloseInternalError, "second")

	code, reason := c.CloseStatus()
	assert.Equal(t, CloseNormal, code)
	assert.Equal(t, "first", reason)
	assert.ErrorIs(t, c.Send(post("p", "a")), ErrClientClosed)
}
