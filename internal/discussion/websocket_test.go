package discussion

import (
	"context"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InventoryHub_Go/internal/event"
	"github.com/osse101/InventoryHub_Go/internal/testing/leaktest"
)

type frame struct {
	Type           string         `json:"type"`
	InventoryID    string         `json:"inventoryId"`
	UserID         *string        `json:"userId"`
	HasWriteAccess bool           `json:"hasWriteAccess"`
	Data           map[string]any `json:"data"`
}

func dial(t *testing.T, srv *httptest.Server, inventoryID, token string) *websocket.Conn {
	t.Helper()
	q := url.Values{}
	if inventoryID != "" {
		q.Set("inventoryId", inventoryID)
	}
	if token != "" {
		q.Set("token", token)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, srv.URL+"/ws/api/posts?"+q.Encode(), nil)
	require.NoError(t, err)
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) (frame, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var f frame
	err := wsjson.Read(ctx, conn, &f)
	return f, err
}

func TestWebSocket_ReceivesGreetingAndPosts(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	f := newFixture(t)
	srv := httptest.NewServer(WebSocketHandler(f.connector, f.registry, nil))

	conn := dial(t, srv, f.private.ID, f.token(t, f.reader))

	hello, err := readFrame(t, conn)
	require.NoError(t, err)
	assert.Equal(t, MessageTypeConnected, hello.Type)
	assert.Equal(t, f.private.ID, hello.InventoryID)
	require.NotNil(t, hello.UserID)
	assert.Equal(t, f.reader.ID, *hello.UserID)
	assert.False(t, hello.HasWriteAccess)

	p, err := f.svc.CreatePost(context.Background(), f.private.ID, f.owner.ID, "hello there")
	require.NoError(t, err)

	msg, err := readFrame(t, conn)
	require.NoError(t, err)
	assert.Equal(t, MessageTypeNewMessage, msg.Type)
	assert.Equal(t, p.ID, msg.Data["id"])
	assert.Equal(t, "hello there", msg.Data["content"])

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))
	require.Eventually(t, func() bool { return f.registry.GroupCount() == 0 }, 2*time.Second, 10*time.Millisecond)

	srv.Close()
	checker.Check(2)
}

func TestWebSocket_RejectionCloseCodes(t *testing.T) {
	f := newFixture(t)
	srv := httptest.NewServer(WebSocketHandler(f.connector, f.registry, nil))
	defer srv.Close()

	tests := []struct {
		name        string
		inventoryID string
		token       string
		want        websocket.StatusCode
	}{
		{"missing inventory id", "", "", CloseMissingInventoryID},
		{"unknown inventory", "00000000-0000-0000-0000-000000000000", "", CloseInventoryNotFound},
		{"private anonymous", f.private.ID, "", CloseAccessDenied},
		{"private stranger", f.private.ID, f.token(t, f.other), CloseAccessDenied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := dial(t, srv, tt.inventoryID, tt.token)
			defer conn.CloseNow()

			_, err := readFrame(t, conn)
			require.Error(t, err)
			assert.Equal(t, tt.want, websocket.CloseStatus(err))
		})
	}
	assert.Equal(t, 0, f.registry.GroupCount())
}

func TestWebSocket_InventoryDeletedCloses(t *testing.T) {
	f := newFixture(t)
	srv := httptest.NewServer(WebSocketHandler(f.connector, f.registry, nil))
	defer srv.Close()

	conn := dial(t, srv, f.public.ID, "")
	defer conn.CloseNow()
	_, err := readFrame(t, conn)
	require.NoError(t, err)

	require.NoError(t, f.bus.Publish(context.Background(), event.NewInventoryEvent(event.InventoryDeleted, f.public.ID, f.owner.ID)))

	_, err = readFrame(t, conn)
	require.Error(t, err)
	assert.Equal(t, websocket.StatusCode(CloseInventoryNotFound), websocket.CloseStatus(err))
}
