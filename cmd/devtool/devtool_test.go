package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InventoryHub_Go/internal/config"
	"github.com/osse101/InventoryHub_Go/internal/discussion"
	"github.com/osse101/InventoryHub_Go/internal/domain"
)

type stubCommand struct{ name string }

func (c stubCommand) Name() string            { return c.name }
func (c stubCommand) Description() string     { return "stub" }
func (c stubCommand) Run(args []string) error { return nil }

func TestRegistry_ListSorted(t *testing.T) {
	r := NewRegistry()
	r.Register(stubCommand{"wait-for-db"})
	r.Register(stubCommand{"health-check"})
	r.Register(stubCommand{"migrate"})

	var names []string
	for _, c := range r.List() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"health-check", "migrate", "wait-for-db"}, names)

	_, ok := r.Get("missing")
	assert.False(t, ok)
}

// feedServer plays a fixed script of frames and then closes with code.
func feedServer(t *testing.T, code websocket.StatusCode, frames ...any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ws/api/posts", r.URL.Path)
		assert.Equal(t, "inv1", r.URL.Query().Get("inventoryId"))
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		for _, f := range frames {
			if err := wsjson.Write(r.Context(), conn, f); err != nil {
				return
			}
		}
		_ = conn.Close(code, "bye")
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestTailPosts(t *testing.T) {
	userID := "u1"
	post := domain.Post{
		ID:          "p1",
		InventoryID: "inv1",
		AuthorID:    userID,
		Author:      domain.UserSummary{ID: userID, Name: "Ann"},
		Content:     "hello",
		CreatedAt:   time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC),
	}
	frames := []any{
		discussion.ConnectedMessage{Type: discussion.MessageTypeConnected, InventoryID: "inv1", UserID: &userID, HasWriteAccess: true},
		discussion.NewPostMessage{Type: discussion.MessageTypeNewMessage, Data: post},
	}

	t.Run("normal close", func(t *testing.T) {
		srv := feedServer(t, websocket.StatusNormalClosure, frames...)
		var out bytes.Buffer
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		require.NoError(t, tailPosts(ctx, srv.URL, "inv1", "", &out))
		assert.Equal(t, "connected as u1 (write access: true)\n[12:30:00] Ann: hello\n", out.String())
	})

	t.Run("access denied close", func(t *testing.T) {
		srv := feedServer(t, discussion.CloseAccessDenied)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := tailPosts(ctx, srv.URL, "inv1", "", &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "4403")
	})
}

func TestServerConnString(t *testing.T) {
	cfg := &config.Config{DBUser: "dev", DBPassword: "p@ss", DBHost: "db", DBPort: "5432", DBName: "inventory"}
	assert.Equal(t, "postgres://dev:p%40ss@db:5432/postgres?sslmode=disable", serverConnString(cfg))
}
