package sse

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InventoryHub_Go/internal/access"
	"github.com/osse101/InventoryHub_Go/internal/auth"
	"github.com/osse101/InventoryHub_Go/internal/concurrency"
	"github.com/osse101/InventoryHub_Go/internal/database/memory"
	"github.com/osse101/InventoryHub_Go/internal/discussion"
	"github.com/osse101/InventoryHub_Go/internal/domain"
	"github.com/osse101/InventoryHub_Go/internal/event"
)

type testEnv struct {
	srv      *httptest.Server
	registry *discussion.Registry
	posts    discussion.Service
	bus      event.Bus
	tokens   *auth.Tokens
	owner    *domain.User
	private  *domain.Inventory
	public   *domain.Inventory
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	owner := &domain.User{Email: "owner@example.com", Name: "owner", PasswordHash: "x"}
	require.NoError(t, store.CreateUser(ctx, owner))
	private := &domain.Inventory{Name: "Private", OwnerID: owner.ID}
	require.NoError(t, store.CreateInventory(ctx, private))
	public := &domain.Inventory{Name: "Public", OwnerID: owner.ID, IsPublic: true}
	require.NoError(t, store.CreateInventory(ctx, public))

	tokens, err := auth.NewTokens(strings.Repeat("k", auth.MinSecretLength), time.Hour, auth.NewMemoryRevocationStore(time.Hour))
	require.NoError(t, err)

	evaluator := access.NewEvaluator(store, access.AuthenticatedMayWritePublic)
	registry := discussion.NewRegistry()
	locks := concurrency.NewLockManager()
	bus := event.NewMemoryBus()
	discussion.NewSubscriber(registry, locks).Subscribe(bus)

	r := chi.NewRouter()
	r.Get("/api/v1/inventories/{id}/posts/stream", Handler(discussion.NewConnector(tokens, evaluator), registry))
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &testEnv{
		srv:      srv,
		registry: registry,
		posts:    discussion.NewService(store, evaluator, locks, bus),
		bus:      bus,
		tokens:   tokens,
		owner:    owner,
		private:  private,
		public:   public,
	}
}

func (e *testEnv) get(ctx context.Context, t *testing.T, inventoryID, bearer string) *http.Response {
	t.Helper()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.srv.URL+"/api/v1/inventories/"+inventoryID+"/posts/stream", nil)
	require.NoError(t, err)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

type sseFrame struct {
	event string
	data  map[string]any
}

func readSSEFrame(t *testing.T, rd *bufio.Reader) sseFrame {
	t.Helper()
	var f sseFrame
	for {
		line, err := rd.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		switch {
		case line == "":
			if f.event != "" {
				return f
			}
		case strings.HasPrefix(line, "event: "):
			f.event = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &f.data))
		}
	}
}

func TestHandler_StreamsGreetingAndPosts(t *testing.T) {
	env := newTestEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	resp := env.get(ctx, t, env.private.ID, mustToken(t, env.tokens, env.owner))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	rd := bufio.NewReader(resp.Body)
	hello := readSSEFrame(t, rd)
	assert.Equal(t, discussion.MessageTypeConnected, hello.event)
	assert.Equal(t, env.owner.ID, hello.data["userId"])
	assert.Equal(t, true, hello.data["hasWriteAccess"])

	p, err := env.posts.CreatePost(context.Background(), env.private.ID, env.owner.ID, "streamed")
	require.NoError(t, err)

	msg := readSSEFrame(t, rd)
	assert.Equal(t, discussion.MessageTypeNewMessage, msg.event)
	data := msg.data["data"].(map[string]any)
	assert.Equal(t, p.ID, data["id"])

	cancel()
	require.Eventually(t, func() bool { return env.registry.GroupCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHandler_CloseFrameOnInventoryDeleted(t *testing.T) {
	env := newTestEnv(t)
	resp := env.get(context.Background(), t, env.public.ID, "")
	defer resp.Body.Close()

	rd := bufio.NewReader(resp.Body)
	readSSEFrame(t, rd)

	require.NoError(t, env.bus.Publish(context.Background(), event.NewInventoryEvent(event.InventoryDeleted, env.public.ID, env.owner.ID)))

	closing := readSSEFrame(t, rd)
	assert.Equal(t, EventTypeClose, closing.event)
	assert.Equal(t, float64(discussion.CloseInventoryNotFound), closing.data["code"])
}

func TestHandler_Rejections(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name        string
		inventoryID string
		want        int
	}{
		{"private anonymous", env.private.ID, http.StatusForbidden},
		{"unknown inventory", "00000000-0000-0000-0000-000000000000", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := env.get(context.Background(), t, tt.inventoryID, "")
			defer resp.Body.Close()
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
	assert.Equal(t, 0, env.registry.GroupCount())
}

func TestWriteMessage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMessage(&buf, "NEW_MESSAGE", map[string]string{"content": "a\nb"}))
	assert.Equal(t, "event: NEW_MESSAGE\ndata: {\"content\":\"a\\nb\"}\n\n", buf.String())
}

func TestStatusForCloseCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusForCloseCode(discussion.CloseMissingInventoryID))
	assert.Equal(t, http.StatusForbidden, StatusForCloseCode(discussion.CloseAccessDenied))
	assert.Equal(t, http.StatusNotFound, StatusForCloseCode(discussion.CloseInventoryNotFound))
	assert.Equal(t, http.StatusInternalServerError, StatusForCloseCode(discussion.CloseInternalError))
}

func mustToken(t *testing.T, tokens *auth.Tokens, u *domain.User) string {
	t.Helper()
	tok, _, err := tokens.Issue(u)
	require.NoError(t, err)
	return tok
}
