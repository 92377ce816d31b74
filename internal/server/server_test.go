package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InventoryHub_Go/internal/access"
	"github.com/osse101/InventoryHub_Go/internal/auth"
	"github.com/osse101/InventoryHub_Go/internal/concurrency"
	"github.com/osse101/InventoryHub_Go/internal/database/memory"
	"github.com/osse101/InventoryHub_Go/internal/discussion"
	"github.com/osse101/InventoryHub_Go/internal/event"
	"github.com/osse101/InventoryHub_Go/internal/field"
	"github.com/osse101/InventoryHub_Go/internal/handler"
	"github.com/osse101/InventoryHub_Go/internal/inventory"
	"github.com/osse101/InventoryHub_Go/internal/item"
	"github.com/osse101/InventoryHub_Go/internal/like"
	"github.com/osse101/InventoryHub_Go/internal/user"
	"github.com/osse101/InventoryHub_Go/internal/versioning"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	handler.InitValidator()
	store := memory.NewStore()

	tokens, err := auth.NewTokens(strings.Repeat("k", auth.MinSecretLength), time.Hour, auth.NewMemoryRevocationStore(time.Hour))
	require.NoError(t, err)

	bus := event.NewMemoryBus()
	pub, err := event.NewResilientPublisher(bus, 1, time.Millisecond, filepath.Join(t.TempDir(), "deadletter.jsonl"))
	require.NoError(t, err)

	evaluator := access.NewEvaluator(store, access.AuthenticatedMayWritePublic)
	versions := versioning.NewController(store)
	locks := concurrency.NewLockManager()
	registry := discussion.NewRegistry()
	discussion.NewSubscriber(registry, locks).Subscribe(bus)

	router := NewRouter(Options{}, Dependencies{
		Users:       user.NewService(store, tokens, user.CacheConfig{Size: 10, TTL: time.Minute}),
		Inventories: inventory.NewService(store, evaluator, versions, pub),
		Items:       item.NewService(store, evaluator, versions, pub),
		Fields:      field.NewService(store, evaluator, locks),
		Likes:       like.NewService(store, evaluator, pub),
		Posts:       discussion.NewService(store, evaluator, locks, bus),
		Tokens:      tokens,
		Connector:   discussion.NewConnector(tokens, evaluator),
		Registry:    registry,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(func() {
		registry.CloseAll(discussion.CloseGoingAway, discussion.ReasonShutdown)
		srv.Close()
		_ = pub.Shutdown(context.Background())
	})
	return srv
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func call(t *testing.T, srv *httptest.Server, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, srv.URL+path, &buf)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

// signup registers and logs in a user, returning its token and ID
func signup(t *testing.T, srv *httptest.Server, email string) (string, string) {
	t.Helper()
	code, env := call(t, srv, http.MethodPost, "/api/v1/auth/register", "", handler.RegisterRequest{Email: email, Name: "User", Password: "password1"})
	require.Equal(t, http.StatusCreated, code, env.Message)

	code, env = call(t, srv, http.MethodPost, "/api/v1/auth/login", "", handler.LoginRequest{Email: email, Password: "password1"})
	require.Equal(t, http.StatusOK, code, env.Message)
	var session user.Session
	require.NoError(t, json.Unmarshal(env.Data, &session))
	return session.Token, session.User.ID
}

func createInventory(t *testing.T, srv *httptest.Server, token string) string {
	t.Helper()
	code, env := call(t, srv, http.MethodPost, "/api/v1/inventories", token, handler.CreateInventoryRequest{Name: "Shelf"})
	require.Equal(t, http.StatusCreated, code, env.Message)
	var inv struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &inv))
	return inv.ID
}

func TestRouter_AuthFlow(t *testing.T) {
	srv := newTestServer(t)
	token, userID := signup(t, srv, "ann@example.com")

	code, env := call(t, srv, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), userID)

	code, _ = call(t, srv, http.MethodPost, "/api/v1/inventories", "", handler.CreateInventoryRequest{Name: "Shelf"})
	assert.Equal(t, http.StatusUnauthorized, code)

	invID := createInventory(t, srv, token)

	tests := []struct {
		name     string
		token    string
		wantCode int
	}{
		{"owner", token, http.StatusOK},
		{"anonymous on private", "", http.StatusForbidden},
		{"malformed token on optional route", "garbage", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _ := call(t, srv, http.MethodGet, "/api/v1/inventories/"+invID, tt.token, nil)
			assert.Equal(t, tt.wantCode, code)
		})
	}

	code, _ = call(t, srv, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, code)
	code, _ = call(t, srv, http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, code, "a revoked token is rejected")
}

func TestRouter_PublicRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/api/v1/categories", "/api/v1/tags?prefix=a", "/api/v1/inventories/public"} {
		code, env := call(t, srv, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, code, path)
		assert.True(t, env.Success, path)
	}
}

func TestRouter_ProbesAndHeaders(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		resp, err := srv.Client().Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Equal(t, HeaderValueNoSniff, resp.Header.Get(HeaderContentType), path)
	}

	resp, err := srv.Client().Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(resp.Body)
	assert.Contains(t, buf.String(), "http_requests_total")
}

type wsFrame struct {
	Type           string          `json:"type"`
	InventoryID    string          `json:"inventoryId"`
	HasWriteAccess bool            `json:"hasWriteAccess"`
	Data           json.RawMessage `json:"data"`
}

// The upgrade must pass through the logging and metrics response writers.
func TestRouter_WebSocketFeed(t *testing.T) {
	srv := newTestServer(t)
	token, _ := signup(t, srv, "ann@example.com")
	invID := createInventory(t, srv, token)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	q := url.Values{"inventoryId": {invID}, "token": {token}}
	conn, _, err := websocket.Dial(ctx, srv.URL+"/ws/api/posts?"+q.Encode(), nil)
	require.NoError(t, err)

	var hello wsFrame
	require.NoError(t, wsjson.Read(ctx, conn, &hello))
	assert.Equal(t, discussion.MessageTypeConnected, hello.Type)
	assert.True(t, hello.HasWriteAccess)

	code, env := call(t, srv, http.MethodPost, "/api/v1/inventories/"+invID+"/posts", token, handler.CreatePostRequest{Content: "hello"})
	require.Equal(t, http.StatusCreated, code, env.Message)

	var post wsFrame
	require.NoError(t, wsjson.Read(ctx, conn, &post))
	assert.Equal(t, discussion.MessageTypeNewMessage, post.Type)
	assert.Contains(t, string(post.Data), `"content":"hello"`)

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))
}

// The stream must be flushed through the logging and metrics response writers.
func TestRouter_SSEFeed(t *testing.T) {
	srv := newTestServer(t)
	token, _ := signup(t, srv, "ann@example.com")
	invID := createInventory(t, srv, token)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/inventories/"+invID+"/posts/stream", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	lines := bufio.NewScanner(resp.Body)
	require.True(t, lines.Scan())
	assert.Equal(t, "event: "+discussion.MessageTypeConnected, lines.Text())

	denied, err := srv.Client().Get(srv.URL + "/api/v1/inventories/" + invID + "/posts/stream")
	require.NoError(t, err)
	denied.Body.Close()
	assert.Equal(t, http.StatusForbidden, denied.StatusCode, "anonymous callers cannot follow a private inventory")
}
