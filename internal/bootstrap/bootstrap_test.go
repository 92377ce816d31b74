package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InventoryHub_Go/internal/config"
	"github.com/osse101/InventoryHub_Go/internal/database/memory"
	"github.com/osse101/InventoryHub_Go/internal/discussion"
	"github.com/osse101/InventoryHub_Go/internal/domain"
	"github.com/osse101/InventoryHub_Go/internal/inventory"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestCleanupLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-01-%02d_00-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644))

	cleanupLogs(dir, 9)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var logs []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), LogFileExtension) {
			logs = append(logs, e.Name())
		}
	}
	assert.Len(t, logs, 9)
	assert.NotContains(t, logs, "session_2026-01-01_00-00-00.log")
	assert.Contains(t, logs, "session_2026-01-12_00-00-00.log")
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	cfg := &config.Config{LogDir: filepath.Join(t.TempDir(), "logs"), LogLevel: "debug", LogFormat: "json", ServiceName: "svc"}
	f, err := SetupLogger(cfg)
	require.NoError(t, err)
	defer f.Close()

	slog.Info("hello from test")
	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello from test"`)
	assert.Contains(t, string(data), `"service":"svc"`)
}

func TestInitializeStorage_Memory(t *testing.T) {
	s, err := InitializeStorage(context.Background(), &config.Config{DBDriver: config.DBDriverMemory})
	require.NoError(t, err)
	defer s.Close()

	assert.Nil(t, s.Pool)
	assert.IsType(t, &memory.Store{}, s.Store)
}

func TestInitializeAuth_MemoryRevocations(t *testing.T) {
	a, err := InitializeAuth(&config.Config{JWTSecret: testSecret})
	require.NoError(t, err)
	assert.Nil(t, a.Redis)

	tok, _, err := a.Tokens.Issue(&domain.User{ID: "u1"})
	require.NoError(t, err)
	id, err := a.Tokens.Verify(context.Background(), tok)
	require.NoError(t, err)
	require.NoError(t, a.Tokens.Revoke(context.Background(), id))

	_, err = a.Tokens.Verify(context.Background(), tok)
	assert.ErrorIs(t, err, domain.ErrTokenRevoked)
}

func TestInitializeAuth_Redis(t *testing.T) {
	mr := miniredis.RunT(t)

	a, err := InitializeAuth(&config.Config{JWTSecret: testSecret, JWTTTL: time.Hour, RedisURL: "redis://" + mr.Addr()})
	require.NoError(t, err)
	require.NotNil(t, a.Redis)
	defer a.Redis.Close()

	tok, _, err := a.Tokens.Issue(&domain.User{ID: "u1"})
	require.NoError(t, err)
	id, err := a.Tokens.Verify(context.Background(), tok)
	require.NoError(t, err)
	require.NoError(t, a.Tokens.Revoke(context.Background(), id))

	assert.Len(t, mr.Keys(), 1, "revocation is stored in redis")
}

func TestInitializeAuth_Errors(t *testing.T) {
	_, err := InitializeAuth(&config.Config{JWTSecret: "short"})
	assert.Error(t, err)

	_, err = InitializeAuth(&config.Config{JWTSecret: testSecret, RedisURL: "redis://127.0.0.1:1"})
	assert.Error(t, err)
}

func TestInitializeServices(t *testing.T) {
	a, err := InitializeAuth(&config.Config{JWTSecret: testSecret})
	require.NoError(t, err)

	cfg := &config.Config{
		DeadLetterPath:  filepath.Join(t.TempDir(), "deadletter.jsonl"),
		EventMaxRetries: 1,
		EventRetryDelay: time.Millisecond,
		UserCacheSize:   10,
		UserCacheTTL:    time.Minute,
	}
	bus, pub, err := InitializeEventSystem(cfg)
	require.NoError(t, err)
	defer pub.Shutdown(context.Background())

	store := memory.NewStore()
	svc, err := InitializeServices(cfg, store, a.Tokens, bus, pub)
	require.NoError(t, err)
	require.NoError(t, RegisterEventHandlers(EventHandlerDependencies{EventBus: bus, Registry: svc.Registry, Locks: svc.Locks}))

	ctx := context.Background()
	owner, err := svc.Users.Register(ctx, "owner@example.com", "Owner", "password1")
	require.NoError(t, err)
	inv, err := svc.Inventories.CreateInventory(ctx, owner.ID, inventory.CreateInput{Name: "Shelf"})
	require.NoError(t, err)

	tok, _, err := a.Tokens.Issue(owner)
	require.NoError(t, err)
	client, code, reason := svc.Connector.Open(ctx, svc.Registry, discussion.TransportSSE, inv.ID, tok)
	require.NotNil(t, client, "%d %s", code, reason)
	defer discussion.Release(ctx, svc.Registry, discussion.TransportSSE, client)
	<-client.Messages()

	_, err = svc.Posts.CreatePost(ctx, inv.ID, owner.ID, "hello")
	require.NoError(t, err)

	select {
	case msg := <-client.Messages():
		assert.NotNil(t, msg)
	default:
		t.Fatal("post was not fanned out to the connected client")
	}
}

func TestInitializeServices_UnknownPolicy(t *testing.T) {
	_, err := InitializeServices(&config.Config{PublicWritePolicy: "anyone"}, memory.NewStore(), nil, nil, nil)
	assert.ErrorContains(t, err, ErrMsgInvalidPublicWritePolicy)
}
