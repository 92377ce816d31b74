package discussion

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osse101/InventoryHub_Go/internal/access"
	"github.com/osse101/InventoryHub_Go/internal/auth"
	"github.com/osse101/InventoryHub_Go/internal/concurrency"
	"github.com/osse101/InventoryHub_Go/internal/database/memory"
	"github.com/osse101/InventoryHub_Go/internal/domain"
	"github.com/osse101/InventoryHub_Go/internal/event"
)

type fixture struct {
	store     *memory.Store
	tokens    *auth.Tokens
	evaluator access.Evaluator
	registry  *Registry
	connector *Connector
	locks     *concurrency.LockManager
	bus       event.Bus
	svc       Service

	owner, reader, other *domain.User
	private, public      *domain.Inventory
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	s := memory.NewStore()

	tokens, err := auth.NewTokens(strings.Repeat("k", auth.MinSecretLength), time.Hour, auth.NewMemoryRevocationStore(time.Hour))
	require.NoError(t, err)

	user := func(email string) *domain.User {
		u := &domain.User{Email: email, Name: strings.Split(email, "@")[0], PasswordHash: "x"}
		require.NoError(t, s.CreateUser(ctx, u))
		return u
	}

	f := &fixture{
		store:  s,
		tokens: tokens,
		owner:  user("owner@example.com"),
		reader: user("reader@example.com"),
		other:  user("other@example.com"),
	}
	f.private = &domain.Inventory{Name: "Private", OwnerID: f.owner.ID}
	require.NoError(t, s.CreateInventory(ctx, f.private))
	f.public = &domain.Inventory{Name: "Public", OwnerID: f.owner.ID, IsPublic: true}
	require.NoError(t, s.CreateInventory(ctx, f.public))
	require.NoError(t, s.UpsertGrant(ctx, &domain.InventoryAccess{InventoryID: f.private.ID, UserID: f.reader.ID, Level: domain.LevelRead}))

	f.evaluator = access.NewEvaluator(s, access.AuthenticatedMayWritePublic)
	f.registry = NewRegistry()
	f.connector = NewConnector(tokens, f.evaluator)
	f.locks = concurrency.NewLockManager()
	f.bus = event.NewMemoryBus()
	NewSubscriber(f.registry, f.locks).Subscribe(f.bus)
	f.svc = NewService(s, f.evaluator, f.locks, f.bus)
	return f
}

func (f *fixture) token(t *testing.T, u *domain.User) string {
	t.Helper()
	tok, _, err := f.tokens.Issue(u)
	require.NoError(t, err)
	return tok
}

// open connects a client and discards its greeting.
func (f *fixture) open(t *testing.T, inventoryID, token string) *Client {
	t.Helper()
	c, code, reason := f.connector.Open(context.Background(), f.registry, TransportWebSocket, inventoryID, token)
	require.NotNil(t, c, "connect refused: %d %s", code, reason)
	t.Cleanup(func() { Release(context.Background(), f.registry, TransportWebSocket, c) })
	next(t, c)
	return c
}

// next pops the client's next queued message without blocking.
func next(t *testing.T, c *Client) Message {
	t.Helper()
	select {
	case msg := <-c.Messages():
		return msg
	default:
		t.Fatal("no message queued")
		return nil
	}
}

func drain(c *Client) []Message {
	var out []Message
	for {
		select {
		case msg := <-c.Messages():
			out = append(out, msg)
		default:
			return out
		}
	}
}
