package discussion

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InventoryHub_Go/internal/access"
	"github.com/osse101/InventoryHub_Go/internal/domain"
)

func TestConnector_Open(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name        string
		inventoryID func() string
		token       func() string
		wantCode    int
		wantUser    string
		wantWrite   bool
	}{
		{"missing inventory id", func() string { return "" }, func() string { return "" }, CloseMissingInventoryID, "", false},
		{"unknown inventory", func() string { return "00000000-0000-0000-0000-000000000000" }, func() string { return "" }, CloseInventoryNotFound, "", false},
		{"private anonymous", func() string { return f.private.ID }, func() string { return "" }, CloseAccessDenied, "", false},
		{"private stranger", func() string { return f.private.ID }, func() string { return f.token(t, f.other) }, CloseAccessDenied, "", false},
		{"private bad token is anonymous", func() string { return f.private.ID }, func() string { return "not-a-token" }, CloseAccessDenied, "", false},
		{"private reader", func() string { return f.private.ID }, func() string { return f.token(t, f.reader) }, 0, f.reader.ID, false},
		{"private owner", func() string { return f.private.ID }, func() string { return f.token(t, f.owner) }, 0, f.owner.ID, true},
		{"public anonymous", func() string { return f.public.ID }, func() string { return "" }, 0, "", false},
		{"public bad token is anonymous", func() string { return f.public.ID }, func() string { return "garbage" }, 0, "", false},
		{"public authenticated", func() string { return f.public.ID }, func() string { return f.token(t, f.other) }, 0, f.other.ID, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inventoryID := tt.inventoryID()
			c, code, _ := f.connector.Open(context.Background(), f.registry, TransportWebSocket, inventoryID, tt.token())
			if tt.wantCode != 0 {
				assert.Nil(t, c)
				assert.Equal(t, tt.wantCode, code)
				return
			}
			require.NotNil(t, c)
			defer Release(context.Background(), f.registry, TransportWebSocket, c)

			greeting, ok := next(t, c).(ConnectedMessage)
			require.True(t, ok, "first message must be the greeting")
			assert.Equal(t, MessageTypeConnected, greeting.Type)
			assert.Equal(t, inventoryID, greeting.InventoryID)
			assert.Equal(t, tt.wantWrite, greeting.HasWriteAccess)
			if tt.wantUser == "" {
				assert.Nil(t, greeting.UserID)
			} else {
				require.NotNil(t, greeting.UserID)
				assert.Equal(t, tt.wantUser, *greeting.UserID)
			}
			assert.Equal(t, 1, f.registry.ConnectionCount(inventoryID))
		})
	}
	assert.Equal(t, 0, f.registry.GroupCount(), "released clients leave the registry")
}

// deletingEvaluator deletes the inventory right after the first access check passes,
// the way a concurrent delete can land between authorization and registration.
type deletingEvaluator struct {
	access.Evaluator
	f     *fixture
	calls int
}

func (e *deletingEvaluator) ResolveAccess(ctx context.Context, inventoryID, userID string) (access.Result, error) {
	res, err := e.Evaluator.ResolveAccess(ctx, inventoryID, userID)
	e.calls++
	if e.calls == 1 && err == nil {
		if derr := e.f.store.DeleteIfVersion(ctx, domain.EntityInventory, inventoryID, domain.InitialVersion); derr != nil {
			return res, derr
		}
		e.f.registry.CloseGroup(inventoryID, CloseInventoryNotFound, ReasonInventoryDeleted)
	}
	return res, err
}

func TestConnector_OpenRacingInventoryDelete(t *testing.T) {
	f := newFixture(t)
	ev := &deletingEvaluator{Evaluator: f.evaluator, f: f}
	connector := NewConnector(f.tokens, ev)

	c, code, reason := connector.Open(context.Background(), f.registry, TransportWebSocket, f.public.ID, "")
	assert.Nil(t, c)
	assert.Equal(t, CloseInventoryNotFound, code)
	assert.Equal(t, ReasonInventoryNotFound, reason)
	assert.Equal(t, 2, ev.calls)
	assert.Equal(t, 0, f.registry.ConnectionCount(f.public.ID), "a rejected client must not stay registered")
}

func TestConnector_RevokedTokenIsAnonymous(t *testing.T) {
	f := newFixture(t)
	tok := f.token(t, f.reader)
	id, err := f.tokens.Verify(context.Background(), tok)
	require.NoError(t, err)
	require.NoError(t, f.tokens.Revoke(context.Background(), id))

	_, err = f.connector.Authorize(context.Background(), f.private.ID, tok)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCloseCodeFor(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{domain.ErrInventoryIDRequired, CloseMissingInventoryID},
		{domain.ErrInventoryNotFound, CloseInventoryNotFound},
		{domain.ErrForbidden, CloseAccessDenied},
		{domain.ErrOwnerOnly, CloseAccessDenied},
		{errors.New("db down"), CloseInternalError},
	}
	for _, tt := range tests {
		code, reason := CloseCodeFor(tt.err)
		assert.Equal(t, tt.code, code, tt.err.Error())
		assert.NotEmpty(t, reason)
	}
}

func TestConnectedMessage_JSON(t *testing.T) {
	anon, err := json.Marshal(NewConnectedMessage(Session{InventoryID: "inv"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"CONNECTED","inventoryId":"inv","userId":null,"hasWriteAccess":false}`, string(anon))
}
