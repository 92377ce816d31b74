package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InventoryHub_Go/internal/auth"
	"github.com/osse101/InventoryHub_Go/internal/domain"
)

func newTokens(t *testing.T) *auth.Tokens {
	t.Helper()
	tokens, err := auth.NewTokens(strings.Repeat("s", auth.MinSecretLength), time.Hour, auth.NewMemoryRevocationStore(time.Hour))
	require.NoError(t, err)
	return tokens
}

// whoami echoes the caller's user ID, or "anonymous"
var whoami = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	id := auth.UserIDFromContext(r.Context())
	if id == "" {
		id = "anonymous"
	}
	_, _ = w.Write([]byte(id))
})

func TestAuthenticator(t *testing.T) {
	tokens := newTokens(t)
	valid, _, err := tokens.Issue(&domain.User{ID: "u1", Email: "ann@example.com"})
	require.NoError(t, err)

	revoked, _, err := tokens.Issue(&domain.User{ID: "u2"})
	require.NoError(t, err)
	id, err := tokens.Verify(context.Background(), revoked)
	require.NoError(t, err)
	require.NoError(t, tokens.Revoke(context.Background(), id))

	tests := []struct {
		name     string
		required bool
		header   string
		wantCode int
		wantBody string
		wantFail int
	}{
		{"optional anonymous", false, "", http.StatusOK, "anonymous", 0},
		{"optional valid", false, "Bearer " + valid, http.StatusOK, "u1", 0},
		{"optional invalid", false, "Bearer garbage", http.StatusUnauthorized, ErrMsgInvalidToken, 1},
		{"optional revoked", false, "Bearer " + revoked, http.StatusUnauthorized, ErrMsgInvalidToken, 1},
		{"required anonymous", true, "", http.StatusUnauthorized, ErrMsgAuthRequired, 0},
		{"required valid", true, "bearer " + valid, http.StatusOK, "u1", 0},
		{"required wrong scheme", true, "Basic " + valid, http.StatusUnauthorized, ErrMsgAuthRequired, 0},
		{"required invalid", true, "Bearer garbage", http.StatusUnauthorized, ErrMsgInvalidToken, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			failures := 0
			a := NewAuthenticator(tokens, func(r *http.Request) { failures++ })
			h := a.Optional(whoami)
			if tt.required {
				h = a.Required(whoami)
			}

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.Equal(t, tt.wantFail, failures)
			if tt.wantCode == http.StatusUnauthorized {
				assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
				assert.Contains(t, w.Body.String(), `"success":false`)
			}
		})
	}
}

func TestAuthenticator_NilFailureHook(t *testing.T) {
	a := NewAuthenticator(newTokens(t), nil)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer nope")
	w := httptest.NewRecorder()

	assert.NotPanics(t, func() { a.Required(whoami).ServeHTTP(w, req) })
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

type failingVerifier struct{}

func (failingVerifier) Verify(ctx context.Context, token string) (*auth.Identity, error) {
	return nil, errors.New("redis: connection refused")
}

func TestAuthenticator_VerifierOutage(t *testing.T) {
	failures := 0
	a := NewAuthenticator(failingVerifier{}, func(r *http.Request) { failures++ })
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer anything")
	w := httptest.NewRecorder()

	a.Optional(whoami).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
	assert.NotContains(t, w.Body.String(), "redis")
	assert.Zero(t, failures, "an outage is not a failed login")
}
