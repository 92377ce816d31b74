package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InventoryHub_Go/internal/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

var testUser = &domain.User{ID: "user-1", Email: "a@example.com", Name: "Alice"}

func newTestTokens(t *testing.T) *Tokens {
	t.Helper()
	tokens, err := NewTokens(testSecret, time.Hour, NewMemoryRevocationStore(time.Hour))
	require.NoError(t, err)
	return tokens
}

func TestNewTokens_ShortSecret(t *testing.T) {
	_, err := NewTokens("short", time.Hour, NewMemoryRevocationStore(time.Hour))
	assert.Error(t, err)
}

func TestIssueAndVerify(t *testing.T) {
	tokens := newTestTokens(t)
	ctx := context.Background()

	token, expiresAt, err := tokens.Issue(testUser)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	id, err := tokens.Verify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id.UserID)
	assert.Equal(t, "Alice", id.Name)
	assert.NotEmpty(t, id.TokenID)
}

func TestVerify_Rejects(t *testing.T) {
	tokens := newTestTokens(t)
	ctx := context.Background()
	valid, _, err := tokens.Issue(testUser)
	require.NoError(t, err)

	other, err := NewTokens(strings.Repeat("x", MinSecretLength), time.Hour, NewMemoryRevocationStore(time.Hour))
	require.NoError(t, err)
	foreign, _, err := other.Issue(testUser)
	require.NoError(t, err)

	expired := newTestTokens(t)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	stale, _, err := expired.Issue(testUser)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "user-1", "iss": TokenIssuer}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-jwt"},
		{"tampered", valid[:len(valid)-2] + "xx"},
		{"wrong secret", foreign},
		{"expired", stale},
		{"alg none", none},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tokens.Verify(ctx, tt.token)
			assert.ErrorIs(t, err, domain.ErrInvalidToken)
			assert.Equal(t, domain.KindUnauthenticated, domain.KindOf(err))
		})
	}
}

func TestRevoke(t *testing.T) {
	tokens := newTestTokens(t)
	ctx := context.Background()

	token, _, err := tokens.Issue(testUser)
	require.NoError(t, err)
	id, err := tokens.Verify(ctx, token)
	require.NoError(t, err)

	require.NoError(t, tokens.Revoke(ctx, id))
	_, err = tokens.Verify(ctx, token)
	assert.ErrorIs(t, err, domain.ErrTokenRevoked)

	assert.Error(t, tokens.Revoke(ctx, nil))
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.NoError(t, CheckPassword(hash, "hunter22"))
	assert.ErrorIs(t, CheckPassword(hash, "wrong"), domain.ErrInvalidCredentials)
}

func TestIdentityContext(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, IdentityFromContext(ctx))
	assert.Empty(t, UserIDFromContext(ctx))

	ctx = WithIdentity(ctx, &Identity{UserID: "u"})
	assert.Equal(t, "u", UserIDFromContext(ctx))
}

func setupTestRedis(t *testing.T) (*RedisRevocationStore, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	store, err := NewRedisRevocationStore("redis://" + s.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, s
}

func TestRedisRevocationStore(t *testing.T) {
	store, s := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Ping(ctx))

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "jti-1", time.Now().Add(time.Minute)))
	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.True(t, s.Exists(RevokedKeyPrefix+"jti-1"))

	s.FastForward(2 * time.Minute)
	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisRevocationStore_ExpiredTokenNotStored(t *testing.T) {
	store, s := setupTestRedis(t)

	require.NoError(t, store.Revoke(context.Background(), "old", time.Now().Add(-time.Second)))
	assert.False(t, s.Exists(RevokedKeyPrefix+"old"))
}

func TestRedisRevocationStore_Unreachable(t *testing.T) {
	_, err := NewRedisRevocationStore("redis://127.0.0.1:1")
	assert.Error(t, err)

	_, err = NewRedisRevocationStore("://bad")
	assert.Error(t, err)
}

func TestTokens_WithRedisRevocation(t *testing.T) {
	store, _ := setupTestRedis(t)
	tokens, err := NewTokens(testSecret, time.Hour, store)
	require.NoError(t, err)
	ctx := context.Background()

	token, _, err := tokens.Issue(testUser)
	require.NoError(t, err)
	id, err := tokens.Verify(ctx, token)
	require.NoError(t, err)

	require.NoError(t, tokens.Revoke(ctx, id))
	_, err = tokens.Verify(ctx, token)
	assert.ErrorIs(t, err, domain.ErrTokenRevoked)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Bearer abc", "abc"},
		{"bearer  abc ", "abc"},
		{"Basic abc", ""},
		{"Bearer", ""},
		{"", ""},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			r.Header.Set("Authorization", tt.header)
		}
		assert.Equal(t, tt.want, BearerToken(r), tt.header)
	}
}
