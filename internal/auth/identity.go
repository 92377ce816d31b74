// Package auth issues and verifies bearer tokens and hashes passwords.
package auth

import (
	"context"
	"time"
)

// Identity is the verified caller behind a bearer token.
type Identity struct {
	UserID    string
	Email     string
	Name      string
	TokenID   string
	ExpiresAt time.Time
}

type contextKey struct{}

// WithIdentity stores the caller's identity in the context
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// IdentityFromContext returns the caller's identity, or nil for an anonymous request
func IdentityFromContext(ctx context.Context) *Identity {
	id, _ := ctx.Value(contextKey{}).(*Identity)
	return id
}

// UserIDFromContext returns the caller's user ID, or "" for an anonymous request
func UserIDFromContext(ctx context.Context) string {
	if id := IdentityFromContext(ctx); id != nil {
		return id.UserID
	}
	return ""
}
