package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/osse101/InventoryHub_Go/internal/domain"
	"github.com/osse101/InventoryHub_Go/internal/logger"
)

// Claims are the JWT claims of an access token. The user ID is the subject.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// Verifier checks a bearer token and returns the identity it carries
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// Tokens issues, verifies and revokes HS256 access tokens
type Tokens struct {
	secret  []byte
	ttl     time.Duration
	revoked RevocationStore
	now     func() time.Time
}

// NewTokens creates the token manager. A zero ttl selects DefaultTokenTTL.
func NewTokens(secret string, ttl time.Duration, revoked RevocationStore) (*Tokens, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("jwt secret must be at least %d bytes", MinSecretLength)
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Tokens{secret: []byte(secret), ttl: ttl, revoked: revoked, now: time.Now}, nil
}

// Issue signs a token for the user
func (t *Tokens) Issue(user *domain.User) (string, time.Time, error) {
	now := t.now()
	expiresAt := now.Add(t.ttl)
	claims := &Claims{
		Email: user.Email,
		Name:  user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    TokenIssuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify parses the token, checks signature, expiry and revocation
func (t *Tokens) Verify(ctx context.Context, token string) (*Identity, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(TokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil || !parsed.Valid || claims.Subject == "" {
		logger.FromContext(ctx).Debug(LogMsgTokenRejected, "error", err)
		return nil, domain.ErrInvalidToken
	}

	revoked, err := t.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgRevocationCheck, "error", err)
		return nil, fmt.Errorf("failed to check token revocation: %w", err)
	}
	if revoked {
		return nil, domain.ErrTokenRevoked
	}

	return &Identity{
		UserID:    claims.Subject,
		Email:     claims.Email,
		Name:      claims.Name,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Revoke invalidates the identity's token until it would have expired anyway
func (t *Tokens) Revoke(ctx context.Context, id *Identity) error {
	if id == nil || id.TokenID == "" {
		return errors.New("no token to revoke")
	}
	if err := t.revoked.Revoke(ctx, id.TokenID, id.ExpiresAt); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	logger.FromContext(ctx).Info(LogMsgTokenRevoked, "user_id", id.UserID)
	return nil
}
