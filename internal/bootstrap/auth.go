package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/InventoryHub_Go/internal/auth"
	"github.com/osse101/InventoryHub_Go/internal/config"
)

// Auth holds the token manager and, when Redis is configured, the shared revocation store.
type Auth struct {
	Tokens *auth.Tokens
	// Redis is nil when revocations are kept in memory
	Redis *auth.RedisRevocationStore
}

// InitializeAuth builds the token manager. Revocations go to Redis when REDIS_URL is set.
func InitializeAuth(cfg *config.Config) (*Auth, error) {
	out := &Auth{}

	var revocations auth.RevocationStore
	if cfg.RedisURL != "" {
		store, err := auth.NewRedisRevocationStore(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectRedis, err)
		}
		out.Redis = store
		revocations = store
		slog.Info(LogMsgUsingRedisRevocations)
	} else {
		ttl := cfg.JWTTTL
		if ttl <= 0 {
			ttl = auth.DefaultTokenTTL
		}
		revocations = auth.NewMemoryRevocationStore(ttl)
		slog.Warn(LogMsgUsingMemoryRevocations)
	}

	tokens, err := auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL, revocations)
	if err != nil {
		if out.Redis != nil {
			_ = out.Redis.Close()
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateTokens, err)
	}
	out.Tokens = tokens
	return out, nil
}
