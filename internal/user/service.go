package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/osse101/InventoryHub_Go/internal/auth"
	"github.com/osse101/InventoryHub_Go/internal/domain"
	"github.com/osse101/InventoryHub_Go/internal/logger"
	"github.com/osse101/InventoryHub_Go/internal/repository"
)

// TokenManager issues and revokes bearer tokens
type TokenManager interface {
	Issue(user *domain.User) (string, time.Time, error)
	Revoke(ctx context.Context, id *auth.Identity) error
}

// Session is the result of a successful login
type Session struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      domain.User `json:"user"`
}

// Service defines the interface for user operations
type Service interface {
	Register(ctx context.Context, email, name, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*Session, error)
	Logout(ctx context.Context, id *auth.Identity) error
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	SearchUsers(ctx context.Context, query string) ([]domain.UserSummary, error)
	GetCacheStats() CacheStats
}

type service struct {
	repo      repository.User
	tokens    TokenManager
	userCache *userCache
}

// NewService creates a new user service
func NewService(repo repository.User, tokens TokenManager, cacheConfig CacheConfig) Service {
	return &service{
		repo:      repo,
		tokens:    tokens,
		userCache: newUserCache(cacheConfig),
	}
}

func (s *service) Register(ctx context.Context, email, name, password string) (*domain.User, error) {
	log := logger.FromContext(ctx)

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Error(LogErrFailedToHash, "error", err)
		return nil, err
	}

	u := &domain.User{
		Email:        domain.NormalizeEmail(email),
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		if !errors.Is(err, domain.ErrEmailTaken) {
			log.Error(LogErrFailedToRegister, "error", err)
		}
		return nil, err
	}

	s.userCache.Set(u)
	log.Info(LogMsgUserRegistered, "user_id", u.ID)
	return u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*Session, error) {
	log := logger.FromContext(ctx)

	u, err := s.repo.GetUserByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			log.Info(LogMsgLoginFailed, "reason", "unknown email")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := auth.CheckPassword(u.PasswordHash, password); err != nil {
		log.Info(LogMsgLoginFailed, "reason", "password mismatch", "user_id", u.ID)
		return nil, err
	}

	token, expiresAt, err := s.tokens.Issue(u)
	if err != nil {
		log.Error(LogErrFailedToIssue, "error", err)
		return nil, err
	}

	s.userCache.Set(u)
	log.Info(LogMsgLoginSucceeded, "user_id", u.ID)
	return &Session{Token: token, ExpiresAt: expiresAt, User: *u}, nil
}

func (s *service) Logout(ctx context.Context, id *auth.Identity) error {
	if id == nil {
		return domain.ErrUnauthenticated
	}
	if err := s.tokens.Revoke(ctx, id); err != nil {
		return err
	}
	s.userCache.Invalidate(id.UserID)
	logger.FromContext(ctx).Info(LogMsgLoggedOut, "user_id", id.UserID)
	return nil
}

func (s *service) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	if u, ok := s.userCache.Get(userID); ok {
		return u, nil
	}
	u, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.userCache.Set(u)
	return u, nil
}

// SearchUsers matches a prefix of email or name. Results are not cached.
func (s *service) SearchUsers(ctx context.Context, query string) ([]domain.UserSummary, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < MinSearchQueryLength {
		return []domain.UserSummary{}, nil
	}
	return s.repo.SearchUsers(ctx, query, DefaultSearchLimit)
}

func (s *service) GetCacheStats() CacheStats {
	return s.userCache.GetStats()
}
