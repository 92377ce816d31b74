package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/InventoryHub_Go/internal/database/generated"
	"github.com/osse101/InventoryHub_Go/internal/domain"
)

func toDomainUser(u generated.User) *domain.User {
	return &domain.User{
		ID:           u.UserID.String(),
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}

// CreateUser inserts a user with a normalized email
func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	user.Email = domain.NormalizeEmail(user.Email)
	row, err := s.q.CreateUser(ctx, generated.CreateUserParams{
		Email:        user.Email,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
	})
	if err != nil {
		if isUniqueViolation(err, ConstraintUsersEmail) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	user.ID = row.UserID.String()
	user.CreatedAt = row.CreatedAt
	return nil
}

func (s *Store) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	id, err := parseID(userID, domain.ErrUserNotFound)
	if err != nil {
		return nil, err
	}
	u, err := s.q.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toDomainUser(u), nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := s.q.GetUserByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return toDomainUser(u), nil
}

func (s *Store) SearchUsers(ctx context.Context, query string, limit int) ([]domain.UserSummary, error) {
	rows, err := s.q.SearchUsers(ctx, generated.SearchUsersParams{
		Email: likePattern(domain.NormalizeEmail(query)) + "%",
		Limit: limitParam(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	out := make([]domain.UserSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.UserSummary{ID: r.UserID.String(), Name: r.Name, Email: r.Email})
	}
	return out, nil
}
