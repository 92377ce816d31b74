package repository

import (
	"context"

	"github.com/osse101/InventoryHub_Go/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	// CreateUser inserts the user and fills in ID and CreatedAt.
	// Returns domain.ErrEmailTaken when the normalized email exists.
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	// SearchUsers matches the query as a prefix of email or name.
	SearchUsers(ctx context.Context, query string, limit int) ([]domain.UserSummary, error)
}
