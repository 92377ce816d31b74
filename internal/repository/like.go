package repository

import (
	"context"

	"github.com/osse101/InventoryHub_Go/internal/domain"
)

// Like defines the interface for item likes
type Like interface {
	// CreateLike returns domain.ErrAlreadyLiked when the pair exists.
	CreateLike(ctx context.Context, userID, itemID string) error
	// DeleteLike reports whether a like was removed.
	DeleteLike(ctx context.Context, userID, itemID string) (bool, error)
	CountLikes(ctx context.Context, itemID string) (int, error)
	HasLiked(ctx context.Context, userID, itemID string) (bool, error)
	ListRecentLikes(ctx context.Context, itemID string, limit int) ([]domain.Like, error)
}
