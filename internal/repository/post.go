package repository

import (
	"context"

	"github.com/osse101/InventoryHub_Go/internal/domain"
)

// Post defines the interface for discussion persistence
type Post interface {
	// CreatePost persists the post and fills ID, CreatedAt and Author.
	CreatePost(ctx context.Context, post *domain.Post) error
	// ListRecentPosts returns the newest posts of an inventory in ascending creation order.
	ListRecentPosts(ctx context.Context, inventoryID string, limit int) ([]domain.Post, error)
}
