package repository

import (
	"context"

	"github.com/osse101/InventoryHub_Go/internal/domain"
)

// Item defines the interface for item persistence.
// Updates and deletes go through Versioned.
type Item interface {
	// CreateItem inserts the item at domain.InitialVersion with its tags.
	CreateItem(ctx context.Context, item *domain.Item) error
	GetItem(ctx context.Context, itemID string) (*domain.Item, error)
	ListItems(ctx context.Context, inventoryID string) ([]domain.Item, error)
}
