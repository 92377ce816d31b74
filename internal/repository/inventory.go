package repository

import (
	"context"

	"github.com/osse101/InventoryHub_Go/internal/domain"
)

// Inventory defines the interface for inventory persistence.
// Updates and deletes go through Versioned.
type Inventory interface {
	// CreateInventory inserts the inventory at domain.InitialVersion and attaches its tags
	// by find-or-insert. ID and timestamps are filled in.
	CreateInventory(ctx context.Context, inv *domain.Inventory) error
	GetInventory(ctx context.Context, inventoryID string) (*domain.Inventory, error)
	ListInventoriesByOwner(ctx context.Context, ownerID string) ([]domain.InventorySummary, error)
	// ListSharedInventories lists inventories the user holds a grant on, with the granted level.
	ListSharedInventories(ctx context.Context, userID string) ([]domain.InventorySummary, error)
	ListPublicInventories(ctx context.Context, q domain.PublicListing) ([]domain.InventorySummary, error)
	// SearchPublicInventories matches the query against name, description and owner name.
	SearchPublicInventories(ctx context.Context, query string, limit int) ([]domain.InventorySummary, error)
	// IncrementViews bumps the display counter without touching the version.
	IncrementViews(ctx context.Context, inventoryID string) error

	GetCategoryByName(ctx context.Context, name string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListTags(ctx context.Context, prefix string, limit int) ([]domain.Tag, error)
}
