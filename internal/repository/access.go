package repository

import (
	"context"

	"github.com/osse101/InventoryHub_Go/internal/domain"
)

// Access defines the read queries the access rules run and the grant persistence
type Access interface {
	// GetInventoryACL returns domain.ErrInventoryNotFound for a missing inventory.
	GetInventoryACL(ctx context.Context, inventoryID string) (*domain.InventoryACL, error)
	// GetGrantLevel returns domain.LevelNone when the user holds no grant.
	GetGrantLevel(ctx context.Context, inventoryID, userID string) (domain.AccessLevel, error)
	ListGrants(ctx context.Context, inventoryID string) ([]domain.InventoryAccess, error)
	// UpsertGrant creates the grant or changes its level.
	UpsertGrant(ctx context.Context, grant *domain.InventoryAccess) error
	// DeleteGrant returns domain.ErrGrantNotFound when nothing was removed.
	DeleteGrant(ctx context.Context, inventoryID, userID string) error
}
