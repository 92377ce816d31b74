package repository

import (
	"context"

	"github.com/osse101/InventoryHub_Go/internal/domain"
)

// Field defines the interface for custom field definitions
type Field interface {
	// ListFields returns the inventory's field configs ordered by position.
	ListFields(ctx context.Context, inventoryID string) ([]domain.FieldConfig, error)
	// CreateField allocates the lowest free slot of cfg.FieldType and sets TargetField,
	// Position (count of existing configs) and ID. Returns domain.ErrSlotsExhausted when
	// the type has no free slot. The unique (inventory, target field) key guards allocation.
	CreateField(ctx context.Context, cfg *domain.FieldConfig) error
	GetField(ctx context.Context, fieldID string) (*domain.FieldConfig, error)
	UpdateField(ctx context.Context, fieldID string, patch domain.FieldConfigPatch) (*domain.FieldConfig, error)
	DeleteField(ctx context.Context, fieldID string) error
}
