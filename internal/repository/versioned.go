package repository

import (
	"context"

	"github.com/osse101/InventoryHub_Go/internal/domain"
)

// Versioned defines conditional writes on entities carrying an optimistic-concurrency version
type Versioned interface {
	// UpdateIfVersion applies the patch and increments the version in one conditional write,
	// only when the stored version equals expected. Returns the new version, or
	// domain.ErrVersionConflict when no row matched (stale version or missing row).
	UpdateIfVersion(ctx context.Context, kind domain.EntityKind, id string, expected int, patch domain.Patch) (int, error)
	// DeleteIfVersion deletes only when the stored version equals expected.
	// Returns domain.ErrVersionConflict when no row matched.
	DeleteIfVersion(ctx context.Context, kind domain.EntityKind, id string, expected int) error
	Exists(ctx context.Context, kind domain.EntityKind, id string) (bool, error)
}
