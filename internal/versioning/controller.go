// Package versioning applies version-checked updates and deletes to inventories and items.
package versioning

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/InventoryHub_Go/internal/domain"
	"github.com/osse101/InventoryHub_Go/internal/logger"
	"github.com/osse101/InventoryHub_Go/internal/metrics"
	"github.com/osse101/InventoryHub_Go/internal/repository"
)

// Outcome is the result of a successful versioned update.
type Outcome struct {
	NewVersion int `json:"version"`
}

// Controller gates every update and delete of a versioned entity on the version the
// caller last saw. A stale version is reported, never retried.
type Controller interface {
	UpdateWithVersion(ctx context.Context, kind domain.EntityKind, id string, expected *int, patch domain.Patch) (Outcome, error)
	DeleteWithVersion(ctx context.Context, kind domain.EntityKind, id string, expected *int) error
}

type controller struct {
	repo repository.Versioned
}

// NewController creates a controller over the store's conditional writes
func NewController(repo repository.Versioned) Controller {
	return &controller{repo: repo}
}

func (c *controller) UpdateWithVersion(ctx context.Context, kind domain.EntityKind, id string, expected *int, patch domain.Patch) (Outcome, error) {
	if expected == nil {
		return Outcome{}, domain.ErrVersionRequired
	}
	if patch == nil || patch.IsEmpty() {
		return Outcome{}, domain.ErrNothingToUpdate
	}
	if patch.Kind() != kind {
		return Outcome{}, fmt.Errorf("%w: %s patch for %s", domain.ErrUnsupportedEntityKind, patch.Kind(), kind)
	}

	newVersion, err := c.repo.UpdateIfVersion(ctx, kind, id, *expected, patch)
	if err != nil {
		return Outcome{}, c.explain(ctx, kind, id, *expected, err)
	}

	logger.FromContext(ctx).Debug(LogMsgEntityUpdated, "kind", kind, "id", id, "version", newVersion)
	return Outcome{NewVersion: newVersion}, nil
}

func (c *controller) DeleteWithVersion(ctx context.Context, kind domain.EntityKind, id string, expected *int) error {
	if expected == nil {
		return domain.ErrVersionRequired
	}

	if err := c.repo.DeleteIfVersion(ctx, kind, id, *expected); err != nil {
		return c.explain(ctx, kind, id, *expected, err)
	}

	logger.FromContext(ctx).Debug(LogMsgEntityDeleted, "kind", kind, "id", id, "version", *expected)
	return nil
}

// explain turns a zero-row conditional write into NotFound or a version conflict.
func (c *controller) explain(ctx context.Context, kind domain.EntityKind, id string, expected int, err error) error {
	if !errors.Is(err, domain.ErrVersionConflict) {
		return err
	}

	exists, existsErr := c.repo.Exists(ctx, kind, id)
	if existsErr != nil {
		return fmt.Errorf("failed to check %s existence: %w", kind, existsErr)
	}
	if !exists {
		return notFound(kind)
	}

	metrics.VersionConflicts.WithLabelValues(string(kind)).Inc()
	logger.FromContext(ctx).Info(LogMsgVersionConflict, "kind", kind, "id", id, "expected", expected)
	return fmt.Errorf("%w: %s %s at version %d", domain.ErrVersionConflict, kind, id, expected)
}

func notFound(kind domain.EntityKind) error {
	if kind == domain.EntityItem {
		return domain.ErrItemNotFound
	}
	return domain.ErrInventoryNotFound
}
