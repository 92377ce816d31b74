// Package access decides what a caller may do with an inventory.
package access

import (
	"context"
	"fmt"

	"github.com/osse101/InventoryHub_Go/internal/domain"
	"github.com/osse101/InventoryHub_Go/internal/logger"
	"github.com/osse101/InventoryHub_Go/internal/metrics"
)

// Repository defines the read queries the evaluator needs
type Repository interface {
	GetInventoryACL(ctx context.Context, inventoryID string) (*domain.InventoryACL, error)
	GetGrantLevel(ctx context.Context, inventoryID, userID string) (domain.AccessLevel, error)
	GetItem(ctx context.Context, itemID string) (*domain.Item, error)
}

// Result is the effective access of one caller on one inventory.
type Result struct {
	Level   domain.AccessLevel `json:"accessLevel"`
	IsOwner bool               `json:"isOwner"`
}

// HasReadAccess reports whether the caller may view the inventory.
func (r Result) HasReadAccess() bool { return r.Level.CanRead() }

// HasWriteAccess reports whether the caller may change items and post.
func (r Result) HasWriteAccess() bool { return r.Level.CanWrite() }

// Evaluator resolves access levels. An empty userID is an anonymous caller.
type Evaluator interface {
	ResolveAccess(ctx context.Context, inventoryID, userID string) (Result, error)
	// Require resolves access and fails unless the level is at least required.
	Require(ctx context.Context, inventoryID, userID string, required domain.AccessLevel) (Result, error)
	// ResolveItemAccess loads the item and checks the caller's level on its inventory.
	ResolveItemAccess(ctx context.Context, itemID, userID string, requireWrite bool) (*domain.Item, error)
}

type evaluator struct {
	repo   Repository
	policy PublicWritePolicy
}

// NewEvaluator creates an evaluator applying the given public write policy
func NewEvaluator(repo Repository, policy PublicWritePolicy) Evaluator {
	return &evaluator{repo: repo, policy: policy}
}

func (e *evaluator) ResolveAccess(ctx context.Context, inventoryID, userID string) (Result, error) {
	acl, err := e.repo.GetInventoryACL(ctx, inventoryID)
	if err != nil {
		return Result{}, err
	}
	return e.resolve(ctx, acl, userID)
}

func (e *evaluator) resolve(ctx context.Context, acl *domain.InventoryACL, userID string) (Result, error) {
	if userID != "" && acl.OwnerID == userID {
		return Result{Level: domain.LevelOwner, IsOwner: true}, nil
	}

	grant := domain.LevelNone
	if userID != "" {
		var err error
		grant, err = e.repo.GetGrantLevel(ctx, acl.InventoryID, userID)
		if err != nil {
			return Result{}, fmt.Errorf("failed to load access grant: %w", err)
		}
	}

	switch {
	case grant == domain.LevelWrite:
		return Result{Level: domain.LevelWrite}, nil
	case acl.IsPublic && e.policy.AllowsWrite(userID != ""):
		return Result{Level: domain.LevelWrite}, nil
	case acl.IsPublic, grant == domain.LevelRead:
		return Result{Level: domain.LevelRead}, nil
	default:
		return Result{Level: domain.LevelNone}, nil
	}
}

func (e *evaluator) Require(ctx context.Context, inventoryID, userID string, required domain.AccessLevel) (Result, error) {
	res, err := e.ResolveAccess(ctx, inventoryID, userID)
	if err != nil {
		return Result{}, err
	}
	if err := e.check(ctx, inventoryID, userID, res, required); err != nil {
		return res, err
	}
	return res, nil
}

func (e *evaluator) ResolveItemAccess(ctx context.Context, itemID, userID string, requireWrite bool) (*domain.Item, error) {
	item, err := e.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	acl, err := e.repo.GetInventoryACL(ctx, item.InventoryID)
	if err != nil {
		// The inventory was deleted between the two reads; its items went with it.
		if domain.KindOf(err) == domain.KindNotFound {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}
	res, err := e.resolve(ctx, acl, userID)
	if err != nil {
		return nil, err
	}

	required := domain.LevelRead
	if requireWrite {
		required = domain.LevelWrite
	}
	if err := e.check(ctx, item.InventoryID, userID, res, required); err != nil {
		return nil, err
	}
	return item, nil
}

func (e *evaluator) check(ctx context.Context, inventoryID, userID string, res Result, required domain.AccessLevel) error {
	if res.Level.AtLeast(required) {
		return nil
	}

	metrics.AccessDenied.WithLabelValues(required.String()).Inc()
	logger.FromContext(ctx).Debug(LogMsgAccessDenied,
		"inventory_id", inventoryID,
		"user_id", userID,
		"level", res.Level.String(),
		"required", required.String())

	if userID == "" && required > domain.LevelRead {
		return domain.ErrUnauthenticated
	}
	if required == domain.LevelOwner {
		return domain.ErrOwnerOnly
	}
	return domain.ErrForbidden
}
