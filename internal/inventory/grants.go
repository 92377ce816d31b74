package inventory

import (
	"context"

	"github.com/osse101/InventoryHub_Go/internal/domain"
	"github.com/osse101/InventoryHub_Go/internal/event"
	"github.com/osse101/InventoryHub_Go/internal/logger"
)

func (s *service) ListGrants(ctx context.Context, inventoryID, userID string) ([]domain.InventoryAccess, error) {
	if _, err := s.evaluator.Require(ctx, inventoryID, userID, domain.LevelOwner); err != nil {
		return nil, err
	}
	return s.repo.ListGrants(ctx, inventoryID)
}

// Grant gives a user READ or WRITE on the inventory, replacing any previous grant.
func (s *service) Grant(ctx context.Context, inventoryID, ownerID, targetUserID, level string) (*domain.InventoryAccess, error) {
	lvl, err := domain.ParseGrantLevel(level)
	if err != nil {
		return nil, err
	}
	if _, err := s.evaluator.Require(ctx, inventoryID, ownerID, domain.LevelOwner); err != nil {
		return nil, err
	}
	if targetUserID == ownerID {
		return nil, domain.ErrSelfGrant
	}

	grant := &domain.InventoryAccess{InventoryID: inventoryID, UserID: targetUserID, Level: lvl}
	if err := s.repo.UpsertGrant(ctx, grant); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgAccessGranted, "inventory_id", inventoryID, "user_id", targetUserID, "level", lvl.String())
	s.publisher.PublishWithRetry(ctx, event.NewAccessEvent(event.AccessGranted, inventoryID, targetUserID, lvl.String()))
	return grant, nil
}

// Revoke removes a user's grant. A missing grant is domain.ErrGrantNotFound.
func (s *service) Revoke(ctx context.Context, inventoryID, ownerID, targetUserID string) error {
	if _, err := s.evaluator.Require(ctx, inventoryID, ownerID, domain.LevelOwner); err != nil {
		return err
	}
	if err := s.repo.DeleteGrant(ctx, inventoryID, targetUserID); err != nil {
		return err
	}

	logger.FromContext(ctx).Info(LogMsgAccessRevoked, "inventory_id", inventoryID, "user_id", targetUserID)
	s.publisher.PublishWithRetry(ctx, event.NewAccessEvent(event.AccessRevoked, inventoryID, targetUserID, ""))
	return nil
}
