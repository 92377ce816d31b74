// Package field manages the owner-defined custom fields of an inventory.
package field

import (
	"context"
	"strings"

	"github.com/osse101/InventoryHub_Go/internal/access"
	"github.com/osse101/InventoryHub_Go/internal/concurrency"
	"github.com/osse101/InventoryHub_Go/internal/domain"
	"github.com/osse101/InventoryHub_Go/internal/logger"
	"github.com/osse101/InventoryHub_Go/internal/repository"
)

// CreateInput describes a new custom field. The slot is allocated by the store.
type CreateInput struct {
	FieldType        string
	Name             string
	Description      string
	IsRequired       bool
	IsVisibleInTable bool
}

// Service defines the interface for custom field operations
type Service interface {
	ListFields(ctx context.Context, inventoryID, userID string) ([]domain.FieldConfig, error)
	CreateField(ctx context.Context, inventoryID, userID string, in CreateInput) (*domain.FieldConfig, error)
	UpdateField(ctx context.Context, fieldID, userID string, patch domain.FieldConfigPatch) (*domain.FieldConfig, error)
	DeleteField(ctx context.Context, fieldID, userID string) error
}

type service struct {
	repo      repository.Field
	evaluator access.Evaluator
	locks     *concurrency.LockManager
}

// NewService creates a new custom field service
func NewService(repo repository.Field, evaluator access.Evaluator, locks *concurrency.LockManager) Service {
	return &service{repo: repo, evaluator: evaluator, locks: locks}
}

func (s *service) ListFields(ctx context.Context, inventoryID, userID string) ([]domain.FieldConfig, error) {
	if _, err := s.evaluator.Require(ctx, inventoryID, userID, domain.LevelRead); err != nil {
		return nil, err
	}
	return s.repo.ListFields(ctx, inventoryID)
}

// CreateField allocates the lowest free slot of the requested type.
// Allocation is serialized per inventory in process; the store's unique key covers other processes.
func (s *service) CreateField(ctx context.Context, inventoryID, userID string, in CreateInput) (*domain.FieldConfig, error) {
	ft, err := domain.ParseFieldType(in.FieldType)
	if err != nil {
		return nil, err
	}
	if _, err := s.evaluator.Require(ctx, inventoryID, userID, domain.LevelOwner); err != nil {
		return nil, err
	}

	cfg := &domain.FieldConfig{
		InventoryID:      inventoryID,
		FieldType:        ft,
		Name:             strings.TrimSpace(in.Name),
		Description:      in.Description,
		IsRequired:       in.IsRequired,
		IsVisibleInTable: in.IsVisibleInTable,
	}
	err = s.locks.WithLock(concurrency.FieldsKey(inventoryID), func() error {
		return s.repo.CreateField(ctx, cfg)
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgFieldCreated, "inventory_id", inventoryID, "slot", cfg.TargetField)
	return cfg, nil
}

func (s *service) UpdateField(ctx context.Context, fieldID, userID string, patch domain.FieldConfigPatch) (*domain.FieldConfig, error) {
	if patch.IsEmpty() {
		return nil, domain.ErrNothingToUpdate
	}
	cfg, err := s.ownedField(ctx, fieldID, userID)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		patch.Name = &name
	}

	updated, err := s.repo.UpdateField(ctx, cfg.ID, patch)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgFieldUpdated, "field_id", fieldID)
	return updated, nil
}

// DeleteField frees the slot and clears its values on every item of the inventory.
func (s *service) DeleteField(ctx context.Context, fieldID, userID string) error {
	cfg, err := s.ownedField(ctx, fieldID, userID)
	if err != nil {
		return err
	}
	err = s.locks.WithLock(concurrency.FieldsKey(cfg.InventoryID), func() error {
		return s.repo.DeleteField(ctx, cfg.ID)
	})
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgFieldDeleted, "field_id", fieldID, "slot", cfg.TargetField)
	return nil
}

func (s *service) ownedField(ctx context.Context, fieldID, userID string) (*domain.FieldConfig, error) {
	cfg, err := s.repo.GetField(ctx, fieldID)
	if err != nil {
		return nil, err
	}
	if _, err := s.evaluator.Require(ctx, cfg.InventoryID, userID, domain.LevelOwner); err != nil {
		return nil, err
	}
	return cfg, nil
}
