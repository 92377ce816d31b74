// Package item manages the items of an inventory and their custom field values.
package item

import (
	"context"
	"strings"

	"github.com/osse101/InventoryHub_Go/internal/access"
	"github.com/osse101/InventoryHub_Go/internal/domain"
	"github.com/osse101/InventoryHub_Go/internal/event"
	"github.com/osse101/InventoryHub_Go/internal/logger"
	"github.com/osse101/InventoryHub_Go/internal/repository"
	"github.com/osse101/InventoryHub_Go/internal/versioning"
)

// Repository defines the persistence the item service needs
type Repository interface {
	repository.Item
	ListFields(ctx context.Context, inventoryID string) ([]domain.FieldConfig, error)
}

// CreateInput describes a new item. Custom holds decoded JSON values keyed by slot name.
type CreateInput struct {
	Name        string
	Description string
	Custom      map[string]any
	Tags        []string
}

// UpdateInput is a versioned partial update. Nil fields are left untouched.
type UpdateInput struct {
	Version     *int
	Name        *string
	Description *string
	Custom      map[string]any
	Tags        *[]string
}

// Service defines the interface for item operations
type Service interface {
	CreateItem(ctx context.Context, inventoryID, userID string, in CreateInput) (*domain.Item, error)
	GetItem(ctx context.Context, itemID, userID string) (*domain.Item, error)
	ListItems(ctx context.Context, inventoryID, userID string) ([]domain.Item, error)
	UpdateItem(ctx context.Context, itemID, userID string, in UpdateInput) (versioning.Outcome, error)
	DeleteItem(ctx context.Context, itemID, userID string, version *int) error
}

type service struct {
	repo      Repository
	evaluator access.Evaluator
	versions  versioning.Controller
	publisher event.Publisher
}

// NewService creates a new item service
func NewService(repo Repository, evaluator access.Evaluator, versions versioning.Controller, publisher event.Publisher) Service {
	return &service{
		repo:      repo,
		evaluator: evaluator,
		versions:  versions,
		publisher: publisher,
	}
}

func (s *service) CreateItem(ctx context.Context, inventoryID, userID string, in CreateInput) (*domain.Item, error) {
	if _, err := s.evaluator.Require(ctx, inventoryID, userID, domain.LevelWrite); err != nil {
		return nil, err
	}

	configs, err := s.repo.ListFields(ctx, inventoryID)
	if err != nil {
		return nil, err
	}
	custom, err := domain.ValidateSlotValues(in.Custom, configs, true)
	if err != nil {
		return nil, err
	}

	it := &domain.Item{
		InventoryID: inventoryID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Custom:      custom,
		Tags:        domain.NormalizeTags(in.Tags),
	}
	if err := s.repo.CreateItem(ctx, it); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgItemCreated, "item_id", it.ID, "inventory_id", inventoryID)
	s.publisher.PublishWithRetry(ctx, event.NewItemEvent(event.ItemCreated, inventoryID, it.ID, userID))
	return it, nil
}

func (s *service) GetItem(ctx context.Context, itemID, userID string) (*domain.Item, error) {
	return s.evaluator.ResolveItemAccess(ctx, itemID, userID, false)
}

func (s *service) ListItems(ctx context.Context, inventoryID, userID string) ([]domain.Item, error) {
	if _, err := s.evaluator.Require(ctx, inventoryID, userID, domain.LevelRead); err != nil {
		return nil, err
	}
	return s.repo.ListItems(ctx, inventoryID)
}

func (s *service) UpdateItem(ctx context.Context, itemID, userID string, in UpdateInput) (versioning.Outcome, error) {
	if in.Version == nil {
		return versioning.Outcome{}, domain.ErrVersionRequired
	}
	it, err := s.evaluator.ResolveItemAccess(ctx, itemID, userID, true)
	if err != nil {
		return versioning.Outcome{}, err
	}

	patch := domain.ItemPatch{Description: in.Description}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		patch.Name = &name
	}
	if in.Tags != nil {
		tags := domain.NormalizeTags(*in.Tags)
		patch.Tags = &tags
	}
	if len(in.Custom) > 0 {
		configs, err := s.repo.ListFields(ctx, it.InventoryID)
		if err != nil {
			return versioning.Outcome{}, err
		}
		if patch.Custom, err = domain.ValidateSlotValues(in.Custom, configs, false); err != nil {
			return versioning.Outcome{}, err
		}
	}

	out, err := s.versions.UpdateWithVersion(ctx, domain.EntityItem, itemID, in.Version, patch)
	if err != nil {
		return versioning.Outcome{}, err
	}
	logger.FromContext(ctx).Info(LogMsgItemUpdated, "item_id", itemID, "version", out.NewVersion)
	return out, nil
}

func (s *service) DeleteItem(ctx context.Context, itemID, userID string, version *int) error {
	if version == nil {
		return domain.ErrVersionRequired
	}
	if _, err := s.evaluator.ResolveItemAccess(ctx, itemID, userID, true); err != nil {
		return err
	}
	if err := s.versions.DeleteWithVersion(ctx, domain.EntityItem, itemID, version); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgItemDeleted, "item_id", itemID)
	return nil
}
