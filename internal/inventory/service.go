// Package inventory manages inventories, their sharing grants and public listings.
package inventory

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

// Repository defines the persistence the inventory service needs
type Repository interface {
	repository.Inventory
	repository.Access
}

// CreateInput describes a new inventory
type CreateInput struct {
	Name        string
	Description string
	Category    string
	IsPublic    bool
	Tags        []string
}

// UpdateInput is a versioned partial update. Nil fields are left untouched.
type UpdateInput struct {
	Version     *int
	Name        *string
	Description *string
	Category    *string
	IsPublic    *bool
	Tags        *[]string
}

// View is an inventory together with the caller's access to it
type View struct {
	Inventory *domain.Inventory `json:"inventory"`
	Access    access.Result     `json:"access"`
}

// Service defines the interface for inventory operations
type Service interface {
	CreateInventory(ctx context.Context, userID string, in CreateInput) (*domain.Inventory, error)
	GetInventory(ctx context.Context, inventoryID, userID string) (*View, error)
	UpdateInventory(ctx context.Context, inventoryID, userID string, in UpdateInput) (versioning.Outcome, error)
	SetVisibility(ctx context.Context, inventoryID, userID string, isPublic bool, version *int) (versioning.Outcome, error)
	DeleteInventory(ctx context.Context, inventoryID, userID string, version *int) error
	GetAccess(ctx context.Context, inventoryID, userID string) (access.Result, error)

	ListGrants(ctx context.Context, inventoryID, userID string) ([]domain.InventoryAccess, error)
	Grant(ctx context.Context, inventoryID, ownerID, targetUserID, level string) (*domain.InventoryAccess, error)
	Revoke(ctx context.Context, inventoryID, ownerID, targetUserID string) error

	ListOwned(ctx context.Context, userID string) ([]domain.InventorySummary, error)
	ListShared(ctx context.Context, userID string) ([]domain.InventorySummary, error)
	ListPublic(ctx context.Context, listingType string, page int) ([]domain.InventorySummary, error)
	SearchPublic(ctx context.Context, query string) ([]domain.InventorySummary, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	SuggestTags(ctx context.Context, prefix string) ([]domain.Tag, error)
}

type service struct {
	repo      Repository
	evaluator access.Evaluator
	versions  versioning.Controller
	publisher event.Publisher
}

// NewService creates a new inventory service
func NewService(repo Repository, evaluator access.Evaluator, versions versioning.Controller, publisher event.Publisher) Service {
	return &service{
		repo:      repo,
		evaluator: evaluator,
		versions:  versions,
		publisher: publisher,
	}
}

func (s *service) CreateInventory(ctx context.Context, userID string, in CreateInput) (*domain.Inventory, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}

	inv := &domain.Inventory{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		OwnerID:     userID,
		IsPublic:    in.IsPublic,
		Tags:        domain.NormalizeTags(in.Tags),
	}
	if in.Category != "" {
		cat, err := s.repo.GetCategoryByName(ctx, in.Category)
		if err != nil {
			return nil, err
		}
		inv.CategoryID = &cat.ID
	}

	if err := s.repo.CreateInventory(ctx, inv); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgInventoryCreated, "inventory_id", inv.ID, "owner_id", userID)
	s.publisher.PublishWithRetry(ctx, event.NewInventoryEvent(event.InventoryCreated, inv.ID, userID))
	return inv, nil
}

// GetInventory returns the inventory for a caller with READ access and counts the view.
func (s *service) GetInventory(ctx context.Context, inventoryID, userID string) (*View, error) {
	res, err := s.evaluator.Require(ctx, inventoryID, userID, domain.LevelRead)
	if err != nil {
		return nil, err
	}

	if err := s.repo.IncrementViews(ctx, inventoryID); err != nil {
		logger.FromContext(ctx).Warn(LogWarnViewCountFailed, "inventory_id", inventoryID, "error", err)
	}

	inv, err := s.repo.GetInventory(ctx, inventoryID)
	if err != nil {
		return nil, err
	}
	return &View{Inventory: inv, Access: res}, nil
}

func (s *service) UpdateInventory(ctx context.Context, inventoryID, userID string, in UpdateInput) (versioning.Outcome, error) {
	if in.Version == nil {
		return versioning.Outcome{}, domain.ErrVersionRequired
	}
	if _, err := s.evaluator.Require(ctx, inventoryID, userID, domain.LevelOwner); err != nil {
		return versioning.Outcome{}, err
	}

	patch := domain.InventoryPatch{
		Name:        trimmed(in.Name),
		Description: in.Description,
		IsPublic:    in.IsPublic,
	}
	if in.Tags != nil {
		tags := domain.NormalizeTags(*in.Tags)
		patch.Tags = &tags
	}
	if in.Category != nil {
		cat, err := s.repo.GetCategoryByName(ctx, *in.Category)
		if err != nil {
			return versioning.Outcome{}, err
		}
		patch.CategoryID = &cat.ID
	}

	out, err := s.versions.UpdateWithVersion(ctx, domain.EntityInventory, inventoryID, in.Version, patch)
	if err != nil {
		return versioning.Outcome{}, err
	}
	logger.FromContext(ctx).Info(LogMsgInventoryUpdated, "inventory_id", inventoryID, "version", out.NewVersion)
	return out, nil
}

func (s *service) SetVisibility(ctx context.Context, inventoryID, userID string, isPublic bool, version *int) (versioning.Outcome, error) {
	return s.UpdateInventory(ctx, inventoryID, userID, UpdateInput{Version: version, IsPublic: &isPublic})
}

func (s *service) DeleteInventory(ctx context.Context, inventoryID, userID string, version *int) error {
	if version == nil {
		return domain.ErrVersionRequired
	}
	if _, err := s.evaluator.Require(ctx, inventoryID, userID, domain.LevelOwner); err != nil {
		return err
	}

	if err := s.versions.DeleteWithVersion(ctx, domain.EntityInventory, inventoryID, version); err != nil {
		return err
	}

	logger.FromContext(ctx).Info(LogMsgInventoryDeleted, "inventory_id", inventoryID)
	s.publisher.PublishWithRetry(ctx, event.NewInventoryEvent(event.InventoryDeleted, inventoryID, userID))
	return nil
}

func (s *service) GetAccess(ctx context.Context, inventoryID, userID string) (access.Result, error) {
	return s.evaluator.ResolveAccess(ctx, inventoryID, userID)
}

func (s *service) ListOwned(ctx context.Context, userID string) ([]domain.InventorySummary, error) {
	return s.repo.ListInventoriesByOwner(ctx, userID)
}

func (s *service) ListShared(ctx context.Context, userID string) ([]domain.InventorySummary, error) {
	return s.repo.ListSharedInventories(ctx, userID)
}

func (s *service) ListPublic(ctx context.Context, listingType string, page int) ([]domain.InventorySummary, error) {
	return s.repo.ListPublicInventories(ctx, domain.NewPublicListing(listingType, page))
}

func (s *service) SearchPublic(ctx context.Context, query string) ([]domain.InventorySummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.InventorySummary{}, nil
	}
	return s.repo.SearchPublicInventories(ctx, query, SearchResultLimit)
}

func (s *service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *service) SuggestTags(ctx context.Context, prefix string) ([]domain.Tag, error) {
	return s.repo.ListTags(ctx, strings.TrimSpace(prefix), TagSuggestionLimit)
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
