// Package like records which users like which items.
package like

import (
	"context"

	"github.com/osse101/InventoryHub_Go/internal/access"
	"github.com/osse101/InventoryHub_Go/internal/domain"
	"github.com/osse101/InventoryHub_Go/internal/event"
	"github.com/osse101/InventoryHub_Go/internal/repository"
)

// Service defines the interface for like operations
type Service interface {
	Like(ctx context.Context, itemID, userID string) (*domain.LikeInfo, error)
	// Unlike removes the caller's like. Unliking an item that was never liked is a no-op.
	Unlike(ctx context.Context, itemID, userID string) (*domain.LikeInfo, error)
	Info(ctx context.Context, itemID, userID string) (*domain.LikeInfo, error)
}

type service struct {
	repo      repository.Like
	evaluator access.Evaluator
	publisher event.Publisher
}

// NewService creates a new like service
func NewService(repo repository.Like, evaluator access.Evaluator, publisher event.Publisher) Service {
	return &service{repo: repo, evaluator: evaluator, publisher: publisher}
}

func (s *service) Like(ctx context.Context, itemID, userID string) (*domain.LikeInfo, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	it, err := s.evaluator.ResolveItemAccess(ctx, itemID, userID, false)
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateLike(ctx, userID, itemID); err != nil {
		return nil, err
	}

	s.publisher.PublishWithRetry(ctx, event.NewItemEvent(event.ItemLiked, it.InventoryID, itemID, userID))
	return s.info(ctx, itemID, userID)
}

func (s *service) Unlike(ctx context.Context, itemID, userID string) (*domain.LikeInfo, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	it, err := s.evaluator.ResolveItemAccess(ctx, itemID, userID, false)
	if err != nil {
		return nil, err
	}
	removed, err := s.repo.DeleteLike(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	if removed {
		s.publisher.PublishWithRetry(ctx, event.NewItemEvent(event.ItemUnliked, it.InventoryID, itemID, userID))
	}
	return s.info(ctx, itemID, userID)
}

func (s *service) Info(ctx context.Context, itemID, userID string) (*domain.LikeInfo, error) {
	if _, err := s.evaluator.ResolveItemAccess(ctx, itemID, userID, false); err != nil {
		return nil, err
	}
	return s.info(ctx, itemID, userID)
}

func (s *service) info(ctx context.Context, itemID, userID string) (*domain.LikeInfo, error) {
	count, err := s.repo.CountLikes(ctx, itemID)
	if err != nil {
		return nil, err
	}
	recent, err := s.repo.ListRecentLikes(ctx, itemID, domain.RecentLikesLimit)
	if err != nil {
		return nil, err
	}

	info := &domain.LikeInfo{ItemID: itemID, LikeCount: count, Recent: recent}
	if userID != "" {
		if info.IsLiked, err = s.repo.HasLiked(ctx, userID, itemID); err != nil {
			return nil, err
		}
	}
	return info, nil
}
