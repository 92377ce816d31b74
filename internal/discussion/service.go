// Package discussion carries the live per-inventory discussion: posts, the registry of
// open connections and the transports feeding them.
package discussion

import (
	"context"

	"github.com/osse101/InventoryHub_Go/internal/access"
	"github.com/osse101/InventoryHub_Go/internal/concurrency"
	"github.com/osse101/InventoryHub_Go/internal/domain"
	"github.com/osse101/InventoryHub_Go/internal/event"
	"github.com/osse101/InventoryHub_Go/internal/logger"
	"github.com/osse101/InventoryHub_Go/internal/repository"
)

// Service defines the interface for discussion posts
type Service interface {
	CreatePost(ctx context.Context, inventoryID, userID, content string) (*domain.Post, error)
	// ListPosts returns the latest posts in ascending creation order.
	ListPosts(ctx context.Context, inventoryID, userID string) ([]domain.Post, error)
}

type service struct {
	repo      repository.Post
	evaluator access.Evaluator
	locks     *concurrency.LockManager
	bus       event.Bus
}

// NewService creates a new discussion service. Post events go straight to the bus so
// subscribers run before CreatePost returns.
func NewService(repo repository.Post, evaluator access.Evaluator, locks *concurrency.LockManager, bus event.Bus) Service {
	return &service{repo: repo, evaluator: evaluator, locks: locks, bus: bus}
}

// CreatePost persists the post and then publishes it. Both happen under the inventory's
// post lock, so live connections receive posts in commit order.
func (s *service) CreatePost(ctx context.Context, inventoryID, userID, content string) (*domain.Post, error) {
	content, err := domain.NormalizePostContent(content)
	if err != nil {
		return nil, err
	}
	if _, err := s.evaluator.Require(ctx, inventoryID, userID, domain.LevelWrite); err != nil {
		return nil, err
	}

	post := &domain.Post{InventoryID: inventoryID, AuthorID: userID, Content: content}
	err = s.locks.WithLock(concurrency.PostsKey(inventoryID), func() error {
		if err := s.repo.CreatePost(ctx, post); err != nil {
			return err
		}
		if err := s.bus.Publish(ctx, event.NewPostCreatedEvent(*post)); err != nil {
			// The post is stored; clients that missed it see it on their next listing.
			logger.FromContext(ctx).Error(LogMsgPublishFailed, "post_id", post.ID, "error", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgPostCreated, "post_id", post.ID, "inventory_id", inventoryID)
	return post, nil
}

func (s *service) ListPosts(ctx context.Context, inventoryID, userID string) ([]domain.Post, error) {
	if _, err := s.evaluator.Require(ctx, inventoryID, userID, domain.LevelRead); err != nil {
		return nil, err
	}
	return s.repo.ListRecentPosts(ctx, inventoryID, domain.PostHistoryLimit)
}
