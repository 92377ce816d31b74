package postgres

import (
	"context"
	"fmt"

	"github.com/osse101/InventoryHub_Go/internal/database/generated"
	"github.com/osse101/InventoryHub_Go/internal/domain"
)

// CreatePost inserts the post and returns it joined with its author in one round trip
func (s *Store) CreatePost(ctx context.Context, post *domain.Post) error {
	invID, err := parseID(post.InventoryID, domain.ErrInventoryNotFound)
	if err != nil {
		return err
	}
	userID, err := parseID(post.AuthorID, domain.ErrUserNotFound)
	if err != nil {
		return err
	}

	row, err := s.q.CreatePost(ctx, generated.CreatePostParams{
		InventoryID: invID,
		UserID:      userID,
		Content:     post.Content,
	})
	if err != nil {
		if c, ok := foreignKeyViolation(err); ok {
			if c == ConstraintPostsUserFK {
				return domain.ErrUserNotFound
			}
			return domain.ErrInventoryNotFound
		}
		return fmt.Errorf("failed to insert post: %w", err)
	}
	post.ID = row.PostID.String()
	post.CreatedAt = row.CreatedAt
	post.Author = domain.UserSummary{ID: row.UserID.String(), Name: row.Name, Email: row.Email}
	return nil
}

// ListRecentPosts reads the newest posts and returns them oldest first
func (s *Store) ListRecentPosts(ctx context.Context, inventoryID string, limit int) ([]domain.Post, error) {
	id, err := parseID(inventoryID, domain.ErrInventoryNotFound)
	if err != nil {
		return nil, err
	}
	rows, err := s.q.ListRecentPosts(ctx, generated.ListRecentPostsParams{InventoryID: id, Limit: limitParam(limit)})
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	out := make([]domain.Post, len(rows))
	for i, r := range rows {
		author := domain.UserSummary{ID: r.UserID.String(), Name: r.Name, Email: r.Email}
		out[len(rows)-1-i] = domain.Post{
			ID:          r.PostID.String(),
			InventoryID: r.InventoryID.String(),
			AuthorID:    author.ID,
			Author:      author,
			Content:     r.Content,
			CreatedAt:   r.CreatedAt,
		}
	}
	return out, nil
}
