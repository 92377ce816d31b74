package postgres

import (
	"context"
	"fmt"

	"github.com/osse101/InventoryHub_Go/internal/database/generated"
	"github.com/osse101/InventoryHub_Go/internal/domain"
)

// CreateLike records the like. The (user, item) primary key rejects a second one.
func (s *Store) CreateLike(ctx context.Context, userID, itemID string) error {
	uID, err := parseID(userID, domain.ErrUserNotFound)
	if err != nil {
		return err
	}
	iID, err := parseID(itemID, domain.ErrItemNotFound)
	if err != nil {
		return err
	}
	err = s.q.CreateLike(ctx, generated.CreateLikeParams{UserID: uID, ItemID: iID})
	if err != nil {
		if isUniqueViolation(err, ConstraintLikesPK) {
			return domain.ErrAlreadyLiked
		}
		if c, ok := foreignKeyViolation(err); ok {
			if c == ConstraintLikesUserFK {
				return domain.ErrUserNotFound
			}
			return domain.ErrItemNotFound
		}
		return fmt.Errorf("failed to insert like: %w", err)
	}
	return nil
}

func (s *Store) DeleteLike(ctx context.Context, userID, itemID string) (bool, error) {
	uID, err := parseID(userID, domain.ErrUserNotFound)
	if err != nil {
		return false, nil
	}
	iID, err := parseID(itemID, domain.ErrItemNotFound)
	if err != nil {
		return false, nil
	}
	n, err := s.q.DeleteLike(ctx, generated.DeleteLikeParams{UserID: uID, ItemID: iID})
	if err != nil {
		return false, fmt.Errorf("failed to delete like: %w", err)
	}
	return n > 0, nil
}

func (s *Store) CountLikes(ctx context.Context, itemID string) (int, error) {
	iID, err := parseID(itemID, domain.ErrItemNotFound)
	if err != nil {
		return 0, err
	}
	n, err := s.q.CountLikes(ctx, iID)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return int(n), nil
}

func (s *Store) HasLiked(ctx context.Context, userID, itemID string) (bool, error) {
	uID, err := parseID(userID, domain.ErrUserNotFound)
	if err != nil {
		return false, nil
	}
	iID, err := parseID(itemID, domain.ErrItemNotFound)
	if err != nil {
		return false, nil
	}
	liked, err := s.q.HasLiked(ctx, generated.HasLikedParams{UserID: uID, ItemID: iID})
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return liked, nil
}

func (s *Store) ListRecentLikes(ctx context.Context, itemID string, limit int) ([]domain.Like, error) {
	iID, err := parseID(itemID, domain.ErrItemNotFound)
	if err != nil {
		return nil, err
	}
	rows, err := s.q.ListRecentLikes(ctx, generated.ListRecentLikesParams{ItemID: iID, Limit: limitParam(limit)})
	if err != nil {
		return nil, fmt.Errorf("failed to list likes: %w", err)
	}

	out := make([]domain.Like, 0, len(rows))
	for _, r := range rows {
		uid := r.UserID.String()
		out = append(out, domain.Like{
			UserID:    uid,
			ItemID:    r.ItemID.String(),
			User:      domain.UserSummary{ID: uid, Name: r.Name, Email: r.Email},
			CreatedAt: r.CreatedAt,
		})
	}
	return out, nil
}
