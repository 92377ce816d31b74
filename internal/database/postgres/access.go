package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/InventoryHub_Go/internal/database/generated"
	"github.com/osse101/InventoryHub_Go/internal/domain"
)

func (s *Store) GetInventoryACL(ctx context.Context, inventoryID string) (*domain.InventoryACL, error) {
	id, err := parseID(inventoryID, domain.ErrInventoryNotFound)
	if err != nil {
		return nil, err
	}
	row, err := s.q.GetInventoryACL(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInventoryNotFound
		}
		return nil, fmt.Errorf("failed to get inventory acl: %w", err)
	}
	return &domain.InventoryACL{InventoryID: inventoryID, OwnerID: row.OwnerID.String(), IsPublic: row.IsPublic}, nil
}

func (s *Store) GetGrantLevel(ctx context.Context, inventoryID, userID string) (domain.AccessLevel, error) {
	invID, err := parseID(inventoryID, domain.ErrInventoryNotFound)
	if err != nil {
		return domain.LevelNone, nil
	}
	uID, err := parseID(userID, domain.ErrUserNotFound)
	if err != nil {
		return domain.LevelNone, nil
	}

	raw, err := s.q.GetGrantLevel(ctx, generated.GetGrantLevelParams{InventoryID: invID, UserID: uID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.LevelNone, nil
		}
		return domain.LevelNone, fmt.Errorf("failed to get grant: %w", err)
	}
	return domain.ParseGrantLevel(raw)
}

func (s *Store) ListGrants(ctx context.Context, inventoryID string) ([]domain.InventoryAccess, error) {
	id, err := parseID(inventoryID, domain.ErrInventoryNotFound)
	if err != nil {
		return nil, err
	}
	rows, err := s.q.ListGrants(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list grants: %w", err)
	}

	out := make([]domain.InventoryAccess, 0, len(rows))
	for _, r := range rows {
		level, err := domain.ParseGrantLevel(r.AccessLevel)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.InventoryAccess{
			InventoryID: r.InventoryID.String(),
			UserID:      r.UserID.String(),
			UserName:    r.Name,
			UserEmail:   r.Email,
			Level:       level,
			CreatedAt:   r.CreatedAt,
		})
	}
	return out, nil
}

// UpsertGrant creates the grant or replaces its level, keeping at most one row per pair
func (s *Store) UpsertGrant(ctx context.Context, grant *domain.InventoryAccess) error {
	invID, err := parseID(grant.InventoryID, domain.ErrInventoryNotFound)
	if err != nil {
		return err
	}
	uID, err := parseID(grant.UserID, domain.ErrUserNotFound)
	if err != nil {
		return err
	}

	row, err := s.q.UpsertGrant(ctx, generated.UpsertGrantParams{
		InventoryID: invID,
		UserID:      uID,
		AccessLevel: grant.Level.String(),
	})
	if err != nil {
		if c, ok := foreignKeyViolation(err); ok {
			if c == ConstraintAccessUserFK {
				return domain.ErrUserNotFound
			}
			return domain.ErrInventoryNotFound
		}
		return fmt.Errorf("failed to upsert grant: %w", err)
	}
	grant.UserName = row.Name
	grant.UserEmail = row.Email
	grant.CreatedAt = row.CreatedAt
	return nil
}

func (s *Store) DeleteGrant(ctx context.Context, inventoryID, userID string) error {
	invID, err := parseID(inventoryID, domain.ErrInventoryNotFound)
	if err != nil {
		return domain.ErrGrantNotFound
	}
	uID, err := parseID(userID, domain.ErrUserNotFound)
	if err != nil {
		return domain.ErrGrantNotFound
	}
	n, err := s.q.DeleteGrant(ctx, generated.DeleteGrantParams{InventoryID: invID, UserID: uID})
	if err != nil {
		return fmt.Errorf("failed to delete grant: %w", err)
	}
	if n == 0 {
		return domain.ErrGrantNotFound
	}
	return nil
}
