package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/InventoryHub_Go/internal/database/generated"
	"github.com/osse101/InventoryHub_Go/internal/domain"
)

// inventorySelect is shared by the detail and listing queries; item_count is
// addressable in ORDER BY.
const inventorySelect = `
	SELECT i.inventory_id::text, i.name, i.description, i.owner_id::text, u.name, u.email,
	       i.category_id, c.name, i.is_public, i.version, i.views, i.created_at, i.updated_at,
	       (SELECT COUNT(*) FROM items it WHERE it.inventory_id = i.inventory_id) AS item_count,
	       ARRAY(SELECT t.name FROM inventory_tags itg JOIN tags t ON t.tag_id = itg.tag_id
	             WHERE itg.inventory_id = i.inventory_id ORDER BY t.name) AS tag_names
	FROM inventories i
	JOIN users u ON u.user_id = i.owner_id
	LEFT JOIN categories c ON c.category_id = i.category_id`

func scanInventory(row pgx.Row, extra ...any) (*domain.Inventory, error) {
	var (
		inv          domain.Inventory
		categoryID   *int
		categoryName *string
	)
	dest := []any{
		&inv.ID, &inv.Name, &inv.Description, &inv.OwnerID, &inv.Owner.Name, &inv.Owner.Email,
		&categoryID, &categoryName, &inv.IsPublic, &inv.Version, &inv.Views, &inv.CreatedAt, &inv.UpdatedAt,
		&inv.ItemCount, &inv.Tags,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	inv.Owner.ID = inv.OwnerID
	inv.CategoryID = categoryID
	if categoryID != nil && categoryName != nil {
		inv.Category = &domain.Category{ID: *categoryID, Name: *categoryName}
	}
	if inv.Tags == nil {
		inv.Tags = []string{}
	}
	return &inv, nil
}

func toSummary(inv *domain.Inventory) domain.InventorySummary {
	return domain.InventorySummary{
		ID:          inv.ID,
		Name:        inv.Name,
		Description: inv.Description,
		Owner:       inv.Owner,
		Category:    inv.Category,
		IsPublic:    inv.IsPublic,
		Version:     inv.Version,
		Views:       inv.Views,
		ItemCount:   inv.ItemCount,
		Tags:        inv.Tags,
		UpdatedAt:   inv.UpdatedAt,
	}
}

// CreateInventory inserts the inventory and links its tags in one transaction
func (s *Store) CreateInventory(ctx context.Context, inv *domain.Inventory) error {
	ownerID, err := parseID(inv.OwnerID, domain.ErrUserNotFound)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer SafeRollback(ctx, tx)

	var id string
	err = tx.QueryRow(ctx, `
		INSERT INTO inventories (owner_id, name, description, category_id, is_public, version)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING inventory_id::text
	`, ownerID, inv.Name, inv.Description, inv.CategoryID, inv.IsPublic, domain.InitialVersion).Scan(&id)
	if err != nil {
		if c, ok := foreignKeyViolation(err); ok && c == ConstraintInventoryOwnerFK {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to insert inventory: %w", err)
	}

	invID, _ := parseID(id, domain.ErrInventoryNotFound)
	if err := replaceTags(ctx, tx, "inventory_tags", "inventory_id", invID, inv.Tags); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit inventory: %w", err)
	}

	created, err := s.GetInventory(ctx, id)
	if err != nil {
		return err
	}
	*inv = *created
	return nil
}

func (s *Store) GetInventory(ctx context.Context, inventoryID string) (*domain.Inventory, error) {
	id, err := parseID(inventoryID, domain.ErrInventoryNotFound)
	if err != nil {
		return nil, err
	}
	inv, err := scanInventory(s.db.QueryRow(ctx, inventorySelect+` WHERE i.inventory_id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInventoryNotFound
		}
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	return inv, nil
}

func (s *Store) listSummaries(ctx context.Context, query string, args ...any) ([]domain.InventorySummary, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventories: %w", err)
	}
	defer rows.Close()

	out := []domain.InventorySummary{}
	for rows.Next() {
		inv, err := scanInventory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory: %w", err)
		}
		out = append(out, toSummary(inv))
	}
	return out, rows.Err()
}

func (s *Store) ListInventoriesByOwner(ctx context.Context, ownerID string) ([]domain.InventorySummary, error) {
	id, err := parseID(ownerID, domain.ErrUserNotFound)
	if err != nil {
		return nil, err
	}
	return s.listSummaries(ctx, inventorySelect+` WHERE i.owner_id = $1 ORDER BY i.created_at DESC`, id)
}

func (s *Store) ListSharedInventories(ctx context.Context, userID string) ([]domain.InventorySummary, error) {
	id, err := parseID(userID, domain.ErrUserNotFound)
	if err != nil {
		return nil, err
	}
	query := strings.Replace(inventorySelect, "FROM inventories i",
		", ia.access_level FROM inventories i JOIN inventory_access ia ON ia.inventory_id = i.inventory_id", 1)
	rows, err := s.db.Query(ctx, query+` WHERE ia.user_id = $1 ORDER BY ia.created_at DESC`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list shared inventories: %w", err)
	}
	defer rows.Close()

	out := []domain.InventorySummary{}
	for rows.Next() {
		var level string
		inv, err := scanInventory(rows, &level)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory: %w", err)
		}
		sum := toSummary(inv)
		var l domain.AccessLevel
		if err := l.UnmarshalText([]byte(level)); err != nil {
			return nil, err
		}
		sum.AccessLevel = &l
		out = append(out, sum)
	}
	return out, rows.Err()
}

func (s *Store) ListPublicInventories(ctx context.Context, q domain.PublicListing) ([]domain.InventorySummary, error) {
	order := ` ORDER BY i.created_at DESC`
	if q.Sort == domain.PublicSortPopular {
		order = ` ORDER BY i.views DESC, item_count DESC, i.updated_at DESC`
	}
	return s.listSummaries(ctx, inventorySelect+` WHERE i.is_public`+order+` LIMIT $1 OFFSET $2`, q.Limit, q.Offset)
}

func (s *Store) SearchPublicInventories(ctx context.Context, query string, limit int) ([]domain.InventorySummary, error) {
	pattern := "%" + likePattern(strings.TrimSpace(query)) + "%"
	return s.listSummaries(ctx, inventorySelect+`
		WHERE i.is_public AND (i.name ILIKE $1 OR i.description ILIKE $1 OR u.name ILIKE $1)
		ORDER BY i.created_at DESC
		LIMIT $2`, pattern, limit)
}

// IncrementViews bumps the display counter. It is not a versioned mutation.
func (s *Store) IncrementViews(ctx context.Context, inventoryID string) error {
	id, err := parseID(inventoryID, domain.ErrInventoryNotFound)
	if err != nil {
		return err
	}
	n, err := s.q.IncrementInventoryViews(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	if n == 0 {
		return domain.ErrInventoryNotFound
	}
	return nil
}

func (s *Store) GetCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	c, err := s.q.GetCategoryByName(ctx, strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUnknownCategory
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &domain.Category{ID: int(c.CategoryID), Name: c.Name}, nil
}

func (s *Store) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := s.q.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	out := make([]domain.Category, 0, len(rows))
	for _, c := range rows {
		out = append(out, domain.Category{ID: int(c.CategoryID), Name: c.Name})
	}
	return out, nil
}

func (s *Store) ListTags(ctx context.Context, prefix string, limit int) ([]domain.Tag, error) {
	rows, err := s.q.ListTagsByPrefix(ctx, generated.ListTagsByPrefixParams{
		Name:  likePattern(prefix) + "%",
		Limit: limitParam(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	out := make([]domain.Tag, 0, len(rows))
	for _, t := range rows {
		out = append(out, domain.Tag{ID: int(t.TagID), Name: t.Name})
	}
	return out, nil
}
