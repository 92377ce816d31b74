package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/InventoryHub_Go/internal/domain"
)

// slotColumns maps custom slot names to their item columns, e.g. customInt2 -> custom_int2.
var slotColumns = func() map[string]string {
	m := make(map[string]string)
	for _, slot := range domain.AllSlotNames() {
		m[slot] = "custom_" + strings.ToLower(strings.TrimPrefix(slot, "custom")[:1]) + strings.TrimPrefix(slot, "custom")[1:]
	}
	return m
}()

// slotOrder fixes the column order used by the select and scan.
var slotOrder = domain.AllSlotNames()

var itemSelect = func() string {
	cols := make([]string, len(slotOrder))
	for i, slot := range slotOrder {
		cols[i] = "it." + slotColumns[slot]
	}
	return `
	SELECT it.item_id::text, it.inventory_id::text, it.name, it.description, it.version,
	       it.created_at, it.updated_at, ` + strings.Join(cols, ", ") + `,
	       (SELECT COUNT(*) FROM likes l WHERE l.item_id = it.item_id) AS like_count,
	       ARRAY(SELECT t.name FROM item_tags itg JOIN tags t ON t.tag_id = itg.tag_id
	             WHERE itg.item_id = it.item_id ORDER BY t.name) AS tag_names
	FROM items it`
}()

func scanItem(row pgx.Row) (*domain.Item, error) {
	var item domain.Item
	slots := make([]any, len(slotOrder))
	for i, slot := range slotOrder {
		ft, _ := domain.SlotFieldType(slot)
		switch ft {
		case domain.FieldTypeInteger:
			slots[i] = new(*int64)
		case domain.FieldTypeBoolean:
			slots[i] = new(*bool)
		default:
			slots[i] = new(*string)
		}
	}

	dest := []any{&item.ID, &item.InventoryID, &item.Name, &item.Description, &item.Version,
		&item.CreatedAt, &item.UpdatedAt}
	dest = append(dest, slots...)
	dest = append(dest, &item.LikeCount, &item.Tags)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	item.Custom = domain.SlotValues{}
	for i, slot := range slotOrder {
		switch p := slots[i].(type) {
		case **int64:
			if *p != nil {
				item.Custom[slot] = **p
			}
		case **bool:
			if *p != nil {
				item.Custom[slot] = **p
			}
		case **string:
			if *p != nil {
				item.Custom[slot] = **p
			}
		}
	}
	if item.Tags == nil {
		item.Tags = []string{}
	}
	return &item, nil
}

// CreateItem inserts the item with its custom values and tags in one transaction
func (s *Store) CreateItem(ctx context.Context, item *domain.Item) error {
	invID, err := parseID(item.InventoryID, domain.ErrInventoryNotFound)
	if err != nil {
		return err
	}

	cols := []string{"inventory_id", "name", "description", "version"}
	args := []any{invID, item.Name, item.Description, domain.InitialVersion}
	for slot, v := range item.Custom {
		col, ok := slotColumns[slot]
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrUnknownSlot, slot)
		}
		cols = append(cols, col)
		args = append(args, v)
	}
	placeholders := make([]string, len(args))
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer SafeRollback(ctx, tx)

	var id string
	err = tx.QueryRow(ctx, fmt.Sprintf(`INSERT INTO items (%s) VALUES (%s) RETURNING item_id::text`,
		strings.Join(cols, ", "), strings.Join(placeholders, ", ")), args...).Scan(&id)
	if err != nil {
		if _, ok := foreignKeyViolation(err); ok {
			return domain.ErrInventoryNotFound
		}
		return fmt.Errorf("failed to insert item: %w", err)
	}

	itemID, _ := parseID(id, domain.ErrItemNotFound)
	if err := replaceTags(ctx, tx, "item_tags", "item_id", itemID, item.Tags); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit item: %w", err)
	}

	created, err := s.GetItem(ctx, id)
	if err != nil {
		return err
	}
	*item = *created
	return nil
}

func (s *Store) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	id, err := parseID(itemID, domain.ErrItemNotFound)
	if err != nil {
		return nil, err
	}
	item, err := scanItem(s.db.QueryRow(ctx, itemSelect+` WHERE it.item_id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

func (s *Store) ListItems(ctx context.Context, inventoryID string) ([]domain.Item, error) {
	id, err := parseID(inventoryID, domain.ErrInventoryNotFound)
	if err != nil {
		return nil, err
	}
	rows, err := s.db.Query(ctx, itemSelect+` WHERE it.inventory_id = $1 ORDER BY it.created_at DESC`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	out := []domain.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		out = append(out, *item)
	}
	return out, rows.Err()
}
