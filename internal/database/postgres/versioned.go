package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/osse101/InventoryHub_Go/internal/domain"
)

type versionedTable struct {
	table    string
	idColumn string
	notFound error
	tagLinks string
}

var versionedTables = map[domain.EntityKind]versionedTable{
	domain.EntityInventory: {table: "inventories", idColumn: "inventory_id", notFound: domain.ErrInventoryNotFound, tagLinks: "inventory_tags"},
	domain.EntityItem:      {table: "items", idColumn: "item_id", notFound: domain.ErrItemNotFound, tagLinks: "item_tags"},
}

func lookupTable(kind domain.EntityKind) (versionedTable, error) {
	t, ok := versionedTables[kind]
	if !ok {
		return versionedTable{}, fmt.Errorf("%w: %s", domain.ErrUnsupportedEntityKind, kind)
	}
	return t, nil
}

// setClause accumulates assignments for a dynamic UPDATE
type setClause struct {
	assignments []string
	args        []any
}

func (c *setClause) add(column string, value any) {
	c.args = append(c.args, value)
	c.assignments = append(c.assignments, fmt.Sprintf("%s = $%d", column, len(c.args)))
}

func patchAssignments(patch domain.Patch) (*setClause, *[]string, error) {
	c := &setClause{}
	switch p := patch.(type) {
	case domain.InventoryPatch:
		if p.Name != nil {
			c.add("name", *p.Name)
		}
		if p.Description != nil {
			c.add("description", *p.Description)
		}
		if p.CategoryID != nil {
			c.add("category_id", *p.CategoryID)
		}
		if p.IsPublic != nil {
			c.add("is_public", *p.IsPublic)
		}
		return c, p.Tags, nil
	case domain.ItemPatch:
		if p.Name != nil {
			c.add("name", *p.Name)
		}
		if p.Description != nil {
			c.add("description", *p.Description)
		}
		for slot, v := range p.Custom {
			col, ok := slotColumns[slot]
			if !ok {
				return nil, nil, fmt.Errorf("%w: %s", domain.ErrUnknownSlot, slot)
			}
			c.add(col, v)
		}
		return c, p.Tags, nil
	default:
		return nil, nil, fmt.Errorf("%w: %T", domain.ErrUnsupportedEntityKind, patch)
	}
}

// UpdateIfVersion applies the patch with a single conditional UPDATE. The version
// predicate and increment happen in the same statement, so of two writers holding the
// same version exactly one matches a row.
func (s *Store) UpdateIfVersion(ctx context.Context, kind domain.EntityKind, id string, expected int, patch domain.Patch) (int, error) {
	t, err := lookupTable(kind)
	if err != nil {
		return 0, err
	}
	if patch.Kind() != kind {
		return 0, fmt.Errorf("%w: %s patch for %s", domain.ErrUnsupportedEntityKind, patch.Kind(), kind)
	}
	entityID, err := uuid.Parse(id)
	if err != nil {
		// A malformed id cannot match a row.
		return 0, domain.ErrVersionConflict
	}

	set, tags, err := patchAssignments(patch)
	if err != nil {
		return 0, err
	}
	set.assignments = append(set.assignments, "version = version + 1", "updated_at = NOW()")
	set.args = append(set.args, entityID, expected)
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $%d AND version = $%d RETURNING version`,
		t.table, strings.Join(set.assignments, ", "), t.idColumn, len(set.args)-1, len(set.args))

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer SafeRollback(ctx, tx)

	var version int
	if err := tx.QueryRow(ctx, query, set.args...).Scan(&version); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrVersionConflict
		}
		return 0, fmt.Errorf("failed to update %s: %w", kind, err)
	}

	if tags != nil {
		if err := replaceTags(ctx, tx, t.tagLinks, t.idColumn, entityID, *tags); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit %s update: %w", kind, err)
	}
	return version, nil
}

// DeleteIfVersion removes the row only when its version matches. Children cascade.
func (s *Store) DeleteIfVersion(ctx context.Context, kind domain.EntityKind, id string, expected int) error {
	t, err := lookupTable(kind)
	if err != nil {
		return err
	}
	entityID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrVersionConflict
	}
	tag, err := s.db.Exec(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND version = $2`, t.table, t.idColumn),
		entityID, expected)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", kind, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVersionConflict
	}
	return nil
}

func (s *Store) Exists(ctx context.Context, kind domain.EntityKind, id string) (bool, error) {
	t, err := lookupTable(kind)
	if err != nil {
		return false, err
	}
	entityID, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}
	var exists bool
	err = s.db.QueryRow(ctx,
		fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, t.table, t.idColumn),
		entityID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check %s existence: %w", kind, err)
	}
	return exists, nil
}
