package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/InventoryHub_Go/internal/database/generated"
	"github.com/osse101/InventoryHub_Go/internal/domain"
)

func toDomainField(f generated.CustomFieldConfig) domain.FieldConfig {
	return domain.FieldConfig{
		ID:               f.FieldID.String(),
		InventoryID:      f.InventoryID.String(),
		FieldType:        domain.FieldType(f.FieldType),
		TargetField:      f.TargetField,
		Name:             f.Name,
		Description:      f.Description,
		IsRequired:       f.IsRequired,
		IsVisibleInTable: f.IsVisibleInTable,
		Position:         int(f.Position),
	}
}

func (s *Store) ListFields(ctx context.Context, inventoryID string) ([]domain.FieldConfig, error) {
	id, err := parseID(inventoryID, domain.ErrInventoryNotFound)
	if err != nil {
		return nil, err
	}
	rows, err := s.q.ListFields(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list fields: %w", err)
	}
	out := make([]domain.FieldConfig, 0, len(rows))
	for _, r := range rows {
		out = append(out, toDomainField(r))
	}
	return out, nil
}

// CreateField picks the lowest free slot and inserts the config after the last
// position. The inventory row is locked for the transaction, so concurrent creators
// on one inventory see each other's slots and positions.
func (s *Store) CreateField(ctx context.Context, cfg *domain.FieldConfig) error {
	invID, err := parseID(cfg.InventoryID, domain.ErrInventoryNotFound)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer SafeRollback(ctx, tx)
	qtx := s.q.WithTx(tx)

	if _, err := qtx.LockInventoryFields(ctx, invID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrInventoryNotFound
		}
		return fmt.Errorf("failed to lock inventory: %w", err)
	}
	existing, err := qtx.ListFields(ctx, invID)
	if err != nil {
		return fmt.Errorf("failed to list fields: %w", err)
	}

	used := make([]string, 0, len(existing))
	var position int32
	for _, f := range existing {
		used = append(used, f.TargetField)
		if f.Position >= position {
			position = f.Position + 1
		}
	}
	slot, ok := domain.FreeSlot(cfg.FieldType, used)
	if !ok {
		return domain.ErrSlotsExhausted
	}

	created, err := qtx.InsertField(ctx, generated.InsertFieldParams{
		InventoryID:      invID,
		FieldType:        string(cfg.FieldType),
		TargetField:      slot,
		Name:             cfg.Name,
		Description:      cfg.Description,
		IsRequired:       cfg.IsRequired,
		IsVisibleInTable: cfg.IsVisibleInTable,
		Position:         position,
	})
	if err != nil {
		if isUniqueViolation(err, ConstraintFieldSlot) {
			return fmt.Errorf("%w: slot %s", domain.ErrDuplicateKey, slot)
		}
		return fmt.Errorf("failed to insert field: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit field: %w", err)
	}
	*cfg = toDomainField(created)
	return nil
}

func (s *Store) GetField(ctx context.Context, fieldID string) (*domain.FieldConfig, error) {
	id, err := parseID(fieldID, domain.ErrFieldNotFound)
	if err != nil {
		return nil, err
	}
	f, err := s.q.GetField(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFieldNotFound
		}
		return nil, fmt.Errorf("failed to get field: %w", err)
	}
	out := toDomainField(f)
	return &out, nil
}

func (s *Store) UpdateField(ctx context.Context, fieldID string, patch domain.FieldConfigPatch) (*domain.FieldConfig, error) {
	id, err := parseID(fieldID, domain.ErrFieldNotFound)
	if err != nil {
		return nil, err
	}
	f, err := s.q.UpdateField(ctx, generated.UpdateFieldParams{
		Name:             textParam(patch.Name),
		Description:      textParam(patch.Description),
		IsRequired:       boolParam(patch.IsRequired),
		IsVisibleInTable: boolParam(patch.IsVisibleInTable),
		FieldID:          id,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFieldNotFound
		}
		return nil, fmt.Errorf("failed to update field: %w", err)
	}
	out := toDomainField(f)
	return &out, nil
}

// DeleteField removes the config and clears the freed slot on the inventory's items,
// bumping the version of every item that held a value.
func (s *Store) DeleteField(ctx context.Context, fieldID string) error {
	id, err := parseID(fieldID, domain.ErrFieldNotFound)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer SafeRollback(ctx, tx)

	deleted, err := s.q.WithTx(tx).DeleteField(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrFieldNotFound
		}
		return fmt.Errorf("failed to delete field: %w", err)
	}

	col, ok := slotColumns[deleted.TargetField]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownSlot, deleted.TargetField)
	}
	_, err = tx.Exec(ctx, fmt.Sprintf(`
		UPDATE items SET %[1]s = NULL, version = version + 1, updated_at = NOW()
		WHERE inventory_id = $1 AND %[1]s IS NOT NULL`, col), deleted.InventoryID)
	if err != nil {
		return fmt.Errorf("failed to clear field values: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit field delete: %w", err)
	}
	return nil
}
