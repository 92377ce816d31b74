package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/osse101/InventoryHub_Go/internal/domain"
)

func (s *Store) ListFields(ctx context.Context, inventoryID string) ([]domain.FieldConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.fieldsOf(inventoryID), nil
}

func (s *Store) fieldsOf(inventoryID string) []domain.FieldConfig {
	out := []domain.FieldConfig{}
	for _, f := range s.fields {
		if f.InventoryID == inventoryID {
			out = append(out, *f)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].TargetField < out[j].TargetField
	})
	return out
}

func (s *Store) CreateField(ctx context.Context, cfg *domain.FieldConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.inventories[cfg.InventoryID]; !ok {
		return domain.ErrInventoryNotFound
	}
	existing := s.fieldsOf(cfg.InventoryID)
	used := make([]string, 0, len(existing))
	position := 0
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

	row := *cfg
	row.ID = uuid.NewString()
	row.TargetField = slot
	row.Position = position
	s.fields[row.ID] = &row
	*cfg = row
	return nil
}

func (s *Store) GetField(ctx context.Context, fieldID string) (*domain.FieldConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.fields[fieldID]
	if !ok {
		return nil, domain.ErrFieldNotFound
	}
	cp := *f
	return &cp, nil
}

func (s *Store) UpdateField(ctx context.Context, fieldID string, patch domain.FieldConfigPatch) (*domain.FieldConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.fields[fieldID]
	if !ok {
		return nil, domain.ErrFieldNotFound
	}
	patch.Apply(f)
	cp := *f
	return &cp, nil
}

func (s *Store) DeleteField(ctx context.Context, fieldID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.fields[fieldID]
	if !ok {
		return domain.ErrFieldNotFound
	}
	delete(s.fields, fieldID)
	// Values stored in a freed slot are cleared so a later field reusing it starts empty.
	for _, it := range s.items {
		if it.item.InventoryID != f.InventoryID {
			continue
		}
		if _, ok := it.item.Custom[f.TargetField]; ok {
			delete(it.item.Custom, f.TargetField)
			it.item.Version++
			it.item.UpdatedAt = s.now()
		}
	}
	return nil
}
