package memory

import (
	"context"
	"fmt"

	"github.com/osse101/InventoryHub_Go/internal/domain"
)

func (s *Store) UpdateIfVersion(ctx context.Context, kind domain.EntityKind, id string, expected int, patch domain.Patch) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch p := patch.(type) {
	case domain.InventoryPatch:
		row, ok := s.inventories[id]
		if kind != domain.EntityInventory {
			return 0, domain.ErrUnsupportedEntityKind
		}
		if !ok || row.inv.Version != expected {
			return 0, domain.ErrVersionConflict
		}
		applyInventoryPatch(&row.inv, p, s.attachTags)
		row.inv.Version++
		row.inv.UpdatedAt = s.now()
		return row.inv.Version, nil

	case domain.ItemPatch:
		row, ok := s.items[id]
		if kind != domain.EntityItem {
			return 0, domain.ErrUnsupportedEntityKind
		}
		if !ok || row.item.Version != expected {
			return 0, domain.ErrVersionConflict
		}
		applyItemPatch(&row.item, p, s.attachTags)
		row.item.Version++
		row.item.UpdatedAt = s.now()
		return row.item.Version, nil
	}
	return 0, fmt.Errorf("%w: %T", domain.ErrUnsupportedEntityKind, patch)
}

func (s *Store) DeleteIfVersion(ctx context.Context, kind domain.EntityKind, id string, expected int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case domain.EntityInventory:
		row, ok := s.inventories[id]
		if !ok || row.inv.Version != expected {
			return domain.ErrVersionConflict
		}
		s.deleteInventory(id)
		return nil
	case domain.EntityItem:
		row, ok := s.items[id]
		if !ok || row.item.Version != expected {
			return domain.ErrVersionConflict
		}
		s.deleteItem(id)
		return nil
	}
	return fmt.Errorf("%w: %s", domain.ErrUnsupportedEntityKind, kind)
}

func (s *Store) Exists(ctx context.Context, kind domain.EntityKind, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case domain.EntityInventory:
		_, ok := s.inventories[id]
		return ok, nil
	case domain.EntityItem:
		_, ok := s.items[id]
		return ok, nil
	}
	return false, fmt.Errorf("%w: %s", domain.ErrUnsupportedEntityKind, kind)
}

func applyInventoryPatch(inv *domain.Inventory, p domain.InventoryPatch, tags func([]string) []string) {
	if p.Name != nil {
		inv.Name = *p.Name
	}
	if p.Description != nil {
		inv.Description = *p.Description
	}
	if p.CategoryID != nil {
		id := *p.CategoryID
		inv.CategoryID = &id
	}
	if p.IsPublic != nil {
		inv.IsPublic = *p.IsPublic
	}
	if p.Tags != nil {
		inv.Tags = tags(*p.Tags)
	}
}

func applyItemPatch(it *domain.Item, p domain.ItemPatch, tags func([]string) []string) {
	if p.Name != nil {
		it.Name = *p.Name
	}
	if p.Description != nil {
		it.Description = *p.Description
	}
	if it.Custom == nil {
		it.Custom = domain.SlotValues{}
	}
	for slot, v := range p.Custom {
		if v == nil {
			delete(it.Custom, slot)
			continue
		}
		it.Custom[slot] = v
	}
	if p.Tags != nil {
		it.Tags = tags(*p.Tags)
	}
}
