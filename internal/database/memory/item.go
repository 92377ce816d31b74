package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/osse101/InventoryHub_Go/internal/domain"
)

func (s *Store) CreateItem(ctx context.Context, item *domain.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.inventories[item.InventoryID]; !ok {
		return domain.ErrInventoryNotFound
	}
	row := *item
	row.ID = uuid.NewString()
	row.Version = domain.InitialVersion
	row.Custom = copySlots(item.Custom)
	row.Tags = s.attachTags(item.Tags)
	row.CreatedAt = s.now()
	row.UpdatedAt = row.CreatedAt
	s.items[row.ID] = &itemRow{item: row, seq: s.nextSeq()}

	*item = s.hydrateItem(&row)
	return nil
}

func (s *Store) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.items[itemID]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	it := s.hydrateItem(&row.item)
	return &it, nil
}

func (s *Store) ListItems(ctx context.Context, inventoryID string) ([]domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rows []*itemRow
	for _, r := range s.items {
		if r.item.InventoryID == inventoryID {
			rows = append(rows, r)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq > rows[j].seq })

	out := make([]domain.Item, 0, len(rows))
	for _, r := range rows {
		out = append(out, s.hydrateItem(&r.item))
	}
	return out, nil
}

func (s *Store) hydrateItem(it *domain.Item) domain.Item {
	out := *it
	out.Custom = copySlots(it.Custom)
	out.Tags = append([]string{}, it.Tags...)
	out.LikeCount = 0
	for k := range s.likes {
		if k.itemID == it.ID {
			out.LikeCount++
		}
	}
	return out
}

// deleteItem removes the item and its likes. Caller must hold the mutex.
func (s *Store) deleteItem(itemID string) {
	delete(s.items, itemID)
	for k := range s.likes {
		if k.itemID == itemID {
			delete(s.likes, k)
		}
	}
}

func copySlots(in domain.SlotValues) domain.SlotValues {
	out := make(domain.SlotValues, len(in))
	for k, v := range in {
		if v != nil {
			out[k] = v
		}
	}
	return out
}
