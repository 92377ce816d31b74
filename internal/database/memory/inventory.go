package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/osse101/InventoryHub_Go/internal/domain"
)

func (s *Store) CreateInventory(ctx context.Context, inv *domain.Inventory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[inv.OwnerID]; !ok {
		return domain.ErrUserNotFound
	}
	row := *inv
	row.ID = uuid.NewString()
	row.Version = domain.InitialVersion
	row.Views = 0
	row.Tags = s.attachTags(inv.Tags)
	row.CreatedAt = s.now()
	row.UpdatedAt = row.CreatedAt
	s.inventories[row.ID] = &inventoryRow{inv: row, seq: s.nextSeq()}

	*inv = s.hydrateInventory(&row)
	return nil
}

func (s *Store) GetInventory(ctx context.Context, inventoryID string) (*domain.Inventory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.inventories[inventoryID]
	if !ok {
		return nil, domain.ErrInventoryNotFound
	}
	inv := s.hydrateInventory(&row.inv)
	return &inv, nil
}

// hydrateInventory fills the joined fields. Caller must hold the mutex.
func (s *Store) hydrateInventory(inv *domain.Inventory) domain.Inventory {
	out := *inv
	out.Tags = append([]string{}, inv.Tags...)
	out.Owner = s.userSummary(inv.OwnerID)
	out.Category = s.categoryByID(inv.CategoryID)
	out.ItemCount = s.itemCount(inv.ID)
	return out
}

func (s *Store) itemCount(inventoryID string) int {
	n := 0
	for _, it := range s.items {
		if it.item.InventoryID == inventoryID {
			n++
		}
	}
	return n
}

func (s *Store) summary(row *inventoryRow) domain.InventorySummary {
	inv := s.hydrateInventory(&row.inv)
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

func (s *Store) ListInventoriesByOwner(ctx context.Context, ownerID string) ([]domain.InventorySummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.collect(func(r *inventoryRow) bool { return r.inv.OwnerID == ownerID })
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq > rows[j].seq })
	return s.summaries(rows), nil
}

func (s *Store) ListSharedInventories(ctx context.Context, userID string) ([]domain.InventorySummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	levels := make(map[string]domain.AccessLevel)
	for k, g := range s.grants {
		if k.userID == userID {
			levels[k.inventoryID] = g.Level
		}
	}
	rows := s.collect(func(r *inventoryRow) bool {
		_, ok := levels[r.inv.ID]
		return ok
	})
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq > rows[j].seq })

	out := s.summaries(rows)
	for i := range out {
		l := levels[out[i].ID]
		out[i].AccessLevel = &l
	}
	return out, nil
}

func (s *Store) ListPublicInventories(ctx context.Context, q domain.PublicListing) ([]domain.InventorySummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.collect(func(r *inventoryRow) bool { return r.inv.IsPublic })
	if q.Sort == domain.PublicSortPopular {
		sort.Slice(rows, func(i, j int) bool {
			a, b := rows[i], rows[j]
			if a.inv.Views != b.inv.Views {
				return a.inv.Views > b.inv.Views
			}
			if ca, cb := s.itemCount(a.inv.ID), s.itemCount(b.inv.ID); ca != cb {
				return ca > cb
			}
			return a.inv.UpdatedAt.After(b.inv.UpdatedAt)
		})
	} else {
		sort.Slice(rows, func(i, j int) bool { return rows[i].seq > rows[j].seq })
	}
	return s.summaries(page(rows, q.Offset, q.Limit)), nil
}

func (s *Store) SearchPublicInventories(ctx context.Context, query string, limit int) ([]domain.InventorySummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	rows := s.collect(func(r *inventoryRow) bool {
		if !r.inv.IsPublic {
			return false
		}
		owner := s.userSummary(r.inv.OwnerID)
		return strings.Contains(strings.ToLower(r.inv.Name), q) ||
			strings.Contains(strings.ToLower(r.inv.Description), q) ||
			strings.Contains(strings.ToLower(owner.Name), q)
	})
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq > rows[j].seq })
	return s.summaries(page(rows, 0, limit)), nil
}

func (s *Store) IncrementViews(ctx context.Context, inventoryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.inventories[inventoryID]
	if !ok {
		return domain.ErrInventoryNotFound
	}
	row.inv.Views++
	return nil
}

func (s *Store) collect(keep func(*inventoryRow) bool) []*inventoryRow {
	var rows []*inventoryRow
	for _, r := range s.inventories {
		if keep(r) {
			rows = append(rows, r)
		}
	}
	return rows
}

func (s *Store) summaries(rows []*inventoryRow) []domain.InventorySummary {
	out := make([]domain.InventorySummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, s.summary(r))
	}
	return out
}

func page[T any](rows []T, offset, limit int) []T {
	if offset >= len(rows) {
		return nil
	}
	rows = rows[offset:]
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// deleteInventory removes the inventory and everything hanging off it. Caller must hold the mutex.
func (s *Store) deleteInventory(inventoryID string) {
	delete(s.inventories, inventoryID)
	for id, it := range s.items {
		if it.item.InventoryID == inventoryID {
			s.deleteItem(id)
		}
	}
	for k := range s.grants {
		if k.inventoryID == inventoryID {
			delete(s.grants, k)
		}
	}
	for id, f := range s.fields {
		if f.InventoryID == inventoryID {
			delete(s.fields, id)
		}
	}
	delete(s.posts, inventoryID)
}
