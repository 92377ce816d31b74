package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/osse101/InventoryHub_Go/internal/domain"
)

// ---- Grants ----

func (s *Store) GetInventoryACL(ctx context.Context, inventoryID string) (*domain.InventoryACL, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.inventories[inventoryID]
	if !ok {
		return nil, domain.ErrInventoryNotFound
	}
	acl := row.inv.ACL()
	return &acl, nil
}

func (s *Store) GetGrantLevel(ctx context.Context, inventoryID, userID string) (domain.AccessLevel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g, ok := s.grants[grantKey{inventoryID, userID}]; ok {
		return g.Level, nil
	}
	return domain.LevelNone, nil
}

func (s *Store) ListGrants(ctx context.Context, inventoryID string) ([]domain.InventoryAccess, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []domain.InventoryAccess{}
	for k, g := range s.grants {
		if k.inventoryID == inventoryID {
			cp := *g
			u := s.userSummary(k.userID)
			cp.UserName, cp.UserEmail = u.Name, u.Email
			out = append(out, cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) UpsertGrant(ctx context.Context, grant *domain.InventoryAccess) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.inventories[grant.InventoryID]; !ok {
		return domain.ErrInventoryNotFound
	}
	u, ok := s.users[grant.UserID]
	if !ok {
		return domain.ErrUserNotFound
	}
	key := grantKey{grant.InventoryID, grant.UserID}
	if existing, ok := s.grants[key]; ok {
		existing.Level = grant.Level
	} else {
		s.grants[key] = &domain.InventoryAccess{
			InventoryID: grant.InventoryID,
			UserID:      grant.UserID,
			Level:       grant.Level,
			CreatedAt:   s.now(),
		}
	}
	*grant = *s.grants[key]
	grant.UserName, grant.UserEmail = u.Name, u.Email
	return nil
}

func (s *Store) DeleteGrant(ctx context.Context, inventoryID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := grantKey{inventoryID, userID}
	if _, ok := s.grants[key]; !ok {
		return domain.ErrGrantNotFound
	}
	delete(s.grants, key)
	return nil
}

// ---- Posts ----

func (s *Store) CreatePost(ctx context.Context, post *domain.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.inventories[post.InventoryID]; !ok {
		return domain.ErrInventoryNotFound
	}
	if _, ok := s.users[post.AuthorID]; !ok {
		return domain.ErrUserNotFound
	}
	p := *post
	p.ID = uuid.NewString()
	p.CreatedAt = s.now()
	p.Author = s.userSummary(p.AuthorID)
	s.posts[p.InventoryID] = append(s.posts[p.InventoryID], p)
	*post = p
	return nil
}

func (s *Store) ListRecentPosts(ctx context.Context, inventoryID string, limit int) ([]domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.posts[inventoryID]
	if limit > 0 && len(all) > limit {
		all = all[len(all)-limit:]
	}
	return append([]domain.Post{}, all...), nil
}

// ---- Likes ----

func (s *Store) CreateLike(ctx context.Context, userID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[itemID]; !ok {
		return domain.ErrItemNotFound
	}
	key := likeKey{userID, itemID}
	if _, ok := s.likes[key]; ok {
		return domain.ErrAlreadyLiked
	}
	s.likes[key] = likeRow{createdAt: s.now(), seq: s.nextSeq()}
	return nil
}

func (s *Store) DeleteLike(ctx context.Context, userID, itemID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := likeKey{userID, itemID}
	if _, ok := s.likes[key]; !ok {
		return false, nil
	}
	delete(s.likes, key)
	return true, nil
}

func (s *Store) CountLikes(ctx context.Context, itemID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for k := range s.likes {
		if k.itemID == itemID {
			n++
		}
	}
	return n, nil
}

func (s *Store) HasLiked(ctx context.Context, userID, itemID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.likes[likeKey{userID, itemID}]
	return ok, nil
}

func (s *Store) ListRecentLikes(ctx context.Context, itemID string, limit int) ([]domain.Like, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	type entry struct {
		key likeKey
		row likeRow
	}
	var entries []entry
	for k, r := range s.likes {
		if k.itemID == itemID {
			entries = append(entries, entry{k, r})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].row.seq > entries[j].row.seq })
	entries = page(entries, 0, limit)

	out := make([]domain.Like, 0, len(entries))
	for _, e := range entries {
		out = append(out, domain.Like{
			UserID:    e.key.userID,
			ItemID:    e.key.itemID,
			User:      s.userSummary(e.key.userID),
			CreatedAt: e.row.createdAt,
		})
	}
	return out, nil
}
