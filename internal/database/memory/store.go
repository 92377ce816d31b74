// Package memory is an in-process implementation of the entity store.
// It honors the same contracts as the PostgreSQL store (unique keys, conditional
// writes, cascades) and backs DB_DRIVER=memory and service tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/InventoryHub_Go/internal/domain"
	"github.com/osse101/InventoryHub_Go/internal/repository"
)

var _ repository.Store = (*Store)(nil)

type grantKey struct{ inventoryID, userID string }

type likeKey struct{ userID, itemID string }

type likeRow struct {
	createdAt time.Time
	seq       int64
}

type inventoryRow struct {
	inv domain.Inventory
	seq int64
}

type itemRow struct {
	item domain.Item
	seq  int64
}

// Store keeps every entity in maps behind a single mutex.
type Store struct {
	mu  sync.Mutex
	seq int64
	now func() time.Time

	users      map[string]*domain.User
	emailIndex map[string]string

	categories []domain.Category
	tags       map[string]int
	nextTagID  int

	inventories map[string]*inventoryRow
	grants      map[grantKey]*domain.InventoryAccess
	items       map[string]*itemRow
	fields      map[string]*domain.FieldConfig
	posts       map[string][]domain.Post
	likes       map[likeKey]likeRow
}

// NewStore creates an empty store seeded with the default categories.
func NewStore() *Store {
	s := &Store{
		now:         time.Now,
		users:       make(map[string]*domain.User),
		emailIndex:  make(map[string]string),
		tags:        make(map[string]int),
		inventories: make(map[string]*inventoryRow),
		grants:      make(map[grantKey]*domain.InventoryAccess),
		items:       make(map[string]*itemRow),
		fields:      make(map[string]*domain.FieldConfig),
		posts:       make(map[string][]domain.Post),
		likes:       make(map[likeKey]likeRow),
	}
	for i, name := range domain.DefaultCategories {
		s.categories = append(s.categories, domain.Category{ID: i + 1, Name: name})
	}
	return s
}

// Ping lets the readiness probe report the memory backend like any other store.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) nextSeq() int64 {
	s.seq++
	return s.seq
}

// ---- Users ----

func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := domain.NormalizeEmail(user.Email)
	if _, ok := s.emailIndex[email]; ok {
		return domain.ErrEmailTaken
	}
	u := *user
	u.ID = uuid.NewString()
	u.Email = email
	u.CreatedAt = s.now()
	s.users[u.ID] = &u
	s.emailIndex[email] = u.ID
	*user = u
	return nil
}

func (s *Store) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.emailIndex[domain.NormalizeEmail(email)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *s.users[id]
	return &cp, nil
}

func (s *Store) SearchUsers(ctx context.Context, query string, limit int) ([]domain.UserSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	out := []domain.UserSummary{}
	for _, u := range s.users {
		if strings.HasPrefix(u.Email, q) || strings.HasPrefix(strings.ToLower(u.Name), q) {
			out = append(out, u.Summary())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) userSummary(userID string) domain.UserSummary {
	if u, ok := s.users[userID]; ok {
		return u.Summary()
	}
	return domain.UserSummary{ID: userID}
}

// ---- Categories & tags ----

func (s *Store) GetCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if strings.EqualFold(c.Name, strings.TrimSpace(name)) {
			cp := c
			return &cp, nil
		}
	}
	return nil, domain.ErrUnknownCategory
}

func (s *Store) ListCategories(ctx context.Context) ([]domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]domain.Category(nil), s.categories...), nil
}

func (s *Store) ListTags(ctx context.Context, prefix string, limit int) ([]domain.Tag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []domain.Tag{}
	for name, id := range s.tags {
		if strings.HasPrefix(strings.ToLower(name), strings.ToLower(prefix)) {
			out = append(out, domain.Tag{ID: id, Name: name})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// attachTags registers unknown tag names. Caller must hold the mutex.
func (s *Store) attachTags(names []string) []string {
	names = domain.NormalizeTags(names)
	for _, n := range names {
		if _, ok := s.tags[n]; !ok {
			s.nextTagID++
			s.tags[n] = s.nextTagID
		}
	}
	return names
}

func (s *Store) categoryByID(id *int) *domain.Category {
	if id == nil {
		return nil
	}
	for _, c := range s.categories {
		if c.ID == *id {
			cp := c
			return &cp
		}
	}
	return nil
}
