package versioning

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InventoryHub_Go/internal/database/memory"
	"github.com/osse101/InventoryHub_Go/internal/domain"
	"github.com/osse101/InventoryHub_Go/mocks"
)

func ptr[T any](v T) *T { return &v }

func seed(t *testing.T) (*memory.Store, *domain.Inventory, *domain.Item) {
	t.Helper()
	ctx := context.Background()
	s := memory.NewStore()
	owner := &domain.User{Email: "owner@example.com", Name: "Owner"}
	require.NoError(t, s.CreateUser(ctx, owner))
	inv := &domain.Inventory{Name: "Garage", OwnerID: owner.ID}
	require.NoError(t, s.CreateInventory(ctx, inv))
	item := &domain.Item{InventoryID: inv.ID, Name: "Drill"}
	require.NoError(t, s.CreateItem(ctx, item))
	return s, inv, item
}

func TestUpdateWithVersion_RequiresVersionBeforeStoreAccess(t *testing.T) {
	repo := mocks.NewMockVersioned(t)
	c := NewController(repo)

	_, err := c.UpdateWithVersion(context.Background(), domain.EntityItem, "id", nil, domain.ItemPatch{Name: ptr("x")})
	assert.ErrorIs(t, err, domain.ErrVersionRequired)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	err = c.DeleteWithVersion(context.Background(), domain.EntityItem, "id", nil)
	assert.ErrorIs(t, err, domain.ErrVersionRequired)

	repo.AssertNotCalled(t, "UpdateIfVersion", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "DeleteIfVersion", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateWithVersion_EmptyPatch(t *testing.T) {
	c := NewController(mocks.NewMockVersioned(t))

	_, err := c.UpdateWithVersion(context.Background(), domain.EntityInventory, "id", ptr(1), domain.InventoryPatch{})
	assert.ErrorIs(t, err, domain.ErrNothingToUpdate)
}

func TestUpdateWithVersion(t *testing.T) {
	s, inv, item := seed(t)
	c := NewController(s)
	ctx := context.Background()

	tests := []struct {
		name     string
		kind     domain.EntityKind
		id       string
		expected int
		patch    domain.Patch
		wantKind domain.ErrorKind
		wantVer  int
	}{
		{"stale inventory", domain.EntityInventory, inv.ID, 5, domain.InventoryPatch{Name: ptr("x")}, domain.KindConflict, 0},
		{"missing inventory", domain.EntityInventory, "missing", 1, domain.InventoryPatch{Name: ptr("x")}, domain.KindNotFound, 0},
		{"missing item", domain.EntityItem, "missing", 1, domain.ItemPatch{Name: ptr("x")}, domain.KindNotFound, 0},
		{"inventory ok", domain.EntityInventory, inv.ID, 1, domain.InventoryPatch{Name: ptr("Shed")}, 0, 2},
		{"item ok", domain.EntityItem, item.ID, 1, domain.ItemPatch{Description: ptr("cordless")}, 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := c.UpdateWithVersion(ctx, tt.kind, tt.id, &tt.expected, tt.patch)
			if tt.wantVer == 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, domain.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantVer, out.NewVersion)
		})
	}

	got, err := s.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "cordless", got.Description)
	assert.Equal(t, 2, got.Version)
}

func TestUpdateWithVersion_MismatchedPatch(t *testing.T) {
	c := NewController(mocks.NewMockVersioned(t))

	_, err := c.UpdateWithVersion(context.Background(), domain.EntityInventory, "id", ptr(1), domain.ItemPatch{Name: ptr("x")})
	assert.ErrorIs(t, err, domain.ErrUnsupportedEntityKind)
}

func TestUpdateWithVersion_ConcurrentWritersOneWins(t *testing.T) {
	s, _, item := seed(t)
	c := NewController(s)

	const writers = 8
	var wg sync.WaitGroup
	results := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = c.UpdateWithVersion(context.Background(), domain.EntityItem, item.ID, ptr(1), domain.ItemPatch{Name: ptr("writer")})
		}(i)
	}
	wg.Wait()

	wins, conflicts := 0, 0
	for _, err := range results {
		switch domain.KindOf(err) {
		case domain.KindConflict:
			conflicts++
		default:
			if err == nil {
				wins++
			}
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, writers-1, conflicts)

	got, err := s.GetItem(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Version)
}

func TestDeleteWithVersion(t *testing.T) {
	s, inv, item := seed(t)
	c := NewController(s)
	ctx := context.Background()

	err := c.DeleteWithVersion(ctx, domain.EntityItem, item.ID, ptr(3))
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))

	require.NoError(t, c.DeleteWithVersion(ctx, domain.EntityItem, item.ID, ptr(1)))

	err = c.DeleteWithVersion(ctx, domain.EntityItem, item.ID, ptr(1))
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	require.NoError(t, c.DeleteWithVersion(ctx, domain.EntityInventory, inv.ID, ptr(1)))
	err = c.DeleteWithVersion(ctx, domain.EntityInventory, inv.ID, ptr(1))
	assert.ErrorIs(t, err, domain.ErrInventoryNotFound)
}

func TestExistsFailureIsReported(t *testing.T) {
	repo := mocks.NewMockVersioned(t)
	repo.On("DeleteIfVersion", mock.Anything, domain.EntityItem, "id", 1).Return(domain.ErrVersionConflict)
	repo.On("Exists", mock.Anything, domain.EntityItem, "id").Return(false, assert.AnError)

	err := NewController(repo).DeleteWithVersion(context.Background(), domain.EntityItem, "id", ptr(1))
	assert.ErrorIs(t, err, assert.AnError)
}
