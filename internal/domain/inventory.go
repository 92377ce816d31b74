package domain

import (
	"strings"
	"time"
)

// Category is a fixed classification an inventory can be filed under.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DefaultCategories are seeded into every store.
var DefaultCategories = []string{"Equipment", "Furniture", "Book", "Other"}

// Tag is a free-form label shared by inventories and items. Names are unique.
type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Inventory is a named, owned collection of items.
type Inventory struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	OwnerID     string      `json:"ownerId"`
	Owner       UserSummary `json:"owner"`
	CategoryID  *int        `json:"categoryId,omitempty"`
	Category    *Category   `json:"category,omitempty"`
	IsPublic    bool        `json:"isPublic"`
	Version     int         `json:"version"`
	Views       int         `json:"views"`
	Tags        []string    `json:"tags"`
	ItemCount   int         `json:"itemCount"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// ACL returns the access-relevant projection of the inventory.
func (i *Inventory) ACL() InventoryACL {
	return InventoryACL{InventoryID: i.ID, OwnerID: i.OwnerID, IsPublic: i.IsPublic}
}

// InventorySummary is the row shape of inventory listings.
type InventorySummary struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Owner       UserSummary `json:"owner"`
	Category    *Category   `json:"category,omitempty"`
	IsPublic    bool        `json:"isPublic"`
	Version     int         `json:"version"`
	Views       int         `json:"views"`
	ItemCount   int         `json:"itemCount"`
	Tags        []string    `json:"tags"`
	// AccessLevel is set on listings of inventories shared with the caller.
	AccessLevel *AccessLevel `json:"accessLevel,omitempty"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// InventoryPatch is a partial update of an inventory. Nil fields are left untouched.
type InventoryPatch struct {
	Name        *string
	Description *string
	CategoryID  *int
	IsPublic    *bool
	Tags        *[]string
}

// Kind implements Patch.
func (p InventoryPatch) Kind() EntityKind { return EntityInventory }

// IsEmpty implements Patch.
func (p InventoryPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.CategoryID == nil && p.IsPublic == nil && p.Tags == nil
}

// PublicSort selects the ordering of the public inventory listing.
type PublicSort string

const (
	PublicSortRecent  PublicSort = "recent"
	PublicSortPopular PublicSort = "popular"
)

// Public listing sizes
const (
	PublicPageSize     = 10
	PopularListingSize = 5
)

// PublicListing is a query over public inventories.
type PublicListing struct {
	Sort   PublicSort
	Limit  int
	Offset int
}

// NewPublicListing builds the query for a listing type and 1-based page.
// Unknown types fall back to the recent listing.
func NewPublicListing(sort string, page int) PublicListing {
	if PublicSort(strings.ToLower(sort)) == PublicSortPopular {
		return PublicListing{Sort: PublicSortPopular, Limit: PopularListingSize}
	}
	if page < 1 {
		page = 1
	}
	return PublicListing{Sort: PublicSortRecent, Limit: PublicPageSize, Offset: (page - 1) * PublicPageSize}
}

// NormalizeTags trims, drops empties and de-duplicates tag names, keeping first-seen order.
func NormalizeTags(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
