package domain

import "time"

// Item is an entry of an inventory with fixed fields and custom slot values.
type Item struct {
	ID          string     `json:"id"`
	InventoryID string     `json:"inventoryId"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Version     int        `json:"version"`
	Custom      SlotValues `json:"customFields"`
	Tags        []string   `json:"tags"`
	LikeCount   int        `json:"likeCount"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ItemPatch is a partial update of an item. Nil fields are left untouched;
// Custom entries overwrite only the slots they name.
type ItemPatch struct {
	Name        *string
	Description *string
	Custom      SlotValues
	Tags        *[]string
}

// Kind implements Patch.
func (p ItemPatch) Kind() EntityKind { return EntityItem }

// IsEmpty implements Patch.
func (p ItemPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && len(p.Custom) == 0 && p.Tags == nil
}
