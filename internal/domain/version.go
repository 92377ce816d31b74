package domain

// EntityKind names an entity that carries an optimistic-concurrency version.
type EntityKind string

const (
	EntityInventory EntityKind = "inventory"
	EntityItem      EntityKind = "item"
)

// InitialVersion is the version of a freshly created entity.
const InitialVersion = 1

// Patch is a partial update of a versioned entity.
// Stores apply the concrete patch types (InventoryPatch, ItemPatch).
type Patch interface {
	Kind() EntityKind
	IsEmpty() bool
}
