package repository

// Store is the full entity store a backend provides.
type Store interface {
	User
	Access
	Inventory
	Item
	Versioned
	Field
	Post
	Like
}
