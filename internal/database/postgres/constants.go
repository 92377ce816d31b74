package postgres

// PostgreSQL error codes
const (
	PgCodeUniqueViolation     = "23505"
	PgCodeForeignKeyViolation = "23503"
)

// Constraint names from the schema migrations
const (
	ConstraintUsersEmail       = "users_email_key"
	ConstraintFieldSlot        = "custom_field_configs_slot_key"
	ConstraintLikesPK          = "likes_pkey"
	ConstraintAccessUserFK     = "inventory_access_user_id_fkey"
	ConstraintPostsUserFK      = "posts_user_id_fkey"
	ConstraintLikesUserFK      = "likes_user_id_fkey"
	ConstraintInventoryOwnerFK = "inventories_owner_id_fkey"
)

// Retry bounds
const (
	// MaxTagInsertAttempts bounds the find-or-insert loop for a tag name
	MaxTagInsertAttempts = 3
)

// Log messages
const (
	LogMsgRollbackFailed = "Failed to rollback transaction"
)
