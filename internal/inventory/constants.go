package inventory

// Listing limits
const (
	TagSuggestionLimit = 10
	SearchResultLimit  = 20
)

// Log messages
const (
	LogMsgInventoryCreated = "Inventory created"
	LogMsgInventoryUpdated = "Inventory updated"
	LogMsgInventoryDeleted = "Inventory deleted"
	LogMsgAccessGranted    = "Access granted"
	LogMsgAccessRevoked    = "Access revoked"
	LogWarnViewCountFailed = "Failed to bump inventory views"
)
