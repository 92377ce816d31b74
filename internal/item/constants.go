package item

// Log messages
const (
	LogMsgItemCreated = "Item created"
	LogMsgItemUpdated = "Item updated"
	LogMsgItemDeleted = "Item deleted"
)
