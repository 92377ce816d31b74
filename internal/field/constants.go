package field

// Log messages
const (
	LogMsgFieldCreated = "Custom field created"
	LogMsgFieldUpdated = "Custom field updated"
	LogMsgFieldDeleted = "Custom field deleted"
)
