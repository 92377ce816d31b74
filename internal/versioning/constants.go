package versioning

// Log messages
const (
	LogMsgVersionConflict = "Version conflict on conditional write"
	LogMsgEntityUpdated   = "Versioned entity updated"
	LogMsgEntityDeleted   = "Versioned entity deleted"
)
