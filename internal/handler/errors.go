package handler

// Client-facing error messages. They never carry internal error details.
const (
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgAuthRequired          = "Authentication required"
	ErrMsgInvalidVersion        = "version must be an integer"
	ErrMsgInvalidPage           = "page must be a positive integer"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
)

// Success messages
const (
	MsgLoggedOut        = "Logged out"
	MsgInventoryDeleted = "Inventory deleted"
	MsgItemDeleted      = "Item deleted"
	MsgFieldDeleted     = "Field deleted"
	MsgAccessRevoked    = "Access revoked"
)

// Log messages
const (
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgDecodeFailed    = "Failed to decode request"
	LogMsgFailedSuffix    = " failed"
	LogMsgReadinessFailed = "Readiness check failed"
)
