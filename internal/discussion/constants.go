package discussion

import "time"

// Message types
const (
	MessageTypeConnected  = "CONNECTED"
	MessageTypeNewMessage = "NEW_MESSAGE"
)

// Close codes sent to live connections. 4xxx codes mirror the HTTP status of the refusal.
const (
	CloseMissingInventoryID = 4400
	CloseAccessDenied       = 4403
	CloseInventoryNotFound  = 4404
	CloseInternalError      = 1011
	CloseNormal             = 1000
	CloseGoingAway          = 1001
	CloseTryAgainLater      = 1013
)

// Close reasons
const (
	ReasonMissingInventoryID = "inventory ID required"
	ReasonAccessDenied       = "access denied"
	ReasonInventoryNotFound  = "inventory not found"
	ReasonInventoryDeleted   = "inventory deleted"
	ReasonInternalError      = "internal error"
	ReasonSlowConsumer       = "connection too slow"
	ReasonShutdown           = "server shutting down"
)

// Connection settings
const (
	// ClientQueueSize bounds the messages waiting for one connection's writer.
	ClientQueueSize = 64

	// WriteTimeout bounds a single frame write.
	WriteTimeout = 10 * time.Second
)

// Transports, used as metric labels
const (
	TransportWebSocket = "websocket"
	TransportSSE       = "sse"
)

// Log messages
const (
	LogMsgClientConnected     = "Discussion client connected"
	LogMsgClientDisconnected  = "Discussion client disconnected"
	LogMsgConnectRejected     = "Discussion connection rejected"
	LogMsgInvalidToken        = "Invalid token on live connection, continuing as anonymous"
	LogMsgPostCreated         = "Post created"
	LogMsgPostBroadcast       = "Post broadcast"
	LogMsgSlowConsumer        = "Dropping slow discussion client"
	LogMsgGroupClosed         = "Closed discussion group"
	LogMsgPublishFailed       = "Failed to publish post event"
	LogMsgUnexpectedPayload   = "Unexpected discussion event payload"
	LogMsgWebSocketAccept     = "WebSocket upgrade failed"
	LogMsgWebSocketWriteError = "WebSocket write failed"
)
