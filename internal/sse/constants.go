package sse

import "time"

// Stream settings
const (
	// KeepaliveInterval is how often a comment line is sent to keep proxies from timing out
	KeepaliveInterval = 30 * time.Second

	// EventTypeClose is the final frame of a stream the server ended
	EventTypeClose = "close"
)

// Log messages
const (
	LogMsgWriteError           = "Failed to write SSE event"
	LogMsgStreamingUnsupported = "Response writer does not support streaming"
)
