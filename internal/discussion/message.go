package discussion

import "github.com/osse101/InventoryHub_Go/internal/domain"

// Message is a frame sent to a live connection.
type Message interface {
	MessageType() string
}

// ConnectedMessage is the first frame of every accepted connection.
// UserID is null for anonymous callers.
type ConnectedMessage struct {
	Type           string  `json:"type"`
	InventoryID    string  `json:"inventoryId"`
	UserID         *string `json:"userId"`
	HasWriteAccess bool    `json:"hasWriteAccess"`
}

// MessageType implements Message.
func (m ConnectedMessage) MessageType() string { return m.Type }

// NewConnectedMessage builds the greeting for a session
func NewConnectedMessage(s Session) ConnectedMessage {
	msg := ConnectedMessage{
		Type:           MessageTypeConnected,
		InventoryID:    s.InventoryID,
		HasWriteAccess: s.Access.HasWriteAccess(),
	}
	if s.UserID != "" {
		uid := s.UserID
		msg.UserID = &uid
	}
	return msg
}

// NewPostMessage carries a persisted post.
type NewPostMessage struct {
	Type string      `json:"type"`
	Data domain.Post `json:"data"`
}

// MessageType implements Message.
func (m NewPostMessage) MessageType() string { return m.Type }

// NewNewPostMessage wraps a post for broadcast
func NewNewPostMessage(post domain.Post) NewPostMessage {
	return NewPostMessage{Type: MessageTypeNewMessage, Data: post}
}
