package models

import "time"

// MessageType distinguishes chat content kinds
type MessageType string

const (
	MessageTypeText     MessageType = "text"
	MessageTypeLocation MessageType = "location"
	MessageTypeSystem   MessageType = "system"
)

// ValidMessageType reports whether the type is one of the known kinds
func ValidMessageType(t MessageType) bool {
	return t == MessageTypeText || t == MessageTypeLocation || t == MessageTypeSystem
}

// Message is a persisted chat message within a conversation
type Message struct {
	ID             string      `json:"id" db:"id"`
	ConversationID string      `json:"conversation_id" db:"conversation_id"`
	SenderID       string      `json:"sender_id" db:"sender_id"`
	RecipientID    string      `json:"recipient_id,omitempty" db:"recipient_id"`
	Content        string      `json:"content" db:"content"`
	Type           MessageType `json:"type" db:"type"`
	CreatedAt      time.Time   `json:"created_at" db:"created_at"`
}
