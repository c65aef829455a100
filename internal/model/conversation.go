package model

import "time"

// Role tags a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// TimestampFormat is the wire format for turn timestamps.
const TimestampFormat = time.RFC3339Nano

// ConversationTurn is one role-tagged message in the persisted chat history.
// Turns are append-only and never mutated or deleted.
type ConversationTurn struct {
	Role      Role   `json:"role"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// NewTurn stamps a turn with the current time.
func NewTurn(role Role, text string) ConversationTurn {
	return ConversationTurn{
		Role:      role,
		Text:      text,
		Timestamp: time.Now().Format(TimestampFormat),
	}
}
