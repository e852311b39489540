package domain

import (
	"context"
	"time"
)

// ChatRole distinguishes the two sides of the conversation.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is one turn of a session's conversation history.
type ChatMessage struct {
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Completer is the port to the external completion API. Implementations must
// never return an error to the caller: any failure is absorbed into one of
// the fixed friendly fallback strings so a failed call can never end the
// conversation.
type Completer interface {
	Complete(ctx context.Context, userText string) string
}
