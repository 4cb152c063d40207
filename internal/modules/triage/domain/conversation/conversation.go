package conversation

import (
	"context"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Exchange is one prior turn of the triage conversation.
type Exchange struct {
	Role    string
	Content string
}

// Responder produces a conversational reply from a bounded window of
// prior exchanges plus the new inbound message. Implementations may call
// an external model; failures are never fatal to the session, the caller
// degrades to a fixed fallback.
type Responder interface {
	Reply(ctx context.Context, history []Exchange, message string) (string, error)
}
