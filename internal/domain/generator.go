package domain

import "context"

// CompletionClient issues a single chat-style completion call against the
// upstream language-model API. Implementations are stateless: no retries,
// no caching, each call is independent.
type CompletionClient interface {
	// Complete sends the message exchange using the profile's model,
	// credential, temperature and token budget. It returns the raw response
	// text and, when the upstream reports it, the total token usage.
	Complete(ctx context.Context, profile TaskProfile, messages []ChatMessage) (string, int, error)
}

// Message roles for the completion exchange.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
