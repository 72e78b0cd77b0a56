package llm

import (
	"context"
	"iter"
)

// TextGenerator is the generative-AI capability used by the site.
type TextGenerator interface {
	// Complete sends a completion request and returns the response.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	// NewChat opens a conversation that keeps its own history.
	NewChat(ctx context.Context, cfg ChatConfig) (Chat, error)
	// Name returns the name of this provider.
	Name() string
}

// Chat is a stateful conversation.
type Chat interface {
	// Send appends a user message and streams the reply in chunks. The
	// reply is added to the history once the stream is fully consumed.
	Send(ctx context.Context, text string) iter.Seq2[string, error]
}
