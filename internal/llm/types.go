package llm

// Role represents the role of a message sender in a conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents a single message in a conversation.
type Message struct {
	Role    Role
	Content string
}

// Citation is a web source the answer was grounded on.
type Citation struct {
	Title string
	URI   string
}

// CompletionRequest contains the parameters for a single-shot completion.
type CompletionRequest struct {
	Model       string
	System      string
	Messages    []Message
	MaxTokens   int
	Temperature float64
	// Search grounds the answer on live web results when the provider
	// supports it.
	Search bool
	// ThinkingBudget caps reasoning tokens; 0 leaves the provider default.
	ThinkingBudget int
}

// CompletionResponse contains the result of a completion request.
type CompletionResponse struct {
	Content      string
	Citations    []Citation
	InputTokens  int
	OutputTokens int
	Model        string
	FinishReason string
}

// ChatConfig configures a streaming conversation.
type ChatConfig struct {
	Model       string
	System      string
	Temperature float64
}
