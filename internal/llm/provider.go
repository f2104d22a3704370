package llm

import "context"

// Provider is the transport boundary for quiz generation.
// Implementations issue one chat-completion request per Generate call and
// classify every failure into the error types in errors.go.
type Provider interface {
	// Generate sends a prompt to the LLM and returns the raw text response.
	// The content is returned exactly as the model produced it (it may be
	// wrapped in markdown code fences); cleanup and parsing belong to the
	// caller.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt. Sets the LLM's role and constraints.
	System string

	// Messages is the conversation. Quiz generation is single-turn, so this
	// is normally one user message.
	Messages []Message

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Response holds the LLM's output.
type Response struct {
	// Content is the raw generated text.
	Content string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason reports why generation ended, in the provider's own
	// vocabulary ("stop", "length", "end_turn", ...).
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
