package llm

import "context"

// Provider is the core abstraction for LLM interaction. Consumers send a
// conversation and get free-form text back; the hint on the request picks
// the model tier.
type Provider interface {
	// Generate sends the conversation to the LLM and returns its reply.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier used for ModelFast requests.
	ModelID() string
}

// ModelHint selects which of a provider's configured models serves a
// request. Tutoring conversations want the smart tier; everything else runs
// on the fast one.
type ModelHint string

const (
	ModelFast  ModelHint = "fast"
	ModelSmart ModelHint = "smart"
)

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt. Sets the LLM's role and constraints.
	System string

	// Messages is the conversation history, oldest first.
	Messages []Message

	// Hint selects the model tier. Empty means ModelFast.
	Hint ModelHint

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Default: 0.0 (deterministic) when not set.
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
	// Text is the generated reply.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// modelPair holds the fast/smart model IDs a provider switches between.
type modelPair struct {
	fast  string
	smart string
}

// forHint returns the model ID serving the given hint.
func (m modelPair) forHint(hint ModelHint) string {
	if hint == ModelSmart && m.smart != "" {
		return m.smart
	}
	return m.fast
}
