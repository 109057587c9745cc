package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateReply sends a generation request and returns a response
	GenerateReply(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "ollama")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized generation request
type Request struct {
	SystemPrompt string
	Messages     []Message
	Temperature  float64
	MaxTokens    int
}

// Message represents a conversation message
type Message struct {
	Role    string // "user", "assistant"
	Content string
}

// Response represents a normalized generation response
type Response struct {
	Content      string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
