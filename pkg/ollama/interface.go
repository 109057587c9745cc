package ollama

import "context"

// IOllama defines the interface for the Ollama chat client
type IOllama interface {
	Chat(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
