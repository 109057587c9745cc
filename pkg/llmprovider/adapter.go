package llmprovider

import (
	"context"

	"mental-health-support/pkg/ollama"
)

// OllamaAdapter adapts pkg/ollama to the Provider interface
type OllamaAdapter struct {
	client ollama.IOllama
}

// NewOllamaAdapter creates a new Ollama adapter
func NewOllamaAdapter(client ollama.IOllama) *OllamaAdapter {
	return &OllamaAdapter{client: client}
}

// GenerateReply implements Provider
func (a *OllamaAdapter) GenerateReply(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]ollama.Message, 0, len(req.Messages)+1)
	if req.SystemPrompt != "" {
		messages = append(messages, ollama.Message{Role: "system", Content: req.SystemPrompt})
	}
	for _, msg := range req.Messages {
		messages = append(messages, ollama.Message{Role: msg.Role, Content: msg.Content})
	}

	var opts *ollama.Options
	if req.Temperature > 0 || req.MaxTokens > 0 {
		opts = &ollama.Options{
			Temperature: req.Temperature,
			NumPredict:  req.MaxTokens,
		}
	}

	resp, err := a.client.Chat(ctx, &ollama.Request{
		Messages: messages,
		Stream:   false,
		Options:  opts,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      resp.Message.Content,
		ProviderName: "ollama",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.PromptEvalCount,
			OutputTokens: resp.EvalCount,
			TotalTokens:  resp.PromptEvalCount + resp.EvalCount,
		},
	}, nil
}

// Name returns provider name
func (a *OllamaAdapter) Name() string {
	return "ollama"
}

// Model returns model name
func (a *OllamaAdapter) Model() string {
	return a.client.Model()
}
