package ollama

// Config configures the Ollama client.
type Config struct {
	BaseURL string
	Model   string
	Timeout string // Go duration string, e.g. "30s"
}

// Message is a single chat turn in Ollama's wire format.
type Message struct {
	Role    string `json:"role"` // "system", "user", "assistant"
	Content string `json:"content"`
}

// Request is the /api/chat request body.
type Request struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
	Options  *Options  `json:"options,omitempty"`
}

// Options carries generation parameters.
type Options struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

// Response is the /api/chat response body (stream: false).
type Response struct {
	Model           string  `json:"model"`
	Message         Message `json:"message"`
	Done            bool    `json:"done"`
	PromptEvalCount int     `json:"prompt_eval_count"`
	EvalCount       int     `json:"eval_count"`
}

// ErrorResponse is Ollama's error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
