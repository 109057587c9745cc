package ollama

import "time"

const (
	// DefaultBaseURL is the default Ollama server endpoint
	DefaultBaseURL = "http://localhost:11434"

	// DefaultModel is the default model to use
	DefaultModel = "llama3.2:latest"

	// DefaultTimeout bounds a single chat completion call
	DefaultTimeout = 30 * time.Second
)
