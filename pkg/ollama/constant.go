package ollama

import "time"

const (
	// DefaultBaseURL is the default local Ollama endpoint.
	DefaultBaseURL = "http://localhost:11434"

	// DefaultModel is the default model to use.
	DefaultModel = "mistral"

	// DefaultTimeout is the fixed wait for a single completion call.
	DefaultTimeout = 60 * time.Second
)
