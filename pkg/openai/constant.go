package openai

const (
	// DefaultBaseURL targets Ollama's OpenAI-compatible endpoint.
	DefaultBaseURL = "http://localhost:11434/v1"

	// DefaultModel is the default model to use.
	DefaultModel = "mistral"
)
