package llmprovider

import "context"

// Provider defines the interface for completion providers.
type Provider interface {
	// GenerateContent sends a completion request and returns a response.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g. "ollama", "openai").
	Name() string

	// Model returns the model being used.
	Model() string
}

// Request represents a normalized completion request.
type Request struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Response represents a normalized completion response.
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption when the provider reports it.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
