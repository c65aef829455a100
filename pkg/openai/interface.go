package openai

import "context"

// IOpenAI defines the interface for OpenAI-compatible chat completion clients.
type IOpenAI interface {
	CreateChatCompletion(ctx context.Context, req *Request) (*Response, error)
}
