package llmprovider

import (
	"context"
	"errors"
	"fmt"

	"personal-ai-partner/pkg/ollama"
	"personal-ai-partner/pkg/openai"
)

// OllamaAdapter adapts the native Ollama client to the Provider interface.
type OllamaAdapter struct {
	client *ollama.Client
}

// NewOllamaAdapter creates a Provider backed by the native Ollama API.
func NewOllamaAdapter(client *ollama.Client) *OllamaAdapter {
	return &OllamaAdapter{client: client}
}

func (a *OllamaAdapter) Name() string  { return "ollama" }
func (a *OllamaAdapter) Model() string { return a.client.Model() }

func (a *OllamaAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.Generate(ctx, &ollama.Request{
		System:      req.System,
		Prompt:      req.Prompt,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		switch {
		case errors.Is(err, ollama.ErrTimeout):
			return nil, fmt.Errorf("%w: %v", ErrProviderTimeout, err)
		case errors.Is(err, ollama.ErrUnavailable):
			return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
		default:
			return nil, err
		}
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    resp.Model,
	}, nil
}

// OpenAIAdapter adapts an OpenAI-compatible chat completion client.
type OpenAIAdapter struct {
	client *openai.Client
}

// NewOpenAIAdapter creates a Provider backed by an OpenAI-compatible endpoint.
func NewOpenAIAdapter(client *openai.Client) *OpenAIAdapter {
	return &OpenAIAdapter{client: client}
}

func (a *OpenAIAdapter) Name() string  { return "openai" }
func (a *OpenAIAdapter) Model() string { return a.client.Model() }

func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]openai.Message, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.Message{Role: "system", Content: req.System})
	}
	messages = append(messages, openai.Message{Role: "user", Content: req.Prompt})

	resp, err := a.client.CreateChatCompletion(ctx, &openai.Request{
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, classifyTransport(err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty completion response")
	}

	out := &Response{
		Text:         resp.Choices[0].Message.Content,
		ProviderName: a.Name(),
		ModelName:    resp.Model,
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}

	return out, nil
}
