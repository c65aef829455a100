package chat

import "context"

// UseCase handles conversation turns against the completion service.
type UseCase interface {
	// Chat processes one user message: build context, call the completion
	// service, persist both turns, return the assistant text.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)

	// History returns the persisted conversation transcript.
	History(ctx context.Context, input HistoryInput) (HistoryOutput, error)
}
