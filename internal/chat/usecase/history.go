package usecase

import (
	"context"
	"fmt"

	"personal-ai-partner/internal/chat"
)

// History returns the persisted transcript, optionally limited to the most
// recent turns.
func (uc *implUseCase) History(ctx context.Context, input chat.HistoryInput) (chat.HistoryOutput, error) {
	turns, err := uc.convRepo.Load(ctx)
	if err != nil {
		return chat.HistoryOutput{}, fmt.Errorf("failed to load conversation: %w", err)
	}

	total := len(turns)
	if input.Limit > 0 && len(turns) > input.Limit {
		turns = turns[len(turns)-input.Limit:]
	}

	return chat.HistoryOutput{
		Turns: turns,
		Total: total,
	}, nil
}
