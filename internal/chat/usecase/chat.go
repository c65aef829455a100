package usecase

import (
	"context"
	"fmt"
	"strings"

	"personal-ai-partner/internal/chat"
	"personal-ai-partner/internal/model"
	"personal-ai-partner/pkg/llmprovider"
)

// Chat handles one conversation turn: validate, re-read the stores, build
// context, call the completion service, then persist both turns. On a
// completion failure nothing is persisted; the user resends.
func (uc *implUseCase) Chat(ctx context.Context, input chat.ChatInput) (chat.ChatOutput, error) {
	text := strings.TrimSpace(input.Message)
	if text == "" {
		return chat.ChatOutput{}, chat.ErrEmptyMessage
	}

	uc.l.Infof(ctx, "chat: message=%q", text)

	// Stores are re-read on every turn; the JSON files are the sole source
	// of truth and no state is cached across requests.
	knowledge, err := uc.knowledgeRepo.ListKnowledge(ctx)
	if err != nil {
		return chat.ChatOutput{}, fmt.Errorf("failed to load knowledge: %w", err)
	}

	turns, err := uc.convRepo.Load(ctx)
	if err != nil {
		return chat.ChatOutput{}, fmt.Errorf("failed to load conversation: %w", err)
	}

	contextBlock := BuildContext(knowledge, lastTurns(turns, uc.turnCount), uc.maxEntryChars)

	userTurn := model.NewTurn(model.RoleUser, text)

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		System:      systemPrompt,
		Prompt:      buildPrompt(contextBlock, text),
		Temperature: completionTemperature,
	})
	if err != nil {
		return chat.ChatOutput{}, fmt.Errorf("completion failed: %w", err)
	}

	assistantTurn := model.NewTurn(model.RoleAssistant, resp.Text)

	// Both turns land in one write so the log never holds half a round trip.
	if err := uc.convRepo.Append(ctx, userTurn, assistantTurn); err != nil {
		return chat.ChatOutput{}, fmt.Errorf("failed to persist turns: %w", err)
	}

	return chat.ChatOutput{
		Reply:     resp.Text,
		Timestamp: assistantTurn.Timestamp,
	}, nil
}
