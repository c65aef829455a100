package usecase

import (
	"context"
	"strings"

	"personal-ai-partner/internal/memory"
	"personal-ai-partner/internal/model"
)

func (uc *implUseCase) ListKnowledge(ctx context.Context) (memory.ListKnowledgeOutput, error) {
	entries, err := uc.knowledgeRepo.ListKnowledge(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "memory.usecase.ListKnowledge.knowledgeRepo.ListKnowledge: %v", err)
		return memory.ListKnowledgeOutput{}, err
	}

	return memory.ListKnowledgeOutput{
		Entries: entries,
		Total:   len(entries),
	}, nil
}

func (uc *implUseCase) AddKnowledge(ctx context.Context, input memory.AddKnowledgeInput) (memory.AddKnowledgeOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return memory.AddKnowledgeOutput{}, memory.ErrEmptyEntry
	}

	entry := model.KnowledgeEntry{Text: text}
	if err := uc.knowledgeRepo.AppendKnowledge(ctx, entry); err != nil {
		uc.l.Errorf(ctx, "memory.usecase.AddKnowledge.knowledgeRepo.AppendKnowledge: %v", err)
		return memory.AddKnowledgeOutput{}, err
	}

	return memory.AddKnowledgeOutput{Entry: entry}, nil
}
