// Package file implements the chat repository on flat JSON documents.
package file

import (
	"context"

	"personal-ai-partner/internal/model"
	"personal-ai-partner/pkg/jsonstore"
	"personal-ai-partner/pkg/log"
)

type conversationRepository struct {
	l     log.Logger
	store *jsonstore.Store[model.ConversationTurn]
}

// NewConversationRepository creates a file-backed conversation repository.
func NewConversationRepository(l log.Logger, path string) *conversationRepository {
	return &conversationRepository{
		l:     l,
		store: jsonstore.New[model.ConversationTurn](path),
	}
}

func (r *conversationRepository) Load(ctx context.Context) ([]model.ConversationTurn, error) {
	return r.store.Load(ctx)
}

func (r *conversationRepository) Append(ctx context.Context, turns ...model.ConversationTurn) error {
	return r.store.Append(ctx, turns...)
}
