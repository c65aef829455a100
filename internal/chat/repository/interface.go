package repository

import (
	"context"

	"personal-ai-partner/internal/model"
)

// ConversationRepository persists the append-only conversation log.
type ConversationRepository interface {
	// Load returns all turns in chronological order.
	Load(ctx context.Context) ([]model.ConversationTurn, error)

	// Append persists the given turns in order as a single write.
	Append(ctx context.Context, turns ...model.ConversationTurn) error
}

// KnowledgeReader exposes the knowledge list the chat context is built from.
type KnowledgeReader interface {
	ListKnowledge(ctx context.Context) ([]model.KnowledgeEntry, error)
}
