// Package file implements the memory repositories on flat JSON documents.
package file

import (
	"context"

	"personal-ai-partner/internal/model"
	"personal-ai-partner/pkg/jsonstore"
	"personal-ai-partner/pkg/log"
)

type knowledgeRepository struct {
	l     log.Logger
	store *jsonstore.Store[model.KnowledgeEntry]
}

// NewKnowledgeRepository creates a file-backed knowledge repository.
func NewKnowledgeRepository(l log.Logger, path string) *knowledgeRepository {
	return &knowledgeRepository{
		l:     l,
		store: jsonstore.New[model.KnowledgeEntry](path),
	}
}

func (r *knowledgeRepository) ListKnowledge(ctx context.Context) ([]model.KnowledgeEntry, error) {
	return r.store.Load(ctx)
}

func (r *knowledgeRepository) AppendKnowledge(ctx context.Context, entry model.KnowledgeEntry) error {
	return r.store.Append(ctx, entry)
}

func (r *knowledgeRepository) SeedKnowledge(ctx context.Context, entries []model.KnowledgeEntry) error {
	return r.store.Overwrite(ctx, entries)
}
