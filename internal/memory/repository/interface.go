package repository

import (
	"context"

	"personal-ai-partner/internal/model"
)

// KnowledgeRepository persists the ordered knowledge list.
type KnowledgeRepository interface {
	ListKnowledge(ctx context.Context) ([]model.KnowledgeEntry, error)
	AppendKnowledge(ctx context.Context, entry model.KnowledgeEntry) error
	// SeedKnowledge replaces the whole list. Used by the seeding CLI only.
	SeedKnowledge(ctx context.Context, entries []model.KnowledgeEntry) error
}

// PurchaseRepository persists purchase records.
type PurchaseRepository interface {
	ListPurchases(ctx context.Context) ([]model.Purchase, error)
	AppendPurchase(ctx context.Context, purchase model.Purchase) error
}
