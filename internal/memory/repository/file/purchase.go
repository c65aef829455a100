package file

import (
	"context"

	"personal-ai-partner/internal/model"
	"personal-ai-partner/pkg/jsonstore"
	"personal-ai-partner/pkg/log"
)

type purchaseRepository struct {
	l     log.Logger
	store *jsonstore.Store[model.Purchase]
}

// NewPurchaseRepository creates a file-backed purchase repository.
func NewPurchaseRepository(l log.Logger, path string) *purchaseRepository {
	return &purchaseRepository{
		l:     l,
		store: jsonstore.New[model.Purchase](path),
	}
}

func (r *purchaseRepository) ListPurchases(ctx context.Context) ([]model.Purchase, error) {
	return r.store.Load(ctx)
}

func (r *purchaseRepository) AppendPurchase(ctx context.Context, purchase model.Purchase) error {
	return r.store.Append(ctx, purchase)
}
