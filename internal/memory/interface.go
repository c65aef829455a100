package memory

import "context"

// UseCase manages the manually curated knowledge list and purchase records.
type UseCase interface {
	ListKnowledge(ctx context.Context) (ListKnowledgeOutput, error)
	AddKnowledge(ctx context.Context, input AddKnowledgeInput) (AddKnowledgeOutput, error)

	ListPurchases(ctx context.Context) (ListPurchasesOutput, error)
	AddPurchase(ctx context.Context, input AddPurchaseInput) (AddPurchaseOutput, error)
}
