package memory

import "personal-ai-partner/internal/model"

// --- UseCase Inputs ---

type AddKnowledgeInput struct {
	Text string
}

type AddPurchaseInput struct {
	Product string
	Price   string
	Date    string
	Source  string
}

// --- UseCase Outputs ---

type ListKnowledgeOutput struct {
	Entries []model.KnowledgeEntry
	Total   int
}

type AddKnowledgeOutput struct {
	Entry model.KnowledgeEntry
}

type ListPurchasesOutput struct {
	Purchases []model.Purchase
	Total     int
}

type AddPurchaseOutput struct {
	Purchase model.Purchase
}
