package usecase

import (
	"personal-ai-partner/internal/memory"
	"personal-ai-partner/internal/memory/repository"
	"personal-ai-partner/pkg/log"
)

type implUseCase struct {
	l             log.Logger
	knowledgeRepo repository.KnowledgeRepository
	purchaseRepo  repository.PurchaseRepository
}

var _ memory.UseCase = &implUseCase{}

// New creates a new memory use case.
func New(l log.Logger, knowledgeRepo repository.KnowledgeRepository, purchaseRepo repository.PurchaseRepository) memory.UseCase {
	return &implUseCase{
		l:             l,
		knowledgeRepo: knowledgeRepo,
		purchaseRepo:  purchaseRepo,
	}
}
