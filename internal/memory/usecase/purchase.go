package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"personal-ai-partner/internal/memory"
	"personal-ai-partner/internal/model"
)

func (uc *implUseCase) ListPurchases(ctx context.Context) (memory.ListPurchasesOutput, error) {
	purchases, err := uc.purchaseRepo.ListPurchases(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "memory.usecase.ListPurchases.purchaseRepo.ListPurchases: %v", err)
		return memory.ListPurchasesOutput{}, err
	}

	return memory.ListPurchasesOutput{
		Purchases: purchases,
		Total:     len(purchases),
	}, nil
}

func (uc *implUseCase) AddPurchase(ctx context.Context, input memory.AddPurchaseInput) (memory.AddPurchaseOutput, error) {
	product := strings.TrimSpace(input.Product)
	if product == "" {
		return memory.AddPurchaseOutput{}, memory.ErrEmptyProduct
	}

	purchase := model.Purchase{
		ID:         uuid.NewString(),
		Product:    product,
		Price:      strings.TrimSpace(input.Price),
		Date:       strings.TrimSpace(input.Date),
		Source:     strings.TrimSpace(input.Source),
		RecordedAt: time.Now(),
	}

	if err := uc.purchaseRepo.AppendPurchase(ctx, purchase); err != nil {
		uc.l.Errorf(ctx, "memory.usecase.AddPurchase.purchaseRepo.AppendPurchase: %v", err)
		return memory.AddPurchaseOutput{}, err
	}

	return memory.AddPurchaseOutput{Purchase: purchase}, nil
}
