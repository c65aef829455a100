package usecase_test

import (
	"context"
	"errors"
	"testing"

	"personal-ai-partner/internal/memory"
	"personal-ai-partner/internal/memory/usecase"
	"personal-ai-partner/internal/model"
	"personal-ai-partner/pkg/log"
)

type mockKnowledgeRepo struct {
	entries []model.KnowledgeEntry
	listErr error
	addErr  error
	added   []model.KnowledgeEntry
}

func (m *mockKnowledgeRepo) ListKnowledge(ctx context.Context) ([]model.KnowledgeEntry, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.entries, nil
}

func (m *mockKnowledgeRepo) AppendKnowledge(ctx context.Context, entry model.KnowledgeEntry) error {
	if m.addErr != nil {
		return m.addErr
	}
	m.added = append(m.added, entry)
	return nil
}

func (m *mockKnowledgeRepo) SeedKnowledge(ctx context.Context, entries []model.KnowledgeEntry) error {
	m.entries = entries
	return nil
}

type mockPurchaseRepo struct {
	purchases []model.Purchase
	addErr    error
	added     []model.Purchase
}

func (m *mockPurchaseRepo) ListPurchases(ctx context.Context) ([]model.Purchase, error) {
	return m.purchases, nil
}

func (m *mockPurchaseRepo) AppendPurchase(ctx context.Context, purchase model.Purchase) error {
	if m.addErr != nil {
		return m.addErr
	}
	m.added = append(m.added, purchase)
	return nil
}

func TestAddKnowledge(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Text", func(t *testing.T) {
		repo := &mockKnowledgeRepo{}
		uc := usecase.New(log.NewNop(), repo, &mockPurchaseRepo{})

		_, err := uc.AddKnowledge(ctx, memory.AddKnowledgeInput{Text: "   "})
		if !errors.Is(err, memory.ErrEmptyEntry) {
			t.Fatalf("expected ErrEmptyEntry, got %v", err)
		}
		if len(repo.added) != 0 {
			t.Fatalf("expected no appended entries, got %d", len(repo.added))
		}
	})

	t.Run("Trims And Persists", func(t *testing.T) {
		repo := &mockKnowledgeRepo{}
		uc := usecase.New(log.NewNop(), repo, &mockPurchaseRepo{})

		out, err := uc.AddKnowledge(ctx, memory.AddKnowledgeInput{Text: "  ユーザーは腰痛がある  "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Entry.Text != "ユーザーは腰痛がある" {
			t.Fatalf("unexpected entry text: %q", out.Entry.Text)
		}
		if len(repo.added) != 1 || repo.added[0].Text != "ユーザーは腰痛がある" {
			t.Fatalf("entry not appended: %+v", repo.added)
		}
	})

	t.Run("Repository Error Surfaces", func(t *testing.T) {
		wantErr := errors.New("disk full")
		repo := &mockKnowledgeRepo{addErr: wantErr}
		uc := usecase.New(log.NewNop(), repo, &mockPurchaseRepo{})

		_, err := uc.AddKnowledge(ctx, memory.AddKnowledgeInput{Text: "entry"})
		if !errors.Is(err, wantErr) {
			t.Fatalf("expected repository error, got %v", err)
		}
	})
}

func TestListKnowledge(t *testing.T) {
	ctx := context.Background()

	repo := &mockKnowledgeRepo{entries: []model.KnowledgeEntry{
		{Text: "first"},
		{Text: "second"},
	}}
	uc := usecase.New(log.NewNop(), repo, &mockPurchaseRepo{})

	out, err := uc.ListKnowledge(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Total != 2 {
		t.Fatalf("expected total 2, got %d", out.Total)
	}
	if out.Entries[0].Text != "first" || out.Entries[1].Text != "second" {
		t.Fatalf("entries out of order: %+v", out.Entries)
	}
}

func TestAddPurchase(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Product", func(t *testing.T) {
		repo := &mockPurchaseRepo{}
		uc := usecase.New(log.NewNop(), &mockKnowledgeRepo{}, repo)

		_, err := uc.AddPurchase(ctx, memory.AddPurchaseInput{Product: ""})
		if !errors.Is(err, memory.ErrEmptyProduct) {
			t.Fatalf("expected ErrEmptyProduct, got %v", err)
		}
		if len(repo.added) != 0 {
			t.Fatalf("expected no appended purchases, got %d", len(repo.added))
		}
	})

	t.Run("Assigns ID And Timestamp", func(t *testing.T) {
		repo := &mockPurchaseRepo{}
		uc := usecase.New(log.NewNop(), &mockKnowledgeRepo{}, repo)

		out, err := uc.AddPurchase(ctx, memory.AddPurchaseInput{
			Product: "ゲーミングチェア",
			Price:   "35000",
			Date:    "2025-01-15",
			Source:  "amazon",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Purchase.ID == "" {
			t.Fatal("expected generated purchase ID")
		}
		if out.Purchase.RecordedAt.IsZero() {
			t.Fatal("expected recorded_at to be set")
		}
		if len(repo.added) != 1 || repo.added[0].Product != "ゲーミングチェア" {
			t.Fatalf("purchase not appended: %+v", repo.added)
		}
	})
}
