package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"personal-ai-partner/internal/chat"
	"personal-ai-partner/internal/chat/usecase"
	"personal-ai-partner/internal/model"
	"personal-ai-partner/pkg/jsonstore"
	"personal-ai-partner/pkg/llmprovider"
	"personal-ai-partner/pkg/ollama"
)

func TestChat(t *testing.T) {
	// Fake completion service capturing the last prompt it was given.
	var lastPrompt string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		json.NewDecoder(r.Body).Decode(&req)
		lastPrompt, _ = req["prompt"].(string)

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"model":"mistral","response":"腰に優しいメッシュチェアがおすすめです。","done":true}`))
	}))
	defer ts.Close()

	client, _ := ollama.New(ollama.Config{})
	client.SetBaseURL(ts.URL)
	llm := newManagerFromOllama(client)

	t.Run("Empty Message", func(t *testing.T) {
		repo := &mockConversationRepo{}
		uc := usecase.New(nopLogger(), llm, repo, &mockKnowledgeRepo{}, 6, 800)

		_, err := uc.Chat(context.Background(), chat.ChatInput{Message: "   "})
		if !errors.Is(err, chat.ErrEmptyMessage) {
			t.Errorf("expected ErrEmptyMessage, got %v", err)
		}
		if len(repo.appends) != 0 {
			t.Errorf("log must be unchanged, got %d appends", len(repo.appends))
		}
	})

	t.Run("Successful Round Trip", func(t *testing.T) {
		repo := &mockConversationRepo{}
		uc := usecase.New(nopLogger(), llm, repo, &mockKnowledgeRepo{}, 6, 800)

		out, err := uc.Chat(context.Background(), chat.ChatInput{Message: "椅子を買いたい"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.Reply, "メッシュチェア") {
			t.Errorf("unexpected reply: %q", out.Reply)
		}

		if len(repo.appends) != 1 {
			t.Fatalf("expected a single append call, got %d", len(repo.appends))
		}
		pair := repo.appends[0]
		if len(pair) != 2 {
			t.Fatalf("expected exactly two turns, got %d", len(pair))
		}
		if pair[0].Role != model.RoleUser || pair[1].Role != model.RoleAssistant {
			t.Errorf("turns out of order: %+v", pair)
		}
		if pair[0].Text != "椅子を買いたい" {
			t.Errorf("user turn text mismatch: %q", pair[0].Text)
		}

		first, err := time.Parse(model.TimestampFormat, pair[0].Timestamp)
		if err != nil {
			t.Fatalf("bad user timestamp: %v", err)
		}
		second, err := time.Parse(model.TimestampFormat, pair[1].Timestamp)
		if err != nil {
			t.Fatalf("bad assistant timestamp: %v", err)
		}
		if second.Before(first) {
			t.Errorf("assistant timestamp %v before user timestamp %v", second, first)
		}
	})

	t.Run("Context Reaches Completion Service Verbatim", func(t *testing.T) {
		repo := &mockConversationRepo{
			turns: []model.ConversationTurn{
				{Role: model.RoleUser, Text: "ゲーミングチェアが硬すぎた", Timestamp: "2026-08-01T09:00:00Z"},
			},
		}
		knowledge := &mockKnowledgeRepo{
			entries: []model.KnowledgeEntry{{Text: "腰痛がある"}},
		}
		uc := usecase.New(nopLogger(), llm, repo, knowledge, 6, 800)

		_, err := uc.Chat(context.Background(), chat.ChatInput{Message: "椅子を買いたい"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		kIdx := strings.Index(lastPrompt, "腰痛がある")
		tIdx := strings.Index(lastPrompt, "ゲーミングチェアが硬すぎた")
		qIdx := strings.Index(lastPrompt, "椅子を買いたい")
		if kIdx < 0 || tIdx < 0 || qIdx < 0 {
			t.Fatalf("prompt missing fragments:\n%s", lastPrompt)
		}
		if !(kIdx < tIdx && tIdx < qIdx) {
			t.Errorf("fragments out of order (knowledge=%d turn=%d question=%d):\n%s", kIdx, tIdx, qIdx, lastPrompt)
		}
	})

	t.Run("Completion Failure Persists Nothing", func(t *testing.T) {
		failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer failing.Close()

		client, _ := ollama.New(ollama.Config{})
		client.SetBaseURL(failing.URL)

		repo := &mockConversationRepo{}
		uc := usecase.New(nopLogger(), newManagerFromOllama(client), repo, &mockKnowledgeRepo{}, 6, 800)

		_, err := uc.Chat(context.Background(), chat.ChatInput{Message: "test"})
		if err == nil {
			t.Fatal("expected error")
		}
		if len(repo.appends) != 0 {
			t.Errorf("log must be unchanged on failure, got %d appends", len(repo.appends))
		}
	})

	t.Run("Completion Timeout Persists Nothing", func(t *testing.T) {
		slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.Write([]byte(`{"model":"mistral","response":"late","done":true}`))
		}))
		defer slow.Close()

		client, _ := ollama.New(ollama.Config{Timeout: 20 * time.Millisecond})
		client.SetBaseURL(slow.URL)

		repo := &mockConversationRepo{}
		uc := usecase.New(nopLogger(), newManagerFromOllama(client), repo, &mockKnowledgeRepo{}, 6, 800)

		_, err := uc.Chat(context.Background(), chat.ChatInput{Message: "test"})
		if !errors.Is(err, llmprovider.ErrProviderTimeout) {
			t.Errorf("expected timeout kind, got %v", err)
		}
		if len(repo.appends) != 0 {
			t.Errorf("log must be unchanged on timeout, got %d appends", len(repo.appends))
		}
	})

	t.Run("Corrupted Conversation Store", func(t *testing.T) {
		repo := &mockConversationRepo{loadErr: jsonstore.ErrCorrupted}
		uc := usecase.New(nopLogger(), llm, repo, &mockKnowledgeRepo{}, 6, 800)

		_, err := uc.Chat(context.Background(), chat.ChatInput{Message: "test"})
		if !errors.Is(err, jsonstore.ErrCorrupted) {
			t.Errorf("expected corruption error, got %v", err)
		}
	})
}

func TestHistory(t *testing.T) {
	turns := []model.ConversationTurn{
		{Role: model.RoleUser, Text: "a", Timestamp: "2026-08-01T09:00:00Z"},
		{Role: model.RoleAssistant, Text: "b", Timestamp: "2026-08-01T09:00:05Z"},
		{Role: model.RoleUser, Text: "c", Timestamp: "2026-08-01T09:01:00Z"},
	}
	repo := &mockConversationRepo{turns: turns}
	uc := usecase.New(nopLogger(), nil, repo, &mockKnowledgeRepo{}, 6, 800)

	t.Run("All", func(t *testing.T) {
		out, err := uc.History(context.Background(), chat.HistoryInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Total != 3 || len(out.Turns) != 3 {
			t.Errorf("expected all 3 turns, got total=%d len=%d", out.Total, len(out.Turns))
		}
	})

	t.Run("Limited", func(t *testing.T) {
		out, err := uc.History(context.Background(), chat.HistoryInput{Limit: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Turns) != 2 || out.Turns[0].Text != "b" {
			t.Errorf("expected trailing window, got %+v", out.Turns)
		}
		if out.Total != 3 {
			t.Errorf("total must count the full log, got %d", out.Total)
		}
	})
}
