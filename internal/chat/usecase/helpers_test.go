package usecase_test

import (
	"context"

	"personal-ai-partner/internal/model"
	"personal-ai-partner/pkg/llmprovider"
	"personal-ai-partner/pkg/log"
	"personal-ai-partner/pkg/ollama"
)

// mockConversationRepo records appends in memory for assertions.
type mockConversationRepo struct {
	turns     []model.ConversationTurn
	loadErr   error
	appendErr error
	appends   [][]model.ConversationTurn
}

func (m *mockConversationRepo) Load(ctx context.Context) ([]model.ConversationTurn, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.turns, nil
}

func (m *mockConversationRepo) Append(ctx context.Context, turns ...model.ConversationTurn) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.appends = append(m.appends, turns)
	m.turns = append(m.turns, turns...)
	return nil
}

type mockKnowledgeRepo struct {
	entries []model.KnowledgeEntry
	err     error
}

func (m *mockKnowledgeRepo) ListKnowledge(ctx context.Context) ([]model.KnowledgeEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.entries, nil
}

func nopLogger() log.Logger {
	return log.NewNop()
}

// newManagerFromOllama builds a single-provider Manager around an Ollama
// client, matching the production wiring with retries off.
func newManagerFromOllama(client *ollama.Client) *llmprovider.Manager {
	provider := llmprovider.NewOllamaAdapter(client)
	return llmprovider.NewManager(
		[]llmprovider.Provider{provider},
		&llmprovider.Config{FallbackEnabled: false, RetryAttempts: 1},
		log.NewNop(),
	)
}
