package usecase

import (
	"personal-ai-partner/internal/chat/repository"
	"personal-ai-partner/pkg/llmprovider"
	pkgLog "personal-ai-partner/pkg/log"
)

type implUseCase struct {
	l             pkgLog.Logger
	llm           *llmprovider.Manager
	convRepo      repository.ConversationRepository
	knowledgeRepo repository.KnowledgeReader
	turnCount     int
	maxEntryChars int
}

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	llm *llmprovider.Manager,
	convRepo repository.ConversationRepository,
	knowledgeRepo repository.KnowledgeReader,
	turnCount int,
	maxEntryChars int,
) *implUseCase {
	if turnCount <= 0 {
		turnCount = DefaultContextTurnCount
	}
	if maxEntryChars <= 0 {
		maxEntryChars = DefaultMaxEntryChars
	}
	return &implUseCase{
		l:             l,
		llm:           llm,
		convRepo:      convRepo,
		knowledgeRepo: knowledgeRepo,
		turnCount:     turnCount,
		maxEntryChars: maxEntryChars,
	}
}
