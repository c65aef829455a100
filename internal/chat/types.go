package chat

import "personal-ai-partner/internal/model"

// --- UseCase Inputs ---

type ChatInput struct {
	Message string
}

type HistoryInput struct {
	// Limit caps the number of most recent turns returned; 0 means all.
	Limit int
}

// --- UseCase Outputs ---

type ChatOutput struct {
	Reply     string
	Timestamp string
}

type HistoryOutput struct {
	Turns []model.ConversationTurn
	Total int
}
