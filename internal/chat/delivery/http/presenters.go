package http

import (
	"personal-ai-partner/internal/chat"
	"personal-ai-partner/internal/model"
)

// --- Request DTOs ---

type chatReq struct {
	Message string `json:"message" binding:"required"`
}

func (r chatReq) validate() error { return nil }

func (r chatReq) toInput() chat.ChatInput {
	return chat.ChatInput{Message: r.Message}
}

// ---

type historyReq struct {
	Limit int `form:"limit"`
}

func (r historyReq) validate() error { return nil }

func (r historyReq) toInput() chat.HistoryInput {
	limit := r.Limit
	if limit < 0 {
		limit = 0
	}
	return chat.HistoryInput{Limit: limit}
}

// --- Response DTOs ---

type chatResp struct {
	Reply     string `json:"reply"`
	Timestamp string `json:"timestamp"`
}

func (h *handler) newChatResp(out chat.ChatOutput) chatResp {
	return chatResp{
		Reply:     out.Reply,
		Timestamp: out.Timestamp,
	}
}

type turnResp struct {
	Role      string `json:"role"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

func newTurnResp(turn model.ConversationTurn) turnResp {
	return turnResp{
		Role:      string(turn.Role),
		Text:      turn.Text,
		Timestamp: turn.Timestamp,
	}
}

type historyResp struct {
	Turns []turnResp `json:"turns"`
	Total int        `json:"total"`
}

func (h *handler) newHistoryResp(out chat.HistoryOutput) historyResp {
	turns := make([]turnResp, len(out.Turns))
	for i, turn := range out.Turns {
		turns[i] = newTurnResp(turn)
	}
	return historyResp{
		Turns: turns,
		Total: out.Total,
	}
}
