package ws

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"personal-ai-partner/internal/chat"
	"personal-ai-partner/pkg/llmprovider"
)

// Serve upgrades the request and processes message frames until the client
// disconnects. Each inbound message runs through the same use case as the
// HTTP endpoint; the socket additionally receives progress frames.
func (h *Handler) Serve(c *gin.Context) {
	ctx := c.Request.Context()

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.l.Warnf(ctx, "ws.Serve.upgrade: %v", err)
		return
	}

	id := uuid.NewString()
	cl := h.manager.add(id, conn)
	h.l.Infof(ctx, "ws client connected: %s (total %d)", id, h.manager.Count())

	defer func() {
		h.manager.remove(id)
		conn.Close()
		h.l.Infof(ctx, "ws client disconnected: %s (total %d)", id, h.manager.Count())
	}()

	for {
		var frame inboundFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.l.Warnf(ctx, "ws.Serve.read: %v", err)
			}
			return
		}

		if frame.Type != "message" {
			continue
		}

		h.handleMessage(ctx, cl, frame.Content)
	}
}

func (h *Handler) handleMessage(ctx context.Context, cl *client, content string) {
	steps := []thinkingFrame{
		newThinkingFrame("analyzing", "メッセージを分析中..."),
		newThinkingFrame("searching", "記憶を検索中..."),
		newThinkingFrame("generating", "返答を考え中..."),
	}
	for _, step := range steps {
		if err := cl.writeJSON(step); err != nil {
			h.l.Warnf(ctx, "ws.handleMessage.write: %v", err)
			return
		}
	}

	output, err := h.uc.Chat(ctx, chat.ChatInput{Message: content})
	if err != nil {
		h.l.Errorf(ctx, "ws.handleMessage.uc.Chat: %v", err)
		if writeErr := cl.writeJSON(newErrorFrame(h.clientMessage(err))); writeErr != nil {
			h.l.Warnf(ctx, "ws.handleMessage.write: %v", writeErr)
		}
		return
	}

	if err := cl.writeJSON(newResponseFrame(output.Reply, output.Timestamp)); err != nil {
		h.l.Warnf(ctx, "ws.handleMessage.write: %v", err)
	}
}

// clientMessage maps use-case errors to user-facing text without leaking
// storage or transport details.
func (h *Handler) clientMessage(err error) string {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		return "メッセージが空です"
	case errors.Is(err, llmprovider.ErrProviderTimeout):
		return "応答がタイムアウトしました。もう一度お試しください。"
	case errors.Is(err, llmprovider.ErrProviderUnavailable), errors.Is(err, llmprovider.ErrAllProvidersFailed):
		return "AIサービスに接続できませんでした。"
	default:
		return "エラーが発生しました。"
	}
}
