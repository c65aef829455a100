package line

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"personal-ai-partner/internal/chat"
	pkgLine "personal-ai-partner/pkg/line"
	"personal-ai-partner/pkg/response"
)

// HandleWebhook validates the signature, acknowledges with 200 immediately and
// processes events in a background goroutine. LINE expects the webhook to
// respond within a few seconds while a completion call can take far longer.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "line handler: failed to read body: %v", err)
		response.Error(c, err)
		return
	}

	signature := c.GetHeader("X-Line-Signature")
	if err := pkgLine.ValidateSignature(h.channelSecret, body, signature); err != nil {
		h.l.Warnf(ctx, "line handler: signature rejected: %v", err)
		response.ErrorWithStatus(c, http.StatusForbidden, err)
		return
	}

	var webhook pkgLine.WebhookBody
	if err := json.Unmarshal(body, &webhook); err != nil {
		h.l.Errorf(ctx, "line handler: failed to parse webhook: %v", err)
		response.Error(c, err)
		return
	}

	// Snapshot events before spawning the goroutine; the gin context is not
	// safe to touch after the response is written.
	events := webhook.Events

	go func() {
		// Detach from the request context, which is cancelled on response.
		bgCtx := context.Background()
		for _, event := range events {
			if err := h.processEvent(bgCtx, event); err != nil {
				h.l.Errorf(bgCtx, "line handler: background processEvent failed: %v", err)
			}
		}
	}()

	response.OK(c, map[string]string{"status": "accepted"})
}

// processEvent handles a single webhook event. Non-text events are ignored.
func (h *handler) processEvent(ctx context.Context, event pkgLine.Event) error {
	if event.Type != "message" || event.Message == nil || event.Message.Type != "text" {
		return nil
	}
	if event.Message.Text == "" {
		return nil
	}

	output, err := h.uc.Chat(ctx, chat.ChatInput{Message: event.Message.Text})
	if err != nil {
		h.l.Errorf(ctx, "line handler: uc.Chat failed: %v", err)
		// Best-effort error notification to the user.
		return h.bot.Reply(event.ReplyToken, "エラーが発生しました。もう一度お試しください。")
	}

	return h.bot.Reply(event.ReplyToken, output.Reply)
}
