// Package line receives LINE webhook events and replies through the chat use case.
package line

import (
	"github.com/gin-gonic/gin"

	"personal-ai-partner/internal/chat"
	pkgLine "personal-ai-partner/pkg/line"
	pkgLog "personal-ai-partner/pkg/log"
)

// Handler is the interface for the LINE delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l             pkgLog.Logger
	uc            chat.UseCase
	bot           *pkgLine.Bot
	channelSecret string
}

// New creates a new LINE delivery handler.
func New(l pkgLog.Logger, uc chat.UseCase, bot *pkgLine.Bot, channelSecret string) Handler {
	return &handler{
		l:             l,
		uc:            uc,
		bot:           bot,
		channelSecret: channelSecret,
	}
}
