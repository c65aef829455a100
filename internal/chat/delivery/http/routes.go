package http

import (
	"github.com/gin-gonic/gin"

	"personal-ai-partner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	chatGroup := rg.Group("/chat")
	{
		chatGroup.POST("", mw.RateLimit(), h.Chat)
		chatGroup.GET("/history", h.History)
	}
}
