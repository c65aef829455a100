package http

import (
	"github.com/gin-gonic/gin"

	"personal-ai-partner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	memoryGroup := rg.Group("/memory")
	{
		memoryGroup.GET("/knowledge", h.ListKnowledge)
		memoryGroup.POST("/knowledge", h.AddKnowledge)
		memoryGroup.GET("/purchases", h.ListPurchases)
		memoryGroup.POST("/purchases", h.AddPurchase)
	}
}
