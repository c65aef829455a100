package httpserver

import (
	"github.com/gin-gonic/gin"

	"personal-ai-partner/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "personal-ai-partner"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":            "healthy",
		"version":           HealthVersion,
		"service":           ServiceName,
		"connected_clients": srv.wsManager.Count(),
	})
}
