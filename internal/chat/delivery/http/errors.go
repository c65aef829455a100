package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"personal-ai-partner/internal/chat"
	"personal-ai-partner/pkg/jsonstore"
	"personal-ai-partner/pkg/llmprovider"
	"personal-ai-partner/pkg/response"
)

// mapError translates use-case errors into HTTP responses.
// Transport and storage details never leak to the client.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		response.Error(c, err)
	case errors.Is(err, llmprovider.ErrProviderTimeout):
		response.ErrorWithStatus(c, http.StatusGatewayTimeout, errors.New("completion service timed out"))
	case errors.Is(err, llmprovider.ErrProviderUnavailable), errors.Is(err, llmprovider.ErrAllProvidersFailed):
		response.ErrorWithStatus(c, http.StatusBadGateway, errors.New("completion service unavailable"))
	case errors.Is(err, jsonstore.ErrCorrupted):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
