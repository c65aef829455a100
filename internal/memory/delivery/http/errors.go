package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"personal-ai-partner/internal/memory"
	"personal-ai-partner/pkg/response"
)

// mapError translates use-case errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, memory.ErrEmptyEntry), errors.Is(err, memory.ErrEmptyProduct):
		response.Error(c, err)
	default:
		response.InternalError(c)
	}
}
