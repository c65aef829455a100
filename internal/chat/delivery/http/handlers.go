package http

import (
	"github.com/gin-gonic/gin"

	"personal-ai-partner/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Builds the assembled context from stored knowledge and history,
// @Description calls the completion service, persists both turns and returns the reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "User message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Failure     502 {object} response.Resp "Completion Service Unavailable"
// @Failure     504 {object} response.Resp "Completion Service Timeout"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// History godoc
// @Summary     Get conversation history
// @Description Returns the persisted conversation transcript, oldest first.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       limit query int false "Return only the most recent N turns (default: all)"
// @Success     200 {object} historyResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.History(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newHistoryResp(output))
}
