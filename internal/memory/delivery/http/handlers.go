package http

import (
	"github.com/gin-gonic/gin"

	"personal-ai-partner/pkg/response"
)

// ListKnowledge godoc
// @Summary     List knowledge entries
// @Description Returns every stored knowledge entry in persisted order.
// @Tags        Memory
// @Produce     json
// @Success     200 {object} listKnowledgeResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/memory/knowledge [GET]
func (h *handler) ListKnowledge(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListKnowledge(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListKnowledge: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newListKnowledgeResp(output))
}

// AddKnowledge godoc
// @Summary     Add a knowledge entry
// @Description Appends one entry to the knowledge list used for chat context.
// @Tags        Memory
// @Accept      json
// @Produce     json
// @Param       body body addKnowledgeReq true "Knowledge text"
// @Success     200 {object} addKnowledgeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/memory/knowledge [POST]
func (h *handler) AddKnowledge(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddKnowledgeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.AddKnowledge(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddKnowledge: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newAddKnowledgeResp(output))
}

// ListPurchases godoc
// @Summary     List purchases
// @Description Returns every stored purchase record in persisted order.
// @Tags        Memory
// @Produce     json
// @Success     200 {object} listPurchasesResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/memory/purchases [GET]
func (h *handler) ListPurchases(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListPurchases(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListPurchases: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newListPurchasesResp(output))
}

// AddPurchase godoc
// @Summary     Record a purchase
// @Description Appends one purchase record with a generated ID.
// @Tags        Memory
// @Accept      json
// @Produce     json
// @Param       body body addPurchaseReq true "Purchase data"
// @Success     200 {object} addPurchaseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/memory/purchases [POST]
func (h *handler) AddPurchase(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddPurchaseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.AddPurchase(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddPurchase: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newAddPurchaseResp(output))
}
