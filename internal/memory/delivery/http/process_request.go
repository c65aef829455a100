package http

import (
	"github.com/gin-gonic/gin"
)

// processAddKnowledgeReq binds and validates the add knowledge request body.
func (h *handler) processAddKnowledgeReq(c *gin.Context) (addKnowledgeReq, error) {
	var req addKnowledgeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processAddPurchaseReq binds and validates the add purchase request body.
func (h *handler) processAddPurchaseReq(c *gin.Context) (addPurchaseReq, error) {
	var req addPurchaseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
