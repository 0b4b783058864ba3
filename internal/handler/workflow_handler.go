package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/daontrade/exportdesk/internal/service"
)

type WorkflowHandler struct {
	svc *service.WorkflowService
}

func NewWorkflowHandler(svc *service.WorkflowService) *WorkflowHandler {
	return &WorkflowHandler{svc: svc}
}

func (h *WorkflowHandler) Board(c *gin.Context) {
	columns, err := h.svc.Board()
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, columns)
}

type moveStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *WorkflowHandler) MoveStatus(c *gin.Context) {
	var req moveStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.svc.MoveStatus(c.Param("id"), req.Status); err != nil {
		BadRequest(c, err.Error())
		return
	}

	Success(c, nil)
}

type paymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

func (h *WorkflowHandler) SetPaymentStatus(c *gin.Context) {
	var req paymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.svc.SetPaymentStatus(c.Param("id"), req.PaymentStatus); err != nil {
		BadRequest(c, err.Error())
		return
	}

	Success(c, nil)
}

func (h *WorkflowHandler) UpdateFlags(c *gin.Context) {
	var req service.UpdateFlagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.svc.UpdateFlags(c.Param("id"), &req); err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, nil)
}
