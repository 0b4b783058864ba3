package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/daontrade/exportdesk/internal/repository"
	"github.com/daontrade/exportdesk/internal/service"
)

type OrderHandler struct {
	svc *service.OrderService
}

func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

func (h *OrderHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)

	orders, total, err := h.svc.List(repository.OrderListParams{
		Status:     c.Query("status"),
		CustomerID: c.Query("customer_id"),
		Archived:   c.Query("archived") == "true",
		Keyword:    c.Query("keyword"),
		Page:       page,
		Size:       pageSize,
	})
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, ListResponse{Items: orders, Pagination: NewPagination(page, pageSize, total)})
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req service.SaveOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	order, err := h.svc.Create(&req, GetUserID(c))
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Created(c, order)
}

func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.svc.Get(c.Param("id"))
	if err != nil {
		NotFound(c, "Order not found")
		return
	}

	Success(c, order)
}

func (h *OrderHandler) Update(c *gin.Context) {
	var req service.SaveOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	order, err := h.svc.Update(c.Param("id"), &req, GetUserID(c))
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, order)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, nil)
}

type batchDeleteRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

func (h *OrderHandler) DeleteBatch(c *gin.Context) {
	var req batchDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.svc.DeleteBatch(req.IDs); err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, nil)
}

type archiveRequest struct {
	Archived bool `json:"archived"`
}

func (h *OrderHandler) Archive(c *gin.Context) {
	var req archiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.svc.SetArchived(c.Param("id"), req.Archived); err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, nil)
}
