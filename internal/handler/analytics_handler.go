package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/daontrade/exportdesk/internal/repository"
	"github.com/daontrade/exportdesk/internal/service"
)

type AnalyticsHandler struct {
	svc *service.AnalyticsService
}

func NewAnalyticsHandler(svc *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	dash, err := h.svc.Dashboard(c.Request.Context(), repository.AnalyticsFilter{
		From:       c.Query("from"),
		To:         c.Query("to"),
		CustomerID: c.Query("customer_id"),
	})
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, dash)
}
