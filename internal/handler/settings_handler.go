package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/daontrade/exportdesk/internal/service"
)

type SettingsHandler struct {
	svc *service.SettingsService
}

func NewSettingsHandler(svc *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.svc.Get()
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req service.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	settings, err := h.svc.Update(&req)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, settings)
}
