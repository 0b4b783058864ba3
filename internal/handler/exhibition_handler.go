package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/daontrade/exportdesk/internal/service"
)

type ExhibitionHandler struct {
	svc *service.ExhibitionService
}

func NewExhibitionHandler(svc *service.ExhibitionService) *ExhibitionHandler {
	return &ExhibitionHandler{svc: svc}
}

func (h *ExhibitionHandler) List(c *gin.Context) {
	exhibitions, err := h.svc.List()
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, exhibitions)
}

func (h *ExhibitionHandler) Create(c *gin.Context) {
	var req service.ExhibitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	exhibition, err := h.svc.Create(&req, GetUserID(c))
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Created(c, exhibition)
}

func (h *ExhibitionHandler) Get(c *gin.Context) {
	exhibition, err := h.svc.Get(c.Param("id"))
	if err != nil {
		NotFound(c, "Exhibition not found")
		return
	}

	Success(c, gin.H{
		"exhibition": exhibition,
		"intake_url": h.svc.IntakeURL(exhibition.ID),
	})
}

func (h *ExhibitionHandler) Update(c *gin.Context) {
	var req service.ExhibitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	exhibition, err := h.svc.Update(c.Param("id"), &req)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, exhibition)
}

func (h *ExhibitionHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, nil)
}

// QRCode serves the intake QR as a PNG for booth signage.
func (h *ExhibitionHandler) QRCode(c *gin.Context) {
	size, _ := strconv.Atoi(c.DefaultQuery("size", "256"))

	png, err := h.svc.QRCodePNG(c.Param("id"), size)
	if err != nil {
		NotFound(c, "Exhibition not found")
		return
	}

	c.Header("Content-Disposition", "inline; filename=exhibition_qr.png")
	c.Data(200, "image/png", png)
}

func (h *ExhibitionHandler) Logs(c *gin.Context) {
	logs, err := h.svc.Logs(c.Param("id"))
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, logs)
}

func (h *ExhibitionHandler) AddLog(c *gin.Context) {
	var req service.ConsultationLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	log, err := h.svc.AddLog(c.Param("id"), &req, GetUserID(c))
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Created(c, log)
}

func (h *ExhibitionHandler) UpdateLog(c *gin.Context) {
	var req service.ConsultationLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	log, err := h.svc.UpdateLog(c.Param("log_id"), &req)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, log)
}

func (h *ExhibitionHandler) DeleteLog(c *gin.Context) {
	if err := h.svc.DeleteLog(c.Param("log_id")); err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, nil)
}

// Intake is the public lead form behind the QR code. It runs outside
// the authenticated group.
func (h *ExhibitionHandler) Intake(c *gin.Context) {
	var req service.IntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	customer, err := h.svc.Intake(c.Param("id"), &req)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	Created(c, customer)
}
