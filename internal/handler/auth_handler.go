package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/daontrade/exportdesk/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.svc.Login(&req)
	if err != nil {
		Unauthorized(c, err.Error())
		return
	}

	Success(c, resp)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.svc.Register(&req)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	Created(c, user)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.svc.Me(GetUserID(c))
	if err != nil {
		NotFound(c, "User not found")
		return
	}

	Success(c, user)
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.svc.ChangePassword(GetUserID(c), req.OldPassword, req.NewPassword); err != nil {
		BadRequest(c, err.Error())
		return
	}

	Success(c, nil)
}
