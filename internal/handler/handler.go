package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/daontrade/exportdesk/internal/service"
)

// Handlers bundles the HTTP layer.
type Handlers struct {
	Auth       *AuthHandler
	Customer   *CustomerHandler
	Product    *ProductHandler
	Order      *OrderHandler
	Workflow   *WorkflowHandler
	Analytics  *AnalyticsHandler
	Document   *DocumentHandler
	Exhibition *ExhibitionHandler
	Settings   *SettingsHandler
	Asset      *AssetHandler
}

func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Auth:       NewAuthHandler(svc.Auth),
		Customer:   NewCustomerHandler(svc.Customer),
		Product:    NewProductHandler(svc.Product),
		Order:      NewOrderHandler(svc.Order),
		Workflow:   NewWorkflowHandler(svc.Workflow),
		Analytics:  NewAnalyticsHandler(svc.Analytics),
		Document:   NewDocumentHandler(svc.Document),
		Exhibition: NewExhibitionHandler(svc.Exhibition),
		Settings:   NewSettingsHandler(svc.Settings),
		Asset:      NewAssetHandler(svc.Asset),
	}
}

// Response is the common envelope.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ListResponse wraps a page of items.
type ListResponse struct {
	Items      interface{} `json:"items"`
	Pagination *Pagination `json:"pagination"`
}

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

func NewPagination(page, pageSize int, total int64) *Pagination {
	totalPages := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		totalPages++
	}
	return &Pagination{Page: page, PageSize: pageSize, Total: total, TotalPages: totalPages}
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error writes an error envelope. The HTTP status is the leading
// three digits of the business code.
func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, 40100, message)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, 40300, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, 40900, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}

// GetUserID reads the authenticated user's ID off the context.
func GetUserID(c *gin.Context) string {
	userID, _ := c.Get("user_id")
	if id, ok := userID.(string); ok {
		return id
	}
	return ""
}

// GetPagination reads page/page_size query params with defaults.
func GetPagination(c *gin.Context) (page, pageSize int) {
	page = 1
	pageSize = 20

	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}

	if ps := c.Query("page_size"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
			pageSize = v
		}
	}

	return page, pageSize
}
