package handler

import (
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/daontrade/exportdesk/internal/repository"
	"github.com/daontrade/exportdesk/internal/service"
)

type ProductHandler struct {
	svc *service.ProductService
}

func NewProductHandler(svc *service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func (h *ProductHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)

	products, total, err := h.svc.List(repository.ProductListParams{
		Keyword:    c.Query("keyword"),
		IncludeOEM: c.Query("include_oem") == "true",
		Page:       page,
		Size:       pageSize,
	})
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, ListResponse{Items: products, Pagination: NewPagination(page, pageSize, total)})
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req service.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.svc.Create(&req, GetUserID(c))
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Created(c, product)
}

func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.svc.Get(c.Param("id"))
	if err != nil {
		NotFound(c, "Product not found")
		return
	}

	Success(c, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var req service.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.svc.Update(c.Param("id"), &req)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, nil)
}

func (h *ProductHandler) Export(c *gin.Context) {
	buf, err := h.svc.ExportExcel()
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	fileName := fmt.Sprintf("products_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (h *ProductHandler) Import(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "A file upload is required")
		return
	}

	src, err := file.Open()
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	result, err := h.svc.ImportExcel(data, GetUserID(c))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	Success(c, result)
}
