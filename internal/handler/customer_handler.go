package handler

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/daontrade/exportdesk/internal/entity"
	"github.com/daontrade/exportdesk/internal/repository"
	"github.com/daontrade/exportdesk/internal/service"
)

type CustomerHandler struct {
	svc *service.CustomerService
}

func NewCustomerHandler(svc *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

func (h *CustomerHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)

	customers, total, err := h.svc.List(repository.CustomerListParams{
		Country: c.Query("country"),
		Source:  c.Query("source"),
		Keyword: c.Query("keyword"),
		Page:    page,
		Size:    pageSize,
	})
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, ListResponse{Items: customers, Pagination: NewPagination(page, pageSize, total)})
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req service.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	customer, err := h.svc.Create(&req, GetUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEmail) {
			Conflict(c, err.Error())
			return
		}
		InternalError(c, err.Error())
		return
	}

	Created(c, customer)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.svc.Get(c.Param("id"))
	if err != nil {
		NotFound(c, "Customer not found")
		return
	}

	Success(c, gin.H{
		"customer":     customer,
		"source_label": h.svc.SourceLabel(customer.AcquisitionSource),
	})
}

func (h *CustomerHandler) Update(c *gin.Context) {
	var req service.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	customer, err := h.svc.Update(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEmail) {
			Conflict(c, err.Error())
			return
		}
		InternalError(c, err.Error())
		return
	}

	Success(c, customer)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, nil)
}

// Countries serves the filter metadata for the customer list: the
// static dropdown list, the EU subset, the countries actually in use,
// and the department CC address for outbound mail.
func (h *CustomerHandler) Countries(c *gin.Context) {
	inUse, err := h.svc.Countries()
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, gin.H{
		"countries":    entity.AllCountries,
		"eu_countries": entity.EUCountries,
		"in_use":       inUse,
		"cc_email":     entity.DepartmentEmailCC,
	})
}

func (h *CustomerHandler) Export(c *gin.Context) {
	buf, err := h.svc.ExportExcel()
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	fileName := fmt.Sprintf("customers_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (h *CustomerHandler) Import(c *gin.Context) {
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
