package handler

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/daontrade/exportdesk/internal/docgen"
	"github.com/daontrade/exportdesk/internal/service"
)

type DocumentHandler struct {
	svc *service.DocumentService
}

func NewDocumentHandler(svc *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

func docTypeParam(c *gin.Context) (docgen.DocType, bool) {
	doc := docgen.DocType(c.Param("type"))
	if !doc.Valid() {
		BadRequest(c, "Unknown document type: "+c.Param("type"))
		return "", false
	}
	return doc, true
}

// Open starts a document session: saved markup reopens as-is with
// its configuration reconstructed, otherwise the options form comes
// up with defaults.
func (h *DocumentHandler) Open(c *gin.Context) {
	doc, ok := docTypeParam(c)
	if !ok {
		return
	}

	session, err := h.svc.Open(c.Param("id"), doc)
	if err != nil {
		NotFound(c, "Order not found")
		return
	}

	Success(c, session)
}

func (h *DocumentHandler) Generate(c *gin.Context) {
	doc, ok := docTypeParam(c)
	if !ok {
		return
	}

	var opts docgen.RenderOptions
	if err := c.ShouldBindJSON(&opts); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	html, err := h.svc.Generate(c.Param("id"), doc, opts)
	if err != nil {
		if errors.Is(err, docgen.ErrExchangeRateRequired) {
			BadRequest(c, err.Error())
			return
		}
		InternalError(c, err.Error())
		return
	}

	Success(c, gin.H{"html": html})
}

type recalculateRequest struct {
	Rows    []docgen.Row        `json:"rows" binding:"required"`
	Columns docgen.ColumnConfig `json:"columns"`
}

// Recalculate reruns derived cells and totals after in-place edits.
func (h *DocumentHandler) Recalculate(c *gin.Context) {
	doc, ok := docTypeParam(c)
	if !ok {
		return
	}

	var req recalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.svc.Recalculate(doc, req.Rows, req.Columns)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	Success(c, result)
}

type saveDocumentRequest struct {
	HTML string `json:"html" binding:"required"`
}

func (h *DocumentHandler) Save(c *gin.Context) {
	doc, ok := docTypeParam(c)
	if !ok {
		return
	}

	var req saveDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.svc.Save(c.Param("id"), doc, req.HTML); err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, nil)
}

func (h *DocumentHandler) Clear(c *gin.Context) {
	doc, ok := docTypeParam(c)
	if !ok {
		return
	}

	if err := h.svc.Clear(c.Param("id"), doc); err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, nil)
}

func (h *DocumentHandler) Excel(c *gin.Context) {
	doc, ok := docTypeParam(c)
	if !ok {
		return
	}

	buf, err := h.svc.ExportExcel(c.Param("id"), doc)
	if err != nil {
		if errors.Is(err, service.ErrNoSavedDocument) {
			NotFound(c, err.Error())
			return
		}
		InternalError(c, err.Error())
		return
	}

	fileName := fmt.Sprintf("%s_%s.xlsx", doc, c.Param("id"))
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
