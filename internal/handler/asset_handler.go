package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/daontrade/exportdesk/internal/service"
)

type AssetHandler struct {
	svc *service.AssetService
}

func NewAssetHandler(svc *service.AssetService) *AssetHandler {
	return &AssetHandler{svc: svc}
}

// Upload stores an image and returns its object name and URL. The
// "kind" form field partitions objects (products, stamps).
func (h *AssetHandler) Upload(c *gin.Context) {
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

	asset, err := h.svc.Upload(c.Request.Context(), c.PostForm("kind"), src, file.Filename, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Created(c, asset)
}

// Delete removes a stored object. The object name is passed as a
// query parameter because it contains path separators.
func (h *AssetHandler) Delete(c *gin.Context) {
	objectName := c.Query("object")
	if objectName == "" {
		BadRequest(c, "An object name is required")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), objectName); err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, nil)
}
