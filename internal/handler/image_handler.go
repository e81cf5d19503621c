package handler

import (
	"github.com/gin-gonic/gin"

	"kinshare/internal/service"
)

// ImageHandler handles image read endpoints.
type ImageHandler struct {
	images service.ImageService
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(images service.ImageService) *ImageHandler {
	return &ImageHandler{images: images}
}

// GetDownloadURL handles GET /api/v1/images/:id/url
func (h *ImageHandler) GetDownloadURL(c *gin.Context) {
	imageID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	url, err := h.images.GetDownloadURL(c.Request.Context(), imageID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"url": url})
}

// GetThumbnailURL handles GET /api/v1/images/:id/thumbnail-url
func (h *ImageHandler) GetThumbnailURL(c *gin.Context) {
	imageID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	url, err := h.images.GetThumbnailURL(c.Request.Context(), imageID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"url": url})
}
