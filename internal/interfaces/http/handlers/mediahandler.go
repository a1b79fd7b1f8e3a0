package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	mediaApp "vitrine/internal/application/media"
	"vitrine/internal/shared/logger"
	"vitrine/internal/shared/utils"
)

// MediaHandler handles file uploads and signed URL issuance.
type MediaHandler struct {
	service *mediaApp.Service
	logger  logger.Interface
}

func NewMediaHandler(service *mediaApp.Service, log logger.Interface) *MediaHandler {
	return &MediaHandler{
		service: service,
		logger:  log,
	}
}

// Upload stores a multipart file upload in the media bucket.
// POST /api/admin/media
func (h *MediaHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.service.MaxBytes()+4096)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "multipart field 'file' is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read uploaded file")
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	upload, err := h.service.Store(c.Request.Context(), file, fileHeader.Size, contentType)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, upload, "File uploaded")
}

// SignedURL returns a time-limited URL for a stored object.
// GET /api/media/url?key=uploads/...
func (h *MediaHandler) SignedURL(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "query parameter 'key' is required")
		return
	}

	url, err := h.service.SignedURL(c.Request.Context(), key)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"url": url})
}

// ListBuckets returns the buckets visible to the storage credentials.
// GET /api/admin/buckets
func (h *MediaHandler) ListBuckets(c *gin.Context) {
	buckets, err := h.service.ListBuckets(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, buckets)
}
