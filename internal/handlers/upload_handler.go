package handlers

import (
	"io"
	"net/http"
	"strings"

	"invoicing-dashboard/internal/blob"
	"invoicing-dashboard/internal/config"
	"invoicing-dashboard/internal/dto"
	"invoicing-dashboard/internal/errors"
	"invoicing-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// UploadHandler handles customer avatar uploads
type UploadHandler struct {
	store   blob.Store
	config  *config.UploadConfig
	metrics services.MetricsRecorderInterface
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(store blob.Store, uploadConfig *config.UploadConfig, metrics services.MetricsRecorderInterface) *UploadHandler {
	return &UploadHandler{
		store:   store,
		config:  uploadConfig,
		metrics: metrics,
	}
}

// UploadAvatar stores a customer avatar image and returns its public URL
//
// Method: POST /api/v1/uploads/avatar
// Authentication: Required
//
// The image is read from the multipart form field "image". The content type
// is sniffed from the file bytes rather than trusted from the part header.
//
// Error Responses:
//   - 400: Missing file (UPLOAD_001), not an image (UPLOAD_002), too large (UPLOAD_003)
//   - 401: Unauthorized
//   - 500: Internal server error
func (h *UploadHandler) UploadAvatar(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return SendError(c, errors.AuthNotAuthenticated)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.recordUpload("rejected")
		return SendError(c, errors.UploadMissingFile)
	}

	if fileHeader.Size > h.config.MaxSizeBytes {
		h.recordUpload("rejected")
		return SendError(c, errors.UploadTooLarge)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return SendSystemError(c, err)
	}
	defer file.Close()

	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		return SendSystemError(c, err)
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	if !strings.HasPrefix(contentType, "image/") {
		h.recordUpload("rejected")
		return SendError(c, errors.UploadNotAnImage)
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return SendSystemError(c, err)
	}

	// The reader is capped at one byte past the limit so a part header
	// lying about its size cannot push an oversized blob onto disk
	url, err := h.store.Put(c.Request().Context(), fileHeader.Filename, contentType, io.LimitReader(file, h.config.MaxSizeBytes+1))
	if err != nil {
		return SendSystemError(c, err)
	}

	h.recordUpload("completed")

	return c.JSON(http.StatusCreated, dto.UploadAvatarResponse{
		URL: url,
	})
}

func (h *UploadHandler) recordUpload(status string) {
	if h.metrics == nil {
		return
	}
	h.metrics.IncrementCounter("upload_"+status, map[string]string{})
}
