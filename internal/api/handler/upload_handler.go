package handler

import (
	log "log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joeljosepholawale/campustng/internal/pkg/minio"
	"github.com/joeljosepholawale/campustng/internal/pkg/response"
	"github.com/joeljosepholawale/campustng/internal/pkg/util"
	"github.com/joeljosepholawale/campustng/internal/service"
)

type UploadHandler struct{}

func NewUploadHandler() *UploadHandler {
	return &UploadHandler{}
}

// Upload accepts a single image, normalizes it and stores it in the
// object store. The response carries the public URL clients embed in
// listings and profiles.
func (s *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	contentType, err := util.GetSafeContentType(reader)
	if err != nil || !strings.HasPrefix(contentType, "image/") {
		response.Error(c, service.ErrFileNotSupported)
		return
	}

	normalized, err := util.NormalizeImage(reader)
	if err != nil {
		response.Error(c, service.ErrFileNotSupported)
		return
	}

	objectName := time.Now().Format("2006/01/02/") + uuid.NewString() + ".jpg"
	fileKey, err := minio.UploadFile(c.Request.Context(), objectName, normalized, int64(normalized.Len()), "image/jpeg")
	if err != nil {
		log.ErrorContext(c.Request.Context(), "image upload failed", "err", err)
		response.Error(c, service.UnExpectedError)
		return
	}

	publicURL := minio.GetPublicURL(fileKey)
	log.InfoContext(c.Request.Context(), "image uploaded", "fileKey", fileKey, "size", file.Size)
	response.Success(c, gin.H{
		"url":      publicURL,
		"key":      fileKey,
		"mime":     "image/jpeg",
		"original": file.Filename,
	})
}
