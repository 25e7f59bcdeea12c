package api

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nestmate/backend/internal/middleware"
	"github.com/nestmate/backend/internal/service"
)

// PhotoService is the surface the photo handler needs.
type PhotoService interface {
	Upload(ctx context.Context, kind, filename string, body io.Reader) (string, error)
}

type PhotoHandler struct {
	photos PhotoService
	logger *logrus.Logger
}

func NewPhotoHandler(photos PhotoService, logger *logrus.Logger) *PhotoHandler {
	return &PhotoHandler{photos: photos, logger: logger}
}

func (h *PhotoHandler) RegisterRoutes(router *gin.RouterGroup, validator middleware.TokenValidator) {
	router.POST("/photos", middleware.Auth(validator), h.UploadPhoto)
}

// UploadPhoto accepts a multipart upload ("photo" file plus a "kind" field of
// profile or room) and returns the stored photo's public URL. The client puts
// that URL on the user's profile_url or the room record.
func (h *PhotoHandler) UploadPhoto(c *gin.Context) {
	kind := c.PostForm("kind")
	if kind == "" {
		kind = "profile"
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read photo"})
		return
	}
	defer func() { _ = file.Close() }()

	url, err := h.photos.Upload(c.Request.Context(), kind, fileHeader.Filename, file)
	if err != nil {
		if errors.Is(err, service.ErrUnknownPhotoKind) || errors.Is(err, service.ErrUnsupportedPhotoType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"error":      err.Error(),
		}).Error("error uploading photo")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
