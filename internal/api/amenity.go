package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AmenityService is the surface the amenity handler needs.
type AmenityService interface {
	ListByUserID(ctx context.Context, userID uint) ([]string, error)
	Add(ctx context.Context, userID uint, amenity string) error
	Remove(ctx context.Context, userID uint, amenity string) error
}

type AmenityHandler struct {
	amenities AmenityService
	logger    *logrus.Logger
}

func NewAmenityHandler(amenities AmenityService, logger *logrus.Logger) *AmenityHandler {
	return &AmenityHandler{amenities: amenities, logger: logger}
}

func (h *AmenityHandler) RegisterRoutes(router *gin.RouterGroup) {
	amenities := router.Group("/user-amenities")
	{
		amenities.GET("/:userId", h.ListAmenities)
		amenities.POST("/:userId", h.AddAmenity)
		amenities.DELETE("/:userId/:amenity", h.RemoveAmenity)
	}
}

func (h *AmenityHandler) ListAmenities(c *gin.Context) {
	userID, ok := idParam(c, "userId")
	if !ok {
		return
	}

	amenities, err := h.amenities.ListByUserID(c.Request.Context(), userID)
	if err != nil {
		h.serverError(c, "fetching user amenities", err)
		return
	}

	c.JSON(http.StatusOK, amenities)
}

type addAmenityRequest struct {
	Amenity string `json:"amenity"`
}

// AddAmenity reports 201 even when the pair already existed; the set
// contains the amenity either way.
func (h *AmenityHandler) AddAmenity(c *gin.Context) {
	userID, ok := idParam(c, "userId")
	if !ok {
		return
	}

	var req addAmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Amenity) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amenity is required"})
		return
	}

	amenity := strings.TrimSpace(req.Amenity)
	if err := h.amenities.Add(c.Request.Context(), userID, amenity); err != nil {
		h.serverError(c, "adding user amenity", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user_id": userID, "amenity": amenity})
}

func (h *AmenityHandler) RemoveAmenity(c *gin.Context) {
	userID, ok := idParam(c, "userId")
	if !ok {
		return
	}

	if err := h.amenities.Remove(c.Request.Context(), userID, c.Param("amenity")); err != nil {
		h.serverError(c, "removing user amenity", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AmenityHandler) serverError(c *gin.Context, action string, err error) {
	h.logger.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"error":      err.Error(),
	}).Errorf("error %s", action)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
