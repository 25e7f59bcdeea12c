package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/nestmate/backend/internal/models"
)

// PreferenceService is the surface the preference handler needs.
type PreferenceService interface {
	GetByUserID(ctx context.Context, userID uint) (*models.Preference, error)
	Upsert(ctx context.Context, userID uint, pref models.Preference) (*models.Preference, error)
}

type PreferenceHandler struct {
	preferences PreferenceService
	logger      *logrus.Logger
}

func NewPreferenceHandler(preferences PreferenceService, logger *logrus.Logger) *PreferenceHandler {
	return &PreferenceHandler{preferences: preferences, logger: logger}
}

func (h *PreferenceHandler) RegisterRoutes(router *gin.RouterGroup) {
	prefs := router.Group("/preferences")
	{
		prefs.GET("/:userId", h.GetPreferences)
		prefs.POST("/:userId", h.UpsertPreferences)
	}
}

func (h *PreferenceHandler) GetPreferences(c *gin.Context) {
	userID, ok := idParam(c, "userId")
	if !ok {
		return
	}

	pref, err := h.preferences.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "preferences not found"})
			return
		}
		h.serverError(c, "fetching preferences", err)
		return
	}

	c.JSON(http.StatusOK, pref)
}

// UpsertPreferences creates or fully replaces the user's preference row.
// Repeating the same payload is idempotent apart from updated_at.
func (h *PreferenceHandler) UpsertPreferences(c *gin.Context) {
	userID, ok := idParam(c, "userId")
	if !ok {
		return
	}

	var pref models.Preference
	if err := c.ShouldBindJSON(&pref); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	saved, err := h.preferences.Upsert(c.Request.Context(), userID, pref)
	if err != nil {
		h.serverError(c, "upserting preferences", err)
		return
	}

	c.JSON(http.StatusOK, saved)
}

func (h *PreferenceHandler) serverError(c *gin.Context, action string, err error) {
	h.logger.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"error":      err.Error(),
	}).Errorf("error %s", action)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
