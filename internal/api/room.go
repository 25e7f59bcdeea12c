package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/nestmate/backend/internal/middleware"
	"github.com/nestmate/backend/internal/models"
	"github.com/nestmate/backend/internal/service"
)

// RoomService is the surface the room handler needs from the service layer.
type RoomService interface {
	GetByID(ctx context.Context, id uint) (*models.Room, error)
	List(ctx context.Context, limit int) ([]models.Room, error)
	Create(ctx context.Context, input service.CreateRoomInput) (*models.Room, error)
	Update(ctx context.Context, id uint, input service.UpdateRoomInput) (*models.Room, error)
	Delete(ctx context.Context, id uint) error
}

type RoomHandler struct {
	rooms  RoomService
	logger *logrus.Logger
}

func NewRoomHandler(rooms RoomService, logger *logrus.Logger) *RoomHandler {
	return &RoomHandler{rooms: rooms, logger: logger}
}

// RegisterRoutes mounts the room routes. The optional auth middleware lets
// ownership be enforced on update/delete when the caller presents a token.
func (h *RoomHandler) RegisterRoutes(router *gin.RouterGroup, validator middleware.TokenValidator) {
	rooms := router.Group("/rooms")
	{
		rooms.GET("", h.ListRooms)
		rooms.GET("/:id", h.GetRoom)
		rooms.POST("", h.CreateRoom)
		rooms.PUT("/:id", middleware.OptionalAuth(validator), h.UpdateRoom)
		rooms.DELETE("/:id", middleware.OptionalAuth(validator), h.DeleteRoom)
	}
}

func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	room, err := h.rooms.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		h.serverError(c, "fetching room", err)
		return
	}

	c.JSON(http.StatusOK, room)
}

func (h *RoomHandler) ListRooms(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	rooms, err := h.rooms.List(c.Request.Context(), limit)
	if err != nil {
		h.serverError(c, "listing rooms", err)
		return
	}

	c.JSON(http.StatusOK, rooms)
}

func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var input service.CreateRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	room, err := h.rooms.Create(c.Request.Context(), input)
	if err != nil {
		h.serverError(c, "creating room", err)
		return
	}

	c.JSON(http.StatusCreated, room)
}

func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input service.UpdateRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if !h.actorOwnsRoom(c, id) {
		return
	}

	room, err := h.rooms.Update(c.Request.Context(), id, input)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		h.serverError(c, "updating room", err)
		return
	}

	c.JSON(http.StatusOK, room)
}

func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if !h.actorOwnsRoom(c, id) {
		return
	}

	if err := h.rooms.Delete(c.Request.Context(), id); err != nil {
		h.serverError(c, "deleting room", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// actorOwnsRoom enforces ownership for authenticated callers. Anonymous
// requests pass through; a valid token for a different user gets 403.
func (h *RoomHandler) actorOwnsRoom(c *gin.Context, roomID uint) bool {
	actorID, authenticated := c.Get(middleware.ContextUserID)
	if !authenticated {
		return true
	}

	room, err := h.rooms.GetByID(c.Request.Context(), roomID)
	if err != nil {
		// Missing rooms fall through to the handler's own 404/204 path.
		return true
	}

	if room.OwnerID != actorID.(uint) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not the room owner"})
		return false
	}
	return true
}

func (h *RoomHandler) serverError(c *gin.Context, action string, err error) {
	h.logger.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"error":      err.Error(),
	}).Errorf("error %s", action)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
