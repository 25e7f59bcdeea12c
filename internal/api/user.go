package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/nestmate/backend/internal/models"
	"github.com/nestmate/backend/internal/service"
)

// UserService is the surface the user handler needs from the service layer.
type UserService interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	Create(ctx context.Context, input service.CreateUserInput) (*models.User, error)
	Update(ctx context.Context, id uint, input service.UpdateUserInput) (*models.User, error)
	Delete(ctx context.Context, id uint) error
}

type UserHandler struct {
	users  UserService
	logger *logrus.Logger
}

func NewUserHandler(users UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("/:id", h.GetUser)
		users.POST("", h.CreateUser)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
	}
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.serverError(c, "fetching user", err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var input service.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.users.Create(c.Request.Context(), input)
	if err != nil {
		h.serverError(c, "creating user", err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input service.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.users.Update(c.Request.Context(), id, input)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.serverError(c, "updating user", err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser returns 204 whether or not the row existed.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		h.serverError(c, "deleting user", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *UserHandler) serverError(c *gin.Context, action string, err error) {
	h.logger.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"error":      err.Error(),
	}).Errorf("error %s", action)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
