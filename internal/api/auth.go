package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nestmate/backend/internal/middleware"
	"github.com/nestmate/backend/internal/models"
	"github.com/nestmate/backend/internal/service"
	"github.com/nestmate/backend/internal/types"
)

// AuthService is the surface the auth handler needs.
type AuthService interface {
	Register(ctx context.Context, input service.CreateUserInput) (string, *models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	Logout(ctx context.Context, claims *types.TokenClaims) error
	ValidateToken(ctx context.Context, token string) (*types.TokenClaims, error)
}

type AuthHandler struct {
	auth   AuthService
	users  UserService
	logger *logrus.Logger
}

func NewAuthHandler(auth AuthService, users UserService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, users: users, logger: logger}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)

		protected := auth.Group("")
		protected.Use(middleware.Auth(h.auth))
		{
			protected.GET("/me", h.Me)
			protected.POST("/logout", h.Logout)
		}
	}
}

type sessionResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input service.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	token, user, err := h.auth.Register(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "user already exists"})
			return
		}
		h.serverError(c, "registering user", err)
		return
	}

	c.JSON(http.StatusCreated, sessionResponse{Token: token, User: user})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		h.serverError(c, "logging in", err)
		return
	}

	c.JSON(http.StatusOK, sessionResponse{Token: token, User: user})
}

// Me returns the account behind the presented token.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), userID.(uint))
	if err != nil {
		h.serverError(c, "fetching account", err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	claims, exists := c.Get(middleware.ContextClaims)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.auth.Logout(c.Request.Context(), claims.(*types.TokenClaims)); err != nil {
		h.serverError(c, "logging out", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}

func (h *AuthHandler) serverError(c *gin.Context, action string, err error) {
	h.logger.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"error":      err.Error(),
	}).Errorf("error %s", action)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
