package router

import (
	"github.com/gin-gonic/gin"

	"github.com/nestmate/backend/internal/api"
	"github.com/nestmate/backend/internal/middleware"
)

// Handlers collects everything the router mounts.
type Handlers struct {
	Health      *api.HealthHandler
	Users       *api.UserHandler
	Rooms       *api.RoomHandler
	Preferences *api.PreferenceHandler
	Amenities   *api.AmenityHandler
	Auth        *api.AuthHandler
	Photos      *api.PhotoHandler
}

// SetupRouter configures the application routes under /api.
func SetupRouter(
	h Handlers,
	validator middleware.TokenValidator,
	limiter *middleware.RateLimiter,
	frontendOrigin string,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(frontendOrigin))

	root := router.Group("/api")
	if limiter != nil {
		root.Use(limiter.Middleware())
	}

	h.Health.RegisterRoutes(root)
	h.Users.RegisterRoutes(root)
	h.Rooms.RegisterRoutes(root, validator)
	h.Preferences.RegisterRoutes(root)
	h.Amenities.RegisterRoutes(root)
	h.Auth.RegisterRoutes(root)
	if h.Photos != nil {
		h.Photos.RegisterRoutes(root, validator)
	}

	return router
}
