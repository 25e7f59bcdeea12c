package server

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/nestmate/backend/config"
	"github.com/nestmate/backend/internal/api"
	"github.com/nestmate/backend/internal/database"
	"github.com/nestmate/backend/internal/middleware"
	"github.com/nestmate/backend/internal/router"
	"github.com/nestmate/backend/internal/service"
	"github.com/nestmate/backend/pkg/logging"
)

// Server wires the full application together and owns the HTTP listener.
type Server struct {
	http   *http.Server
	logger *logrus.Logger
}

// New connects to the store and Redis, builds services and handlers, and
// returns a server ready to Start. Redis and S3 are optional at runtime:
// without Redis there is no rate limiting or logout denylist, without S3
// the photo routes are not mounted.
func New(cfg *config.Config) (*Server, error) {
	logger := logging.New("nestmate-api", string(config.GetEnvironment()))

	db, err := database.New(cfg)
	if err != nil {
		return nil, err
	}
	logger.WithFields(logrus.Fields{"host": cfg.DBHost, "db": cfg.DBName}).Info("connected to database")

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		logger.WithError(err).Warn("redis unavailable, continuing without rate limiting and logout")
		redisClient = nil
	}

	userService := service.NewUserService(db)
	authService := service.NewAuthService(userService, redisClient, cfg.JWTSecret)

	handlers := router.Handlers{
		Health:      api.NewHealthHandler(db, logger),
		Users:       api.NewUserHandler(userService, logger),
		Rooms:       api.NewRoomHandler(service.NewRoomService(db), logger),
		Preferences: api.NewPreferenceHandler(service.NewPreferenceService(db), logger),
		Amenities:   api.NewAmenityHandler(service.NewAmenityService(db), logger),
		Auth:        api.NewAuthHandler(authService, userService, logger),
	}

	if s3cfg, err := config.NewS3Config(context.Background(), cfg); err != nil {
		logger.WithError(err).Warn("s3 unavailable, photo uploads disabled")
	} else {
		handlers.Photos = api.NewPhotoHandler(service.NewPhotoService(s3cfg), logger)
	}

	var limiter *middleware.RateLimiter
	if redisClient != nil {
		limiter = middleware.NewWriteRateLimiter(redisClient)
	}

	engine := router.SetupRouter(handlers, authService, limiter, cfg.FrontendOrigin)

	return &Server{
		http: &http.Server{
			Addr:    ":" + cfg.ServerPort,
			Handler: engine,
		},
		logger: logger,
	}, nil
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.logger.WithField("addr", s.http.Addr).Info("starting server")
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
