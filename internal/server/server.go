package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/receitaria/backend/config"
	"github.com/receitaria/backend/internal/api"
	"github.com/receitaria/backend/internal/middleware"
	"github.com/receitaria/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	cfg    *config.Config
	db     *gorm.DB
	redis  *redis.Client
}

// New wires services, middleware and routes into a runnable server.
// redisClient and s3Config may be nil; the affected features degrade
// (no rate limiting, uploads return 503).
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, s3Config *config.S3Config) *Server {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	authService := service.NewAuthService(db, cfg.JWTSecret)
	recipeService := service.NewRecipeService(db)

	var createLimit, ratingLimit *middleware.RateLimiter
	if redisClient != nil {
		createLimit = middleware.NewRecipeCreationRateLimiter(redisClient)
		ratingLimit = middleware.NewRatingRateLimiter(redisClient)
	}

	var uploadService *service.UploadService
	if s3Config != nil {
		uploadService = service.NewUploadService(s3Config)
	}

	s := &Server{
		router: router,
		cfg:    cfg,
		db:     db,
		redis:  redisClient,
	}

	v1 := router.Group("/api/v1")
	api.NewAuthHandler(authService).RegisterRoutes(v1)
	api.NewRecipeHandler(recipeService, authService, createLimit, ratingLimit).RegisterRoutes(v1)
	api.NewProfileHandler(authService, recipeService).RegisterRoutes(v1)
	api.NewUploadHandler(uploadService, authService).RegisterRoutes(v1)

	router.GET("/health", s.health)

	return s
}

func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := gin.H{"database": "ok", "cache": "ok"}

	if sqlDB, err := s.db.DB(); err != nil {
		checks["database"] = err.Error()
		status = http.StatusServiceUnavailable
	} else if err := sqlDB.PingContext(ctx); err != nil {
		checks["database"] = err.Error()
		status = http.StatusServiceUnavailable
	}

	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			checks["cache"] = err.Error()
			status = http.StatusServiceUnavailable
		}
	} else {
		checks["cache"] = "disabled"
	}

	c.JSON(status, checks)
}

// Start starts the HTTP listener.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    s.cfg.ServerHost + ":" + s.cfg.ServerPort,
		Handler: s.router,
	}
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
