package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/platepost/backend/config"
	"github.com/platepost/backend/internal/api"
	"github.com/platepost/backend/internal/database"
	"github.com/platepost/backend/internal/middleware"
	"github.com/platepost/backend/internal/router"
	"github.com/platepost/backend/internal/service"
)

// Server wires configuration, storage and handlers into one HTTP server.
type Server struct {
	cfg  *config.Config
	db   *gorm.DB
	rdb  *redis.Client
	http *http.Server
}

// New builds the server. Redis and S3 are optional: without redis the
// catalogs are uncached, logout is a no-op and recipe creation is
// unthrottled; without S3 image blobs stay in the database.
func New(cfg *config.Config) (*Server, error) {
	db, err := database.New(cfg, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	rdb, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Redis unavailable, continuing without it: %v", err)
		rdb = nil
	}

	s3cfg, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to configure S3: %w", err)
	}

	authService := service.NewAuthService(db, rdb, cfg.JWTSecret)
	catalogService := service.NewCatalogService(db, rdb)
	recipeService := service.NewRecipeService(db)
	engagementService := service.NewEngagementService(db)
	imageService := service.NewImageService(s3cfg)

	handlers := router.Handlers{
		Auth:           api.NewAuthHandler(authService),
		Catalog:        api.NewCatalogHandler(catalogService),
		Recipe:         api.NewRecipeHandler(recipeService, imageService),
		Engagement:     api.NewEngagementHandler(engagementService),
		TokenValidator: authService,
	}
	if rdb != nil {
		handlers.RecipeLimiter = middleware.NewRecipeCreationRateLimiter(rdb)
	}

	return &Server{
		cfg: cfg,
		db:  db,
		rdb: rdb,
		http: &http.Server{
			Addr:    fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort),
			Handler: router.Setup(handlers),
		},
	}, nil
}

// DB exposes the underlying connection for migrations.
func (s *Server) DB() *gorm.DB {
	return s.db
}

// Start runs the HTTP server until it fails or is shut down.
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server gracefully and closes the redis client.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.rdb != nil {
		if err := s.rdb.Close(); err != nil {
			log.Printf("failed to close redis client: %v", err)
		}
	}
	return s.http.Shutdown(ctx)
}
