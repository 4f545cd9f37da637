// Package api provides the HTTP API server and handlers for the Giftwise application.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/giftwiseapp/giftwise-server/internal/http/response"
	"github.com/giftwiseapp/giftwise-server/internal/service"
	"github.com/giftwiseapp/giftwise-server/internal/validation"
)

// Config tunes request handling defaults.
type Config struct {
	// CatalogPageSize is the default category browse page size.
	CatalogPageSize int
	// LatestItemsLimit is the default landing feed size.
	LatestItemsLimit int
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	recommendService *service.RecommendationService
	catalogService   *service.CatalogService
	profileService   *service.ProfileService
	validator        *validation.Validator
	config           Config
	router           *chi.Mux
	logger           *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(recommendService *service.RecommendationService, catalogService *service.CatalogService, profileService *service.ProfileService, cfg Config, logger *slog.Logger) *Server {
	if cfg.CatalogPageSize <= 0 {
		cfg.CatalogPageSize = 12
	}
	if cfg.LatestItemsLimit <= 0 {
		cfg.LatestItemsLimit = 6
	}

	s := &Server{
		recommendService: recommendService,
		catalogService:   catalogService,
		profileService:   profileService,
		validator:        validation.New(),
		config:           cfg,
		router:           chi.NewRouter(),
		logger:           logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	// API v1.
	s.router.Route("/api/v1", func(r chi.Router) {
		// Recommendation core.
		r.Post("/recommend", s.handleRecommend)
		r.Route("/recommendation-cache", func(r chi.Router) {
			r.Get("/", s.handleGetRecommendationCache)
			r.Post("/", s.handlePutRecommendationCache)
		})

		// Catalog browsing.
		r.Get("/categories", s.handleListCategories)
		r.Get("/category_item", s.handleCategoryItems)
		r.Get("/default_items", s.handleDefaultItems)

		// Profiles.
		r.Route("/profiles", func(r chi.Router) {
			r.Get("/", s.handleListProfiles)
			r.Post("/", s.handleCreateProfile)
			r.Get("/{id}", s.handleGetProfile)
			r.Put("/{id}/description", s.handleUpdateProfileDescription)
		})
	})
}

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{
		"status": "healthy",
	}, s.logger)
}
