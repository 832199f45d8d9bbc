// Package api provides the HTTP API for BeachMate.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/beachmate/beachmate/internal/api/handler"
	"github.com/beachmate/beachmate/internal/api/middleware"
	"github.com/beachmate/beachmate/internal/cache"
	"github.com/beachmate/beachmate/internal/location"
	"github.com/beachmate/beachmate/internal/provider/resilience"
	"github.com/beachmate/beachmate/internal/recommend"
	"github.com/beachmate/beachmate/internal/weather"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version     string
	BuildTime   string
	Logger      zerolog.Logger
	ServiceName string
	Metrics     *middleware.Metrics
	RequireTLS  bool

	// RateLimitPerMin overrides the standard per-IP rate limit tier.
	// Zero keeps the default.
	RateLimitPerMin int

	Repository     *location.Repository
	WeatherService *weather.Service
	Engine         *recommend.Engine
	Registry       *resilience.Registry
	Cache          *cache.Cache
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "beachmate-api"
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))          // Structured logging
	r.Use(middleware.Recovery(cfg.Logger))        // Panic recovery
	r.Use(chimiddleware.RealIP)                   // Real IP extraction
	r.Use(middleware.SecurityHeaders)             // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS(cfg.RequireTLS))  // TLS enforcement behind the load balancer
	r.Use(middleware.ContentTypeJSON)             // JSON content type

	// Initialize handlers
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.Repository, cfg.Registry, cfg.Cache)
	locationsHandler := handler.NewLocationsHandler(cfg.Repository, cfg.WeatherService)
	weatherHandler := handler.NewWeatherHandler(cfg.WeatherService)
	recommendHandler := handler.NewRecommendHandler(cfg.Engine)
	metadataHandler := handler.NewMetadataHandler()
	adminHandler := handler.NewAdminHandler(cfg.Repository, cfg.Logger)

	// Rate limit tiers
	standardCfg := middleware.StandardRateLimit
	if cfg.RateLimitPerMin > 0 {
		standardCfg.RequestLimit = cfg.RateLimitPerMin
	}
	expensiveRateLimit := middleware.RateLimitByIP(middleware.ExpensiveRateLimit) // 30 req/min
	standardRateLimit := middleware.RateLimitByIP(standardCfg)                    // 120 req/min default

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Ops endpoints (public, unthrottled for probes)
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
			r.Get("/status", opsHandler.SystemStatus)
		})

		// Location catalog
		r.Route("/locations", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Get("/", locationsHandler.List)
			r.Get("/popular", locationsHandler.Popular)
			r.Get("/nearby", locationsHandler.Nearby)
			r.Get("/{type}/{locationId}", locationsHandler.Detail)
		})

		// Weather
		r.With(standardRateLimit).Get("/weather", weatherHandler.Current)

		// Recommendations - expensive compute, strict rate limiting
		r.With(expensiveRateLimit, middleware.RequireJSON).Post("/recommendations:compute", recommendHandler.Compute)

		// Metadata endpoints
		r.Route("/metadata", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Get("/enums", metadataHandler.GetEnums)
		})

		// Admin endpoints for internal operations
		r.Route("/admin", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Post("/cache/invalidate", adminHandler.InvalidateCache)
		})
	})

	return r
}
