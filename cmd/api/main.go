// Package main provides the entrypoint for the BeachMate API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/beachmate/beachmate/internal/api"
	"github.com/beachmate/beachmate/internal/api/middleware"
	"github.com/beachmate/beachmate/internal/cache"
	"github.com/beachmate/beachmate/internal/config"
	"github.com/beachmate/beachmate/internal/location"
	"github.com/beachmate/beachmate/internal/provider/resilience"
	"github.com/beachmate/beachmate/internal/recommend"
	"github.com/beachmate/beachmate/internal/telemetry"
	"github.com/beachmate/beachmate/internal/weather"
	"github.com/beachmate/beachmate/internal/weather/busanmock"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "beachmate-api"

	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting BeachMate API")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Initialize OpenTelemetry
	ctx := context.Background()

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    cfg.Server.Env,
		OTLPEndpoint:   cfg.Telemetry.OTLPEndpoint,
		Enabled:        cfg.Telemetry.Enabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if cfg.Telemetry.Enabled {
		log.Info().
			Str("otlp_endpoint", cfg.Telemetry.OTLPEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	// Shared cache for listings, details and weather snapshots
	store := cache.New(cache.Config{
		SweepInterval: cfg.Cache.SweepInterval,
		Logger:        log,
	})
	defer store.Stop()

	// Upstream dataset adapters, one per location type. Types without an
	// upstream endpoint serve their bundled dataset.
	registry := resilience.NewRegistry()
	adapters := make([]*location.Adapter, 0, len(location.AllTypes()))
	for _, typ := range location.AllTypes() {
		adapterCfg := cfg.Adapter(typ)

		var client *resilience.Client
		if adapterCfg.BaseURL != "" {
			client = resilience.NewClient(resilience.ClientConfig{
				Name:        string(typ),
				Timeout:     cfg.Upstream.Timeout,
				MaxRetries:  uint64(cfg.Upstream.MaxRetries),
				OpenTimeout: cfg.Upstream.OpenTimeout,
			})
			registry.Register(string(typ), client)
			log.Info().
				Str("type", string(typ)).
				Str("base_url", adapterCfg.BaseURL).
				Msg("upstream adapter configured")
		}

		adapters = append(adapters, location.NewAdapter(location.AdapterConfig{
			Type:     typ,
			BaseURL:  adapterCfg.BaseURL,
			APIKey:   adapterCfg.APIKey,
			Client:   client,
			Registry: registry,
			Logger:   log,
		}))
	}

	repo := location.NewRepository(location.RepositoryConfig{
		Adapters:       adapters,
		Cache:          store,
		Logger:         log,
		AdapterTimeout: cfg.Upstream.Timeout,
	})
	log.Info().Msg("location repository initialized")

	// Weather provider; only the Busan mock feed ships today, the
	// config validation keeps other names out.
	weatherService := weather.NewService(weather.ServiceConfig{
		Provider: busanmock.NewClient(),
		Logger:   log,
		CacheTTL: cfg.Weather.CacheTTL,
	})
	log.Info().Str("provider", cfg.Weather.Provider).Msg("weather service initialized")

	engine := recommend.NewEngine(recommend.EngineConfig{
		Locations:  repo,
		Weather:    weatherService,
		Logger:     log,
		Weights:    &cfg.Recommend.Weights,
		Timeout:    cfg.Recommend.Timeout,
		MaxResults: cfg.Recommend.MaxResults,
	})
	log.Info().Msg("recommendation engine initialized")

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:         Version,
		BuildTime:       BuildTime,
		Logger:          log,
		ServiceName:     serviceName,
		Metrics:         metrics,
		RequireTLS:      cfg.Server.RequireTLS,
		RateLimitPerMin: cfg.Server.RateLimit,
		Repository:      repo,
		WeatherService:  weatherService,
		Engine:          engine,
		Registry:        registry,
		Cache:           store,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Str("env", cfg.Server.Env).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
