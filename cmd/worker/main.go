// Package main provides the entrypoint for the BeachMate cache warming worker.
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

	"github.com/beachmate/beachmate/internal/cache"
	"github.com/beachmate/beachmate/internal/config"
	"github.com/beachmate/beachmate/internal/location"
	"github.com/beachmate/beachmate/internal/provider/resilience"
	"github.com/beachmate/beachmate/internal/weather"
	"github.com/beachmate/beachmate/internal/weather/busanmock"
	"github.com/beachmate/beachmate/internal/worker"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// warmInterval is how often the warm job runs. Shorter than the weather
// cache TTL so entries never expire between runs.
const warmInterval = 5 * time.Minute

func main() {
	const serviceName = "beachmate-worker"

	_ = godotenv.Load()

	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting BeachMate worker")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := cache.New(cache.Config{
		SweepInterval: cfg.Cache.SweepInterval,
		Logger:        log,
	})
	defer store.Stop()

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

	weatherService := weather.NewService(weather.ServiceConfig{
		Provider: busanmock.NewClient(),
		Logger:   log,
		CacheTTL: cfg.Weather.CacheTTL,
	})

	warmJob := worker.NewWarmJob(worker.WarmJobConfig{
		Logger:         log,
		Repository:     repo,
		WeatherService: weatherService,
	})

	// Health endpoint for container orchestration probes
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"OK","version":"` + Version + `"}`))
	})

	server := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Server.Port),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("health server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("health server error")
		}
	}()

	// Warm loop; the first run happens immediately so a fresh deploy
	// starts with hot caches.
	go func() {
		warmJob.Run(ctx)

		ticker := time.NewTicker(warmInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				warmJob.Run(ctx)
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down worker")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("health server forced to shutdown")
	}

	log.Info().Msg("worker stopped")
}
