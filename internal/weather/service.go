package weather

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Provider defines the interface for weather snapshot providers.
type Provider interface {
	// Snapshot fetches the current weather at a coordinate.
	Snapshot(ctx context.Context, lat, lon float64) (*Snapshot, error)

	// Name returns the provider name for logging.
	Name() string
}

// ServiceConfig holds configuration for the weather service.
type ServiceConfig struct {
	// Provider is the weather data provider.
	Provider Provider

	// Logger for service operations.
	Logger zerolog.Logger

	// CacheTTL is how long to cache snapshots (default: 10 minutes).
	CacheTTL time.Duration

	// CacheGridSize is the size of cache grid cells in degrees
	// (default: 0.01, roughly 1km). Points within the same cell share
	// cached data.
	CacheGridSize float64

	// StaleIfErrorTTL allows serving stale data on provider errors
	// (default: 1 hour).
	StaleIfErrorTTL time.Duration
}

// Service provides weather snapshots with per-grid-cell caching. Snapshots
// are idempotent within the TTL window and independent across cells.
type Service struct {
	provider        Provider
	logger          zerolog.Logger
	cacheTTL        time.Duration
	cacheGridSize   float64
	staleIfErrorTTL time.Duration

	mu              sync.RWMutex
	cache           map[string]*cachedSnapshot
	lastCleanup     time.Time
	cleanupInterval time.Duration
}

type cachedSnapshot struct {
	snapshot  *Snapshot
	fetchedAt time.Time
	expiresAt time.Time
}

// NewService creates a new weather service.
func NewService(cfg ServiceConfig) *Service {
	cacheTTL := cfg.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 10 * time.Minute
	}

	cacheGridSize := cfg.CacheGridSize
	if cacheGridSize == 0 {
		cacheGridSize = 0.01
	}

	staleIfErrorTTL := cfg.StaleIfErrorTTL
	if staleIfErrorTTL == 0 {
		staleIfErrorTTL = 1 * time.Hour
	}

	return &Service{
		provider:        cfg.Provider,
		logger:          cfg.Logger,
		cacheTTL:        cacheTTL,
		cacheGridSize:   cacheGridSize,
		staleIfErrorTTL: staleIfErrorTTL,
		cache:           make(map[string]*cachedSnapshot),
		cleanupInterval: 5 * time.Minute,
	}
}

// CurrentSnapshot returns the weather at a coordinate, cache-served within
// the TTL window.
func (s *Service) CurrentSnapshot(ctx context.Context, lat, lon float64) (*Snapshot, error) {
	if err := validateCoordinates(lat, lon); err != nil {
		return nil, err
	}

	cacheKey := s.cacheKey(lat, lon)

	s.mu.RLock()
	if cached, ok := s.cache[cacheKey]; ok && time.Now().Before(cached.expiresAt) {
		s.mu.RUnlock()
		return cached.snapshot, nil
	}
	s.mu.RUnlock()

	return s.fetchSnapshot(ctx, lat, lon, cacheKey)
}

func (s *Service) fetchSnapshot(ctx context.Context, lat, lon float64, cacheKey string) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check cache
	if cached, ok := s.cache[cacheKey]; ok && time.Now().Before(cached.expiresAt) {
		return cached.snapshot, nil
	}

	s.logger.Debug().
		Float64("lat", lat).
		Float64("lon", lon).
		Str("provider", s.provider.Name()).
		Msg("fetching weather snapshot from provider")

	snapshot, err := s.provider.Snapshot(ctx, lat, lon)
	if err != nil {
		s.logger.Error().Err(err).
			Float64("lat", lat).
			Float64("lon", lon).
			Msg("failed to fetch weather snapshot")

		if cached, ok := s.cache[cacheKey]; ok {
			if time.Now().Before(cached.fetchedAt.Add(s.staleIfErrorTTL)) {
				s.logger.Warn().
					Time("fetched_at", cached.fetchedAt).
					Msg("serving stale weather snapshot due to provider error")
				return cached.snapshot, nil
			}
		}

		return nil, ErrProviderUnavailable
	}

	now := time.Now()
	s.cache[cacheKey] = &cachedSnapshot{
		snapshot:  snapshot,
		fetchedAt: now,
		expiresAt: now.Add(s.cacheTTL),
	}

	s.cleanupIfNeeded()

	return snapshot, nil
}

// cacheKey snaps a coordinate to its grid cell.
func (s *Service) cacheKey(lat, lon float64) string {
	gridLat := math.Floor(lat/s.cacheGridSize) * s.cacheGridSize
	gridLon := math.Floor(lon/s.cacheGridSize) * s.cacheGridSize
	return fmt.Sprintf("%.4f:%.4f", gridLat, gridLon)
}

// cleanupIfNeeded removes expired entries. Caller must hold the write lock.
func (s *Service) cleanupIfNeeded() {
	now := time.Now()
	if now.Sub(s.lastCleanup) < s.cleanupInterval {
		return
	}
	s.lastCleanup = now

	for key, cached := range s.cache {
		// Keep entries still usable for stale-if-error.
		if now.After(cached.fetchedAt.Add(s.staleIfErrorTTL)) {
			delete(s.cache, key)
		}
	}
}

// CacheSize returns the number of cached grid cells.
func (s *Service) CacheSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cache)
}

func validateCoordinates(lat, lon float64) error {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return fmt.Errorf("%w: lat=%f lon=%f", ErrInvalidCoordinates, lat, lon)
	}
	return nil
}
