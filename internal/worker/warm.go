package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/beachmate/beachmate/internal/location"
	"github.com/beachmate/beachmate/internal/weather"
)

// WarmJob pre-populates the listing, tide and weather caches so the first
// request after a deploy or an invalidation does not pay the fetch cost.
type WarmJob struct {
	config WarmConfig
	logger zerolog.Logger

	// Services (optional, nil if not configured)
	repository     *location.Repository
	weatherService *weather.Service

	// Metrics
	metrics *WarmMetrics
}

// WarmMetrics tracks warm job statistics.
type WarmMetrics struct {
	mu sync.RWMutex

	// Counters
	TotalRuns       int64
	SuccessfulWarms int64
	FailedWarms     int64
	ListingWarms    int64
	TideWarms       int64
	WeatherWarms    int64

	// Timings
	LastRunAt       time.Time
	LastRunDuration time.Duration
	TotalDuration   time.Duration
}

// WarmJobConfig holds configuration for creating a WarmJob.
type WarmJobConfig struct {
	Config         WarmConfig
	Logger         zerolog.Logger
	Repository     *location.Repository
	WeatherService *weather.Service
}

// NewWarmJob creates a new cache warming job.
func NewWarmJob(cfg WarmJobConfig) *WarmJob {
	config := cfg.Config
	if len(config.Targets) == 0 {
		config = DefaultWarmConfig()
	}

	return &WarmJob{
		config:         config,
		logger:         cfg.Logger,
		repository:     cfg.Repository,
		weatherService: cfg.WeatherService,
		metrics:        &WarmMetrics{},
	}
}

// WarmResult contains the result of one warm run.
type WarmResult struct {
	StartTime   time.Time
	EndTime     time.Time
	Duration    time.Duration
	TotalPoints int
	Successful  int
	Failed      int
	Errors      []WarmError
	Listings    int
	Tides       int
}

// WarmError represents an error during warming.
type WarmError struct {
	Stage string
	Point Point
	Error string
}

// Run executes one warm pass over all configured targets.
func (j *WarmJob) Run(ctx context.Context) *WarmResult {
	startTime := time.Now()
	result := &WarmResult{
		StartTime:   startTime,
		TotalPoints: j.config.TotalPoints(),
	}

	j.logger.Info().
		Int("total_points", result.TotalPoints).
		Int("concurrency", j.config.Concurrency).
		Msg("starting cache warm job")

	j.warmListings(ctx, result)
	j.warmTides(ctx, result)
	j.warmWeather(ctx, result)

	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(startTime)

	j.updateMetrics(result)

	j.logger.Info().
		Dur("duration", result.Duration).
		Int("successful", result.Successful).
		Int("failed", result.Failed).
		Int("listings", result.Listings).
		Int("tides", result.Tides).
		Msg("cache warm job completed")

	return result
}

// warmListings loads the full listing and the popular ranking, which fills
// the listing caches as a side effect.
func (j *WarmJob) warmListings(ctx context.Context, result *WarmResult) {
	if j.repository == nil {
		return
	}

	warmCtx, cancel := context.WithTimeout(ctx, j.config.Timeout)
	defer cancel()

	if j.config.WarmListings {
		all := j.repository.AllLocations(warmCtx)
		result.Listings = len(all)
		atomic.AddInt64(&j.metrics.ListingWarms, 1)
	}

	if j.config.WarmPopular {
		j.repository.Popular(warmCtx, 0)
	}
}

// warmTides loads every mudflat detail entry so the tide forecast is
// computed ahead of the first caller.
func (j *WarmJob) warmTides(ctx context.Context, result *WarmResult) {
	if !j.config.WarmTides || j.repository == nil {
		return
	}

	warmCtx, cancel := context.WithTimeout(ctx, j.config.Timeout)
	defer cancel()

	for _, loc := range j.repository.ByType(warmCtx, location.TypeMudflat) {
		if j.repository.Detail(warmCtx, location.TypeMudflat, loc.ID) != nil {
			result.Tides++
			atomic.AddInt64(&j.metrics.TideWarms, 1)
		}
	}
}

func (j *WarmJob) warmWeather(ctx context.Context, result *WarmResult) {
	if !j.config.WarmWeather || j.weatherService == nil {
		return
	}

	points := j.config.AllPoints()

	pointsChan := make(chan Point, len(points))
	resultsChan := make(chan pointResult, len(points))

	var wg sync.WaitGroup
	for i := 0; i < j.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			j.weatherWorker(ctx, pointsChan, resultsChan)
		}()
	}

	for _, p := range points {
		pointsChan <- p
	}
	close(pointsChan)

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	for pr := range resultsChan {
		if pr.success {
			result.Successful++
			atomic.AddInt64(&j.metrics.WeatherWarms, 1)
		} else {
			result.Failed++
		}
		result.Errors = append(result.Errors, pr.errors...)
	}
}

type pointResult struct {
	point   Point
	success bool
	errors  []WarmError
}

func (j *WarmJob) weatherWorker(ctx context.Context, points <-chan Point, results chan<- pointResult) {
	for point := range points {
		select {
		case <-ctx.Done():
			return
		default:
			results <- j.warmPoint(ctx, point)
		}
	}
}

func (j *WarmJob) warmPoint(ctx context.Context, point Point) pointResult {
	result := pointResult{
		point:   point,
		success: true,
	}

	pointCtx, cancel := context.WithTimeout(ctx, j.config.Timeout)
	defer cancel()

	if _, err := j.weatherService.CurrentSnapshot(pointCtx, point.Lat, point.Lon); err != nil {
		result.errors = append(result.errors, WarmError{
			Stage: "weather",
			Point: point,
			Error: err.Error(),
		})
		result.success = false
	}

	return result
}

func (j *WarmJob) updateMetrics(result *WarmResult) {
	j.metrics.mu.Lock()
	defer j.metrics.mu.Unlock()

	j.metrics.TotalRuns++
	j.metrics.SuccessfulWarms += int64(result.Successful)
	j.metrics.FailedWarms += int64(result.Failed)
	j.metrics.LastRunAt = result.EndTime
	j.metrics.LastRunDuration = result.Duration
	j.metrics.TotalDuration += result.Duration
}

// GetMetrics returns a copy of the current metrics.
func (j *WarmJob) GetMetrics() WarmMetrics {
	j.metrics.mu.RLock()
	defer j.metrics.mu.RUnlock()

	return WarmMetrics{
		TotalRuns:       j.metrics.TotalRuns,
		SuccessfulWarms: j.metrics.SuccessfulWarms,
		FailedWarms:     j.metrics.FailedWarms,
		ListingWarms:    j.metrics.ListingWarms,
		TideWarms:       j.metrics.TideWarms,
		WeatherWarms:    j.metrics.WeatherWarms,
		LastRunAt:       j.metrics.LastRunAt,
		LastRunDuration: j.metrics.LastRunDuration,
		TotalDuration:   j.metrics.TotalDuration,
	}
}

// MetricsSnapshot returns a snapshot of the current metrics as a map.
func (j *WarmJob) MetricsSnapshot() map[string]interface{} {
	m := j.GetMetrics()
	return map[string]interface{}{
		"total_runs":        m.TotalRuns,
		"successful_warms":  m.SuccessfulWarms,
		"failed_warms":      m.FailedWarms,
		"listing_warms":     m.ListingWarms,
		"tide_warms":        m.TideWarms,
		"weather_warms":     m.WeatherWarms,
		"last_run_at":       m.LastRunAt,
		"last_run_duration": m.LastRunDuration.String(),
		"total_duration":    m.TotalDuration.String(),
	}
}
