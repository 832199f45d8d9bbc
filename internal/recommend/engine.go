package recommend

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/beachmate/beachmate/internal/geo"
	"github.com/beachmate/beachmate/internal/location"
	"github.com/beachmate/beachmate/internal/weather"
)

// LocationSource supplies the candidate set. Satisfied by
// *location.Repository.
type LocationSource interface {
	AllLocations(ctx context.Context) []location.WaterLocation
}

// WeatherSource supplies snapshots per coordinate. Satisfied by
// *weather.Service.
type WeatherSource interface {
	CurrentSnapshot(ctx context.Context, lat, lon float64) (*weather.Snapshot, error)
}

// EngineConfig holds configuration for the recommendation engine.
type EngineConfig struct {
	// Locations supplies candidates.
	Locations LocationSource

	// Weather supplies per-coordinate snapshots.
	Weather WeatherSource

	// Logger for pipeline diagnostics.
	Logger zerolog.Logger

	// Weights overrides the scoring weights (default: DefaultWeights).
	Weights *Weights

	// Timeout bounds one whole recommendation request (default: 10s).
	Timeout time.Duration

	// MaxResults truncates the ranked output (default: 10).
	MaxResults int
}

// Engine ranks locations against user preferences.
type Engine struct {
	locations  LocationSource
	weather    WeatherSource
	logger     zerolog.Logger
	weights    Weights
	timeout    time.Duration
	maxResults int
}

// NewEngine creates a recommendation engine.
func NewEngine(cfg EngineConfig) *Engine {
	weights := DefaultWeights()
	if cfg.Weights != nil {
		weights = *cfg.Weights
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 10
	}

	return &Engine{
		locations:  cfg.Locations,
		weather:    cfg.Weather,
		logger:     cfg.Logger,
		weights:    weights,
		timeout:    timeout,
		maxResults: maxResults,
	}
}

// Recommendation is one ranked match.
type Recommendation struct {
	Location         location.WaterLocation `json:"location"`
	MatchScore       int                    `json:"matchScore"`
	MatchReasons     []string               `json:"matchReasons"`
	Weather          *weather.Snapshot      `json:"weather,omitempty"`
	DistanceKm       float64                `json:"distance"`
	EstimatedMinutes int                    `json:"estimatedTime"`
	Recommendation   Bucket                 `json:"recommendation"`
}

// Weights returns the engine's active scoring weights.
func (e *Engine) Weights() Weights {
	return e.weights
}

// Recommendations ranks all locations matching the requested types within
// MaxDistanceKm of userLocation, scored per the weighted rules, best first,
// truncated to MaxResults. No surviving candidate yields an empty slice,
// not an error; the only error is the pipeline deadline expiring.
func (e *Engine) Recommendations(ctx context.Context, prefs Preferences, userLocation geo.Coordinates) ([]Recommendation, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	recommendations := []Recommendation{}

	for _, loc := range e.locations.AllLocations(ctx) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !prefs.WantsType(loc.Type) {
			continue
		}

		distance := geo.DistanceKm(userLocation, loc.Coordinates)
		if distance > prefs.MaxDistanceKm {
			continue
		}

		snap := e.snapshotFor(ctx, loc)
		score, reasons := ScoreMatch(&loc, &prefs, snap, &e.weights)

		recommendations = append(recommendations, Recommendation{
			Location:         loc,
			MatchScore:       score,
			MatchReasons:     reasons,
			Weather:          snap,
			DistanceKm:       distance,
			EstimatedMinutes: geo.EstimatedDriveMinutes(distance),
			Recommendation:   BucketFor(score),
		})
	}

	// Equal scores keep candidate order.
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].MatchScore > recommendations[j].MatchScore
	})

	if len(recommendations) > e.maxResults {
		recommendations = recommendations[:e.maxResults]
	}
	return recommendations, nil
}

// snapshotFor fetches weather for a candidate. Failures degrade to nil;
// weather rules then contribute nothing rather than sinking the request.
func (e *Engine) snapshotFor(ctx context.Context, loc location.WaterLocation) *weather.Snapshot {
	snap, err := e.weather.CurrentSnapshot(ctx, loc.Coordinates.Latitude, loc.Coordinates.Longitude)
	if err != nil {
		e.logger.Warn().Err(err).
			Str("location_id", loc.ID).
			Msg("weather unavailable for candidate, scoring without it")
		return nil
	}
	return snap
}
