package location

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/beachmate/beachmate/internal/provider/resilience"
)

// AdapterConfig configures one per-type dataset adapter.
type AdapterConfig struct {
	// Type selects the dataset this adapter serves.
	Type Type

	// BaseURL is the upstream dataset endpoint. When empty the adapter
	// serves its bundled dataset.
	BaseURL string

	// APIKey is sent as X-Api-Key on upstream calls.
	APIKey string

	// Client performs upstream calls. Required when BaseURL is set.
	Client *resilience.Client

	// Registry receives upstream call outcomes. Optional.
	Registry *resilience.Registry

	// Logger for fallback diagnostics.
	Logger zerolog.Logger
}

// Adapter serves the location list for a single type. Upstream failures
// never propagate: the adapter falls back to its bundled dataset and marks
// the result degraded.
type Adapter struct {
	typ      Type
	baseURL  string
	apiKey   string
	client   *resilience.Client
	registry *resilience.Registry
	logger   zerolog.Logger
	bundled  func() []WaterLocation
}

var bundledDatasets = map[Type]func() []WaterLocation{
	TypeBeach:        beachDataset,
	TypeValley:       valleyDataset,
	TypeMudflat:      mudflatDataset,
	TypeMarineSports: marineSportsDataset,
}

// NewAdapter creates an adapter for cfg.Type.
func NewAdapter(cfg AdapterConfig) *Adapter {
	return &Adapter{
		typ:      cfg.Type,
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:   cfg.APIKey,
		client:   cfg.Client,
		registry: cfg.Registry,
		logger:   cfg.Logger.With().Str("adapter", string(cfg.Type)).Logger(),
		bundled:  bundledDatasets[cfg.Type],
	}
}

// Type returns the location type this adapter serves.
func (a *Adapter) Type() Type {
	return a.typ
}

// Locations returns the adapter's location list. The degraded flag is true
// when a configured upstream failed and the bundled dataset was substituted.
func (a *Adapter) Locations(ctx context.Context) (locations []WaterLocation, degraded bool) {
	if a.baseURL == "" || a.client == nil {
		return a.bundled(), false
	}

	fetched, err := a.fetchUpstream(ctx)
	if err != nil {
		if a.registry != nil {
			a.registry.RecordFailure(string(a.typ), err)
		}
		a.logger.Warn().Err(err).Msg("upstream dataset fetch failed, serving bundled data")
		return a.bundled(), true
	}

	if a.registry != nil {
		a.registry.RecordSuccess(string(a.typ))
	}
	return fetched, false
}

func (a *Adapter) fetchUpstream(ctx context.Context) ([]WaterLocation, error) {
	header := http.Header{}
	if a.apiKey != "" {
		header.Set("X-Api-Key", a.apiKey)
	}

	var locations []WaterLocation
	url := a.baseURL + "/locations?type=" + string(a.typ)
	if err := a.client.GetJSON(ctx, url, header, &locations); err != nil {
		return nil, err
	}

	// Upstream rows must claim the type this adapter serves; anything else
	// is silently dropped.
	kept := locations[:0]
	for _, loc := range locations {
		if loc.Type == a.typ {
			kept = append(kept, loc)
		}
	}
	return kept, nil
}
