package location

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/beachmate/beachmate/internal/cache"
	"github.com/beachmate/beachmate/internal/geo"
)

// Cache keys and TTLs for repository results.
const (
	cacheKeyAll     = "all-locations"
	cacheKeyType    = "locations:"
	cacheKeyDetail  = "location:"
	cacheKeyPopular = "popular-locations"

	defaultListTTL        = 5 * time.Minute
	defaultDetailTTL      = 10 * time.Minute
	defaultPopularTTL     = time.Hour
	defaultAdapterTimeout = 5 * time.Second

	defaultPopularLimit = 10
	tideForecastDays    = 7
)

// RepositoryConfig holds configuration for the repository.
type RepositoryConfig struct {
	// Adapters are the per-type providers, one per location type.
	Adapters []*Adapter

	// Cache memoizes listings and details.
	Cache *cache.Cache

	// Logger for aggregation diagnostics.
	Logger zerolog.Logger

	// AdapterTimeout bounds each adapter call during fan-out
	// (default: 5 seconds).
	AdapterTimeout time.Duration

	// ListTTL, DetailTTL and PopularTTL override the listing, detail and
	// popularity cache windows.
	ListTTL    time.Duration
	DetailTTL  time.Duration
	PopularTTL time.Duration
}

// Repository aggregates the per-type adapters behind a cache. Constructed
// once in main and injected into consumers.
type Repository struct {
	adapters map[Type]*Adapter
	order    []Type
	cache    *cache.Cache
	logger   zerolog.Logger

	adapterTimeout time.Duration
	listTTL        time.Duration
	detailTTL      time.Duration
	popularTTL     time.Duration

	degraded atomic.Bool
}

type listing struct {
	Locations []WaterLocation
	Degraded  bool
}

// NewRepository creates a repository over the given adapters.
func NewRepository(cfg RepositoryConfig) *Repository {
	r := &Repository{
		adapters:       make(map[Type]*Adapter, len(cfg.Adapters)),
		cache:          cfg.Cache,
		logger:         cfg.Logger,
		adapterTimeout: cfg.AdapterTimeout,
		listTTL:        cfg.ListTTL,
		detailTTL:      cfg.DetailTTL,
		popularTTL:     cfg.PopularTTL,
	}
	if r.adapterTimeout <= 0 {
		r.adapterTimeout = defaultAdapterTimeout
	}
	if r.listTTL <= 0 {
		r.listTTL = defaultListTTL
	}
	if r.detailTTL <= 0 {
		r.detailTTL = defaultDetailTTL
	}
	if r.popularTTL <= 0 {
		r.popularTTL = defaultPopularTTL
	}

	for _, a := range cfg.Adapters {
		r.adapters[a.Type()] = a
		r.order = append(r.order, a.Type())
	}

	return r
}

// AllLocations returns every location across all types, in canonical
// adapter order. The four adapters are queried concurrently with a bounded
// timeout each; a failing adapter contributes its bundled fallback, so the
// aggregate never fails.
func (r *Repository) AllLocations(ctx context.Context) []WaterLocation {
	if cached, ok := cache.Typed[listing](r.cache, cacheKeyAll); ok {
		r.degraded.Store(cached.Degraded)
		return cached.Locations
	}

	results := make([][]WaterLocation, len(r.order))
	flags := make([]bool, len(r.order))

	var wg sync.WaitGroup
	for i, typ := range r.order {
		wg.Add(1)
		go func(i int, a *Adapter) {
			defer wg.Done()
			callCtx, cancel := context.WithTimeout(ctx, r.adapterTimeout)
			defer cancel()
			results[i], flags[i] = a.Locations(callCtx)
		}(i, r.adapters[typ])
	}
	wg.Wait()

	var all []WaterLocation
	degraded := false
	for i := range results {
		all = append(all, results[i]...)
		degraded = degraded || flags[i]
	}

	r.degraded.Store(degraded)
	r.cache.Set(cacheKeyAll, listing{Locations: all, Degraded: degraded}, r.listTTL)
	return all
}

// ByType returns all locations of one type.
func (r *Repository) ByType(ctx context.Context, typ Type) []WaterLocation {
	key := cacheKeyType + string(typ)
	if cached, ok := cache.Typed[listing](r.cache, key); ok {
		return cached.Locations
	}

	adapter, ok := r.adapters[typ]
	if !ok {
		return nil
	}

	callCtx, cancel := context.WithTimeout(ctx, r.adapterTimeout)
	defer cancel()
	locations, degraded := adapter.Locations(callCtx)

	r.cache.Set(key, listing{Locations: locations, Degraded: degraded}, r.listTTL)
	return locations
}

// Detail returns one location by type and id, or nil when absent. Mudflat
// details carry a 7-day tide forecast.
func (r *Repository) Detail(ctx context.Context, typ Type, id string) *WaterLocation {
	key := cacheKeyDetail + id
	if cached, ok := cache.Typed[*WaterLocation](r.cache, key); ok {
		return cached
	}

	for _, loc := range r.ByType(ctx, typ) {
		if loc.ID == id {
			detail := r.enrichDetail(loc)
			r.cache.Set(key, detail, r.detailTTL)
			return detail
		}
	}
	return nil
}

func (r *Repository) enrichDetail(loc WaterLocation) *WaterLocation {
	if loc.Type == TypeMudflat && loc.MudflatInfo != nil {
		info := *loc.MudflatInfo
		info.TideSchedule = MockTideSchedule(time.Now(), tideForecastDays)
		loc.MudflatInfo = &info
	}
	return &loc
}

// Popular returns the top rated locations weighted by review volume.
func (r *Repository) Popular(ctx context.Context, limit int) []WaterLocation {
	if limit <= 0 {
		limit = defaultPopularLimit
	}

	ranked, ok := cache.Typed[[]WaterLocation](r.cache, cacheKeyPopular)
	if !ok {
		for _, loc := range r.AllLocations(ctx) {
			if loc.Rating > 0 {
				ranked = append(ranked, loc)
			}
		}
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].PopularityScore() > ranked[j].PopularityScore()
		})
		r.cache.Set(cacheKeyPopular, ranked, r.popularTTL)
	}

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Nearby is a location paired with its distance from a query point.
type Nearby struct {
	WaterLocation
	DistanceKm float64 `json:"distance"`
}

// NearbyLocations returns all locations within radiusKm of center, nearest
// first. Results are not cached; the query point varies per caller.
func (r *Repository) NearbyLocations(ctx context.Context, center geo.Coordinates, radiusKm float64) []Nearby {
	bound := geo.BoundFromRadius(center, radiusKm)

	var nearby []Nearby
	for _, loc := range r.AllLocations(ctx) {
		if !bound.Contains(loc.Coordinates.Point()) {
			continue
		}
		d := geo.DistanceKm(center, loc.Coordinates)
		if d > radiusKm {
			continue
		}
		nearby = append(nearby, Nearby{WaterLocation: loc, DistanceKm: d})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})
	return nearby
}

// Degraded reports whether the last aggregate fetch substituted bundled
// data for a configured upstream.
func (r *Repository) Degraded() bool {
	return r.degraded.Load()
}

// InvalidateListings drops all cached listings, details and rankings.
func (r *Repository) InvalidateListings() {
	r.cache.Delete(cacheKeyAll)
	r.cache.Delete(cacheKeyPopular)
	_ = r.cache.DeletePattern("^(locations|location):")
}
