package location

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beachmate/beachmate/internal/cache"
	"github.com/beachmate/beachmate/internal/geo"
)

var busanCenter = geo.Coordinates{Latitude: 35.1796, Longitude: 129.0756}

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	c := cache.New(cache.Config{Logger: zerolog.Nop()})
	t.Cleanup(c.Stop)

	adapters := make([]*Adapter, 0, len(AllTypes()))
	for _, typ := range AllTypes() {
		adapters = append(adapters, NewAdapter(AdapterConfig{Type: typ, Logger: zerolog.Nop()}))
	}

	return NewRepository(RepositoryConfig{
		Adapters: adapters,
		Cache:    c,
		Logger:   zerolog.Nop(),
	})
}

func TestAllLocationsAggregatesInCanonicalOrder(t *testing.T) {
	r := newTestRepository(t)

	all := r.AllLocations(context.Background())
	require.Len(t, all, 12)

	wantOrder := []Type{
		TypeBeach, TypeBeach, TypeBeach,
		TypeValley, TypeValley, TypeValley,
		TypeMudflat, TypeMudflat, TypeMudflat,
		TypeMarineSports, TypeMarineSports, TypeMarineSports,
	}
	for i, loc := range all {
		assert.Equal(t, wantOrder[i], loc.Type, "index %d", i)
	}

	assert.False(t, r.Degraded())
}

func TestAllLocationsIsCached(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	first := r.AllLocations(ctx)
	second := r.AllLocations(ctx)

	// The bundled datasets stamp RealTimeData at generation time, so a
	// cache hit returns identical timestamps.
	require.Len(t, second, len(first))
	for i := range first {
		require.NotNil(t, first[i].RealTimeData)
		assert.Equal(t, first[i].RealTimeData.LastUpdated, second[i].RealTimeData.LastUpdated)
	}
}

func TestByType(t *testing.T) {
	r := newTestRepository(t)

	beaches := r.ByType(context.Background(), TypeBeach)
	require.Len(t, beaches, 3)
	for _, b := range beaches {
		assert.Equal(t, TypeBeach, b.Type)
	}

	assert.Nil(t, r.ByType(context.Background(), Type("lake")))
}

func TestDetail(t *testing.T) {
	r := newTestRepository(t)

	got := r.Detail(context.Background(), TypeBeach, "beach-2")
	require.NotNil(t, got)
	assert.Equal(t, "광안리 해수욕장", got.Name)

	assert.Nil(t, r.Detail(context.Background(), TypeBeach, "beach-404"))
	assert.Nil(t, r.Detail(context.Background(), TypeValley, "beach-1"))
}

func TestDetailAttachesTideForecast(t *testing.T) {
	r := newTestRepository(t)

	got := r.Detail(context.Background(), TypeMudflat, "mudflat-2")
	require.NotNil(t, got)
	require.NotNil(t, got.MudflatInfo)
	require.Len(t, got.MudflatInfo.TideSchedule, 7)
	assert.Equal(t, time.Now().Format("2006-01-02"), got.MudflatInfo.TideSchedule[0].Date)
	assert.NotEmpty(t, got.MudflatInfo.TideSchedule[0].BestVisitTime)
}

func TestPopularRanksByWeightedRating(t *testing.T) {
	r := newTestRepository(t)

	popular := r.Popular(context.Background(), 5)
	require.Len(t, popular, 5)

	for i := 1; i < len(popular); i++ {
		assert.GreaterOrEqual(t,
			popular[i-1].PopularityScore(), popular[i].PopularityScore())
	}

	// Haeundae's review volume outweighs Songjeong's higher rating.
	assert.Equal(t, "beach-1", popular[0].ID)
}

func TestPopularDefaultLimit(t *testing.T) {
	r := newTestRepository(t)

	popular := r.Popular(context.Background(), 0)
	assert.Len(t, popular, 10)
}

func TestNearbyLocations(t *testing.T) {
	r := newTestRepository(t)

	nearby := r.NearbyLocations(context.Background(), busanCenter, 10)
	require.NotEmpty(t, nearby)

	for i, n := range nearby {
		assert.LessOrEqual(t, n.DistanceKm, 10.0)
		if i > 0 {
			assert.GreaterOrEqual(t, n.DistanceKm, nearby[i-1].DistanceKm)
		}
	}

	// Gwangalli beach and the Gwangalli leisure centre are the closest
	// pair to central Busan.
	assert.Equal(t, "beach-2", nearby[0].ID)
}

func TestNearbyLocationsTinyRadius(t *testing.T) {
	r := newTestRepository(t)

	nearby := r.NearbyLocations(context.Background(), busanCenter, 0.001)
	assert.Empty(t, nearby)
}

func TestInvalidateListings(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	first := r.AllLocations(ctx)
	r.InvalidateListings()
	second := r.AllLocations(ctx)

	require.NotNil(t, first[0].RealTimeData)
	require.NotNil(t, second[0].RealTimeData)
	assert.True(t,
		second[0].RealTimeData.LastUpdated.After(first[0].RealTimeData.LastUpdated) ||
			second[0].RealTimeData.LastUpdated.Equal(first[0].RealTimeData.LastUpdated))
}
