package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beachmate/beachmate/internal/api"
	"github.com/beachmate/beachmate/internal/api/models"
	"github.com/beachmate/beachmate/internal/cache"
	"github.com/beachmate/beachmate/internal/location"
	"github.com/beachmate/beachmate/internal/provider/resilience"
	"github.com/beachmate/beachmate/internal/recommend"
	"github.com/beachmate/beachmate/internal/weather"
	"github.com/beachmate/beachmate/internal/weather/busanmock"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := zerolog.New(io.Discard)

	store := cache.New(cache.Config{SweepInterval: time.Hour, Logger: logger})
	t.Cleanup(store.Stop)

	adapters := make([]*location.Adapter, 0, len(location.AllTypes()))
	for _, typ := range location.AllTypes() {
		adapters = append(adapters, location.NewAdapter(location.AdapterConfig{
			Type:   typ,
			Logger: logger,
		}))
	}

	repo := location.NewRepository(location.RepositoryConfig{
		Adapters: adapters,
		Cache:    store,
		Logger:   logger,
	})

	weatherService := weather.NewService(weather.ServiceConfig{
		Provider: busanmock.NewClient(),
		Logger:   logger,
	})

	engine := recommend.NewEngine(recommend.EngineConfig{
		Locations: repo,
		Weather:   weatherService,
		Logger:    logger,
	})

	return api.NewRouter(api.RouterConfig{
		Version:        "test",
		BuildTime:      "2026-01-01T00:00:00Z",
		Logger:         logger,
		Repository:     repo,
		WeatherService: weatherService,
		Engine:         engine,
		Registry:       resilience.NewRegistry(),
		Cache:          store,
	})
}

func TestRouter_HealthCheck(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/ops/health", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	var health models.Health
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))

	assert.Equal(t, models.HealthStatusOK, health.Status)
	assert.Equal(t, "test", health.Details["version"])
}

func TestRouter_ReadinessCheck(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/ops/ready", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_SystemStatus(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/ops/status", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var status models.SystemStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))

	assert.Equal(t, models.HealthStatusOK, status.Status)
	assert.False(t, status.Degraded)
}

func TestRouter_ListLocations(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/locations", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "public, max-age=300", w.Header().Get("Cache-Control"))

	var list models.LocationList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))

	assert.Equal(t, 12, list.Count)
	assert.Len(t, list.Items, 12)
	assert.False(t, list.Degraded)
}

func TestRouter_ListLocationsByType(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/locations?type=beach", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var list models.LocationList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))

	require.Len(t, list.Items, 3)
	for _, loc := range list.Items {
		assert.Equal(t, location.TypeBeach, loc.Type)
	}
}

func TestRouter_ListLocationsInvalidType(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/locations?type=lake", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))
}

func TestRouter_PopularLocations(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/locations/popular?limit=3", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var list models.LocationList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))

	require.Len(t, list.Items, 3)
	// Haeundae's review volume keeps it on top.
	assert.Equal(t, "beach-1", list.Items[0].ID)
}

func TestRouter_NearbyLocations(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/locations/nearby?lat=35.1587&lng=129.1604&radius=5", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var list models.NearbyList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))

	require.NotEmpty(t, list.Items)
	assert.Equal(t, "beach-1", list.Items[0].ID)
	assert.Equal(t, 5.0, list.RadiusKm)
}

func TestRouter_NearbyMissingCoordinates(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/locations/nearby", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_LocationDetail(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/locations/mudflat/mudflat-1", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var loc location.WaterLocation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loc))

	assert.Equal(t, "mudflat-1", loc.ID)
	require.NotNil(t, loc.MudflatInfo)
	assert.Len(t, loc.MudflatInfo.TideSchedule, 7)
}

func TestRouter_MarineDetailSuitability(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/locations/marine_sports/marine-1", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var detail models.LocationDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))

	assert.Equal(t, "marine-1", detail.ID)
	require.Len(t, detail.Suitability, 3)

	byActivity := make(map[location.Activity]models.ActivitySuitability)
	for _, s := range detail.Suitability {
		byActivity[s.Activity] = s
	}

	// Mock conditions: calm sea, light wind. Surfing wants more wind.
	assert.False(t, byActivity[location.ActivitySurfing].SuitableNow)
	assert.Contains(t, byActivity[location.ActivitySurfing].Reasons, "풍속 조건 부적합")
	assert.True(t, byActivity[location.ActivityPaddleboard].SuitableNow)
	assert.True(t, byActivity[location.ActivityKayaking].SuitableNow)
}

func TestRouter_LocationDetailNotFound(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/locations/beach/beach-99", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_Weather(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/weather?lat=35.1587&lng=129.1604", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.WeatherResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.NotNil(t, resp.Snapshot)
	assert.Equal(t, 26.0, resp.Snapshot.TemperatureC)
	assert.Equal(t, weather.SkyClear, resp.Snapshot.Description)
}

func TestRouter_ComputeRecommendations(t *testing.T) {
	router := newTestRouter(t)

	body := map[string]any{
		"preferences": map[string]any{
			"activityTypes":       []string{"beach"},
			"purpose":             []string{"swimming"},
			"waterTempPreference": "moderate",
			"crowdSensitivity":    "prefer_quiet",
			"maxDistance":         50,
		},
		"location": map[string]float64{"latitude": 35.1796, "longitude": 129.0756},
	}
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/recommendations:compute", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.RecommendationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Equal(t, 3, resp.Count)
	assert.Equal(t, "beach-3", resp.Results[0].Location.ID)
	assert.Equal(t, 70, resp.Results[0].MatchScore)
	assert.Equal(t, recommend.Recommended, resp.Results[0].Recommendation)
	assert.Contains(t, resp.Results[0].MatchReasons, "선호하는 혼잡도")
}

func TestRouter_ComputeRecommendationsValidation(t *testing.T) {
	router := newTestRouter(t)

	// Missing activityTypes and maxDistance.
	body := `{"preferences":{},"location":{"latitude":35.1,"longitude":129.0}}`

	req := httptest.NewRequest(http.MethodPost, "/v1/recommendations:compute", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var problem models.Problem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	assert.Equal(t, models.ProblemTypeValidation, problem.Type)
	assert.NotEmpty(t, problem.Errors)
}

func TestRouter_ComputeRecommendationsBadJSON(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/recommendations:compute", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_ComputeRecommendationsWrongContentType(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/recommendations:compute", bytes.NewBufferString("lat,lng"))
	req.Header.Set("Content-Type", "text/csv")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestRouter_MetadataEnums(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/metadata/enums", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var enums models.Enums
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &enums))

	assert.Len(t, enums.LocationTypes, 4)
	assert.Len(t, enums.CrowdSensitivities, 3)
	assert.Len(t, enums.Buckets, 4)
}

func TestRouter_AdminCacheInvalidate(t *testing.T) {
	router := newTestRouter(t)

	// Warm the cache first.
	warm := httptest.NewRequest(http.MethodGet, "/v1/locations", http.NoBody)
	router.ServeHTTP(httptest.NewRecorder(), warm)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/cache/invalidate", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRouter_SecurityHeaders(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/ops/health", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/unknown", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
