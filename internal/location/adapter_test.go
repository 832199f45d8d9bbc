package location

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beachmate/beachmate/internal/provider/resilience"
)

func fastClient(name string) *resilience.Client {
	return resilience.NewClient(resilience.ClientConfig{
		Name:            name,
		Timeout:         time.Second,
		MaxRetries:      1,
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
	})
}

func TestAdapterServesBundledWithoutUpstream(t *testing.T) {
	a := NewAdapter(AdapterConfig{Type: TypeBeach, Logger: zerolog.Nop()})

	locations, degraded := a.Locations(context.Background())
	assert.False(t, degraded)
	require.Len(t, locations, 3)
	assert.Equal(t, "beach-1", locations[0].ID)
}

func TestAdapterFetchesUpstream(t *testing.T) {
	remote := []WaterLocation{{ID: "beach-99", Type: TypeBeach, Name: "임랑 해수욕장"}}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "beach", r.URL.Query().Get("type"))
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		json.NewEncoder(w).Encode(remote)
	}))
	defer server.Close()

	registry := resilience.NewRegistry()
	registry.Register("beach", fastClient("beach"))
	a := NewAdapter(AdapterConfig{
		Type:     TypeBeach,
		BaseURL:  server.URL,
		APIKey:   "secret",
		Client:   fastClient("beach"),
		Registry: registry,
		Logger:   zerolog.Nop(),
	})

	locations, degraded := a.Locations(context.Background())
	assert.False(t, degraded)
	require.Len(t, locations, 1)
	assert.Equal(t, "beach-99", locations[0].ID)

	h := registry.Health("beach")
	require.NotNil(t, h)
	assert.NotNil(t, h.LastSuccessAt)
}

func TestAdapterDropsForeignTypes(t *testing.T) {
	remote := []WaterLocation{
		{ID: "beach-99", Type: TypeBeach},
		{ID: "valley-99", Type: TypeValley},
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(remote)
	}))
	defer server.Close()

	a := NewAdapter(AdapterConfig{
		Type:    TypeBeach,
		BaseURL: server.URL,
		Client:  fastClient("beach"),
		Logger:  zerolog.Nop(),
	})

	locations, _ := a.Locations(context.Background())
	require.Len(t, locations, 1)
	assert.Equal(t, "beach-99", locations[0].ID)
}

func TestAdapterFallsBackOnUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	registry := resilience.NewRegistry()
	registry.Register("valley", fastClient("valley"))
	a := NewAdapter(AdapterConfig{
		Type:     TypeValley,
		BaseURL:  server.URL,
		Client:   fastClient("valley"),
		Registry: registry,
		Logger:   zerolog.Nop(),
	})

	locations, degraded := a.Locations(context.Background())
	assert.True(t, degraded)
	require.Len(t, locations, 3)
	assert.Equal(t, "valley-1", locations[0].ID)

	h := registry.Health("valley")
	require.NotNil(t, h)
	assert.NotNil(t, h.LastFailureAt)
}
