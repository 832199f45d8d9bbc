// Package busanmock is the bundled weather provider: a constant summer
// snapshot for the Busan coast. It stands in until a real KMA or marine
// forecast feed is integrated.
package busanmock

import (
	"context"

	"github.com/beachmate/beachmate/internal/weather"
)

// Client implements weather.Provider with fixed data.
type Client struct{}

// NewClient creates the mock provider.
func NewClient() *Client {
	return &Client{}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return "busanmock"
}

// Snapshot returns the bundled snapshot regardless of coordinate.
func (c *Client) Snapshot(_ context.Context, _, _ float64) (*weather.Snapshot, error) {
	return &weather.Snapshot{
		TemperatureC:      26,
		WaterTemperatureC: 24,
		WaveHeightM:       0.8,
		WindSpeedMs:       3.5,
		WindDirection:     "E",
		HumidityPct:       65,
		VisibilityKm:      10,
		PrecipitationPct:  0,
		Description:       weather.SkyClear,
		Icon:              "sun",
		UVIndex:           7,
	}, nil
}
