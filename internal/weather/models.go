// Package weather serves point-in-time weather snapshots for coordinates,
// cached per grid cell. The only provider today is the bundled Busan mock;
// the Provider interface is where a real marine weather feed would plug in.
package weather

import (
	"errors"

	"github.com/beachmate/beachmate/internal/location"
)

var (
	// ErrInvalidCoordinates is returned for out-of-range lat/lon.
	ErrInvalidCoordinates = errors.New("invalid coordinates")

	// ErrProviderUnavailable is returned when the provider fails and no
	// stale snapshot can be served.
	ErrProviderUnavailable = errors.New("weather provider unavailable")
)

// Sky descriptions used by snapshot providers and preference matching.
const (
	SkyClear       = "맑음"
	SkyPartlyCloud = "구름조금"
	SkyOvercast    = "흐림"
)

// Snapshot is the weather at one coordinate at one instant. Not persisted;
// regenerated or cache-served per grid cell.
type Snapshot struct {
	TemperatureC      float64 `json:"temperature"`
	WaterTemperatureC float64 `json:"waterTemperature"`
	WaveHeightM       float64 `json:"waveHeight"`
	WindSpeedMs       float64 `json:"windSpeed"`
	WindDirection     string  `json:"windDirection"`
	HumidityPct       int     `json:"humidity"`
	VisibilityKm      float64 `json:"visibility"`
	PrecipitationPct  int     `json:"precipitation"`
	Description       string  `json:"description"`
	Icon              string  `json:"icon"`
	UVIndex           int     `json:"uvIndex"`
}

// Conditions projects the snapshot onto the fields sport-activity
// suitability checks consume.
func (s *Snapshot) Conditions() location.Conditions {
	return location.Conditions{
		WaveHeightM:  s.WaveHeightM,
		WindSpeedMs:  s.WindSpeedMs,
		VisibilityKm: s.VisibilityKm,
		WaterTempC:   s.WaterTemperatureC,
	}
}
