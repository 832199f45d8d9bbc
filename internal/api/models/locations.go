package models

import (
	"github.com/beachmate/beachmate/internal/location"
)

// LocationList is the envelope for location listings.
type LocationList struct {
	Items []location.WaterLocation `json:"items"`
	Count int                      `json:"count"`

	// Degraded is true when any adapter served bundled fallback data.
	Degraded bool `json:"degraded,omitempty"`
}

// NearbyList is the envelope for the nearby search, closest first.
type NearbyList struct {
	Items    []location.Nearby `json:"items"`
	Count    int               `json:"count"`
	RadiusKm float64           `json:"radiusKm"`
}

// ActivitySuitability reports whether one sport activity is worth doing
// under the current conditions.
type ActivitySuitability struct {
	Activity    location.Activity `json:"activity"`
	SuitableNow bool              `json:"suitableNow"`
	Reasons     []string          `json:"reasons,omitempty"`
}

// LocationDetail is one location plus detail enrichment. Suitability is
// populated for marine sports sites when a weather snapshot is available.
type LocationDetail struct {
	location.WaterLocation
	Suitability []ActivitySuitability `json:"suitability,omitempty"`
}
