// Package geo provides great-circle distance and travel-time helpers.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371

// averageDriveSpeedKmh is the fixed speed assumption used for travel-time
// estimates. This is a documented simplification, not a routing estimate.
const averageDriveSpeedKmh = 40

// Coordinates is a geographic point in degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude" koanf:"latitude"`
	Longitude float64 `json:"longitude" koanf:"longitude"`
}

// Point converts the coordinates to an orb.Point (lon, lat order).
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// Valid reports whether the coordinates are within geographic bounds.
func (c Coordinates) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// DistanceKm returns the haversine distance between two points in kilometers.
// Symmetric, zero for identical points.
func DistanceKm(a, b Coordinates) float64 {
	dLat := toRad(b.Latitude - a.Latitude)
	dLon := toRad(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Latitude))*math.Cos(toRad(b.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// EstimatedDriveMinutes returns a rough driving time for a distance,
// assuming a constant 40 km/h average speed.
func EstimatedDriveMinutes(distanceKm float64) int {
	return int(math.Round(distanceKm / averageDriveSpeedKmh * 60))
}

// BoundFromRadius returns a bounding box around center that fully contains a
// circle of the given radius. Used as a cheap pre-filter before exact
// distance checks.
func BoundFromRadius(center Coordinates, radiusKm float64) orb.Bound {
	dLat := radiusKm / 111.0 // ~111km per degree of latitude
	cosLat := math.Cos(toRad(center.Latitude))
	if cosLat < 0.01 {
		cosLat = 0.01
	}
	dLon := radiusKm / (111.0 * cosLat)

	return orb.Bound{
		Min: orb.Point{center.Longitude - dLon, center.Latitude - dLat},
		Max: orb.Point{center.Longitude + dLon, center.Latitude + dLat},
	}
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
