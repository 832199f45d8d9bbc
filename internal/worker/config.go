// Package worker provides background cache warming for BeachMate.
package worker

import (
	"time"
)

// WarmTarget represents a geographic area whose weather cells get warmed.
type WarmTarget struct {
	// Name is the human-readable name of the target.
	Name string

	// Points are the lat/lon coordinates to warm. Typically the
	// coordinates of the locations inside the district.
	Points []Point

	// Priority determines warm order (lower = higher priority).
	Priority int
}

// Point represents a geographic coordinate.
type Point struct {
	Lat float64
	Lon float64
}

// WarmConfig holds configuration for the cache warming job.
type WarmConfig struct {
	// Targets are the geographic areas to warm.
	// If empty, uses DefaultWarmTargets.
	Targets []WarmTarget

	// Concurrency is the number of concurrent weather fetches.
	// Default: 3
	Concurrency int

	// Timeout is the timeout for each warm operation.
	// Default: 30 seconds
	Timeout time.Duration

	// WarmListings enables warming the per-type location listings.
	// Default: true
	WarmListings bool

	// WarmPopular enables warming the popular ranking.
	// Default: true
	WarmPopular bool

	// WarmTides enables warming mudflat detail entries, which carry the
	// tide forecast.
	// Default: true
	WarmTides bool

	// WarmWeather enables warming weather snapshots for all targets.
	// Default: true
	WarmWeather bool
}

// DefaultWarmConfig returns the default warm configuration.
func DefaultWarmConfig() WarmConfig {
	return WarmConfig{
		Targets:      DefaultWarmTargets(),
		Concurrency:  3,
		Timeout:      30 * time.Second,
		WarmListings: true,
		WarmPopular:  true,
		WarmTides:    true,
		WarmWeather:  true,
	}
}

// DefaultWarmTargets returns the default warm targets around Busan.
// Points mirror the coordinates of the served locations so the weather
// grid cells the API will hit are exactly the ones warmed here.
func DefaultWarmTargets() []WarmTarget {
	return []WarmTarget{
		{
			Name:     "해운대구",
			Priority: 1,
			Points: []Point{
				{Lat: 35.1587, Lon: 129.1604}, // 해운대 해수욕장
				{Lat: 35.1789, Lon: 129.1997}, // 송정 해수욕장
			},
		},
		{
			Name:     "수영구",
			Priority: 1,
			Points: []Point{
				{Lat: 35.1531, Lon: 129.1187}, // 광안리 해수욕장
			},
		},
		{
			Name:     "기장군",
			Priority: 2,
			Points: []Point{
				{Lat: 35.2234, Lon: 129.2134}, // 기장 해양스포츠
				{Lat: 35.3456, Lon: 129.2345}, // 기장 계곡
			},
		},
		{
			Name:     "사하구",
			Priority: 2,
			Points: []Point{
				{Lat: 35.0466, Lon: 128.9654}, // 다대포 갯벌
				{Lat: 35.1056, Lon: 128.9456}, // 을숙도 갯벌
			},
		},
		{
			Name:     "강서구",
			Priority: 3,
			Points: []Point{
				{Lat: 35.0234, Lon: 128.8234}, // 명지 갯벌
			},
		},
		{
			Name:     "양산시",
			Priority: 3,
			Points: []Point{
				{Lat: 35.3721, Lon: 129.0324}, // 배내골 계곡
				{Lat: 35.4102, Lon: 128.9876}, // 내원사 계곡
			},
		},
	}
}

// AllPoints returns all points from all targets, ordered by priority.
func (c WarmConfig) AllPoints() []Point {
	var points []Point
	for _, target := range c.Targets {
		points = append(points, target.Points...)
	}
	return points
}

// TotalPoints returns the total number of points to warm.
func (c WarmConfig) TotalPoints() int {
	total := 0
	for _, target := range c.Targets {
		total += len(target.Points)
	}
	return total
}
