package models

import (
	"github.com/beachmate/beachmate/internal/geo"
	"github.com/beachmate/beachmate/internal/recommend"
	"github.com/beachmate/beachmate/internal/weather"
)

// RecommendationRequest is the body of POST /v1/recommendations:compute.
type RecommendationRequest struct {
	Preferences recommend.Preferences `json:"preferences" validate:"required"`
	Location    geo.Coordinates       `json:"location" validate:"required"`
}

// RecommendationResponse carries the ranked matches.
type RecommendationResponse struct {
	GeneratedAt Timestamp                  `json:"generatedAt"`
	Count       int                        `json:"count"`
	Results     []recommend.Recommendation `json:"results"`
}

// WeatherResponse carries one weather snapshot for a coordinate.
type WeatherResponse struct {
	Location    geo.Coordinates   `json:"location"`
	Snapshot    *weather.Snapshot `json:"snapshot"`
	RetrievedAt Timestamp         `json:"retrievedAt"`
}
