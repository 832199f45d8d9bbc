package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/beachmate/beachmate/internal/api/models"
	"github.com/beachmate/beachmate/internal/api/response"
	"github.com/beachmate/beachmate/internal/weather"
)

// WeatherHandler handles weather endpoints.
type WeatherHandler struct {
	service *weather.Service
}

// NewWeatherHandler creates a new WeatherHandler.
func NewWeatherHandler(service *weather.Service) *WeatherHandler {
	return &WeatherHandler{service: service}
}

// Current handles GET /v1/weather?lat=&lng= - current conditions for a
// coordinate.
func (h *WeatherHandler) Current(w http.ResponseWriter, r *http.Request) {
	coords, fieldErrors := parseCoordinates(r)
	if len(fieldErrors) > 0 {
		response.BadRequest(w, r, "invalid coordinates", fieldErrors)
		return
	}

	snap, err := h.service.CurrentSnapshot(r.Context(), coords.Latitude, coords.Longitude)
	if err != nil {
		if errors.Is(err, weather.ErrInvalidCoordinates) {
			response.BadRequest(w, r, "coordinates out of range", nil)
			return
		}
		response.ServiceUnavailable(w, r, "weather provider unavailable")
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=600")
	response.JSON(w, r, http.StatusOK, models.WeatherResponse{
		Location:    coords,
		Snapshot:    snap,
		RetrievedAt: models.Timestamp(time.Now()),
	})
}
