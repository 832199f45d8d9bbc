package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/beachmate/beachmate/internal/api/models"
	"github.com/beachmate/beachmate/internal/api/response"
	"github.com/beachmate/beachmate/internal/geo"
	"github.com/beachmate/beachmate/internal/location"
	"github.com/beachmate/beachmate/internal/weather"
)

// defaultNearbyRadiusKm bounds the nearby search when the client omits
// the radius parameter.
const defaultNearbyRadiusKm = 10.0

// LocationsHandler handles location catalog endpoints.
type LocationsHandler struct {
	repository *location.Repository
	weather    *weather.Service
}

// NewLocationsHandler creates a new LocationsHandler.
func NewLocationsHandler(repo *location.Repository, weatherService *weather.Service) *LocationsHandler {
	return &LocationsHandler{repository: repo, weather: weatherService}
}

// List handles GET /v1/locations - all locations, optionally filtered by
// ?type=.
func (h *LocationsHandler) List(w http.ResponseWriter, r *http.Request) {
	var items []location.WaterLocation

	if raw := r.URL.Query().Get("type"); raw != "" {
		typ, err := location.ParseType(raw)
		if err != nil {
			response.BadRequest(w, r, "invalid location type", []models.FieldError{
				{Field: "type", Message: "must be one of beach, valley, mudflat, marine_sports"},
			})
			return
		}
		items = h.repository.ByType(r.Context(), typ)
	} else {
		items = h.repository.AllLocations(r.Context())
	}

	w.Header().Set("Cache-Control", "public, max-age=300")
	response.JSON(w, r, http.StatusOK, models.LocationList{
		Items:    items,
		Count:    len(items),
		Degraded: h.repository.Degraded(),
	})
}

// Popular handles GET /v1/locations/popular - top rated locations.
func (h *LocationsHandler) Popular(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.BadRequest(w, r, "invalid limit", []models.FieldError{
				{Field: "limit", Message: "must be a positive integer"},
			})
			return
		}
		limit = parsed
	}

	items := h.repository.Popular(r.Context(), limit)

	w.Header().Set("Cache-Control", "public, max-age=3600")
	response.JSON(w, r, http.StatusOK, models.LocationList{
		Items: items,
		Count: len(items),
	})
}

// Nearby handles GET /v1/locations/nearby?lat=&lng=&radius= - locations
// within radius kilometers, closest first.
func (h *LocationsHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	center, fieldErrors := parseCoordinates(r)
	if len(fieldErrors) > 0 {
		response.BadRequest(w, r, "invalid coordinates", fieldErrors)
		return
	}

	radius := defaultNearbyRadiusKm
	if raw := r.URL.Query().Get("radius"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			response.BadRequest(w, r, "invalid radius", []models.FieldError{
				{Field: "radius", Message: "must be a positive number of kilometers"},
			})
			return
		}
		radius = parsed
	}

	items := h.repository.NearbyLocations(r.Context(), center, radius)

	response.JSON(w, r, http.StatusOK, models.NearbyList{
		Items:    items,
		Count:    len(items),
		RadiusKm: radius,
	})
}

// Detail handles GET /v1/locations/{type}/{locationId} - one location
// with detail enrichment.
func (h *LocationsHandler) Detail(w http.ResponseWriter, r *http.Request) {
	typ, err := location.ParseType(chi.URLParam(r, "type"))
	if err != nil {
		response.BadRequest(w, r, "invalid location type", []models.FieldError{
			{Field: "type", Message: "must be one of beach, valley, mudflat, marine_sports"},
		})
		return
	}

	id := chi.URLParam(r, "locationId")
	loc := h.repository.Detail(r.Context(), typ, id)
	if loc == nil {
		response.NotFound(w, r, "location not found")
		return
	}

	detail := models.LocationDetail{
		WaterLocation: *loc,
		Suitability:   h.sportSuitability(r.Context(), loc),
	}

	w.Header().Set("Cache-Control", "public, max-age=600")
	response.JSON(w, r, http.StatusOK, detail)
}

// sportSuitability evaluates a marine sports site's activities against the
// current weather snapshot. A weather failure degrades to no suitability
// section rather than failing the detail request.
func (h *LocationsHandler) sportSuitability(ctx context.Context, loc *location.WaterLocation) []models.ActivitySuitability {
	if loc.Type != location.TypeMarineSports || loc.SportsInfo == nil || h.weather == nil {
		return nil
	}

	snapshot, err := h.weather.CurrentSnapshot(ctx, loc.Coordinates.Latitude, loc.Coordinates.Longitude)
	if err != nil {
		return nil
	}

	conditions := snapshot.Conditions()
	suitability := make([]models.ActivitySuitability, 0, len(loc.SportsInfo.MainActivities))
	for i := range loc.SportsInfo.MainActivities {
		activity := &loc.SportsInfo.MainActivities[i]
		ok, reasons := activity.SuitableIn(conditions)
		suitability = append(suitability, models.ActivitySuitability{
			Activity:    activity.Type,
			SuitableNow: activity.Available && ok,
			Reasons:     reasons,
		})
	}
	return suitability
}

// parseCoordinates reads lat and lng query parameters.
func parseCoordinates(r *http.Request) (geo.Coordinates, []models.FieldError) {
	var fieldErrors []models.FieldError

	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "lat", Message: "must be a number"})
	}
	lng, err := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if err != nil {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "lng", Message: "must be a number"})
	}
	if fieldErrors != nil {
		return geo.Coordinates{}, fieldErrors
	}

	coords := geo.Coordinates{Latitude: lat, Longitude: lng}
	if !coords.Valid() {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "lat", Message: "coordinates out of range", Code: "OUT_OF_RANGE"})
	}
	return coords, fieldErrors
}
