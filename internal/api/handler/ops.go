// Package handler provides HTTP handlers for the BeachMate API.
package handler

import (
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/beachmate/beachmate/internal/api/models"
	"github.com/beachmate/beachmate/internal/api/response"
	"github.com/beachmate/beachmate/internal/cache"
	"github.com/beachmate/beachmate/internal/location"
	"github.com/beachmate/beachmate/internal/provider/resilience"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version    string
	buildTime  string
	repository *location.Repository
	registry   *resilience.Registry
	cache      *cache.Cache
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(version, buildTime string, repo *location.Repository, registry *resilience.Registry, c *cache.Cache) *OpsHandler {
	return &OpsHandler{
		version:    version,
		buildTime:  buildTime,
		repository: repo,
		registry:   registry,
		cache:      c,
	}
}

// HealthCheck handles GET /v1/ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
		Details: map[string]interface{}{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// ReadinessCheck handles GET /v1/ops/ready - readiness check. The service
// is ready once the location repository can serve a listing, which always
// succeeds thanks to the bundled datasets.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	if len(h.repository.AllLocations(r.Context())) == 0 {
		response.ServiceUnavailable(w, r, "location repository is empty")
		return
	}

	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
	}
	response.JSON(w, r, http.StatusOK, health)
}

// SystemStatus handles GET /v1/ops/status - provider and subsystem status.
func (h *OpsHandler) SystemStatus(w http.ResponseWriter, r *http.Request) {
	degraded := h.repository.Degraded()

	overall := models.HealthStatusOK
	if degraded {
		overall = models.HealthStatusDegraded
	}

	providers := []models.ProviderStatus{}
	for _, ph := range h.registry.AllHealth() {
		providers = append(providers, providerStatus(ph))
		if !ph.IsHealthy() && overall == models.HealthStatusOK {
			overall = models.HealthStatusDegraded
		}
	}

	status := models.SystemStatus{
		Status:    overall,
		Time:      models.Timestamp(time.Now()),
		Degraded:  degraded,
		Cache:     h.cache.GetStats(),
		Providers: providers,
	}
	response.JSON(w, r, http.StatusOK, status)
}

func providerStatus(ph *resilience.ProviderHealth) models.ProviderStatus {
	status := models.HealthStatusOK
	switch ph.CircuitState {
	case gobreaker.StateOpen:
		status = models.HealthStatusFail
	case gobreaker.StateHalfOpen:
		status = models.HealthStatusDegraded
	}

	out := models.ProviderStatus{
		Provider:     ph.Name,
		Status:       status,
		CircuitState: ph.CircuitState.String(),
	}
	if ph.LastSuccessAt != nil {
		ts := models.Timestamp(*ph.LastSuccessAt)
		out.LastSuccessAt = &ts
	}
	if ph.LastFailureAt != nil {
		ts := models.Timestamp(*ph.LastFailureAt)
		out.LastFailureAt = &ts
	}
	if ph.LastError != "" {
		msg := ph.LastError
		out.Message = &msg
	}
	return out
}
