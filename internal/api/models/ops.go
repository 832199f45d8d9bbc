package models

import "github.com/beachmate/beachmate/internal/cache"

// Health represents the health status of the service.
type Health struct {
	Status  HealthStatus           `json:"status"`
	Time    Timestamp              `json:"time"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// SystemStatus represents the overall system status.
type SystemStatus struct {
	Status HealthStatus `json:"status"`
	Time   Timestamp    `json:"time"`

	// Degraded is true when any dataset adapter last served bundled
	// fallback data instead of its upstream.
	Degraded bool `json:"degraded"`

	Cache     cache.Stats      `json:"cache"`
	Providers []ProviderStatus `json:"providers"`
}

// ProviderStatus represents the status of an external provider.
type ProviderStatus struct {
	Provider      string       `json:"provider"`
	Status        HealthStatus `json:"status"`
	CircuitState  string       `json:"circuitState"`
	LastSuccessAt *Timestamp   `json:"lastSuccessAt,omitempty"`
	LastFailureAt *Timestamp   `json:"lastFailureAt,omitempty"`
	Message       *string      `json:"message,omitempty"`
}
