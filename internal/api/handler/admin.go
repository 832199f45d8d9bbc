package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/beachmate/beachmate/internal/api/middleware"
	"github.com/beachmate/beachmate/internal/api/response"
	"github.com/beachmate/beachmate/internal/location"
)

// AdminHandler handles internal operational endpoints.
type AdminHandler struct {
	repository *location.Repository
	logger     zerolog.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(repo *location.Repository, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{repository: repo, logger: logger}
}

// InvalidateCache handles POST /v1/admin/cache/invalidate - drop all
// cached location listings so the next request refetches upstream.
func (h *AdminHandler) InvalidateCache(w http.ResponseWriter, r *http.Request) {
	h.repository.InvalidateListings()

	h.logger.Info().
		Str("request_id", middleware.GetRequestID(r.Context())).
		Msg("location cache invalidated")

	response.NoContent(w, r)
}
