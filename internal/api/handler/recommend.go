package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/beachmate/beachmate/internal/api/models"
	"github.com/beachmate/beachmate/internal/api/response"
	"github.com/beachmate/beachmate/internal/recommend"
)

// RecommendHandler handles the recommendation compute endpoint.
type RecommendHandler struct {
	engine   *recommend.Engine
	validate *validator.Validate
}

// NewRecommendHandler creates a new RecommendHandler.
func NewRecommendHandler(engine *recommend.Engine) *RecommendHandler {
	return &RecommendHandler{
		engine:   engine,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Compute handles POST /v1/recommendations:compute - rank locations
// against the submitted preferences.
func (h *RecommendHandler) Compute(w http.ResponseWriter, r *http.Request) {
	var input models.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	if err := h.validate.Struct(&input); err != nil {
		response.BadRequest(w, r, "invalid recommendation request", fieldErrors(err))
		return
	}
	if !input.Location.Valid() {
		response.BadRequest(w, r, "invalid recommendation request", []models.FieldError{
			{Field: "location", Message: "coordinates out of range", Code: "OUT_OF_RANGE"},
		})
		return
	}

	results, err := h.engine.Recommendations(r.Context(), input.Preferences, input.Location)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			response.ServiceUnavailable(w, r, "recommendation pipeline timed out")
			return
		}
		response.InternalError(w, r, "failed to compute recommendations")
		return
	}

	w.Header().Set("Cache-Control", "private, max-age=60")
	response.JSON(w, r, http.StatusOK, models.RecommendationResponse{
		GeneratedAt: models.Timestamp(time.Now()),
		Count:       len(results),
		Results:     results,
	})
}

// fieldErrors flattens validator errors into the problem payload shape.
func fieldErrors(err error) []models.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		// Trim the request wrapper prefix; clients see JSON paths.
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		out = append(out, models.FieldError{
			Field:   field,
			Message: "failed validation on '" + fe.Tag() + "'",
			Code:    strings.ToUpper(fe.Tag()),
		})
	}
	return out
}
