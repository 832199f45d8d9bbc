package handler

import (
	"net/http"

	"github.com/beachmate/beachmate/internal/api/models"
	"github.com/beachmate/beachmate/internal/api/response"
	"github.com/beachmate/beachmate/internal/location"
	"github.com/beachmate/beachmate/internal/recommend"
)

// MetadataHandler handles metadata endpoints.
type MetadataHandler struct{}

// NewMetadataHandler creates a new MetadataHandler.
func NewMetadataHandler() *MetadataHandler {
	return &MetadataHandler{}
}

// GetEnums handles GET /v1/metadata/enums - enum values accepted by the API.
func (h *MetadataHandler) GetEnums(w http.ResponseWriter, r *http.Request) {
	enums := models.Enums{
		LocationTypes: location.AllTypes(),
		CrowdLevels: []location.CrowdLevel{
			location.CrowdLow,
			location.CrowdMedium,
			location.CrowdHigh,
		},
		Activities: location.AllActivities(),
		Purposes: []recommend.Purpose{
			recommend.PurposeSwimming,
			recommend.PurposeSurfing,
			recommend.PurposeRelaxation,
			recommend.PurposeAdventure,
			recommend.PurposeFamily,
			recommend.PurposePhotography,
			recommend.PurposeExercise,
			recommend.PurposeWalking,
		},
		WaterTempPreferences: []recommend.WaterTempPreference{
			recommend.WaterTempCold,
			recommend.WaterTempModerate,
			recommend.WaterTempWarm,
			recommend.WaterTempAny,
		},
		CrowdSensitivities: []recommend.CrowdSensitivity{
			recommend.PreferQuiet,
			recommend.CrowdModerate,
			recommend.PreferCrowded,
		},
		AgeGroups: []recommend.AgeGroup{
			recommend.AgeTeens,
			recommend.AgeTwenties,
			recommend.AgeThirties,
			recommend.AgeForties,
			recommend.AgeFifties,
			recommend.AgeSixtiesPlus,
		},
		CompanionTypes: []recommend.CompanionType{
			recommend.CompanionSolo,
			recommend.CompanionCouple,
			recommend.CompanionFamily,
			recommend.CompanionFriends,
			recommend.CompanionGroup,
		},
		TimesOfDay: []recommend.TimeOfDay{
			recommend.TimeMorning,
			recommend.TimeAfternoon,
			recommend.TimeEvening,
			recommend.TimeNight,
		},
		BudgetRanges: []recommend.BudgetRange{
			recommend.BudgetFree,
			recommend.BudgetBudget,
			recommend.BudgetModerate,
			recommend.BudgetPremium,
		},
		Buckets: []recommend.Bucket{
			recommend.HighlyRecommended,
			recommend.Recommended,
			recommend.Possible,
			recommend.NotRecommended,
		},
	}

	w.Header().Set("Cache-Control", "public, max-age=86400")
	response.JSON(w, r, http.StatusOK, enums)
}
