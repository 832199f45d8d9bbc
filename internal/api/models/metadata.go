package models

import (
	"github.com/beachmate/beachmate/internal/location"
	"github.com/beachmate/beachmate/internal/recommend"
)

// Enums represents the enum values accepted by the API.
type Enums struct {
	LocationTypes        []location.Type                 `json:"locationTypes"`
	CrowdLevels          []location.CrowdLevel           `json:"crowdLevels"`
	Activities           []location.Activity             `json:"activities"`
	Purposes             []recommend.Purpose             `json:"purposes"`
	WaterTempPreferences []recommend.WaterTempPreference `json:"waterTempPreferences"`
	CrowdSensitivities   []recommend.CrowdSensitivity    `json:"crowdSensitivities"`
	AgeGroups            []recommend.AgeGroup            `json:"ageGroups"`
	CompanionTypes       []recommend.CompanionType       `json:"companionTypes"`
	TimesOfDay           []recommend.TimeOfDay           `json:"timesOfDay"`
	BudgetRanges         []recommend.BudgetRange         `json:"budgetRanges"`
	Buckets              []recommend.Bucket              `json:"recommendationLevels"`
}
