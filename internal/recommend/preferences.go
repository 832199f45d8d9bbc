// Package recommend ranks water-activity locations against user
// preferences. Scoring is a declarative rule table over the closed tag
// vocabulary; weights are configuration, not code.
package recommend

import (
	"github.com/beachmate/beachmate/internal/location"
)

// CrowdSensitivity is the user's tolerance for busy locations.
type CrowdSensitivity string

const (
	PreferQuiet   CrowdSensitivity = "prefer_quiet"
	CrowdModerate CrowdSensitivity = "moderate"
	PreferCrowded CrowdSensitivity = "prefer_crowded"
)

// WaterTempPreference selects a preferred water temperature band.
type WaterTempPreference string

const (
	WaterTempCold     WaterTempPreference = "cold"
	WaterTempModerate WaterTempPreference = "moderate"
	WaterTempWarm     WaterTempPreference = "warm"
	WaterTempAny      WaterTempPreference = "any"
)

// Matches reports whether a measured water temperature falls in the
// preferred band. Warm is 24°C and above, moderate 20 to 24, cold below 20.
// "any" and empty never match; the bonus simply does not apply.
func (p WaterTempPreference) Matches(tempC float64) bool {
	switch p {
	case WaterTempWarm:
		return tempC >= 24
	case WaterTempModerate:
		return tempC >= 20 && tempC < 24
	case WaterTempCold:
		return tempC < 20
	}
	return false
}

// Purpose is the user's stated reason for the trip.
type Purpose string

const (
	PurposeSwimming    Purpose = "swimming"
	PurposeSurfing     Purpose = "surfing"
	PurposeRelaxation  Purpose = "relaxation"
	PurposeAdventure   Purpose = "adventure"
	PurposeFamily      Purpose = "family"
	PurposePhotography Purpose = "photography"
	PurposeExercise    Purpose = "exercise"
	PurposeWalking     Purpose = "walking"
)

func isWaterSportPurpose(p Purpose) bool {
	switch p {
	case PurposeSwimming, PurposeSurfing,
		Purpose(location.ActivityKayaking),
		Purpose(location.ActivitySnorkeling),
		Purpose(location.ActivityDiving),
		Purpose(location.ActivityPaddleboard),
		Purpose(location.ActivityJetski),
		Purpose(location.ActivityWindsurfing):
		return true
	}
	return false
}

// AgeGroup buckets the user's age for tag heuristics.
type AgeGroup string

const (
	AgeTeens       AgeGroup = "teens"
	AgeTwenties    AgeGroup = "twenties"
	AgeThirties    AgeGroup = "thirties"
	AgeForties     AgeGroup = "forties"
	AgeFifties     AgeGroup = "fifties"
	AgeSixtiesPlus AgeGroup = "sixties_plus"
)

// CompanionType describes who the user is visiting with.
type CompanionType string

const (
	CompanionSolo    CompanionType = "solo"
	CompanionCouple  CompanionType = "couple"
	CompanionFamily  CompanionType = "family"
	CompanionFriends CompanionType = "friends"
	CompanionGroup   CompanionType = "group"
)

// TimeOfDay is the user's preferred visiting time.
type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
	TimeNight     TimeOfDay = "night"
)

// BudgetRange is the user's spending appetite.
type BudgetRange string

const (
	BudgetFree     BudgetRange = "free"
	BudgetBudget   BudgetRange = "budget"
	BudgetModerate BudgetRange = "moderate"
	BudgetPremium  BudgetRange = "premium"
)

// SpecialNeeds are independent accessibility flags from the onboarding
// wizard.
type SpecialNeeds struct {
	PetFriendly      bool `json:"petFriendly,omitempty"`
	WheelchairAccess bool `json:"wheelchairAccess,omitempty"`
	BabyFacilities   bool `json:"babyFacilities,omitempty"`
	SeniorFriendly   bool `json:"seniorFriendly,omitempty"`
}

// Preferences is the finalized questionnaire result handed to the engine.
// It is assembled once by the caller and never mutated here; every optional
// field contributes zero when unset.
type Preferences struct {
	ActivityTypes       []location.Type     `json:"activityTypes" validate:"required,min=1,dive,oneof=beach valley mudflat marine_sports"`
	Purposes            []Purpose           `json:"purpose,omitempty"`
	WaterTempPreference WaterTempPreference `json:"waterTempPreference,omitempty" validate:"omitempty,oneof=cold moderate warm any"`
	CrowdSensitivity    CrowdSensitivity    `json:"crowdSensitivity,omitempty" validate:"omitempty,oneof=prefer_quiet moderate prefer_crowded"`
	MaxDistanceKm       float64             `json:"maxDistance" validate:"required,gt=0"`

	AgeGroup            AgeGroup            `json:"ageGroup,omitempty" validate:"omitempty,oneof=teens twenties thirties forties fifties sixties_plus"`
	CompanionType       CompanionType       `json:"companionType,omitempty" validate:"omitempty,oneof=solo couple family friends group"`
	PreferredActivities []location.Activity `json:"preferredActivities,omitempty"`
	PreferredTime       TimeOfDay           `json:"preferredTime,omitempty" validate:"omitempty,oneof=morning afternoon evening night"`
	BudgetRange         BudgetRange         `json:"budgetRange,omitempty" validate:"omitempty,oneof=free budget moderate premium"`
	SpecialNeeds        *SpecialNeeds       `json:"specialNeeds,omitempty"`
}

// WantsType reports whether typ is among the requested activity types.
func (p *Preferences) WantsType(typ location.Type) bool {
	for _, t := range p.ActivityTypes {
		if t == typ {
			return true
		}
	}
	return false
}

// WantsWaterSport reports whether any stated purpose is an in-water sport.
// Weather weighs heavier for those.
func (p *Preferences) WantsWaterSport() bool {
	for _, purpose := range p.Purposes {
		if isWaterSportPurpose(purpose) {
			return true
		}
	}
	return false
}
