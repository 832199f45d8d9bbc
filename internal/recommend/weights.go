package recommend

import "github.com/beachmate/beachmate/internal/location"

// Weights holds every scoring constant. The defaults mirror the tuned-ish
// values from the product questionnaire; none of them are load-bearing
// beyond relative ordering, so they are exposed as configuration.
type Weights struct {
	// Base is the starting score before any rule fires.
	Base int `koanf:"base" json:"base"`

	// WeatherWaterSport is the full weather weight when a water-sport
	// purpose is present; WeatherOther otherwise. Overcast counts half.
	WeatherWaterSport int `koanf:"weather_water_sport" json:"weatherWaterSport"`
	WeatherOther      int `koanf:"weather_other" json:"weatherOther"`

	// WaterTempBonus applies when the measured water temperature falls in
	// the preferred band.
	WaterTempBonus int `koanf:"water_temp_bonus" json:"waterTempBonus"`

	// ActivityPerMatch and ActivityCap shape the preferred-activity
	// overlap contribution: min(cap, matches*per).
	ActivityPerMatch int `koanf:"activity_per_match" json:"activityPerMatch"`
	ActivityCap      int `koanf:"activity_cap" json:"activityCap"`

	// CrowdReasonThreshold is the crowd contribution above which the
	// crowd-match reason is appended.
	CrowdReasonThreshold int `koanf:"crowd_reason_threshold" json:"crowdReasonThreshold"`

	Companion     int `koanf:"companion" json:"companion"`
	PreferredTime int `koanf:"preferred_time" json:"preferredTime"`

	BudgetFull     int `koanf:"budget_full" json:"budgetFull"`
	BudgetModerate int `koanf:"budget_moderate" json:"budgetModerate"`

	// BudgetCapKRW and BudgetModerateCapKRW are the adult admission caps
	// for the budget and moderate appetites.
	BudgetCapKRW         int `koanf:"budget_cap_krw" json:"budgetCapKrw"`
	BudgetModerateCapKRW int `koanf:"budget_moderate_cap_krw" json:"budgetModerateCapKrw"`

	SpecialNeedMinor int `koanf:"special_need_minor" json:"specialNeedMinor"`
	SpecialNeedMajor int `koanf:"special_need_major" json:"specialNeedMajor"`
	SpecialNeedsCap  int `koanf:"special_needs_cap" json:"specialNeedsCap"`

	// RatingExcellent applies from RatingExcellentMin stars upward,
	// RatingGood from RatingGoodMin.
	RatingExcellent    int     `koanf:"rating_excellent" json:"ratingExcellent"`
	RatingGood         int     `koanf:"rating_good" json:"ratingGood"`
	RatingExcellentMin float64 `koanf:"rating_excellent_min" json:"ratingExcellentMin"`
	RatingGoodMin      float64 `koanf:"rating_good_min" json:"ratingGoodMin"`

	AgeGroup int `koanf:"age_group" json:"ageGroup"`
}

// DefaultWeights returns the stock scoring weights.
func DefaultWeights() Weights {
	return Weights{
		Base:                 30,
		WeatherWaterSport:    20,
		WeatherOther:         15,
		WaterTempBonus:       5,
		ActivityPerMatch:     8,
		ActivityCap:          25,
		CrowdReasonThreshold: 10,
		Companion:            10,
		PreferredTime:        10,
		BudgetFull:           10,
		BudgetModerate:       8,
		BudgetCapKRW:         20000,
		BudgetModerateCapKRW: 50000,
		SpecialNeedMinor:     2,
		SpecialNeedMajor:     3,
		SpecialNeedsCap:      10,
		RatingExcellent:      5,
		RatingGood:           3,
		RatingExcellentMin:   4.7,
		RatingGoodMin:        4.5,
		AgeGroup:             5,
	}
}

// crowdMatchTable maps (sensitivity, observed crowd level) to the crowd
// contribution. Missing keys contribute zero.
var crowdMatchTable = map[CrowdSensitivity]map[location.CrowdLevel]int{
	PreferQuiet: {
		location.CrowdLow:    15,
		location.CrowdMedium: 7,
		location.CrowdHigh:   0,
	},
	CrowdModerate: {
		location.CrowdLow:    10,
		location.CrowdMedium: 15,
		location.CrowdHigh:   10,
	},
	PreferCrowded: {
		location.CrowdLow:    0,
		location.CrowdMedium: 7,
		location.CrowdHigh:   15,
	},
}
