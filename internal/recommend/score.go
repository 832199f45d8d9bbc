package recommend

import (
	"github.com/beachmate/beachmate/internal/location"
	"github.com/beachmate/beachmate/internal/weather"
)

// Match reason copy. Shown verbatim in the UI.
const (
	reasonPerfectWeather = "완벽한 날씨"
	reasonDecentWeather  = "무난한 날씨"
	reasonWaterTemp      = "선호하는 수온"
	reasonActivities     = "선호 활동 가능"
	reasonCrowd          = "선호하는 혼잡도"
	reasonFamilySpot     = "가족과 함께하기 좋은 장소"
	reasonCoupleSpot     = "커플 데이트 명소"
	reasonFriendsSpot    = "친구와 즐기기 좋은 장소"
	reasonSoloSpot       = "혼자 힐링하기 좋은 장소"
	reasonMorningVisit   = "아침 방문 추천"
	reasonEveningVisit   = "저녁 방문 추천"
	reasonNightVisit     = "야간 방문 가능"
	reasonFreeEntry      = "무료 입장"
	reasonCheapEntry     = "저렴한 입장료"
	reasonFairPrice      = "합리적인 비용"
	reasonPremium        = "프리미엄 시설"
	reasonPetFriendly    = "반려동물 동반 가능"
	reasonWheelchair     = "휠체어 접근 가능"
	reasonBabyFacilities = "유아 시설 보유"
	reasonSeniorFriendly = "어르신 친화적"
	reasonHighRating     = "높은 평점"
	reasonGoodRating     = "좋은 평점"
	reasonAgeGroupFit    = "연령대에 맞는 분위기"
)

// scoreRule is one independent scoring heuristic. A rule that does not
// apply returns zero and no reasons; rules never fail.
type scoreRule struct {
	name string
	eval func(in ruleInput) (int, []string)
}

type ruleInput struct {
	loc     *location.WaterLocation
	prefs   *Preferences
	weather *weather.Snapshot
	weights *Weights
}

// scoringRules is evaluated in order; reasons keep insertion order and are
// not deduplicated.
var scoringRules = []scoreRule{
	{name: "weather", eval: evalWeather},
	{name: "water_temperature", eval: evalWaterTemp},
	{name: "activity_fit", eval: evalActivityFit},
	{name: "crowd_match", eval: evalCrowdMatch},
	{name: "companion", eval: evalCompanion},
	{name: "preferred_time", eval: evalPreferredTime},
	{name: "budget", eval: evalBudget},
	{name: "special_needs", eval: evalSpecialNeeds},
	{name: "rating", eval: evalRating},
	{name: "age_group", eval: evalAgeGroup},
}

// ScoreMatch scores one location against the preferences and a weather
// snapshot (nil when unavailable; weather rules then contribute zero).
// The result is an integer clamped to [0, 100] plus the fired reasons.
func ScoreMatch(loc *location.WaterLocation, prefs *Preferences, snap *weather.Snapshot, weights *Weights) (int, []string) {
	in := ruleInput{loc: loc, prefs: prefs, weather: snap, weights: weights}

	score := weights.Base
	reasons := []string{}
	for _, rule := range scoringRules {
		delta, r := rule.eval(in)
		score += delta
		reasons = append(reasons, r...)
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, reasons
}

func evalWeather(in ruleInput) (int, []string) {
	if in.weather == nil {
		return 0, nil
	}

	weight := in.weights.WeatherOther
	if in.prefs.WantsWaterSport() {
		weight = in.weights.WeatherWaterSport
	}

	switch in.weather.Description {
	case weather.SkyClear, weather.SkyPartlyCloud:
		return weight, []string{reasonPerfectWeather}
	case weather.SkyOvercast:
		return weight / 2, []string{reasonDecentWeather}
	}
	return 0, nil
}

func evalWaterTemp(in ruleInput) (int, []string) {
	if in.weather == nil {
		return 0, nil
	}
	if !in.prefs.WaterTempPreference.Matches(in.weather.WaterTemperatureC) {
		return 0, nil
	}
	return in.weights.WaterTempBonus, []string{reasonWaterTemp}
}

func evalActivityFit(in ruleInput) (int, []string) {
	matches := 0
	for _, act := range in.prefs.PreferredActivities {
		if in.loc.SupportsActivity(act) {
			matches++
		}
	}
	if matches == 0 {
		return 0, nil
	}

	delta := matches * in.weights.ActivityPerMatch
	if delta > in.weights.ActivityCap {
		delta = in.weights.ActivityCap
	}
	return delta, []string{reasonActivities}
}

func evalCrowdMatch(in ruleInput) (int, []string) {
	level, ok := in.loc.CrowdLevel()
	if !ok {
		return 0, nil
	}

	delta := crowdMatchTable[in.prefs.CrowdSensitivity][level]
	if delta > in.weights.CrowdReasonThreshold {
		return delta, []string{reasonCrowd}
	}
	return delta, nil
}

var companionTags = map[CompanionType][]location.Tag{
	CompanionFamily:  {location.TagFamily},
	CompanionCouple:  {location.TagRomantic, location.TagQuiet},
	CompanionFriends: {location.TagActivity, location.TagParty},
	CompanionGroup:   {location.TagActivity, location.TagParty},
	CompanionSolo:    {location.TagHealing, location.TagQuiet},
}

var companionReasons = map[CompanionType]string{
	CompanionFamily:  reasonFamilySpot,
	CompanionCouple:  reasonCoupleSpot,
	CompanionFriends: reasonFriendsSpot,
	CompanionGroup:   reasonFriendsSpot,
	CompanionSolo:    reasonSoloSpot,
}

func evalCompanion(in ruleInput) (int, []string) {
	for _, tag := range companionTags[in.prefs.CompanionType] {
		if in.loc.HasTag(tag) {
			return in.weights.Companion, []string{companionReasons[in.prefs.CompanionType]}
		}
	}
	return 0, nil
}

var timeOfDayTags = map[TimeOfDay][]location.Tag{
	TimeMorning: {location.TagSunrise, location.TagJogging},
	TimeEvening: {location.TagSunset, location.TagNightView},
	TimeNight:   {location.TagNightOpen, location.TagNightlife},
}

var timeOfDayReasons = map[TimeOfDay]string{
	TimeMorning: reasonMorningVisit,
	TimeEvening: reasonEveningVisit,
	TimeNight:   reasonNightVisit,
}

func evalPreferredTime(in ruleInput) (int, []string) {
	for _, tag := range timeOfDayTags[in.prefs.PreferredTime] {
		if in.loc.HasTag(tag) {
			return in.weights.PreferredTime, []string{timeOfDayReasons[in.prefs.PreferredTime]}
		}
	}
	return 0, nil
}

func evalBudget(in ruleInput) (int, []string) {
	fee := in.loc.AdmissionAdult()

	switch in.prefs.BudgetRange {
	case BudgetFree:
		if fee == 0 {
			return in.weights.BudgetFull, []string{reasonFreeEntry}
		}
	case BudgetBudget:
		if fee <= in.weights.BudgetCapKRW {
			return in.weights.BudgetFull, []string{reasonCheapEntry}
		}
	case BudgetModerate:
		if fee <= in.weights.BudgetModerateCapKRW {
			return in.weights.BudgetModerate, []string{reasonFairPrice}
		}
	case BudgetPremium:
		// Premium visitors are price-insensitive; the label only applies
		// to locations actually marketed as such.
		if in.loc.HasTag(location.TagLuxury) {
			return in.weights.BudgetFull, []string{reasonPremium}
		}
		return in.weights.BudgetFull, nil
	}
	return 0, nil
}

func evalSpecialNeeds(in ruleInput) (int, []string) {
	needs := in.prefs.SpecialNeeds
	if needs == nil {
		return 0, nil
	}

	delta := 0
	var reasons []string

	if needs.WheelchairAccess && in.loc.Accessibility.WheelchairAccessible {
		delta += in.weights.SpecialNeedMajor
		reasons = append(reasons, reasonWheelchair)
	}
	if needs.PetFriendly && in.loc.HasTag(location.TagPetOK) {
		delta += in.weights.SpecialNeedMinor
		reasons = append(reasons, reasonPetFriendly)
	}
	if needs.BabyFacilities && in.loc.HasTag(location.TagFamily) {
		delta += in.weights.SpecialNeedMinor
		reasons = append(reasons, reasonBabyFacilities)
	}
	if needs.SeniorFriendly && (in.loc.HasTag(location.TagQuiet) || in.loc.HasTag(location.TagRetreat)) {
		delta += in.weights.SpecialNeedMinor
		reasons = append(reasons, reasonSeniorFriendly)
	}

	if delta > in.weights.SpecialNeedsCap {
		delta = in.weights.SpecialNeedsCap
	}
	return delta, reasons
}

func evalRating(in ruleInput) (int, []string) {
	switch {
	case in.loc.Rating >= in.weights.RatingExcellentMin:
		return in.weights.RatingExcellent, []string{reasonHighRating}
	case in.loc.Rating >= in.weights.RatingGoodMin:
		return in.weights.RatingGood, []string{reasonGoodRating}
	}
	return 0, nil
}

var ageGroupTags = map[AgeGroup][]location.Tag{
	AgeTeens:       {location.TagYouthful, location.TagActive},
	AgeTwenties:    {location.TagYouthful, location.TagActive},
	AgeThirties:    {location.TagFamily, location.TagRelaxed},
	AgeForties:     {location.TagFamily, location.TagRelaxed},
	AgeFifties:     {location.TagQuiet, location.TagRetreat},
	AgeSixtiesPlus: {location.TagQuiet, location.TagRetreat},
}

func evalAgeGroup(in ruleInput) (int, []string) {
	for _, tag := range ageGroupTags[in.prefs.AgeGroup] {
		if in.loc.HasTag(tag) {
			return in.weights.AgeGroup, []string{reasonAgeGroupFit}
		}
	}
	return 0, nil
}

// Bucket is the coarse recommendation label derived from the score.
type Bucket string

const (
	HighlyRecommended Bucket = "highly_recommended"
	Recommended       Bucket = "recommended"
	Possible          Bucket = "possible"
	NotRecommended    Bucket = "not_recommended"
)

// BucketFor maps a match score to its recommendation bucket.
func BucketFor(score int) Bucket {
	switch {
	case score >= 80:
		return HighlyRecommended
	case score >= 60:
		return Recommended
	case score >= 40:
		return Possible
	default:
		return NotRecommended
	}
}
