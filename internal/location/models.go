// Package location defines the water-activity location model, the four
// per-type dataset adapters, and the aggregating repository. All data is
// served from the bundled Busan-region datasets unless an upstream endpoint
// is configured per type.
package location

import (
	"fmt"
	"math"
	"time"

	"github.com/beachmate/beachmate/internal/geo"
)

// Type classifies a water-activity location.
type Type string

const (
	TypeBeach        Type = "beach"
	TypeValley       Type = "valley"
	TypeMudflat      Type = "mudflat"
	TypeMarineSports Type = "marine_sports"
)

// AllTypes returns every location type in canonical order. Aggregated
// listings concatenate per-type results in this order.
func AllTypes() []Type {
	return []Type{TypeBeach, TypeValley, TypeMudflat, TypeMarineSports}
}

// ParseType validates a location type string.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeBeach, TypeValley, TypeMudflat, TypeMarineSports:
		return Type(s), nil
	}
	return "", fmt.Errorf("unknown location type %q", s)
}

// CrowdLevel is the observed busyness of a location.
type CrowdLevel string

const (
	CrowdLow    CrowdLevel = "low"
	CrowdMedium CrowdLevel = "medium"
	CrowdHigh   CrowdLevel = "high"
)

// Status is the operational state of a location.
type Status string

const (
	StatusOpen    Status = "open"
	StatusClosed  Status = "closed"
	StatusWarning Status = "warning"
)

// Tag is one label from the closed matching vocabulary. Preference rules
// match against these constants, never against free text.
type Tag string

const (
	TagFamily        Tag = "가족"
	TagSurfing       Tag = "서핑"
	TagSunrise       Tag = "일출"
	TagSunset        Tag = "일몰"
	TagFestival      Tag = "축제"
	TagNightView     Tag = "야경"
	TagCafe          Tag = "카페"
	TagRestaurant    Tag = "레스토랑"
	TagWalk          Tag = "산책"
	TagTrekking      Tag = "트레킹"
	TagWaterPlay     Tag = "물놀이"
	TagPhotoSpot     Tag = "사진촬영"
	TagScenery       Tag = "자연경관"
	TagWaterfall     Tag = "폭포"
	TagPicnic        Tag = "피크닉"
	TagHiking        Tag = "등산"
	TagTemple        Tag = "사찰"
	TagMeditation    Tag = "명상"
	TagNature        Tag = "자연"
	TagEcoExperience Tag = "생태체험"
	TagEducation     Tag = "교육"
	TagClamDigging   Tag = "조개잡이"
	TagMigratoryBird Tag = "철새"
	TagEcoLearning   Tag = "생태학습"
	TagNakdongRiver  Tag = "낙동강"
	TagWetland       Tag = "습지"
	TagFishing       Tag = "낚시"
	TagQuiet         Tag = "조용"
	TagPaddleboard   Tag = "SUP"
	TagAllSeasons    Tag = "사계절"
	TagJetski        Tag = "제트스키"
	TagBananaBoat    Tag = "바나나보트"
	TagGwanganBridge Tag = "광안대교"
	TagSnorkeling    Tag = "스노클링"
	TagDiving        Tag = "다이빙"
	TagMarineLife    Tag = "해양생물"
	TagCleanWater    Tag = "청정해역"

	// Matching-only tags referenced by preference rules. No bundled
	// location carries them today; real datasets may.
	TagRomantic  Tag = "로맨틱"
	TagActivity  Tag = "액티비티"
	TagParty     Tag = "파티"
	TagHealing   Tag = "힐링"
	TagNightOpen Tag = "야간개장"
	TagNightlife Tag = "나이트"
	TagJogging   Tag = "조깅"
	TagYouthful  Tag = "젊음"
	TagActive    Tag = "액티브"
	TagRelaxed   Tag = "편안"
	TagRetreat   Tag = "휴양"
	TagLuxury    Tag = "럭셔리"
	TagPetOK     Tag = "반려동물"
)

// Activity is one concrete thing a visitor can do at a location.
type Activity string

const (
	ActivitySwimming    Activity = "swimming"
	ActivitySurfing     Activity = "surfing"
	ActivityVolleyball  Activity = "volleyball"
	ActivityCamping     Activity = "camping"
	ActivityFishing     Activity = "fishing"
	ActivityKayaking    Activity = "kayaking"
	ActivitySnorkeling  Activity = "snorkeling"
	ActivityPaddleboard Activity = "paddleboard"
	ActivityJetski      Activity = "jetski"
	ActivityDiving      Activity = "diving"
	ActivityWindsurfing Activity = "windsurfing"
)

// AllActivities returns every known activity.
func AllActivities() []Activity {
	return []Activity{
		ActivitySwimming, ActivitySurfing, ActivityVolleyball, ActivityCamping,
		ActivityFishing, ActivityKayaking, ActivitySnorkeling, ActivityPaddleboard,
		ActivityJetski, ActivityDiving, ActivityWindsurfing,
	}
}

// implicitActivities are assumed available per location type even when the
// location's tags do not spell them out.
var implicitActivities = map[Type][]Activity{
	TypeBeach:        {ActivitySwimming, ActivitySurfing, ActivityVolleyball},
	TypeValley:       {ActivityCamping, ActivityFishing},
	TypeMarineSports: {ActivitySurfing, ActivityKayaking, ActivitySnorkeling},
}

// activityTags maps activities to the tag a location would carry for them.
var activityTags = map[Activity]Tag{
	ActivitySwimming:    TagWaterPlay,
	ActivitySurfing:     TagSurfing,
	ActivityFishing:     TagFishing,
	ActivitySnorkeling:  TagSnorkeling,
	ActivityDiving:      TagDiving,
	ActivityJetski:      TagJetski,
	ActivityPaddleboard: TagPaddleboard,
}

// Accessibility describes how reachable a location is.
type Accessibility struct {
	ParkingAvailable     bool   `json:"parkingAvailable"`
	PublicTransport      bool   `json:"publicTransport"`
	WheelchairAccessible bool   `json:"wheelchairAccessible"`
	NearestStation       string `json:"nearestStation,omitempty"`
	ParkingCapacity      int    `json:"parkingCapacity,omitempty"`
}

// SafetyInfo lists hazards and available safety provisions.
type SafetyInfo struct {
	Lifeguard        bool     `json:"lifeguard"`
	EmergencyContact string   `json:"emergencyContact"`
	Hazards          []string `json:"hazards,omitempty"`
	SafetyEquipment  []string `json:"safetyEquipment,omitempty"`
	Restrictions     []string `json:"restrictions,omitempty"`
}

// SeasonWindow is a yearly operating window as MM-DD bounds.
type SeasonWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Admission is the entry fee schedule in KRW.
type Admission struct {
	Adult int  `json:"adult"`
	Child int  `json:"child"`
	Free  bool `json:"free"`
}

// OperatingInfo describes when a location can be visited and what it costs.
type OperatingInfo struct {
	OpenTime  string       `json:"openTime,omitempty"`
	CloseTime string       `json:"closeTime,omitempty"`
	Season    SeasonWindow `json:"season"`
	Admission Admission    `json:"admission"`
}

// RealTimeData is the last observed live state of a location.
type RealTimeData struct {
	LastUpdated     time.Time  `json:"lastUpdated"`
	CurrentVisitors int        `json:"currentVisitors,omitempty"`
	CrowdLevel      CrowdLevel `json:"crowdLevel"`
	Status          Status     `json:"status"`
	Alerts          []string   `json:"alerts,omitempty"`
}

// WaterQuality is a measured water condition sample.
type WaterQuality struct {
	Grade    string  `json:"grade"`
	PH       float64 `json:"ph"`
	DO       float64 `json:"do"`
	Bacteria int     `json:"bacteria"`
}

// Facility is one on-site amenity.
type Facility struct {
	Type     string `json:"type"`
	Count    int    `json:"count,omitempty"`
	Location string `json:"location,omitempty"`
	Fee      bool   `json:"fee"`
}

// BeachInfo carries beach-specific payload.
type BeachInfo struct {
	LengthM      int          `json:"length"`
	WidthM       int          `json:"width"`
	SandType     string       `json:"sandType"`
	Facilities   []Facility   `json:"facilities,omitempty"`
	WaterQuality WaterQuality `json:"waterQuality"`
}

// WaterCondition describes valley water at the last sample.
type WaterCondition struct {
	Quality     WaterQuality `json:"quality"`
	Temperature int          `json:"temperature"`
	FlowRate    string       `json:"flowRate"`
	Clarity     string       `json:"clarity"`
}

// ValleyInfo carries valley-specific payload.
type ValleyInfo struct {
	WaterSource    string         `json:"waterSource"`
	LengthKm       float64        `json:"length"`
	AverageDepthM  float64        `json:"averageDepth"`
	MaxDepthM      float64        `json:"maxDepth"`
	RockFormation  bool           `json:"rockFormation"`
	Waterfall      bool           `json:"waterfall"`
	CampingAllowed bool           `json:"campingAllowed"`
	WaterCondition WaterCondition `json:"waterCondition"`
}

// TidePoint is a single high or low tide event.
type TidePoint struct {
	Time    string  `json:"time"`
	HeightM float64 `json:"height"`
}

// TideDay is one day of tide predictions.
type TideDay struct {
	Date          string      `json:"date"`
	HighTide      []TidePoint `json:"highTide"`
	LowTide       []TidePoint `json:"lowTide"`
	BestVisitTime string      `json:"bestVisitTime,omitempty"`
}

// MarineLife is one species observable on a mudflat.
type MarineLife struct {
	Species    string   `json:"species"`
	KoreanName string   `json:"koreanName"`
	Season     []string `json:"season,omitempty"`
	Rarity     string   `json:"rarity"`
}

// ExperienceProgram is a guided mudflat program.
type ExperienceProgram struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	DurationHours   float64  `json:"duration"`
	Price           int      `json:"price"`
	MinAge          int      `json:"minAge"`
	MaxParticipants int      `json:"maxParticipants"`
	Includes        []string `json:"includes,omitempty"`
	Schedule        []string `json:"schedule,omitempty"`
	Reservation     string   `json:"reservation"`
}

// MudflatInfo carries mudflat-specific payload.
type MudflatInfo struct {
	AreaSqm            int                 `json:"area"`
	MudType            string              `json:"mudType"`
	TidalRangeM        float64             `json:"tidalRange"`
	EcologicalGrade    string              `json:"ecologicalGrade"`
	TideSchedule       []TideDay           `json:"tideSchedule,omitempty"`
	MarineLife         []MarineLife        `json:"marineLife,omitempty"`
	ExperiencePrograms []ExperienceProgram `json:"experiencePrograms,omitempty"`
}

// Range is an inclusive numeric band.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v falls inside the band.
func (r *Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// SportConditions are the weather bands under which a sport activity is
// worth doing. Nil fields mean the condition does not apply.
type SportConditions struct {
	WaveHeight   *Range  `json:"waveHeight,omitempty"`
	WindSpeed    *Range  `json:"windSpeed,omitempty"`
	VisibilityKm float64 `json:"visibility,omitempty"`
	WaterTemp    *Range  `json:"waterTemp,omitempty"`
}

// SportActivity is one bookable activity at a marine-sports site.
type SportActivity struct {
	Type           Activity        `json:"type"`
	Available      bool            `json:"available"`
	Difficulty     string          `json:"difficulty,omitempty"`
	BestConditions SportConditions `json:"bestConditions"`
}

// Conditions is an observed weather sample used for suitability checks.
type Conditions struct {
	WaveHeightM  float64
	WindSpeedMs  float64
	VisibilityKm float64
	WaterTempC   float64
}

// SuitableIn evaluates the activity against observed conditions. The
// returned reasons name each failed condition in Korean, matching the
// presentation copy.
func (a *SportActivity) SuitableIn(obs Conditions) (bool, []string) {
	var reasons []string

	if r := a.BestConditions.WaveHeight; r != nil && !r.Contains(obs.WaveHeightM) {
		reasons = append(reasons, "파고 조건 부적합")
	}
	if r := a.BestConditions.WindSpeed; r != nil && !r.Contains(obs.WindSpeedMs) {
		reasons = append(reasons, "풍속 조건 부적합")
	}
	if min := a.BestConditions.VisibilityKm; min > 0 && obs.VisibilityKm < min {
		reasons = append(reasons, "시야 불량")
	}
	if r := a.BestConditions.WaterTemp; r != nil && !r.Contains(obs.WaterTempC) {
		reasons = append(reasons, "수온 부적합")
	}

	return len(reasons) == 0, reasons
}

// SportsInfo carries marine-sports-specific payload.
type SportsInfo struct {
	MainActivities []SportActivity `json:"mainActivities"`
	WaterDepth     Range           `json:"waterDepth"`
	BestSeason     []string        `json:"bestSeason,omitempty"`
	SuitableFor    []string        `json:"suitableFor,omitempty"`
}

// WaterLocation is a point of interest of one of the four activity types.
// Exactly one of the type-specific payload pointers is set, matching Type.
type WaterLocation struct {
	ID          string          `json:"id"`
	Type        Type            `json:"type"`
	Name        string          `json:"name"`
	NameEn      string          `json:"nameEn,omitempty"`
	Region      string          `json:"region"`
	District    string          `json:"district"`
	Address     string          `json:"address"`
	Coordinates geo.Coordinates `json:"coordinates"`
	Description string          `json:"description,omitempty"`

	Accessibility Accessibility `json:"accessibility"`
	SafetyInfo    SafetyInfo    `json:"safetyInfo"`
	OperatingInfo OperatingInfo `json:"operatingInfo"`
	RealTimeData  *RealTimeData `json:"realTimeData,omitempty"`

	Tags    []Tag   `json:"tags"`
	Rating  float64 `json:"rating,omitempty"`
	Reviews int     `json:"reviews,omitempty"`

	BeachInfo   *BeachInfo   `json:"beachInfo,omitempty"`
	ValleyInfo  *ValleyInfo  `json:"valleyInfo,omitempty"`
	MudflatInfo *MudflatInfo `json:"mudflatInfo,omitempty"`
	SportsInfo  *SportsInfo  `json:"sportsInfo,omitempty"`
}

// HasTag reports whether the location carries the tag.
func (l *WaterLocation) HasTag(tag Tag) bool {
	for _, t := range l.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// CrowdLevel returns the observed crowd level, or false when no live data
// is available.
func (l *WaterLocation) CrowdLevel() (CrowdLevel, bool) {
	if l.RealTimeData == nil || l.RealTimeData.CrowdLevel == "" {
		return "", false
	}
	return l.RealTimeData.CrowdLevel, true
}

// AdmissionAdult returns the adult entry fee in KRW; zero for free entry.
func (l *WaterLocation) AdmissionAdult() int {
	if l.OperatingInfo.Admission.Free {
		return 0
	}
	return l.OperatingInfo.Admission.Adult
}

// SupportsActivity reports whether the activity is plausible here, via the
// per-type implicit sets or an explicit tag.
func (l *WaterLocation) SupportsActivity(act Activity) bool {
	for _, a := range implicitActivities[l.Type] {
		if a == act {
			return true
		}
	}
	if tag, ok := activityTags[act]; ok && l.HasTag(tag) {
		return true
	}
	return false
}

// PopularityScore weighs the rating by review volume. Unrated locations
// score zero.
func (l *WaterLocation) PopularityScore() float64 {
	if l.Rating <= 0 {
		return 0
	}
	return l.Rating * math.Log10(float64(l.Reviews)+1)
}
