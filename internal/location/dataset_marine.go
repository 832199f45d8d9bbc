package location

import (
	"time"

	"github.com/beachmate/beachmate/internal/geo"
)

// marineSportsDataset returns the bundled marine-sports spot data.
func marineSportsDataset() []WaterLocation {
	now := time.Now()

	return []WaterLocation{
		{
			ID:          "marine-1",
			Type:        TypeMarineSports,
			Name:        "송정 서핑 스팟",
			NameEn:      "Songjeong Surfing Spot",
			Region:      "부산",
			District:    "해운대구",
			Address:     "부산광역시 해운대구 송정해변로 62",
			Coordinates: geo.Coordinates{Latitude: 35.1789, Longitude: 129.1997},
			Description: "부산 최고의 서핑 명소로, 사계절 서핑이 가능하며 다양한 서핑샵과 강습 프로그램이 있습니다.",
			Accessibility: Accessibility{
				ParkingAvailable: true,
				PublicTransport:  true,
				NearestStation:   "송정역",
				ParkingCapacity:  200,
			},
			SafetyInfo: SafetyInfo{
				Lifeguard:        true,
				EmergencyContact: "119",
				Hazards:          []string{"강한 파도", "암초 지대", "해파리"},
				SafetyEquipment:  []string{"구명조끼 대여", "응급처치 키트"},
				Restrictions:     []string{"악천후 시 활동 금지", "초보자 구역 제한"},
			},
			OperatingInfo: OperatingInfo{
				Season:    SeasonWindow{Start: "01-01", End: "12-31"},
				Admission: Admission{Free: true},
			},
			RealTimeData: &RealTimeData{
				LastUpdated:     now,
				CurrentVisitors: 150,
				CrowdLevel:      CrowdMedium,
				Status:          StatusOpen,
				Alerts:          []string{"오늘 오후 파도 높이 증가 예상"},
			},
			Tags:    []Tag{TagSurfing, TagPaddleboard, TagSunrise, TagAllSeasons},
			Rating:  4.8,
			Reviews: 3421,
			SportsInfo: &SportsInfo{
				MainActivities: []SportActivity{
					{
						Type:       ActivitySurfing,
						Available:  true,
						Difficulty: "moderate",
						BestConditions: SportConditions{
							WaveHeight: &Range{Min: 0.5, Max: 3.0},
							WindSpeed:  &Range{Min: 5, Max: 20},
							WaterTemp:  &Range{Min: 10, Max: 28},
						},
					},
					{
						Type:       ActivityPaddleboard,
						Available:  true,
						Difficulty: "easy",
						BestConditions: SportConditions{
							WaveHeight: &Range{Min: 0, Max: 1.0},
							WindSpeed:  &Range{Min: 0, Max: 15},
							WaterTemp:  &Range{Min: 15, Max: 30},
						},
					},
					{
						Type:       ActivityKayaking,
						Available:  true,
						Difficulty: "easy",
						BestConditions: SportConditions{
							WaveHeight: &Range{Min: 0, Max: 1.5},
							WindSpeed:  &Range{Min: 0, Max: 20},
						},
					},
				},
				WaterDepth:  Range{Min: 1.5, Max: 5.0},
				BestSeason:  []string{"봄", "여름", "가을"},
				SuitableFor: []string{"beginner", "intermediate", "advanced"},
			},
		},
		{
			ID:          "marine-2",
			Type:        TypeMarineSports,
			Name:        "광안리 수상레저 센터",
			NameEn:      "Gwangalli Marine Sports Center",
			Region:      "부산",
			District:    "수영구",
			Address:     "부산광역시 수영구 광안해변로 219",
			Coordinates: geo.Coordinates{Latitude: 35.1531, Longitude: 129.1187},
			Description: "광안대교를 배경으로 제트스키, 바나나보트 등 다양한 수상 레저를 즐길 수 있는 센터입니다.",
			Accessibility: Accessibility{
				ParkingAvailable:     true,
				PublicTransport:      true,
				WheelchairAccessible: true,
				NearestStation:       "광안역",
				ParkingCapacity:      300,
			},
			SafetyInfo: SafetyInfo{
				Lifeguard:        true,
				EmergencyContact: "119",
				Hazards:          []string{"선박 통행 구역", "조류"},
				SafetyEquipment:  []string{"구명조끼 필수 착용", "무전기"},
				Restrictions:     []string{"음주 시 이용 불가", "12세 미만 보호자 동반"},
			},
			OperatingInfo: OperatingInfo{
				OpenTime:  "09:00",
				CloseTime: "18:00",
				Season:    SeasonWindow{Start: "05-01", End: "10-31"},
				Admission: Admission{Free: true},
			},
			RealTimeData: &RealTimeData{
				LastUpdated:     now,
				CurrentVisitors: 200,
				CrowdLevel:      CrowdHigh,
				Status:          StatusOpen,
			},
			Tags:    []Tag{TagJetski, TagBananaBoat, TagGwanganBridge, TagNightView},
			Rating:  4.5,
			Reviews: 2156,
			SportsInfo: &SportsInfo{
				MainActivities: []SportActivity{
					{
						Type:       ActivityJetski,
						Available:  true,
						Difficulty: "easy",
						BestConditions: SportConditions{
							WaveHeight:   &Range{Min: 0, Max: 1.5},
							WindSpeed:    &Range{Min: 0, Max: 20},
							VisibilityKm: 3,
						},
					},
					{
						Type:       ActivityKayaking,
						Available:  true,
						Difficulty: "easy",
						BestConditions: SportConditions{
							WaveHeight: &Range{Min: 0, Max: 1.0},
							WindSpeed:  &Range{Min: 0, Max: 15},
						},
					},
					{
						Type:       ActivityWindsurfing,
						Available:  true,
						Difficulty: "hard",
						BestConditions: SportConditions{
							WindSpeed:  &Range{Min: 10, Max: 25},
							WaveHeight: &Range{Min: 0.5, Max: 2.0},
						},
					},
				},
				WaterDepth:  Range{Min: 2.0, Max: 8.0},
				BestSeason:  []string{"여름", "가을"},
				SuitableFor: []string{"beginner", "intermediate"},
			},
		},
		{
			ID:          "marine-3",
			Type:        TypeMarineSports,
			Name:        "기장 스노클링 포인트",
			NameEn:      "Gijang Snorkeling Point",
			Region:      "부산",
			District:    "기장군",
			Address:     "부산광역시 기장군 기장읍 연화리",
			Coordinates: geo.Coordinates{Latitude: 35.2234, Longitude: 129.2134},
			Description: "맑은 물과 다양한 해양 생물을 관찰할 수 있는 스노클링 명소입니다.",
			Accessibility: Accessibility{
				ParkingAvailable: true,
				ParkingCapacity:  50,
			},
			SafetyInfo: SafetyInfo{
				EmergencyContact: "119",
				Hazards:          []string{"조류", "암초", "성게"},
				SafetyEquipment:  []string{"부표 설치"},
				Restrictions:     []string{"단독 입수 금지", "야간 활동 금지"},
			},
			OperatingInfo: OperatingInfo{
				OpenTime:  "08:00",
				CloseTime: "17:00",
				Season:    SeasonWindow{Start: "06-01", End: "09-30"},
				Admission: Admission{Adult: 10000, Child: 5000},
			},
			RealTimeData: &RealTimeData{
				LastUpdated:     now,
				CurrentVisitors: 30,
				CrowdLevel:      CrowdLow,
				Status:          StatusOpen,
			},
			Tags:    []Tag{TagSnorkeling, TagDiving, TagMarineLife, TagCleanWater},
			Rating:  4.6,
			Reviews: 876,
			SportsInfo: &SportsInfo{
				MainActivities: []SportActivity{
					{
						Type:       ActivitySnorkeling,
						Available:  true,
						Difficulty: "easy",
						BestConditions: SportConditions{
							VisibilityKm: 10,
							WaveHeight:   &Range{Min: 0, Max: 1.0},
							WaterTemp:    &Range{Min: 18, Max: 26},
						},
					},
					{
						Type:       ActivityDiving,
						Available:  true,
						Difficulty: "moderate",
						BestConditions: SportConditions{
							VisibilityKm: 15,
							WaveHeight:   &Range{Min: 0, Max: 1.5},
							WaterTemp:    &Range{Min: 16, Max: 26},
						},
					},
				},
				WaterDepth:  Range{Min: 2.0, Max: 15.0},
				BestSeason:  []string{"여름", "초가을"},
				SuitableFor: []string{"beginner", "intermediate", "advanced"},
			},
		},
	}
}
