package location

import (
	"time"

	"github.com/beachmate/beachmate/internal/geo"
)

// beachDataset returns the bundled Busan beach data. RealTimeData
// timestamps are stamped at call time so responses look current.
func beachDataset() []WaterLocation {
	now := time.Now()

	return []WaterLocation{
		{
			ID:          "beach-1",
			Type:        TypeBeach,
			Name:        "해운대 해수욕장",
			NameEn:      "Haeundae Beach",
			Region:      "부산",
			District:    "해운대구",
			Address:     "부산광역시 해운대구 해운대해변로 264",
			Coordinates: geo.Coordinates{Latitude: 35.1587, Longitude: 129.1604},
			Description: "부산을 대표하는 해수욕장으로 백사장 길이 1.5km, 너비 30~50m의 넓은 백사장이 특징입니다.",
			Accessibility: Accessibility{
				ParkingAvailable:     true,
				PublicTransport:      true,
				WheelchairAccessible: true,
				NearestStation:       "해운대역",
				ParkingCapacity:      1000,
			},
			SafetyInfo: SafetyInfo{
				Lifeguard:        true,
				EmergencyContact: "119",
				Hazards:          []string{"이안류", "높은 파도"},
				SafetyEquipment:  []string{"구명조끼", "구명튜브", "AED"},
				Restrictions:     []string{"음주 수영 금지", "야간 수영 금지"},
			},
			OperatingInfo: OperatingInfo{
				OpenTime:  "09:00",
				CloseTime: "18:00",
				Season:    SeasonWindow{Start: "07-01", End: "08-31"},
				Admission: Admission{Free: true},
			},
			RealTimeData: &RealTimeData{
				LastUpdated:     now,
				CurrentVisitors: 2500,
				CrowdLevel:      CrowdMedium,
				Status:          StatusOpen,
			},
			Tags:    []Tag{TagFamily, TagSurfing, TagSunrise, TagFestival},
			Rating:  4.5,
			Reviews: 12853,
			BeachInfo: &BeachInfo{
				LengthM:  1500,
				WidthM:   40,
				SandType: "fine",
				Facilities: []Facility{
					{Type: "shower", Count: 50},
					{Type: "toilet", Count: 30},
					{Type: "changing_room", Count: 20, Fee: true},
					{Type: "shade", Count: 100, Fee: true},
					{Type: "rental", Location: "중앙부", Fee: true},
				},
				WaterQuality: WaterQuality{Grade: "excellent", PH: 8.1, DO: 8.5, Bacteria: 10},
			},
		},
		{
			ID:          "beach-2",
			Type:        TypeBeach,
			Name:        "광안리 해수욕장",
			NameEn:      "Gwangalli Beach",
			Region:      "부산",
			District:    "수영구",
			Address:     "부산광역시 수영구 광안해변로 219",
			Coordinates: geo.Coordinates{Latitude: 35.1531, Longitude: 129.1187},
			Description: "광안대교의 야경이 아름다운 도심 속 해수욕장입니다.",
			Accessibility: Accessibility{
				ParkingAvailable:     true,
				PublicTransport:      true,
				WheelchairAccessible: true,
				NearestStation:       "광안역",
				ParkingCapacity:      500,
			},
			SafetyInfo: SafetyInfo{
				Lifeguard:        true,
				EmergencyContact: "119",
				Hazards:          []string{"이안류"},
				SafetyEquipment:  []string{"구명조끼", "구명튜브", "AED"},
				Restrictions:     []string{"음주 수영 금지", "야간 수영 금지"},
			},
			OperatingInfo: OperatingInfo{
				OpenTime:  "09:00",
				CloseTime: "18:00",
				Season:    SeasonWindow{Start: "07-01", End: "08-31"},
				Admission: Admission{Free: true},
			},
			RealTimeData: &RealTimeData{
				LastUpdated:     now,
				CurrentVisitors: 1800,
				CrowdLevel:      CrowdMedium,
				Status:          StatusOpen,
			},
			Tags:    []Tag{TagNightView, TagCafe, TagRestaurant, TagFestival},
			Rating:  4.6,
			Reviews: 9847,
			BeachInfo: &BeachInfo{
				LengthM:  1400,
				WidthM:   25,
				SandType: "fine",
				Facilities: []Facility{
					{Type: "shower", Count: 40},
					{Type: "toilet", Count: 25},
					{Type: "changing_room", Count: 15, Fee: true},
				},
				WaterQuality: WaterQuality{Grade: "excellent", PH: 8.0, DO: 8.3, Bacteria: 15},
			},
		},
		{
			ID:          "beach-3",
			Type:        TypeBeach,
			Name:        "송정 해수욕장",
			NameEn:      "Songjeong Beach",
			Region:      "부산",
			District:    "해운대구",
			Address:     "부산광역시 해운대구 송정해변로 62",
			Coordinates: geo.Coordinates{Latitude: 35.1789, Longitude: 129.1997},
			Description: "서핑의 메카로 불리는 해수욕장으로 사계절 서퍼들이 찾는 명소입니다.",
			Accessibility: Accessibility{
				ParkingAvailable: true,
				PublicTransport:  true,
				NearestStation:   "송정역",
				ParkingCapacity:  200,
			},
			SafetyInfo: SafetyInfo{
				Lifeguard:        true,
				EmergencyContact: "119",
				Hazards:          []string{"높은 파도", "암초"},
				SafetyEquipment:  []string{"구명조끼", "구명튜브"},
				Restrictions:     []string{"초보자 서핑 제한 구역 있음"},
			},
			OperatingInfo: OperatingInfo{
				OpenTime:  "06:00",
				CloseTime: "20:00",
				Season:    SeasonWindow{Start: "06-01", End: "09-30"},
				Admission: Admission{Free: true},
			},
			RealTimeData: &RealTimeData{
				LastUpdated:     now,
				CurrentVisitors: 800,
				CrowdLevel:      CrowdLow,
				Status:          StatusOpen,
			},
			Tags:    []Tag{TagSurfing, TagSunrise, TagWalk, TagCafe},
			Rating:  4.7,
			Reviews: 5621,
			BeachInfo: &BeachInfo{
				LengthM:  1200,
				WidthM:   30,
				SandType: "coarse",
				Facilities: []Facility{
					{Type: "shower", Count: 20},
					{Type: "toilet", Count: 15},
					{Type: "rental", Location: "서핑샵 거리", Fee: true},
				},
				WaterQuality: WaterQuality{Grade: "good", PH: 8.2, DO: 8.0, Bacteria: 20},
			},
		},
	}
}
