package location

import (
	"time"

	"github.com/beachmate/beachmate/internal/geo"
)

// valleyDataset returns the bundled valley data for the Busan and
// Gyeongnam area.
func valleyDataset() []WaterLocation {
	now := time.Now()

	return []WaterLocation{
		{
			ID:          "valley-1",
			Type:        TypeValley,
			Name:        "내원사 계곡",
			NameEn:      "Naewonsa Valley",
			Region:      "경남",
			District:    "양산시",
			Address:     "경상남도 양산시 하북면 용연리",
			Coordinates: geo.Coordinates{Latitude: 35.3721, Longitude: 129.0324},
			Description: "영남알프스 자락에 위치한 맑고 깨끗한 계곡으로, 여름철 피서지로 인기가 높습니다.",
			Accessibility: Accessibility{
				ParkingAvailable: true,
				ParkingCapacity:  50,
			},
			SafetyInfo: SafetyInfo{
				EmergencyContact: "119",
				Hazards:          []string{"미끄러운 바위", "급류", "깊은 웅덩이"},
				SafetyEquipment:  []string{"구명튜브 대여 가능"},
				Restrictions:     []string{"우천시 입장 제한", "캠핑 금지"},
			},
			OperatingInfo: OperatingInfo{
				Season:    SeasonWindow{Start: "06-01", End: "09-30"},
				Admission: Admission{Adult: 3000, Child: 1500},
			},
			RealTimeData: &RealTimeData{
				LastUpdated: now,
				CrowdLevel:  CrowdLow,
				Status:      StatusOpen,
			},
			Tags:    []Tag{TagTrekking, TagWaterPlay, TagPhotoSpot, TagScenery},
			Rating:  4.4,
			Reviews: 892,
			ValleyInfo: &ValleyInfo{
				WaterSource:   "천성산",
				LengthKm:      3.5,
				AverageDepthM: 0.8,
				MaxDepthM:     2.5,
				RockFormation: true,
				Waterfall:     true,
				WaterCondition: WaterCondition{
					Quality:     WaterQuality{Grade: "excellent", PH: 7.2, DO: 9.5, Bacteria: 5},
					Temperature: 18,
					FlowRate:    "moderate",
					Clarity:     "clear",
				},
			},
		},
		{
			ID:          "valley-2",
			Type:        TypeValley,
			Name:        "홍룡폭포 계곡",
			NameEn:      "Hongryong Waterfall Valley",
			Region:      "경남",
			District:    "양산시",
			Address:     "경상남도 양산시 상북면 홍룡리",
			Coordinates: geo.Coordinates{Latitude: 35.4102, Longitude: 128.9876},
			Description: "홍룡폭포를 중심으로 형성된 계곡으로, 수심이 얕아 가족 단위 물놀이에 적합합니다.",
			Accessibility: Accessibility{
				ParkingAvailable: true,
				PublicTransport:  true,
				NearestStation:   "양산역",
				ParkingCapacity:  100,
			},
			SafetyInfo: SafetyInfo{
				EmergencyContact: "119",
				Hazards:          []string{"폭포 주변 위험", "미끄러운 바위"},
				Restrictions:     []string{"폭포 아래 수영 금지"},
			},
			OperatingInfo: OperatingInfo{
				Season:    SeasonWindow{Start: "05-01", End: "10-31"},
				Admission: Admission{Adult: 2000, Child: 1000},
			},
			RealTimeData: &RealTimeData{
				LastUpdated:     now,
				CurrentVisitors: 150,
				CrowdLevel:      CrowdMedium,
				Status:          StatusOpen,
			},
			Tags:    []Tag{TagWaterfall, TagFamily, TagPicnic, TagHiking},
			Rating:  4.6,
			Reviews: 1243,
			ValleyInfo: &ValleyInfo{
				WaterSource:   "천성산",
				LengthKm:      2.0,
				AverageDepthM: 0.5,
				MaxDepthM:     1.5,
				RockFormation: true,
				Waterfall:     true,
				WaterCondition: WaterCondition{
					Quality:     WaterQuality{Grade: "good", PH: 7.5, DO: 9.0, Bacteria: 10},
					Temperature: 19,
					FlowRate:    "slow",
					Clarity:     "clear",
				},
			},
		},
		{
			ID:          "valley-3",
			Type:        TypeValley,
			Name:        "장안사 계곡",
			NameEn:      "Jangansa Valley",
			Region:      "부산",
			District:    "기장군",
			Address:     "부산광역시 기장군 장안읍 장안리",
			Coordinates: geo.Coordinates{Latitude: 35.3456, Longitude: 129.2345},
			Description: "불광산 자락의 맑은 계곡으로, 장안사와 함께 둘러보기 좋은 명소입니다.",
			Accessibility: Accessibility{
				ParkingAvailable: true,
				ParkingCapacity:  30,
			},
			SafetyInfo: SafetyInfo{
				EmergencyContact: "119",
				Hazards:          []string{"깊은 웅덩이", "급경사"},
				Restrictions:     []string{"음주 금지", "취사 금지"},
			},
			OperatingInfo: OperatingInfo{
				Season:    SeasonWindow{Start: "06-15", End: "08-31"},
				Admission: Admission{Free: true},
			},
			RealTimeData: &RealTimeData{
				LastUpdated: now,
				CrowdLevel:  CrowdLow,
				Status:      StatusOpen,
				Alerts:      []string{"최근 비로 인해 수위가 높습니다"},
			},
			Tags:    []Tag{TagTemple, TagMeditation, TagTrekking, TagNature},
			Rating:  4.3,
			Reviews: 567,
			ValleyInfo: &ValleyInfo{
				WaterSource:   "불광산",
				LengthKm:      1.5,
				AverageDepthM: 0.6,
				MaxDepthM:     1.8,
				RockFormation: true,
				WaterCondition: WaterCondition{
					Quality:     WaterQuality{Grade: "excellent", PH: 7.0, DO: 9.8, Bacteria: 3},
					Temperature: 17,
					FlowRate:    "moderate",
					Clarity:     "clear",
				},
			},
		},
	}
}
