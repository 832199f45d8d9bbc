package location

import (
	"time"

	"github.com/beachmate/beachmate/internal/geo"
)

// mudflatDataset returns the bundled mudflat data around the Nakdong
// estuary. The first entry carries today's tide day; the full 7-day
// schedule is attached on detail lookups.
func mudflatDataset() []WaterLocation {
	now := time.Now()

	return []WaterLocation{
		{
			ID:          "mudflat-1",
			Type:        TypeMudflat,
			Name:        "다대포 갯벌체험장",
			NameEn:      "Dadaepo Mudflat Experience Center",
			Region:      "부산",
			District:    "사하구",
			Address:     "부산광역시 사하구 다대동 몰운대1길",
			Coordinates: geo.Coordinates{Latitude: 35.0466, Longitude: 128.9654},
			Description: "낙동강 하구에 위치한 생태 갯벌로, 다양한 갯벌 생물을 관찰할 수 있는 체험장입니다.",
			Accessibility: Accessibility{
				ParkingAvailable:     true,
				PublicTransport:      true,
				WheelchairAccessible: true,
				NearestStation:       "다대포해수욕장역",
				ParkingCapacity:      200,
			},
			SafetyInfo: SafetyInfo{
				Lifeguard:        true,
				EmergencyContact: "119",
				Hazards:          []string{"조수 변화", "미끄러운 갯벌"},
				SafetyEquipment:  []string{"구명조끼", "안전화 대여"},
				Restrictions:     []string{"간조 시간에만 입장 가능"},
			},
			OperatingInfo: OperatingInfo{
				Season:    SeasonWindow{Start: "04-01", End: "10-31"},
				Admission: Admission{Adult: 5000, Child: 3000},
			},
			RealTimeData: &RealTimeData{
				LastUpdated:     now,
				CurrentVisitors: 120,
				CrowdLevel:      CrowdMedium,
				Status:          StatusOpen,
				Alerts:          []string{"오늘 14:00부터 만조로 갯벌 체험 종료"},
			},
			Tags:    []Tag{TagEcoExperience, TagEducation, TagFamily, TagClamDigging},
			Rating:  4.5,
			Reviews: 2341,
			MudflatInfo: &MudflatInfo{
				AreaSqm:         50000,
				MudType:         "mixed",
				TidalRangeM:     2.5,
				EcologicalGrade: "excellent",
				TideSchedule:    MockTideSchedule(now, 1),
				MarineLife: []MarineLife{
					{Species: "Mactra veneriformis", KoreanName: "동죽", Season: []string{"봄", "가을"}, Rarity: "common"},
					{Species: "Upogebia major", KoreanName: "쏙", Season: []string{"여름"}, Rarity: "common"},
					{Species: "Periophthalmus modestus", KoreanName: "짱뚱어", Season: []string{"여름", "가을"}, Rarity: "uncommon"},
					{Species: "Uca arcuata", KoreanName: "칠게", Season: []string{"여름"}, Rarity: "common"},
				},
				ExperiencePrograms: []ExperienceProgram{
					{
						ID:              "prog-1",
						Name:            "갯벌 생태 체험",
						DurationHours:   2,
						Price:           10000,
						MinAge:          5,
						MaxParticipants: 30,
						Includes:        []string{"전문 해설", "체험 도구", "장화 대여"},
						Schedule:        []string{"10:00", "14:00"},
						Reservation:     "recommended",
					},
					{
						ID:              "prog-2",
						Name:            "조개잡이 체험",
						DurationHours:   1.5,
						Price:           8000,
						MinAge:          7,
						MaxParticipants: 50,
						Includes:        []string{"바구니", "호미", "장갑"},
						Schedule:        []string{"간조 시간"},
						Reservation:     "not_needed",
					},
				},
			},
		},
		{
			ID:          "mudflat-2",
			Type:        TypeMudflat,
			Name:        "을숙도 생태공원 갯벌",
			NameEn:      "Eulsukdo Eco Park Mudflat",
			Region:      "부산",
			District:    "사하구",
			Address:     "부산광역시 사하구 낙동남로 1240",
			Coordinates: geo.Coordinates{Latitude: 35.1056, Longitude: 128.9456},
			Description: "낙동강 하구 철새도래지와 함께 있는 생태 갯벌로, 철새 관찰과 갯벌 체험을 동시에 즐길 수 있습니다.",
			Accessibility: Accessibility{
				ParkingAvailable:     true,
				PublicTransport:      true,
				WheelchairAccessible: true,
				NearestStation:       "하단역",
				ParkingCapacity:      150,
			},
			SafetyInfo: SafetyInfo{
				EmergencyContact: "119",
				Hazards:          []string{"조수 변화", "깊은 수로"},
				SafetyEquipment:  []string{"안전 안내판"},
				Restrictions:     []string{"지정 구역 외 출입 금지", "철새 보호 구역"},
			},
			OperatingInfo: OperatingInfo{
				Season:    SeasonWindow{Start: "03-01", End: "11-30"},
				Admission: Admission{Adult: 2000, Child: 1000},
			},
			RealTimeData: &RealTimeData{
				LastUpdated: now,
				CrowdLevel:  CrowdLow,
				Status:      StatusOpen,
			},
			Tags:    []Tag{TagMigratoryBird, TagEcoLearning, TagNakdongRiver, TagWetland},
			Rating:  4.6,
			Reviews: 1876,
			MudflatInfo: &MudflatInfo{
				AreaSqm:         80000,
				MudType:         "muddy",
				TidalRangeM:     2.0,
				EcologicalGrade: "excellent",
				MarineLife: []MarineLife{
					{Species: "Macrobrachium nipponense", KoreanName: "새우", Season: []string{"봄", "여름"}, Rarity: "common"},
					{Species: "Helice tridens", KoreanName: "방게", Season: []string{"여름", "가을"}, Rarity: "common"},
					{Species: "Bullacta exarata", KoreanName: "갯우렁이", Season: []string{"사계절"}, Rarity: "common"},
				},
				ExperiencePrograms: []ExperienceProgram{
					{
						ID:              "prog-3",
						Name:            "철새와 갯벌 생태 탐방",
						DurationHours:   3,
						Price:           15000,
						MinAge:          8,
						MaxParticipants: 20,
						Includes:        []string{"전문 해설사", "망원경 대여", "생태 지도"},
						Schedule:        []string{"09:00", "14:00"},
						Reservation:     "required",
					},
				},
			},
		},
		{
			ID:          "mudflat-3",
			Type:        TypeMudflat,
			Name:        "가덕도 갯벌",
			NameEn:      "Gadeokdo Mudflat",
			Region:      "부산",
			District:    "강서구",
			Address:     "부산광역시 강서구 가덕해안로",
			Coordinates: geo.Coordinates{Latitude: 35.0234, Longitude: 128.8234},
			Description: "가덕도 연안의 자연 갯벌로, 다양한 갯벌 생물과 아름다운 일몰을 감상할 수 있습니다.",
			Accessibility: Accessibility{
				ParkingAvailable: true,
				ParkingCapacity:  50,
			},
			SafetyInfo: SafetyInfo{
				EmergencyContact: "119",
				Hazards:          []string{"급격한 조수 변화", "깊은 갯골"},
				Restrictions:     []string{"야간 출입 금지"},
			},
			OperatingInfo: OperatingInfo{
				Season:    SeasonWindow{Start: "05-01", End: "09-30"},
				Admission: Admission{Free: true},
			},
			RealTimeData: &RealTimeData{
				LastUpdated: now,
				CrowdLevel:  CrowdLow,
				Status:      StatusOpen,
			},
			Tags:    []Tag{TagSunset, TagFishing, TagScenery, TagQuiet},
			Rating:  4.2,
			Reviews: 543,
			MudflatInfo: &MudflatInfo{
				AreaSqm:         30000,
				MudType:         "sandy",
				TidalRangeM:     3.0,
				EcologicalGrade: "good",
				MarineLife: []MarineLife{
					{Species: "Sinonovacula constricta", KoreanName: "맛조개", Season: []string{"봄", "여름"}, Rarity: "uncommon"},
					{Species: "Tegillarca granosa", KoreanName: "꼬막", Season: []string{"가을", "겨울"}, Rarity: "rare"},
				},
			},
		},
	}
}
