package location

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MockTideSchedule generates a tide prediction for days consecutive days
// starting at from. The tide times are fixed placeholders until the KHOA
// tide API is wired in; the best-visit window is derived from the main low
// tide.
func MockTideSchedule(from time.Time, days int) []TideDay {
	schedule := make([]TideDay, 0, days)

	for i := 0; i < days; i++ {
		date := from.AddDate(0, 0, i)
		day := TideDay{
			Date: date.Format("2006-01-02"),
			HighTide: []TidePoint{
				{Time: "06:30", HeightM: 7.2},
				{Time: "18:45", HeightM: 7.5},
			},
			LowTide: []TidePoint{
				{Time: "00:15", HeightM: 1.2},
				{Time: "12:30", HeightM: 0.8},
			},
		}
		day.BestVisitTime = BestVisitWindow(day)
		schedule = append(schedule, day)
	}

	return schedule
}

// BestVisitWindow returns the recommended visiting window for a tide day:
// one hour either side of the main low tide, clamped to the day.
func BestVisitWindow(day TideDay) string {
	if len(day.LowTide) == 0 {
		return "간조 시간 확인 필요"
	}

	hour, err := lowTideHour(day.LowTide[0].Time)
	if err != nil {
		return "간조 시간 확인 필요"
	}

	start := hour - 1
	if start < 0 {
		start = 0
	}
	end := hour + 1
	if end > 23 {
		end = 23
	}

	return fmt.Sprintf("%02d:00 ~ %02d:00", start, end)
}

func lowTideHour(hhmm string) (int, error) {
	h, _, ok := strings.Cut(hhmm, ":")
	if !ok {
		return 0, fmt.Errorf("malformed tide time %q", hhmm)
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("malformed tide time %q", hhmm)
	}
	return hour, nil
}
