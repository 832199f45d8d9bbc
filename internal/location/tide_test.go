package location

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockTideSchedule(t *testing.T) {
	from := time.Date(2026, 8, 1, 9, 0, 0, 0, time.Local)

	schedule := MockTideSchedule(from, 7)
	require.Len(t, schedule, 7)

	assert.Equal(t, "2026-08-01", schedule[0].Date)
	assert.Equal(t, "2026-08-07", schedule[6].Date)

	for _, day := range schedule {
		assert.Len(t, day.HighTide, 2)
		assert.Len(t, day.LowTide, 2)
		assert.Equal(t, "11:00 ~ 13:00", day.BestVisitTime)
	}
}

func TestBestVisitWindow(t *testing.T) {
	tests := []struct {
		name string
		day  TideDay
		want string
	}{
		{
			name: "midday low tide",
			day:  TideDay{LowTide: []TidePoint{{Time: "12:30", HeightM: 0.8}}},
			want: "11:00 ~ 13:00",
		},
		{
			name: "clamped at start of day",
			day:  TideDay{LowTide: []TidePoint{{Time: "00:15", HeightM: 1.2}}},
			want: "00:00 ~ 01:00",
		},
		{
			name: "clamped at end of day",
			day:  TideDay{LowTide: []TidePoint{{Time: "23:40", HeightM: 1.0}}},
			want: "22:00 ~ 23:00",
		},
		{
			name: "no low tide data",
			day:  TideDay{},
			want: "간조 시간 확인 필요",
		},
		{
			name: "malformed time",
			day:  TideDay{LowTide: []TidePoint{{Time: "noon"}}},
			want: "간조 시간 확인 필요",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BestVisitWindow(tt.day))
		})
	}
}
