package workday_test

import (
	"testing"
	"time"

	"go-leave/internal/workday"

	"github.com/stretchr/testify/assert"
)

func date(t *testing.T, v string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", v)
	assert.NoError(t, err)
	return d
}

func TestCount(t *testing.T) {
	tests := []struct {
		name            string
		start, end      string
		worksOnSaturday bool
		holidays        []string
		want            int
	}{
		{name: "monday to saturday without saturday work", start: "2026-03-02", end: "2026-03-07", want: 5},
		{name: "monday to saturday with saturday work", start: "2026-03-02", end: "2026-03-07", worksOnSaturday: true, want: 6},
		{name: "single working day", start: "2026-03-04", end: "2026-03-04", want: 1},
		{name: "single sunday", start: "2026-03-08", end: "2026-03-08", worksOnSaturday: true, want: 0},
		{name: "single saturday excluded", start: "2026-03-07", end: "2026-03-07", want: 0},
		{name: "holiday inside range", start: "2026-04-20", end: "2026-04-24", holidays: []string{"2026-04-23"}, want: 4},
		{name: "holiday on a sunday changes nothing", start: "2026-03-02", end: "2026-03-08", holidays: []string{"2026-03-08"}, want: 5},
		{name: "two full weeks", start: "2026-03-02", end: "2026-03-15", want: 10},
		{name: "start after end", start: "2026-03-05", end: "2026-03-02", want: 0},
		{name: "range spanning a year boundary", start: "2025-12-31", end: "2026-01-02", holidays: []string{"2026-01-01"}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hs []time.Time
			for _, h := range tt.holidays {
				hs = append(hs, date(t, h))
			}

			got := workday.Count(date(t, tt.start), date(t, tt.end), tt.worksOnSaturday, workday.NewHolidaySet(hs...))

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCount_IgnoresTimeOfDayAndZone(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	start := time.Date(2026, 3, 2, 23, 30, 0, 0, loc)
	end := time.Date(2026, 3, 6, 1, 0, 0, 0, loc)
	holidays := workday.NewHolidaySet(time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, 4, workday.Count(start, end, false, holidays))
}

func TestHolidaySet_NilIsEmpty(t *testing.T) {
	var set workday.HolidaySet
	assert.False(t, set.Contains(date(t, "2026-01-01")))
	assert.True(t, workday.IsWorkingDay(date(t, "2026-03-02"), false, nil))
}
