// Package workday counts billable leave days between two dates.
package workday

import "time"

const dateLayout = "2006-01-02"

// HolidaySet holds calendar dates, independent of time of day and zone.
type HolidaySet map[string]struct{}

func NewHolidaySet(dates ...time.Time) HolidaySet {
	set := make(HolidaySet, len(dates))
	for _, d := range dates {
		set[d.Format(dateLayout)] = struct{}{}
	}
	return set
}

func (s HolidaySet) Contains(d time.Time) bool {
	if s == nil {
		return false
	}
	_, ok := s[d.Format(dateLayout)]
	return ok
}

// IsWorkingDay reports whether d is billable for an employee with the given
// Saturday schedule.
func IsWorkingDay(d time.Time, worksOnSaturday bool, holidays HolidaySet) bool {
	switch d.Weekday() {
	case time.Sunday:
		return false
	case time.Saturday:
		if !worksOnSaturday {
			return false
		}
	}
	return !holidays.Contains(d)
}

// Count returns the number of working days in [start, end], both inclusive.
// A range with start after end counts zero.
func Count(start, end time.Time, worksOnSaturday bool, holidays HolidaySet) int {
	from := truncate(start)
	to := truncate(end)

	days := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if IsWorkingDay(d, worksOnSaturday, holidays) {
			days++
		}
	}
	return days
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
