package timetable

import (
	"time"

	"github.com/faltula/faltula/internal/constants"
)

// NumDays is the number of teaching days in a week (Monday through Friday).
const NumDays = 5

// DayNames maps a teaching-day index to its display name.
var DayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// TimeWindows is the fixed ordered list of daily class periods. Every
// teaching day uses the same list; a ScheduleSlot's TimeSlot indexes it.
var TimeWindows = []string{
	"08:00-09:00",
	"09:00-10:00",
	"10:00-11:00",
	"14:00-15:00",
	"15:00-16:00",
}

// ResolveWeekday maps a calendar date to its teaching-day index (Monday=0
// through Friday=4). The second return is false for weekends.
func ResolveWeekday(date time.Time) (int, bool) {
	switch wd := date.Weekday(); wd {
	case time.Saturday, time.Sunday:
		return 0, false
	default:
		return int(wd) - 1, true
	}
}

// ParseDate parses a YYYY-MM-DD string as a plain calendar date. The result
// is pinned to midnight UTC so weekday resolution cannot shift with the
// system timezone.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(constants.DateFormat, s)
}

// ValidDay reports whether day is a teaching-day index.
func ValidDay(day int) bool {
	return day >= 0 && day < NumDays
}

// ValidTimeSlot reports whether slot indexes one of the daily time windows.
func ValidTimeSlot(slot int) bool {
	return slot >= 0 && slot < len(TimeWindows)
}
