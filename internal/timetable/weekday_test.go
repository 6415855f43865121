package timetable

import (
	"testing"
	"time"
)

func TestResolveWeekday(t *testing.T) {
	// 2024-01-01 was a Monday.
	tests := []struct {
		date     string
		wantDay  int
		teaching bool
	}{
		{"2024-01-01", 0, true},  // Monday
		{"2024-01-02", 1, true},  // Tuesday
		{"2024-01-03", 2, true},  // Wednesday
		{"2024-01-04", 3, true},  // Thursday
		{"2024-01-05", 4, true},  // Friday
		{"2024-01-06", 0, false}, // Saturday
		{"2024-01-07", 0, false}, // Sunday
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			date, err := ParseDate(tt.date)
			if err != nil {
				t.Fatalf("ParseDate(%s) returned error: %v", tt.date, err)
			}
			day, teaching := ResolveWeekday(date)
			if teaching != tt.teaching {
				t.Errorf("ResolveWeekday(%s) teaching = %v, want %v", tt.date, teaching, tt.teaching)
			}
			if teaching && day != tt.wantDay {
				t.Errorf("ResolveWeekday(%s) = %d, want %d", tt.date, day, tt.wantDay)
			}
		})
	}
}

func TestResolveWeekdayIgnoresTimezone(t *testing.T) {
	// The same calendar date must resolve to the same teaching day no matter
	// which location constructed it.
	loc := time.FixedZone("UTC+13", 13*60*60)
	utc := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	shifted := time.Date(2024, 1, 5, 0, 0, 0, 0, loc)

	utcDay, _ := ResolveWeekday(utc)
	shiftedDay, _ := ResolveWeekday(shifted)
	if utcDay != shiftedDay {
		t.Errorf("weekday differs by construction zone: %d vs %d", utcDay, shiftedDay)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "2024-13-01", "01/02/2024", "yesterday"} {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) accepted invalid input", s)
		}
	}
}

func TestValidRanges(t *testing.T) {
	if ValidDay(-1) || ValidDay(NumDays) {
		t.Error("ValidDay accepted out-of-range index")
	}
	if !ValidDay(0) || !ValidDay(4) {
		t.Error("ValidDay rejected a teaching day")
	}
	if ValidTimeSlot(-1) || ValidTimeSlot(len(TimeWindows)) {
		t.Error("ValidTimeSlot accepted out-of-range index")
	}
	if !ValidTimeSlot(0) || !ValidTimeSlot(len(TimeWindows)-1) {
		t.Error("ValidTimeSlot rejected a valid window")
	}
}
