package tracker

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/faltula/faltula/internal/constants"
	"github.com/faltula/faltula/internal/models"
	"github.com/faltula/faltula/internal/timetable"
)

// AddAbsence records a missed day and attributes one absence credit per
// scheduled class occurrence to each affected subject. Weekends, days with
// no classes, and dates that already carry an absence are rejected with no
// state change.
func (t *Tracker) AddAbsence(date string) (models.Absence, error) {
	day, err := timetable.ParseDate(date)
	if err != nil {
		return models.Absence{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", date, err)
	}
	canonical := day.Format(constants.DateFormat)

	weekday, teaching := timetable.ResolveWeekday(day)
	if !teaching {
		return models.Absence{}, ErrWeekend
	}
	for _, a := range t.snap.Absences {
		if a.Date == canonical {
			return models.Absence{}, ErrDuplicateDate
		}
	}

	slots := t.SlotsForDay(weekday)
	if len(slots) == 0 {
		return models.Absence{}, ErrNoClasses
	}

	// Group slots by subject, keeping first-encountered order.
	counts := make(map[string]int, len(slots))
	var order []string
	for _, s := range slots {
		if counts[s.SubjectID] == 0 {
			order = append(order, s.SubjectID)
		}
		counts[s.SubjectID]++
	}
	breakdown := make([]models.AbsenceSubject, 0, len(order))
	for _, id := range order {
		breakdown = append(breakdown, models.AbsenceSubject{SubjectID: id, ClassCount: counts[id]})
	}

	abs := models.Absence{
		ID:       uuid.New().String(),
		Date:     canonical,
		Subjects: breakdown,
	}
	t.snap.Absences = append(t.snap.Absences, abs)
	for _, e := range breakdown {
		t.applyDelta(e.SubjectID, e.ClassCount)
	}
	t.persist()
	return abs, nil
}

// RemoveAbsence deletes an absence record and reverses exactly the counter
// deltas it applied. Unknown ids are a no-op.
func (t *Tracker) RemoveAbsence(id string) bool {
	for i, a := range t.snap.Absences {
		if a.ID != id {
			continue
		}
		t.snap.Absences = append(t.snap.Absences[:i], t.snap.Absences[i+1:]...)
		for _, e := range a.Subjects {
			t.applyDelta(e.SubjectID, -e.ClassCount)
		}
		t.persist()
		return true
	}
	return false
}

// AbsenceByDate finds the recorded absence for a calendar date, if any.
func (t *Tracker) AbsenceByDate(date string) (models.Absence, bool) {
	for _, a := range t.snap.Absences {
		if a.Date == date {
			return a, true
		}
	}
	return models.Absence{}, false
}

// SubjectsOnDate previews which subjects an absence on the given date would
// touch, without recording anything. Weekends yield an empty preview.
// Orphaned schedule references are skipped.
func (t *Tracker) SubjectsOnDate(date string) ([]models.Subject, error) {
	day, err := timetable.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", date, err)
	}
	weekday, teaching := timetable.ResolveWeekday(day)
	if !teaching {
		return nil, nil
	}

	seen := make(map[string]bool)
	var subjects []models.Subject
	for _, s := range t.SlotsForDay(weekday) {
		if seen[s.SubjectID] {
			continue
		}
		seen[s.SubjectID] = true
		if sub, ok := t.Subject(s.SubjectID); ok {
			subjects = append(subjects, sub)
		}
	}
	return subjects, nil
}
