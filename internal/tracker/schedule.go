package tracker

import (
	"github.com/google/uuid"

	"github.com/faltula/faltula/internal/models"
	"github.com/faltula/faltula/internal/timetable"
)

// AddScheduleSlot places a subject into a (day, timeSlot) cell of the weekly
// grid. It fails when the cell is already occupied or the subject already
// meets twice that day; on failure no slot is modified.
func (t *Tracker) AddScheduleSlot(subjectID string, day, timeSlot int) (models.ScheduleSlot, error) {
	if !timetable.ValidDay(day) {
		return models.ScheduleSlot{}, ErrInvalidDay
	}
	if !timetable.ValidTimeSlot(timeSlot) {
		return models.ScheduleSlot{}, ErrInvalidTimeSlot
	}
	if _, ok := t.Subject(subjectID); !ok {
		return models.ScheduleSlot{}, ErrSubjectNotFound
	}

	sameDay := 0
	for _, s := range t.snap.Schedule {
		if s.Day != day {
			continue
		}
		if s.TimeSlot == timeSlot {
			return models.ScheduleSlot{}, ErrSlotOccupied
		}
		if s.SubjectID == subjectID {
			sameDay++
		}
	}
	if sameDay >= 2 {
		return models.ScheduleSlot{}, ErrDailyLimit
	}

	slot := models.ScheduleSlot{
		ID:        uuid.New().String(),
		SubjectID: subjectID,
		Day:       day,
		TimeSlot:  timeSlot,
	}
	t.snap.Schedule = append(t.snap.Schedule, slot)
	t.persist()
	return slot, nil
}

// RemoveScheduleSlot deletes a slot by id. Unknown ids are a no-op. Past
// absence records keep their originally computed breakdown.
func (t *Tracker) RemoveScheduleSlot(id string) bool {
	for i, s := range t.snap.Schedule {
		if s.ID != id {
			continue
		}
		t.snap.Schedule = append(t.snap.Schedule[:i], t.snap.Schedule[i+1:]...)
		t.persist()
		return true
	}
	return false
}

// SlotsForDay returns every slot scheduled on the given teaching day.
func (t *Tracker) SlotsForDay(day int) []models.ScheduleSlot {
	var slots []models.ScheduleSlot
	for _, s := range t.snap.Schedule {
		if s.Day == day {
			slots = append(slots, s)
		}
	}
	return slots
}

// SlotAt returns the slot occupying a grid cell, if any.
func (t *Tracker) SlotAt(day, timeSlot int) (models.ScheduleSlot, bool) {
	for _, s := range t.snap.Schedule {
		if s.Day == day && s.TimeSlot == timeSlot {
			return s, true
		}
	}
	return models.ScheduleSlot{}, false
}

// removeSlotsForSubject drops every slot referencing a subject. Used on
// subject deletion; does not touch the absence ledger.
func (t *Tracker) removeSlotsForSubject(subjectID string) {
	kept := t.snap.Schedule[:0]
	for _, s := range t.snap.Schedule {
		if s.SubjectID != subjectID {
			kept = append(kept, s)
		}
	}
	t.snap.Schedule = kept
}
