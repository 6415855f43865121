package tracker

import (
	"github.com/google/uuid"

	"github.com/faltula/faltula/internal/constants"
	"github.com/faltula/faltula/internal/models"
)

// SubjectUpdate carries the optional fields of a subject edit. Nil fields
// are left untouched. The absence counter is deliberately absent: it belongs
// to the ledger.
type SubjectUpdate struct {
	Name        *string
	WeeklyHours *int
	MaxAbsences *int
	Color       *string
}

// AddSubject registers a new subject with a zeroed absence counter. The
// color comes round-robin from the fixed palette, keyed off the registry
// size at creation time.
func (t *Tracker) AddSubject(name string, weeklyHours, maxAbsences int) models.Subject {
	sub := models.Subject{
		ID:          uuid.New().String(),
		Name:        name,
		WeeklyHours: weeklyHours,
		Color:       constants.SubjectPalette[len(t.snap.Subjects)%len(constants.SubjectPalette)],
		MaxAbsences: maxAbsences,
	}
	t.snap.Subjects = append(t.snap.Subjects, sub)
	t.persist()
	return sub
}

// UpdateSubject merges the provided fields into an existing subject.
func (t *Tracker) UpdateSubject(id string, upd SubjectUpdate) (models.Subject, error) {
	for i := range t.snap.Subjects {
		if t.snap.Subjects[i].ID != id {
			continue
		}
		s := &t.snap.Subjects[i]
		if upd.Name != nil {
			s.Name = *upd.Name
		}
		if upd.WeeklyHours != nil {
			s.WeeklyHours = *upd.WeeklyHours
		}
		if upd.MaxAbsences != nil {
			s.MaxAbsences = *upd.MaxAbsences
		}
		if upd.Color != nil {
			s.Color = *upd.Color
		}
		t.persist()
		return *s, nil
	}
	return models.Subject{}, ErrSubjectNotFound
}

// DeleteSubject removes a subject and every schedule slot referencing it.
// Recorded absences keep their historical breakdown; read paths tolerate the
// orphaned subject id. Returns false when no such subject exists.
func (t *Tracker) DeleteSubject(id string) bool {
	idx := -1
	for i, s := range t.snap.Subjects {
		if s.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	t.snap.Subjects = append(t.snap.Subjects[:idx], t.snap.Subjects[idx+1:]...)
	t.removeSlotsForSubject(id)
	t.persist()
	return true
}

// applyDelta adjusts a subject's absence counter, clamped at zero. Unknown
// ids (orphaned breakdown entries) are skipped.
func (t *Tracker) applyDelta(subjectID string, delta int) {
	for i := range t.snap.Subjects {
		if t.snap.Subjects[i].ID != subjectID {
			continue
		}
		n := t.snap.Subjects[i].CurrentAbsences + delta
		if n < 0 {
			n = 0
		}
		t.snap.Subjects[i].CurrentAbsences = n
		return
	}
}
