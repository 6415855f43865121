package tracker

import (
	"errors"
	"fmt"
	"slices"

	"github.com/faltula/faltula/internal/logger"
	"github.com/faltula/faltula/internal/models"
	"github.com/faltula/faltula/internal/storage"
)

var (
	ErrWeekend         = errors.New("no classes on weekends")
	ErrNoClasses       = errors.New("no classes scheduled on this day")
	ErrDuplicateDate   = errors.New("an absence is already recorded for this date")
	ErrSlotOccupied    = errors.New("time slot is already occupied")
	ErrDailyLimit      = errors.New("subject already has two classes on this day")
	ErrSubjectNotFound = errors.New("subject not found")
	ErrInvalidDay      = errors.New("day must be between 0 (Monday) and 4 (Friday)")
	ErrInvalidTimeSlot = errors.New("time slot index out of range")
)

// Tracker owns the in-memory state of one profile: the subject registry, the
// weekly schedule, and the absence ledger. All mutation goes through its
// methods, which keep the derived absence counters consistent with the
// ledger and write the snapshot back to storage after each change.
type Tracker struct {
	store   storage.Provider
	profile string
	snap    models.Snapshot
}

// New loads the profile's snapshot from the store and binds a session to it.
func New(store storage.Provider, profileID string) (*Tracker, error) {
	snap, err := store.Load(profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	return &Tracker{store: store, profile: profileID, snap: snap}, nil
}

// Subjects returns a copy of the subject registry in creation order.
func (t *Tracker) Subjects() []models.Subject {
	return slices.Clone(t.snap.Subjects)
}

// Schedule returns a copy of all schedule slots.
func (t *Tracker) Schedule() []models.ScheduleSlot {
	return slices.Clone(t.snap.Schedule)
}

// Absences returns a copy of the absence ledger in insertion order.
func (t *Tracker) Absences() []models.Absence {
	return slices.Clone(t.snap.Absences)
}

// Subject looks up a subject by id.
func (t *Tracker) Subject(id string) (models.Subject, bool) {
	for _, s := range t.snap.Subjects {
		if s.ID == id {
			return s, true
		}
	}
	return models.Subject{}, false
}

// persist writes the snapshot after a mutation. Storage failures are logged
// and do not roll back the in-memory change: the session stays usable and
// the next successful save catches up.
func (t *Tracker) persist() {
	if err := t.store.Save(t.profile, t.snap); err != nil {
		logger.Warn("failed to persist snapshot", "profile", t.profile, "error", err)
	}
}
