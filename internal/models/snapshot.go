package models

// Snapshot is the full persisted state of one profile. The three collections
// are always saved and loaded together, as a single atomic value.
type Snapshot struct {
	Subjects []Subject      `json:"subjects"`
	Schedule []ScheduleSlot `json:"schedule"`
	Absences []Absence      `json:"absences"`
}

// EmptySnapshot returns a snapshot with empty (non-nil) collections.
func EmptySnapshot() Snapshot {
	return Snapshot{
		Subjects: []Subject{},
		Schedule: []ScheduleSlot{},
		Absences: []Absence{},
	}
}
