package models

// SubjectStatus classifies how close a subject is to its absence ceiling.
type SubjectStatus string

const (
	StatusOK      SubjectStatus = "ok"
	StatusWarning SubjectStatus = "warning"
	StatusDanger  SubjectStatus = "danger"
	StatusFailed  SubjectStatus = "failed"
)

type Subject struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	WeeklyHours int    `json:"weekly_hours"`
	Color       string `json:"color"`
	// MaxAbsences is the ceiling of absence credits before the subject is
	// considered failed.
	MaxAbsences int `json:"max_absences"`
	// CurrentAbsences is derived state: it always equals the sum of class
	// counts over all absence records referencing this subject. Only the
	// absence ledger writes it.
	CurrentAbsences int `json:"current_absences"`
}

// AbsencePercent returns the used share of the absence ceiling, in percent.
func (s Subject) AbsencePercent() float64 {
	if s.MaxAbsences <= 0 {
		if s.CurrentAbsences > 0 {
			return 100
		}
		return 0
	}
	return float64(s.CurrentAbsences) / float64(s.MaxAbsences) * 100
}

// Status derives the subject's standing from its absence percentage.
func (s Subject) Status() SubjectStatus {
	switch p := s.AbsencePercent(); {
	case p >= 100:
		return StatusFailed
	case p >= 90:
		return StatusDanger
	case p >= 75:
		return StatusWarning
	default:
		return StatusOK
	}
}
