package models

// AbsenceSubject is one line of an absence breakdown: how many class
// occurrences of a subject the missed day implied (1 or 2).
type AbsenceSubject struct {
	SubjectID  string `json:"subject_id"`
	ClassCount int    `json:"class_count"`
}

// Absence records one missed day. The breakdown is computed from the
// schedule at recording time and never changes afterwards, even if the
// schedule or the subject registry does; removal reverses exactly the
// counter deltas the record applied.
type Absence struct {
	ID   string `json:"id"`
	Date string `json:"date"` // YYYY-MM-DD
	// Subjects lists affected subjects in first-encountered schedule order.
	Subjects []AbsenceSubject `json:"subjects"`
}
