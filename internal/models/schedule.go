package models

// ScheduleSlot assigns a subject to one (day, time slot) cell of the weekly
// grid. Day runs Monday=0 through Friday=4; TimeSlot indexes the fixed list
// of daily time windows.
type ScheduleSlot struct {
	ID        string `json:"id"`
	SubjectID string `json:"subject_id"`
	Day       int    `json:"day"`
	TimeSlot  int    `json:"time_slot"`
}
