package tracker

import (
	"errors"
	"testing"
)

func TestAddScheduleSlotRejectsOccupiedCell(t *testing.T) {
	tr, _ := newTestTracker(t)
	a := tr.AddSubject("A", 2, 10)
	b := tr.AddSubject("B", 2, 10)

	first := mustAddSlot(t, tr, a.ID, 0, 0)

	if _, err := tr.AddScheduleSlot(b.ID, 0, 0); !errors.Is(err, ErrSlotOccupied) {
		t.Errorf("second slot in same cell: error = %v, want ErrSlotOccupied", err)
	}

	slots := tr.Schedule()
	if len(slots) != 1 || slots[0].ID != first.ID || slots[0].SubjectID != a.ID {
		t.Error("rejected insertion modified the existing slot")
	}
}

func TestAddScheduleSlotEnforcesDailyLimit(t *testing.T) {
	tr, _ := newTestTracker(t)
	a := tr.AddSubject("A", 2, 10)

	mustAddSlot(t, tr, a.ID, 0, 0)
	mustAddSlot(t, tr, a.ID, 0, 1)

	if _, err := tr.AddScheduleSlot(a.ID, 0, 2); !errors.Is(err, ErrDailyLimit) {
		t.Errorf("third slot same day: error = %v, want ErrDailyLimit", err)
	}

	// A different day is unaffected.
	mustAddSlot(t, tr, a.ID, 1, 2)
}

func TestAddScheduleSlotValidation(t *testing.T) {
	tr, _ := newTestTracker(t)
	a := tr.AddSubject("A", 2, 10)

	if _, err := tr.AddScheduleSlot(a.ID, 5, 0); !errors.Is(err, ErrInvalidDay) {
		t.Errorf("day 5: error = %v, want ErrInvalidDay", err)
	}
	if _, err := tr.AddScheduleSlot(a.ID, 0, 9); !errors.Is(err, ErrInvalidTimeSlot) {
		t.Errorf("slot 9: error = %v, want ErrInvalidTimeSlot", err)
	}
	if _, err := tr.AddScheduleSlot("missing", 0, 0); !errors.Is(err, ErrSubjectNotFound) {
		t.Errorf("unknown subject: error = %v, want ErrSubjectNotFound", err)
	}
}

func TestRemoveScheduleSlot(t *testing.T) {
	tr, _ := newTestTracker(t)
	a := tr.AddSubject("A", 2, 10)
	slot := mustAddSlot(t, tr, a.ID, 3, 2)

	if !tr.RemoveScheduleSlot(slot.ID) {
		t.Fatal("RemoveScheduleSlot() = false for existing slot")
	}
	if tr.RemoveScheduleSlot(slot.ID) {
		t.Error("RemoveScheduleSlot() = true for missing slot")
	}
	if len(tr.Schedule()) != 0 {
		t.Error("slot still present after removal")
	}
}

func TestRemoveScheduleSlotKeepsAbsenceHistory(t *testing.T) {
	tr, _ := newTestTracker(t)
	a := tr.AddSubject("A", 2, 10)
	slot := mustAddSlot(t, tr, a.ID, 0, 0)

	abs, err := tr.AddAbsence("2024-01-01") // Monday
	if err != nil {
		t.Fatal(err)
	}

	tr.RemoveScheduleSlot(slot.ID)

	got, ok := tr.AbsenceByDate("2024-01-01")
	if !ok {
		t.Fatal("absence vanished after schedule change")
	}
	if len(got.Subjects) != 1 || got.Subjects[0].ClassCount != 1 {
		t.Errorf("breakdown changed retroactively: %+v", got.Subjects)
	}
	if got.ID != abs.ID {
		t.Error("absence identity changed")
	}
}

func TestSlotsForDayAndSlotAt(t *testing.T) {
	tr, _ := newTestTracker(t)
	a := tr.AddSubject("A", 2, 10)
	b := tr.AddSubject("B", 2, 10)
	mustAddSlot(t, tr, a.ID, 0, 0)
	mustAddSlot(t, tr, b.ID, 0, 2)
	mustAddSlot(t, tr, a.ID, 1, 0)

	if got := tr.SlotsForDay(0); len(got) != 2 {
		t.Errorf("SlotsForDay(0) returned %d slots, want 2", len(got))
	}
	if got := tr.SlotsForDay(4); len(got) != 0 {
		t.Errorf("SlotsForDay(4) returned %d slots, want 0", len(got))
	}

	if slot, ok := tr.SlotAt(0, 2); !ok || slot.SubjectID != b.ID {
		t.Errorf("SlotAt(0, 2) = %+v ok=%v, want subject B", slot, ok)
	}
	if _, ok := tr.SlotAt(0, 1); ok {
		t.Error("SlotAt(0, 1) found a slot in an empty cell")
	}
}
