package schedule

import (
	"fmt"

	"github.com/faltula/faltula/internal/cli"
	"github.com/faltula/faltula/internal/timetable"
)

type ScheduleRemoveCmd struct {
	Day  string `arg:"" help:"Teaching day (monday..friday or 0..4)."`
	Slot int    `arg:"" help:"Time slot index (0..4)."`
}

func (c *ScheduleRemoveCmd) Validate() error {
	if !timetable.ValidTimeSlot(c.Slot) {
		return fmt.Errorf("time slot must be between 0 and %d", len(timetable.TimeWindows)-1)
	}
	return nil
}

func (c *ScheduleRemoveCmd) Run(ctx *cli.Context) error {
	t, err := ctx.Session()
	if err != nil {
		return err
	}

	day, err := cli.ParseDay(c.Day)
	if err != nil {
		return err
	}

	slot, ok := t.SlotAt(day, c.Slot)
	if !ok {
		fmt.Printf("Nothing scheduled on %s %s\n", timetable.DayNames[day], timetable.TimeWindows[c.Slot])
		return nil
	}

	t.RemoveScheduleSlot(slot.ID)
	fmt.Printf("Removed class from %s %s\n", timetable.DayNames[day], timetable.TimeWindows[c.Slot])
	return nil
}
