package schedule

import (
	"errors"
	"fmt"

	"github.com/faltula/faltula/internal/cli"
	"github.com/faltula/faltula/internal/timetable"
	"github.com/faltula/faltula/internal/tracker"
)

type ScheduleAddCmd struct {
	Subject string `arg:"" help:"Subject id or name."`
	Day     string `arg:"" help:"Teaching day (monday..friday or 0..4)."`
	Slot    int    `arg:"" help:"Time slot index (0..4)."`
}

func (c *ScheduleAddCmd) Validate() error {
	if !timetable.ValidTimeSlot(c.Slot) {
		return fmt.Errorf("time slot must be between 0 and %d", len(timetable.TimeWindows)-1)
	}
	return nil
}

func (c *ScheduleAddCmd) Run(ctx *cli.Context) error {
	t, err := ctx.Session()
	if err != nil {
		return err
	}

	day, err := cli.ParseDay(c.Day)
	if err != nil {
		return err
	}
	sub, err := cli.ResolveSubject(t, c.Subject)
	if err != nil {
		return err
	}

	if _, err := t.AddScheduleSlot(sub.ID, day, c.Slot); err != nil {
		switch {
		case errors.Is(err, tracker.ErrSlotOccupied):
			return fmt.Errorf("%s %s is already occupied", timetable.DayNames[day], timetable.TimeWindows[c.Slot])
		case errors.Is(err, tracker.ErrDailyLimit):
			return fmt.Errorf("%s already has two classes on %s", sub.Name, timetable.DayNames[day])
		default:
			return err
		}
	}

	fmt.Printf("Added class: %s on %s %s\n", sub.Name, timetable.DayNames[day], timetable.TimeWindows[c.Slot])
	return nil
}
