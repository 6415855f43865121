package schedule

import (
	"fmt"
	"strings"

	"github.com/faltula/faltula/internal/cli"
	"github.com/faltula/faltula/internal/timetable"
)

type ScheduleShowCmd struct{}

func (c *ScheduleShowCmd) Run(ctx *cli.Context) error {
	t, err := ctx.Session()
	if err != nil {
		return err
	}

	const cell = 14

	header := fmt.Sprintf("%-13s", "")
	for _, name := range timetable.DayNames {
		header += fmt.Sprintf("%-*s", cell, name)
	}
	fmt.Println(header)
	fmt.Println(strings.Repeat("-", len(header)))

	for slotIdx, window := range timetable.TimeWindows {
		row := fmt.Sprintf("%-13s", window)
		for day := 0; day < timetable.NumDays; day++ {
			label := "-"
			if slot, ok := t.SlotAt(day, slotIdx); ok {
				// Orphaned slots are possible only transiently; show the id
				// prefix if the subject is gone.
				if sub, found := t.Subject(slot.SubjectID); found {
					label = sub.Name
				} else {
					label = "?"
				}
				if len(label) > cell-2 {
					label = label[:cell-2]
				}
			}
			row += fmt.Sprintf("%-*s", cell, label)
		}
		fmt.Println(row)
	}

	return nil
}
