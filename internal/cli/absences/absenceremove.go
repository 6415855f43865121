package absences

import (
	"fmt"

	"github.com/faltula/faltula/internal/cli"
	"github.com/faltula/faltula/internal/timetable"
)

type AbsenceRemoveCmd struct {
	Ref string `arg:"" help:"Absence id or date (YYYY-MM-DD)."`
}

func (c *AbsenceRemoveCmd) Run(ctx *cli.Context) error {
	t, err := ctx.Session()
	if err != nil {
		return err
	}

	id := c.Ref
	if _, err := timetable.ParseDate(c.Ref); err == nil {
		abs, ok := t.AbsenceByDate(c.Ref)
		if !ok {
			fmt.Printf("No absence recorded for %s\n", c.Ref)
			return nil
		}
		id = abs.ID
	}

	if !t.RemoveAbsence(id) {
		fmt.Printf("No absence with id %s\n", id)
		return nil
	}

	fmt.Println("Absence removed, subject counters restored.")
	return nil
}
