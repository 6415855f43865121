package absences

import (
	"fmt"
	"time"

	"github.com/faltula/faltula/internal/cli"
	"github.com/faltula/faltula/internal/constants"
	"github.com/faltula/faltula/internal/timetable"
)

type AbsenceAddCmd struct {
	Date   string `arg:"" optional:"" help:"Date of the missed day (YYYY-MM-DD). Defaults to today."`
	DryRun bool   `help:"Only show which subjects the date would affect."`
}

func (c *AbsenceAddCmd) Validate() error {
	if c.Date == "" {
		return nil
	}
	if _, err := timetable.ParseDate(c.Date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", c.Date)
	}
	return nil
}

func (c *AbsenceAddCmd) Run(ctx *cli.Context) error {
	t, err := ctx.Session()
	if err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		date = time.Now().Format(constants.DateFormat)
	}

	if c.DryRun {
		subs, err := t.SubjectsOnDate(date)
		if err != nil {
			return err
		}
		if len(subs) == 0 {
			fmt.Printf("No classes scheduled on %s\n", date)
			return nil
		}
		fmt.Printf("An absence on %s would affect:\n", date)
		for _, sub := range subs {
			fmt.Printf("  %s\n", sub.Name)
		}
		return nil
	}

	abs, err := t.AddAbsence(date)
	if err != nil {
		return err
	}

	fmt.Printf("Recorded absence for %s:\n", abs.Date)
	for _, entry := range abs.Subjects {
		name := entry.SubjectID
		if sub, ok := t.Subject(entry.SubjectID); ok {
			name = sub.Name
		}
		classes := "class"
		if entry.ClassCount > 1 {
			classes = "classes"
		}
		fmt.Printf("  %s: %d %s\n", name, entry.ClassCount, classes)
	}
	return nil
}
