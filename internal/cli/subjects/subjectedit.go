package subjects

import (
	"fmt"

	"github.com/faltula/faltula/internal/cli"
	"github.com/faltula/faltula/internal/tracker"
)

type SubjectEditCmd struct {
	Subject     string  `arg:"" help:"Subject id or name."`
	Name        *string `help:"New name."`
	Hours       *int    `short:"H" help:"New weekly hours."`
	MaxAbsences *int    `short:"m" help:"New absence ceiling."`
	Color       *string `help:"New display color (hex)."`
}

func (c *SubjectEditCmd) Validate() error {
	if c.Name == nil && c.Hours == nil && c.MaxAbsences == nil && c.Color == nil {
		return fmt.Errorf("nothing to change, pass at least one of --name, --hours, --max-absences, --color")
	}
	if c.MaxAbsences != nil && *c.MaxAbsences <= 0 {
		return fmt.Errorf("max absences must be greater than zero")
	}
	if c.Hours != nil && *c.Hours < 0 {
		return fmt.Errorf("weekly hours cannot be negative")
	}
	return nil
}

func (c *SubjectEditCmd) Run(ctx *cli.Context) error {
	t, err := ctx.Session()
	if err != nil {
		return err
	}

	sub, err := cli.ResolveSubject(t, c.Subject)
	if err != nil {
		return err
	}

	updated, err := t.UpdateSubject(sub.ID, tracker.SubjectUpdate{
		Name:        c.Name,
		WeeklyHours: c.Hours,
		MaxAbsences: c.MaxAbsences,
		Color:       c.Color,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Updated subject: %s, absences %s\n", updated.Name, cli.FormatStatus(updated))
	return nil
}
