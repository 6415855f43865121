package subjects

import (
	"fmt"

	"github.com/faltula/faltula/internal/cli"
)

type SubjectAddCmd struct {
	Name        string `arg:"" help:"Subject name."`
	Hours       int    `short:"H" help:"Weekly hours (informational)." default:"2"`
	MaxAbsences int    `short:"m" help:"Absence ceiling before the subject is failed." required:""`
}

func (c *SubjectAddCmd) Validate() error {
	if c.MaxAbsences <= 0 {
		return fmt.Errorf("max absences must be greater than zero")
	}
	if c.Hours < 0 {
		return fmt.Errorf("weekly hours cannot be negative")
	}
	return nil
}

func (c *SubjectAddCmd) Run(ctx *cli.Context) error {
	t, err := ctx.Session()
	if err != nil {
		return err
	}

	sub := t.AddSubject(c.Name, c.Hours, c.MaxAbsences)
	fmt.Printf("Added subject: %s (ID: %s, color: %s)\n", sub.Name, sub.ID, sub.Color)
	return nil
}
