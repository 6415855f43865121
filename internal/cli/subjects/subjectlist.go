package subjects

import (
	"fmt"

	"github.com/faltula/faltula/internal/cli"
)

type SubjectListCmd struct{}

func (c *SubjectListCmd) Run(ctx *cli.Context) error {
	t, err := ctx.Session()
	if err != nil {
		return err
	}

	subs := t.Subjects()
	if len(subs) == 0 {
		fmt.Println("No subjects yet. Add one with 'faltula subject add <name> -m <max absences>'.")
		return nil
	}

	for _, sub := range subs {
		fmt.Printf("%-36s  %-20s  %dh/week  absences %s\n", sub.ID, sub.Name, sub.WeeklyHours, cli.FormatStatus(sub))
	}
	return nil
}
