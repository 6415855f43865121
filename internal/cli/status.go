package cli

import (
	"fmt"

	"github.com/faltula/faltula/internal/models"
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	t, err := ctx.Session()
	if err != nil {
		return err
	}

	subs := t.Subjects()
	if len(subs) == 0 {
		fmt.Println("No subjects yet. Add one with 'faltula subject add <name> -m <max absences>'.")
		return nil
	}

	var atRisk []models.Subject
	for _, sub := range subs {
		fmt.Printf("%-20s  %s\n", sub.Name, FormatStatus(sub))
		if sub.Status() != models.StatusOK {
			atRisk = append(atRisk, sub)
		}
	}

	if len(atRisk) > 0 {
		fmt.Println()
		fmt.Println("At risk:")
		for _, sub := range atRisk {
			switch sub.Status() {
			case models.StatusFailed:
				fmt.Printf("  %s: failed by absences\n", sub.Name)
			case models.StatusDanger:
				fmt.Printf("  %s: at %.0f%% of the limit\n", sub.Name, sub.AbsencePercent())
			default:
				fmt.Printf("  %s: approaching the limit (%.0f%%)\n", sub.Name, sub.AbsencePercent())
			}
		}
	}
	return nil
}
