package absences

import (
	"fmt"
	"sort"
	"strings"

	"github.com/faltula/faltula/internal/cli"
)

type AbsenceListCmd struct{}

func (c *AbsenceListCmd) Run(ctx *cli.Context) error {
	t, err := ctx.Session()
	if err != nil {
		return err
	}

	absences := t.Absences()
	if len(absences) == 0 {
		fmt.Println("No absences recorded.")
		return nil
	}

	// Most recent first; the YYYY-MM-DD format sorts lexicographically.
	sort.Slice(absences, func(i, j int) bool {
		return absences[i].Date > absences[j].Date
	})

	for _, abs := range absences {
		var parts []string
		for _, entry := range abs.Subjects {
			sub, ok := t.Subject(entry.SubjectID)
			if !ok {
				continue // orphaned reference, subject was deleted
			}
			parts = append(parts, fmt.Sprintf("%s x%d", sub.Name, entry.ClassCount))
		}
		fmt.Printf("%s  %-36s  %s\n", abs.Date, abs.ID, strings.Join(parts, ", "))
	}
	return nil
}
