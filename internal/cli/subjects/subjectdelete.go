package subjects

import (
	"fmt"

	"github.com/faltula/faltula/internal/cli"
)

type SubjectDeleteCmd struct {
	Subject string `arg:"" help:"Subject id or name."`
}

func (c *SubjectDeleteCmd) Run(ctx *cli.Context) error {
	t, err := ctx.Session()
	if err != nil {
		return err
	}

	sub, err := cli.ResolveSubject(t, c.Subject)
	if err != nil {
		return err
	}

	t.DeleteSubject(sub.ID)
	fmt.Printf("Deleted subject: %s (schedule slots removed, absence history kept)\n", sub.Name)
	return nil
}
