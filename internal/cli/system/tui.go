package system

import (
	"github.com/faltula/faltula/internal/cli"
	"github.com/faltula/faltula/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	t, err := ctx.Session()
	if err != nil {
		return err
	}

	p, _, err := ctx.Profiles.Current()
	if err != nil {
		return err
	}

	return tui.Run(t, p.Name)
}
