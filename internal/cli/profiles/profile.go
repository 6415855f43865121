package profiles

import (
	"fmt"

	"github.com/faltula/faltula/internal/cli"
)

type ProfileCmd struct {
	Create  ProfileCreateCmd  `cmd:"" help:"Create a new profile."`
	Use     ProfileUseCmd     `cmd:"" help:"Switch the active profile."`
	List    ProfileListCmd    `cmd:"" help:"List all profiles."`
	Current ProfileCurrentCmd `cmd:"" help:"Show the active profile."`
}

type ProfileCreateCmd struct {
	Name string `arg:"" help:"Profile name."`
}

func (c *ProfileCreateCmd) Run(ctx *cli.Context) error {
	p, err := ctx.Profiles.Create(c.Name)
	if err != nil {
		return err
	}
	fmt.Printf("Created profile: %s (ID: %s)\n", p.Name, p.ID)
	return nil
}

type ProfileUseCmd struct {
	Name string `arg:"" help:"Profile name."`
}

func (c *ProfileUseCmd) Run(ctx *cli.Context) error {
	p, err := ctx.Profiles.Use(c.Name)
	if err != nil {
		return err
	}
	fmt.Printf("Switched to profile: %s\n", p.Name)
	return nil
}

type ProfileListCmd struct{}

func (c *ProfileListCmd) Run(ctx *cli.Context) error {
	list, err := ctx.Profiles.List()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("No profiles yet. Create one with 'faltula profile create <name>'.")
		return nil
	}

	active, _, err := ctx.Profiles.Current()
	if err != nil {
		return err
	}
	for _, p := range list {
		marker := " "
		if p.ID == active.ID {
			marker = "*"
		}
		fmt.Printf("%s %-20s %s\n", marker, p.Name, p.ID)
	}
	return nil
}

type ProfileCurrentCmd struct{}

func (c *ProfileCurrentCmd) Run(ctx *cli.Context) error {
	p, ok, err := ctx.Profiles.Current()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("No active profile.")
		return nil
	}
	fmt.Printf("%s (ID: %s)\n", p.Name, p.ID)
	return nil
}
