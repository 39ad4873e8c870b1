package profiles

import (
	"fmt"
	"time"

	"github.com/lifeos-app/lifeos/internal/cli"
)

type ProfileCmd struct {
	Show ProfileShowCmd `cmd:"" help:"Show your profile." default:"1"`
	Edit ProfileEditCmd `cmd:"" help:"Edit your profile."`
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	profile, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	fmt.Printf("Email:      %s\n", profile.Email)
	if profile.FullName != "" {
		fmt.Printf("Name:       %s\n", profile.FullName)
	}
	if profile.Goals != "" {
		fmt.Printf("Goals:      %s\n", profile.Goals)
	}
	if profile.Strengths != "" {
		fmt.Printf("Strengths:  %s\n", profile.Strengths)
	}
	if profile.Weaknesses != "" {
		fmt.Printf("Weaknesses: %s\n", profile.Weaknesses)
	}

	return nil
}

type ProfileEditCmd struct {
	Name       string `help:"Full name." optional:""`
	Goals      string `help:"What you're working toward." optional:""`
	Strengths  string `help:"Self-assessed strengths." optional:""`
	Weaknesses string `help:"Self-assessed weaknesses." optional:""`
}

func (c *ProfileEditCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	profile, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	if c.Name != "" {
		profile.FullName = c.Name
	}
	if c.Goals != "" {
		profile.Goals = c.Goals
	}
	if c.Strengths != "" {
		profile.Strengths = c.Strengths
	}
	if c.Weaknesses != "" {
		profile.Weaknesses = c.Weaknesses
	}
	profile.UpdatedAt = time.Now()

	if err := ctx.Store.SaveProfile(profile); err != nil {
		return err
	}

	fmt.Println("Profile updated.")
	return nil
}
