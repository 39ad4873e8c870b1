package sessions

import (
	"fmt"

	"github.com/lifeos-app/lifeos/internal/cli"
	"github.com/lifeos-app/lifeos/internal/session"
)

type LoginCmd struct {
	Email string `arg:"" help:"Email address identifying your local profile."`
}

func (c *LoginCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	profile, err := session.Login(ctx.Store, c.Email)
	if err != nil {
		return err
	}

	fmt.Printf("Logged in as %s\n", profile.Email)
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *cli.Context) error {
	if err := session.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	profile, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", profile.Email, profile.UserID)
	if profile.FullName != "" {
		fmt.Printf("Name: %s\n", profile.FullName)
	}
	return nil
}
