package cli

import (
	"context"

	"github.com/dmitrijs2005/eventdesk/internal/common"
	"github.com/dmitrijs2005/eventdesk/internal/models"
)

// Signup prompts for name, email and password (twice), validates the
// answers and creates the account. The new account is logged in.
func (a *App) Signup(ctx context.Context) error {
	var (
		f   models.SignupForm
		err error
	)
	if f.Name, err = a.text("Enter name"); err != nil {
		return err
	}
	if f.Email, err = a.text("Enter email"); err != nil {
		return err
	}
	pw, err := a.password("Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)
	confirm, err := a.password("Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	f.Password, f.ConfirmPassword = string(pw), string(confirm)
	if err := f.Validate(); err != nil {
		return err
	}

	u, err := a.auth.Signup(ctx, f.Email, pw, f.Name)
	if err != nil {
		return err
	}

	a.switchUser(ctx)
	a.printf("Welcome, %s! Your account has been created.\n", u.Name)
	return nil
}

// Login prompts for credentials and starts a session.
func (a *App) Login(ctx context.Context) error {
	var (
		f   models.LoginForm
		err error
	)
	if f.Email, err = a.text("Enter email"); err != nil {
		return err
	}
	pw, err := a.password("Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	f.Password = string(pw)
	if err := f.Validate(); err != nil {
		return err
	}

	u, err := a.auth.Login(ctx, f.Email, pw)
	if err != nil {
		return err
	}

	a.switchUser(ctx)
	a.printf("Welcome back, %s!\n", u.Name)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.switchUser(ctx)
	a.println("Logged out.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	u := a.auth.CurrentUser(ctx)
	if u == nil {
		return common.ErrNotAuthenticated
	}
	a.printf("%s <%s>, member since %s\n", u.Name, u.Email, formatDate(u.CreatedAt, a.loc))
	return nil
}
