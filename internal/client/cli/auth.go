package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/careerpath/internal/client/models"
	"github.com/dmitrijs2005/careerpath/internal/client/ui"
	"github.com/dmitrijs2005/careerpath/internal/common"
)

var errMissingFields = errors.New("missing fields")

// Register prompts for the new account and submits it. On success the
// login page opens.
func (a *App) Register(ctx context.Context) error {
	a.goTo(ctx, ui.RouteRegister)

	name, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer clear(password)

	goal, err := getSimpleText(a.reader, fmt.Sprintf("Enter career goal (blank for %s)", common.DefaultCareerGoal), a.out)
	if err != nil {
		return err
	}

	if name == "" || email == "" || len(password) == 0 {
		a.Alert(ui.MsgFillAllFields)
		return errMissingFields
	}

	err = a.auth.Register(ctx, models.NewUser{
		Name:       name,
		Email:      email,
		Password:   string(password),
		CareerGoal: goal,
	})
	a.settle(ctx)
	return err
}

// Login prompts for credentials. On success the dashboard opens; failures
// have already been alerted by the auth service.
func (a *App) Login(ctx context.Context) error {
	a.goTo(ctx, ui.RouteLogin)

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer clear(password)

	if email == "" || len(password) == 0 {
		a.Alert(ui.MsgFillAllFields)
		return errMissingFields
	}

	_, err = a.auth.Login(ctx, models.Credentials{Email: email, Password: string(password)})
	a.settle(ctx)
	return err
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.shell.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	a.settle(ctx)
	return nil
}
