// Package services holds client-side flows that span the remote API, the
// session store and navigation.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/careerpath/internal/client/client"
	"github.com/dmitrijs2005/careerpath/internal/client/models"
	"github.com/dmitrijs2005/careerpath/internal/client/session"
	"github.com/dmitrijs2005/careerpath/internal/client/ui"
	"github.com/dmitrijs2005/careerpath/internal/common"
	"github.com/dmitrijs2005/careerpath/internal/logging"
)

const (
	msgLoginOK      = "Login successful!"
	msgLoginFailed  = "Login failed"
	msgRegisterOK   = "Registered successfully!"
	msgRegisterFail = "Registration failed"
)

// AuthService signs users in and out.
//
// Login and Register report every outcome to the user through the Alerter
// and also return it, so callers can branch without parsing alert text.
// A rejected attempt wraps client.ErrRejected; an unreachable backend wraps
// client.ErrUnavailable.
type AuthService struct {
	api     client.API
	session *session.Store
	nav     ui.Navigator
	alerts  ui.Alerter
	log     logging.Logger
}

func NewAuthService(api client.API, store *session.Store, nav ui.Navigator, alerts ui.Alerter, log logging.Logger) *AuthService {
	return &AuthService{api: api, session: store, nav: nav, alerts: alerts, log: log}
}

// Login posts the credentials. On 2xx the returned user becomes the session
// and the dashboard opens.
func (a *AuthService) Login(ctx context.Context, creds models.Credentials) (models.SessionUser, error) {
	resp, err := a.api.Login(ctx, creds)
	if err != nil {
		a.alerts.Alert(msgLoginFailed + ". " + ui.MsgBackendDown)
		return models.SessionUser{}, fmt.Errorf("login: %w", err)
	}

	if !resp.OK() {
		a.alerts.Alert(msgLoginFailed + ": " + resp.Text())
		return models.SessionUser{}, rejected("login", resp)
	}

	user, err := resp.DecodeUser()
	if err != nil {
		a.log.Warn(ctx, "login response unreadable", "error", err)
		a.alerts.Alert(msgLoginFailed + ". " + ui.MsgBackendDown)
		return models.SessionUser{}, &client.RequestError{Op: "login", Kind: client.KindDecode, StatusCode: resp.StatusCode, Err: err}
	}

	su := user.Session()
	if err := a.session.Set(ctx, su); err != nil {
		a.alerts.Alert(msgLoginFailed + ": " + err.Error())
		return models.SessionUser{}, err
	}

	a.log.Info(ctx, "signed in", "user_id", su.ID)
	a.alerts.Alert(msgLoginOK)
	a.nav.Navigate(ui.RouteDashboard)
	return su, nil
}

// Register creates the account and sends the user to the login page. A
// blank career goal is replaced with the default one.
func (a *AuthService) Register(ctx context.Context, u models.NewUser) error {
	if u.CareerGoal == "" {
		u.CareerGoal = common.DefaultCareerGoal
	}

	resp, err := a.api.Register(ctx, u)
	if err != nil {
		a.alerts.Alert(msgRegisterFail + ". " + ui.MsgBackendDown)
		return fmt.Errorf("register: %w", err)
	}
	if !resp.OK() {
		a.alerts.Alert(msgRegisterFail + ": " + resp.Text())
		return rejected("register", resp)
	}

	a.alerts.Alert(msgRegisterOK)
	a.nav.Navigate(ui.RouteLogin)
	return nil
}

// Logout forgets the session and returns to the home page.
func (a *AuthService) Logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		return err
	}
	a.nav.Navigate(ui.RouteHome)
	return nil
}

// Current returns the signed-in user, if any. An unreadable session counts
// as signed out.
func (a *AuthService) Current(ctx context.Context) (*models.SessionUser, bool) {
	d := a.session.Get(ctx)
	if d.State == session.Invalid {
		a.log.Warn(ctx, "ignoring stored session", "reason", d.Reason)
	}
	return d.Current()
}

func (a *AuthService) Ping(ctx context.Context) error {
	return a.api.Ping(ctx)
}

func rejected(op string, resp *client.Response) error {
	return &client.RequestError{Op: op, Kind: client.KindRejected, StatusCode: resp.StatusCode, Body: resp.Text()}
}
