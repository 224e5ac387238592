package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/careerpath/internal/client/client"
	"github.com/dmitrijs2005/careerpath/internal/client/config"
	"github.com/dmitrijs2005/careerpath/internal/client/services"
	"github.com/dmitrijs2005/careerpath/internal/client/session"
	"github.com/dmitrijs2005/careerpath/internal/client/ui"
	"github.com/dmitrijs2005/careerpath/internal/client/views"
	"github.com/dmitrijs2005/careerpath/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// pingTimeout bounds a single health check of the watcher.
const pingTimeout = 3 * time.Second

// maxRedirects stops a route that keeps navigating elsewhere on mount.
const maxRedirects = 4

// page is a view that loads when its route opens.
type page interface {
	Mount(ctx context.Context) error
	Unmount()
}

type App struct {
	config *config.Config
	log    logging.Logger
	auth   *services.AuthService

	shell     *views.Shell
	dashboard *views.Dashboard
	skills    *views.Skills
	roadmap   *views.Roadmap
	settings  *views.Settings
	jobs      *views.Jobs

	reader *bufio.Reader
	out    io.Writer

	mu      sync.Mutex
	mode    Mode
	route   ui.Route
	pending bool
	open    page
}

// NewApp wires the views to api and store. The App itself serves as the
// navigator, the alerter and the confirmer of every view.
func NewApp(c *config.Config, api client.API, store *session.Store, log logging.Logger, in io.Reader, out io.Writer) *App {
	a := &App{
		config: c,
		log:    log,
		reader: bufio.NewReader(in),
		out:    out,
		route:  ui.RouteHome,
		jobs:   views.NewJobs(),
	}

	a.auth = services.NewAuthService(api, store, a, a, log)

	vc := views.Context{
		Session: store,
		API:     api,
		Auth:    a.auth,
		Nav:     a,
		Alerts:  a,
		Confirm: a,
		Log:     log,
	}
	a.shell = views.NewShell(vc)
	a.dashboard = views.NewDashboard(vc)
	a.skills = views.NewSkills(vc)
	a.roadmap = views.NewRoadmap(vc)
	a.settings = views.NewSettings(vc)

	return a
}

// Navigate records the route; the page behind it is opened by settle.
func (a *App) Navigate(to ui.Route) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.route != to {
		a.log.Debug(context.Background(), "navigate", "from", a.route, "to", to)
	}
	a.route = to
	a.pending = true
}

func (a *App) Alert(msg string) {
	fmt.Fprintln(a.out, styleAlert.Render("! "+msg))
}

// Confirm asks a yes/no question. Anything but y or yes is a no.
func (a *App) Confirm(prompt string) bool {
	answer, err := getSimpleText(a.reader, prompt+" [y/N]", a.out)
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	}
	return false
}

func (a *App) Route() ui.Route {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.route
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(context.Background(), fmt.Sprintf("Switched to %s mode", mode))
	}
}

// goTo opens route and renders it.
func (a *App) goTo(ctx context.Context, route ui.Route) {
	a.Navigate(route)
	a.settle(ctx)
}

// settle mounts the page of the current route, following redirects made
// while mounting, and renders it.
func (a *App) settle(ctx context.Context) {
	for range maxRedirects {
		a.mu.Lock()
		if !a.pending {
			a.mu.Unlock()
			return
		}
		a.pending = false
		route := a.route
		prev := a.open
		a.open = nil
		a.mu.Unlock()

		if prev != nil {
			prev.Unmount()
		}

		if route.Protected() && !a.shell.Mount(ctx) {
			continue
		}

		p := a.pageFor(route)
		if p != nil {
			if err := p.Mount(ctx); err != nil {
				a.log.Warn(ctx, "mount failed", "route", route, "error", err)
			}
			a.mu.Lock()
			a.open = p
			a.mu.Unlock()
		}

		a.mu.Lock()
		redirected := a.pending
		a.mu.Unlock()
		if !redirected {
			a.render(route)
		}
	}
}

func (a *App) pageFor(route ui.Route) page {
	switch route {
	case ui.RouteDashboard:
		return a.dashboard
	case ui.RouteSkills:
		return a.skills
	case ui.RouteRoadmap:
		return a.roadmap
	case ui.RouteSettings:
		return a.settings
	}
	return nil
}

func (a *App) render(route ui.Route) {
	switch route {
	case ui.RouteHome:
		renderHome(a.out)
	case ui.RouteLogin:
		fmt.Fprintln(a.out, "Type 'login' to sign in or 'register' to create an account.")
	case ui.RouteRegister:
		fmt.Fprintln(a.out, "Type 'register' to create an account.")
	case ui.RouteDashboard:
		renderDashboard(a.out, a.dashboard.State())
	case ui.RouteSkills:
		renderSkills(a.out, a.skills)
	case ui.RouteRoadmap:
		renderRoadmap(a.out, a.roadmap.State())
	case ui.RouteJobs:
		renderJobs(a.out, a.jobs)
	case ui.RouteSettings:
		p, ok := a.settings.Profile()
		renderProfile(a.out, p, ok)
	}
}

// ensure makes route the open page unless it already is.
func (a *App) ensure(ctx context.Context, route ui.Route, p page) bool {
	a.mu.Lock()
	same := a.route == route && a.open == p
	a.mu.Unlock()
	if !same {
		a.goTo(ctx, route)
	}
	return a.Route() == route
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	_, ok := a.auth.Current(ctx)
	return ok
}

func (a *App) getStatus(ctx context.Context) string {
	s := ""
	if u, ok := a.auth.Current(ctx); ok {
		s = u.Email + " "
	}
	if m := a.Mode(); m != "" {
		s = s + string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", strings.TrimSpace(s))
	}
	return s
}

// Run prints the home page, starts the connectivity watcher and blocks in
// the REPL until the user exits or the input ends.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	printlnFn("Welcome to CareerPath CLI (type 'help' for commands)")

	a.checkOnline(ctx)
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	if a.isLoggedIn(ctx) {
		a.goTo(ctx, ui.RouteDashboard)
	} else {
		a.goTo(ctx, ui.RouteHome)
	}

	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader)

	a.mu.Lock()
	open := a.open
	a.mu.Unlock()
	if open != nil {
		open.Unmount()
	}
}

func (a *App) checkOnline(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := a.auth.Ping(pctx)
	cancel()

	if err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// StartOnlineStatusWatcher pings the backend every interval until ctx ends.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}
