package views

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/careerpath/internal/client/client"
	"github.com/dmitrijs2005/careerpath/internal/client/models"
	"github.com/dmitrijs2005/careerpath/internal/client/services"
	"github.com/dmitrijs2005/careerpath/internal/client/session"
	"github.com/dmitrijs2005/careerpath/internal/client/ui"
	"github.com/dmitrijs2005/careerpath/internal/logging"
)

var (
	ErrUnmounted     = errors.New("view is not mounted")
	ErrNoUser        = errors.New("no signed-in user")
	ErrEmptyResponse = errors.New("server returned no data")
)

// Context carries everything a view needs. It is passed explicitly; views
// hold no package-level state.
type Context struct {
	Session *session.Store
	API     client.API
	Auth    *services.AuthService
	Nav     ui.Navigator
	Alerts  ui.Alerter
	Confirm ui.Confirmer
	Log     logging.Logger
}

// base is embedded by every view. mu guards the view's fields and the
// lifetime; it is never held across a network call.
type base struct {
	vc Context

	mu     sync.Mutex
	life   context.Context
	cancel context.CancelFunc
}

// begin starts a new lifetime, ending any previous one.
func (b *base) begin(parent context.Context) context.Context {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cancel != nil {
		b.cancel()
	}
	b.life, b.cancel = context.WithCancel(parent)
	return b.life
}

// Unmount cancels the lifetime. Safe to call more than once.
func (b *base) Unmount() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cancel != nil {
		b.cancel()
	}
}

// Mounted reports whether the view has a live lifetime.
func (b *base) Mounted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.life != nil && b.life.Err() == nil
}

// current returns the live lifetime context for a user action.
func (b *base) current() (context.Context, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.life == nil || b.life.Err() != nil {
		return nil, ErrUnmounted
	}
	return b.life, nil
}

// apply runs fn under the lock unless the lifetime has ended.
func (b *base) apply(ctx context.Context, fn func()) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ctx.Err() != nil {
		return ErrUnmounted
	}
	fn()
	return nil
}

// loadUser resolves the stored session into a fresh backend record. Any
// miss yields (nil, false) and the caller shows the signed-out state.
func (b *base) loadUser(ctx context.Context) (*models.User, bool) {
	d := b.vc.Session.Get(ctx)
	su, ok := d.Current()
	if !ok {
		if d.State == session.Invalid {
			b.vc.Log.Warn(ctx, "ignoring stored session", "reason", d.Reason)
		}
		return nil, false
	}

	r := b.vc.API.FetchUser(ctx, su.Email)
	u, ok := r.Get()
	if !ok {
		if r.IsFailed() {
			b.vc.Log.Warn(ctx, "user lookup failed", "email", su.Email, "error", r.Err())
		}
		return nil, false
	}
	return &u, true
}

// outcome turns a mutation result into an error and raises the matching
// alert. action reads as "add skill", "delete step" and so on.
func outcome[T any](ctx context.Context, vc Context, action string, r client.Result[T]) (T, error) {
	if v, ok := r.Get(); ok {
		return v, nil
	}
	var zero T

	if ctx.Err() != nil {
		return zero, ErrUnmounted
	}

	if r.IsEmpty() {
		vc.Alerts.Alert(fmt.Sprintf("Failed to %s. %s", action, ui.MsgTryAgain))
		return zero, ErrEmptyResponse
	}

	reason := r.Reason()
	vc.Log.Warn(ctx, "mutation failed", "action", action, "error", reason)
	vc.Alerts.Alert(failureText(action, reason))
	return zero, reason
}

func failureText(action string, reason *client.RequestError) string {
	switch {
	case errors.Is(reason, client.ErrRejected) && reason.Body != "":
		return fmt.Sprintf("Failed to %s: %s", action, reason.Body)
	case errors.Is(reason, client.ErrRejected), errors.Is(reason, client.ErrDecode):
		return fmt.Sprintf("Failed to %s. %s", action, ui.MsgTryAgain)
	default:
		return fmt.Sprintf("Failed to %s. %s", action, ui.MsgBackendDown)
	}
}
