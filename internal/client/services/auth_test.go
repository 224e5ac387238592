package services

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/careerpath/internal/client/client"
	"github.com/dmitrijs2005/careerpath/internal/client/client/clienttest"
	"github.com/dmitrijs2005/careerpath/internal/client/models"
	"github.com/dmitrijs2005/careerpath/internal/client/session"
	"github.com/dmitrijs2005/careerpath/internal/client/ui"
	"github.com/dmitrijs2005/careerpath/internal/client/ui/uitest"
	"github.com/dmitrijs2005/careerpath/internal/logging"
)

type fixture struct {
	api     *clienttest.Fake
	store   *session.Store
	storage *session.MemoryStorage
	rec     *uitest.Recorder
	svc     *AuthService
}

func newFixture() *fixture {
	f := &fixture{
		api:     &clienttest.Fake{},
		storage: session.NewMemoryStorage(),
		rec:     &uitest.Recorder{},
	}
	f.store = session.NewStore(f.storage)
	f.svc = NewAuthService(f.api, f.store, f.rec, f.rec, logging.NewDiscardLogger())
	return f
}

func userBody(t *testing.T, u models.User) []byte {
	t.Helper()
	b, err := json.Marshal(u)
	require.NoError(t, err)
	return b
}

func TestLogin_Success(t *testing.T) {
	f := newFixture()
	anamika := models.User{ID: 1, Name: "Anamika Singh", Email: "anamika@example.com", CareerGoal: "Full Stack Developer"}

	var sent models.Credentials
	f.api.LoginFn = func(_ context.Context, c models.Credentials) (*client.Response, error) {
		sent = c
		return &client.Response{StatusCode: http.StatusOK, Body: userBody(t, anamika)}, nil
	}

	su, err := f.svc.Login(context.Background(), models.Credentials{Email: "anamika@example.com", Password: "password"})
	require.NoError(t, err)

	assert.Equal(t, "password", sent.Password)
	assert.Equal(t, anamika.Session(), su)
	assert.Equal(t, anamika.Session(), f.store.Get(context.Background()).User)
	assert.Equal(t, []ui.Route{ui.RouteDashboard}, f.rec.Routes())
	assert.Equal(t, []string{"Login successful!"}, f.rec.Alerts())
}

func TestLogin_Rejected(t *testing.T) {
	f := newFixture()
	f.api.LoginFn = func(context.Context, models.Credentials) (*client.Response, error) {
		return &client.Response{StatusCode: http.StatusUnauthorized, Body: []byte("Invalid email or password\n")}, nil
	}

	_, err := f.svc.Login(context.Background(), models.Credentials{Email: "anamika@example.com", Password: "x"})
	require.ErrorIs(t, err, client.ErrRejected)

	assert.Equal(t, []string{"Login failed: Invalid email or password"}, f.rec.Alerts())
	assert.Empty(t, f.rec.Routes())
	assert.Equal(t, session.Absent, f.store.Get(context.Background()).State)
}

func TestLogin_BackendDown(t *testing.T) {
	f := newFixture()
	f.api.LoginFn = func(context.Context, models.Credentials) (*client.Response, error) {
		return nil, clienttest.Unavailable("login")
	}

	_, err := f.svc.Login(context.Background(), models.Credentials{Email: "a@b.co"})
	require.ErrorIs(t, err, client.ErrUnavailable)
	assert.Equal(t, []string{"Login failed. Please check if the backend is running."}, f.rec.Alerts())
	assert.Empty(t, f.rec.Routes())
}

func TestLogin_UnreadableBody(t *testing.T) {
	f := newFixture()
	f.api.LoginFn = func(context.Context, models.Credentials) (*client.Response, error) {
		return &client.Response{StatusCode: http.StatusOK, Body: []byte("<html>")}, nil
	}

	_, err := f.svc.Login(context.Background(), models.Credentials{Email: "a@b.co"})
	require.ErrorIs(t, err, client.ErrDecode)
	assert.Equal(t, session.Absent, f.store.Get(context.Background()).State)
}

func TestRegister(t *testing.T) {
	t.Run("defaults career goal and goes to login", func(t *testing.T) {
		f := newFixture()
		var sent models.NewUser
		f.api.RegisterFn = func(_ context.Context, u models.NewUser) (*client.Response, error) {
			sent = u
			return &client.Response{StatusCode: http.StatusOK, Body: []byte(`{"id":2}`)}, nil
		}

		err := f.svc.Register(context.Background(), models.NewUser{Name: "Ravi", Email: "ravi@example.com", Password: "pw"})
		require.NoError(t, err)

		assert.Equal(t, "Full Stack Developer", sent.CareerGoal)
		assert.Equal(t, []string{"Registered successfully!"}, f.rec.Alerts())
		assert.Equal(t, ui.RouteLogin, f.rec.Last())
		assert.Equal(t, session.Absent, f.store.Get(context.Background()).State, "register does not sign in")
	})

	t.Run("keeps explicit goal", func(t *testing.T) {
		f := newFixture()
		var sent models.NewUser
		f.api.RegisterFn = func(_ context.Context, u models.NewUser) (*client.Response, error) {
			sent = u
			return &client.Response{StatusCode: http.StatusOK}, nil
		}
		require.NoError(t, f.svc.Register(context.Background(), models.NewUser{Email: "a@b.co", CareerGoal: "Data Engineer"}))
		assert.Equal(t, "Data Engineer", sent.CareerGoal)
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newFixture()
		f.api.RegisterFn = func(context.Context, models.NewUser) (*client.Response, error) {
			return &client.Response{StatusCode: http.StatusBadRequest, Body: []byte("Email already registered")}, nil
		}
		err := f.svc.Register(context.Background(), models.NewUser{Email: "a@b.co"})
		require.ErrorIs(t, err, client.ErrRejected)
		assert.Equal(t, []string{"Registration failed: Email already registered"}, f.rec.Alerts())
		assert.Empty(t, f.rec.Routes())
	})

	t.Run("backend down", func(t *testing.T) {
		f := newFixture()
		f.api.RegisterFn = func(context.Context, models.NewUser) (*client.Response, error) {
			return nil, clienttest.Unavailable("register")
		}
		err := f.svc.Register(context.Background(), models.NewUser{Email: "a@b.co"})
		require.ErrorIs(t, err, client.ErrUnavailable)
		assert.Equal(t, []string{"Registration failed. Please check if the backend is running."}, f.rec.Alerts())
	})
}

func TestLogoutAndCurrent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	u := models.SessionUser{ID: 1, Name: "Anamika Singh", Email: "anamika@example.com"}
	require.NoError(t, f.store.Set(ctx, u))

	got, ok := f.svc.Current(ctx)
	require.True(t, ok)
	assert.Equal(t, u, *got)

	require.NoError(t, f.svc.Logout(ctx))
	assert.Equal(t, ui.RouteHome, f.rec.Last())

	_, ok = f.svc.Current(ctx)
	assert.False(t, ok)
}

func TestCurrent_InvalidSessionIsSignedOut(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	require.NoError(t, f.storage.Set(ctx, session.Key, []byte(`{"id":1,"email":"not-an-email"}`)))

	_, ok := f.svc.Current(ctx)
	assert.False(t, ok)
}

func TestPing(t *testing.T) {
	f := newFixture()
	f.api.PingFn = func(context.Context) error { return client.ErrUnavailable }

	assert.ErrorIs(t, f.svc.Ping(context.Background()), client.ErrUnavailable)
	assert.Equal(t, 1, f.api.Count("Ping"))
}
