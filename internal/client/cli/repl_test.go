package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  map[string][]string
}

func (f *fakeExec) call(name string, args []string) error {
	f.calls = append(f.calls, name)
	if f.args == nil {
		f.args = map[string][]string{}
	}
	f.args[name] = args
	return nil
}

func (f *fakeExec) isLoggedIn(context.Context) bool { return f.loggedIn }
func (f *fakeExec) Register(context.Context) error  { return f.call("register", nil) }
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.call("login", nil)
}
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.call("logout", nil)
}
func (f *fakeExec) Dashboard(context.Context) error { return f.call("dashboard", nil) }
func (f *fakeExec) Skills(context.Context) error    { return f.call("skills", nil) }
func (f *fakeExec) AddSkill(context.Context) error  { return f.call("addskill", nil) }
func (f *fakeExec) UpdateLevel(_ context.Context, args []string) error {
	return f.call("level", args)
}
func (f *fakeExec) Roadmap(context.Context) error { return f.call("roadmap", nil) }
func (f *fakeExec) AddStep(context.Context) error { return f.call("addstep", nil) }
func (f *fakeExec) Start(_ context.Context, args []string) error {
	return f.call("start", args)
}
func (f *fakeExec) Complete(_ context.Context, args []string) error {
	return f.call("complete", args)
}
func (f *fakeExec) Delete(_ context.Context, args []string) error {
	return f.call("delete", args)
}
func (f *fakeExec) Jobs(_ context.Context, args []string) error { return f.call("jobs", args) }
func (f *fakeExec) ToggleAlerts(context.Context) error          { return f.call("alerts", nil) }
func (f *fakeExec) Settings(context.Context) error              { return f.call("settings", nil) }

func stubPrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, len(a))
		for i, v := range a {
			parts[i] = strings.TrimSpace(strings.TrimSuffix(toString(v), "\n"))
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	stubPrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"login",
		"d",
		"skills",
		"level 3 Advanced",
		"roadmap",
		"start 2",
		"complete 2",
		"delete 2",
		"jobs react native",
		"alerts",
		"settings",
		"logout",
		"exit",
		"dashboard",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(input))

	assert.Equal(t, []string{
		"login", "dashboard", "skills", "level", "roadmap", "start",
		"complete", "delete", "jobs", "alerts", "settings", "logout",
	}, exec.calls)
	assert.Equal(t, []string{"3", "Advanced"}, exec.args["level"])
	assert.Equal(t, []string{"2"}, exec.args["delete"])
	assert.Equal(t, []string{"react", "native"}, exec.args["jobs"])
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	lines := stubPrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("help\nlogin\nhelp\n")))

	var help []string
	for _, l := range *lines {
		if strings.HasPrefix(l, "Available commands:") {
			help = append(help, l)
		}
	}
	require.Len(t, help, 2)
	assert.NotContains(t, help[0], "addskill")
	assert.Contains(t, help[1], "addskill")
}

func TestRunREPL_UnknownAndBlank(t *testing.T) {
	lines := stubPrintln(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("\n   \nfoobar\nquit\n")))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *lines, "Unknown command: foobar")
	assert.Contains(t, *lines, "Bye!")
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	stubPrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("register")))

	assert.Equal(t, []string{"register"}, exec.calls)
}

func TestRunREPL_StopsOnCanceledContext(t *testing.T) {
	stubPrintln(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, bufio.NewReader(strings.NewReader("login\n")))

	assert.Empty(t, exec.calls)
}
