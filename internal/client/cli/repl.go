package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Skills(ctx context.Context) error
	AddSkill(ctx context.Context) error
	UpdateLevel(ctx context.Context, args []string) error
	Roadmap(ctx context.Context) error
	AddStep(ctx context.Context) error
	Start(ctx context.Context, args []string) error
	Complete(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Jobs(ctx context.Context, args []string) error
	ToggleAlerts(ctx context.Context) error
	Settings(ctx context.Context) error
}

// runREPL reads one command per line from reader, dispatches it to a and
// loops until "exit"/"quit", end of input or ctx cancellation.
//
// Signed out:
//
//	help, register, login, jobs [query], exit
//
// Signed in:
//
//	dashboard, skills, addskill, level <id> <level>, roadmap, addstep,
//	start <id>, complete <id>, delete <id>, jobs [query], alerts,
//	settings, logout, exit
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("cp %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: (d)ashboard, skills, addskill, level, roadmap, addstep, start, complete, delete, jobs, alerts, settings, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "d", "dashboard":
			_ = a.Dashboard(ctx)

		case "skills":
			_ = a.Skills(ctx)

		case "addskill":
			_ = a.AddSkill(ctx)

		case "level":
			_ = a.UpdateLevel(ctx, args)

		case "roadmap":
			_ = a.Roadmap(ctx)

		case "addstep":
			_ = a.AddStep(ctx)

		case "start":
			_ = a.Start(ctx, args)

		case "complete":
			_ = a.Complete(ctx, args)

		case "delete":
			_ = a.Delete(ctx, args)

		case "jobs":
			_ = a.Jobs(ctx, args)

		case "alerts":
			_ = a.ToggleAlerts(ctx)

		case "settings":
			_ = a.Settings(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
