// Package cli provides the interactive careerpath terminal client.
//
// App stands in for the browser: it tracks the current route, prints
// alerts, asks for confirmation on stdin and mounts the view behind each
// route. A background watcher pings the backend and switches the prompt
// between online and offline.
//
// Commands:
//   - register, login, logout
//   - dashboard, skills, roadmap, jobs, settings
//   - addskill, level, addstep, start, complete, delete, alerts
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
