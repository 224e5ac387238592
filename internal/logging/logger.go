// Package logging is the one logging surface of careerpath. Both binaries
// log through Logger; the server renders JSON records and the CLI renders
// coloured console lines, both on top of log/slog.
package logging

import "context"

// Logger takes a message plus alternating keys and values:
//
//	log.Info(ctx, "request completed", "path", path, "status_code", 200)
//
// The context carries request-scoped values to the handler.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With binds args to every record of the returned logger, e.g. a
	// module name.
	With(args ...any) Logger
}

var _ Logger = (*SlogLogger)(nil)
