package core

import (
	"context"
	"fmt"
)

// ctxKey is the private type for context values set by this package.
type ctxKey int

const quietConsoleKey ctxKey = iota

// WithQuietConsole suppresses per-date progress lines on stdout. Used by the
// MCP server, whose stdio carries the protocol.
func WithQuietConsole(ctx context.Context) context.Context {
	return context.WithValue(ctx, quietConsoleKey, true)
}

// quietConsole reports whether progress lines should be suppressed.
func quietConsole(ctx context.Context) bool {
	quiet, ok := ctx.Value(quietConsoleKey).(bool)
	return ok && quiet
}

// progress prints a console progress line unless the context suppresses it.
func progress(ctx context.Context, format string, args ...any) {
	if quietConsole(ctx) {
		return
	}
	fmt.Printf(format, args...)
}
