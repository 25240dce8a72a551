// Package logx is the module's thin structured-logging wrapper. The pack
// carries no third-party logging library for any teacher or sibling repo to
// ground this on, so it uses the standard library's log/slog directly (see
// DESIGN.md for this and the module's other stdlib-only choices).
package logx

import (
	"context"
	"log/slog"
	"os"
)

var base = slog.New(slog.NewTextHandler(os.Stderr, nil))

// SetDebug toggles debug-level output, used by cmd/connectfour's --debug flag.
func SetDebug(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	base = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// With returns a logger scoped to a named component, e.g. logx.With("mcts").
func With(component string) *slog.Logger {
	return base.With("component", component)
}

// FromContext retrieves a request/search-scoped logger, falling back to the
// package base logger when none was attached.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}
	return base
}

type ctxKey struct{}

// NewContext attaches logger to ctx for FromContext to retrieve downstream.
func NewContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}
