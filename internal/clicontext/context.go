// Package clicontext carries the resolved global flags from the root
// command to every subcommand through the command context.
package clicontext

import (
	"context"
	"log/slog"

	"nathanbeddoewebdev/polar/internal/config"
	"nathanbeddoewebdev/polar/internal/output"
	"nathanbeddoewebdev/polar/internal/polar"
)

// Context is the per-invocation state shared by commands.
type Context struct {
	Environment polar.Environment

	// BaseURL is the API base URL; it overrides the environment's URL.
	BaseURL string

	Output  output.Format
	NoColor bool
	Verbose bool
	Logger  *slog.Logger
	Config  *config.Config
}

type contextKey struct{}

// With returns a copy of ctx carrying c.
func With(ctx context.Context, c *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// From returns the Context stored in ctx, or production defaults when
// none was stored.
func From(ctx context.Context) *Context {
	if ctx != nil {
		if c, ok := ctx.Value(contextKey{}).(*Context); ok && c != nil {
			return c
		}
	}
	return &Context{
		Environment: polar.Production,
		BaseURL:     polar.ProductionURL,
		Output:      output.Table,
		Logger:      slog.New(slog.DiscardHandler),
		Config:      &config.Config{},
	}
}
