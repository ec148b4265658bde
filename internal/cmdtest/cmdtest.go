// Package cmdtest runs command groups against a fake API in tests.
package cmdtest

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"nathanbeddoewebdev/polar/internal/clicontext"
	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/config"
	"nathanbeddoewebdev/polar/internal/database"
	"nathanbeddoewebdev/polar/internal/output"
	"nathanbeddoewebdev/polar/internal/polar"
	"nathanbeddoewebdev/polar/internal/services/auth"

	"github.com/spf13/cobra"
)

// Options describe the invocation state a command runs with.
type Options struct {
	BaseURL     string
	Environment polar.Environment
	Output      output.Format
	Config      *config.Config

	// Unauthenticated leaves the token environment variable empty so the
	// keychain is consulted.
	Unauthenticated bool

	// HistoryPath is the command history database. A fresh temporary file
	// is used when empty.
	HistoryPath string
}

// Result captures a finished command run.
type Result struct {
	Stdout string
	Stderr string
	Err    error
}

// ExitCode maps the returned error to a process exit code.
func (r Result) ExitCode() int {
	return clierr.ExitCode(r.Err)
}

// Run executes cmd with args, a test token and the given options.
func Run(t *testing.T, cmd *cobra.Command, opts Options, args ...string) Result {
	t.Helper()
	if opts.Unauthenticated {
		t.Setenv(auth.TokenEnvVar, "")
	} else {
		t.Setenv(auth.TokenEnvVar, "polar_oat_test")
	}

	if opts.HistoryPath == "" {
		opts.HistoryPath = filepath.Join(t.TempDir(), "history.db")
	}
	database.SetPath(opts.HistoryPath)
	t.Cleanup(database.ResetPath)

	if opts.Environment == "" {
		opts.Environment = polar.Production
	}
	if opts.Output == "" {
		opts.Output = output.Table
	}
	if opts.Config == nil {
		opts.Config = &config.Config{}
	}
	if opts.BaseURL == "" {
		opts.BaseURL = "http://127.0.0.1:1"
	}

	cc := &clicontext.Context{
		Environment: opts.Environment,
		BaseURL:     opts.BaseURL,
		Output:      opts.Output,
		NoColor:     true,
		Logger:      slog.New(slog.DiscardHandler),
		Config:      opts.Config,
	}

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	ctx := clicontext.With(context.Background(), cc)
	ctx = clierr.WithOptions(ctx, clierr.Options{NoColor: true})
	err := cmd.ExecuteContext(ctx)
	return Result{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}

// Request is a request recorded by a Server.
type Request struct {
	Method string
	Path   string
	Query  string
	Body   string
}

// Server is a fake API that answers from a route table keyed by
// "METHOD /path".
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	requests []Request
}

// Route answers a single request.
type Route func(w http.ResponseWriter, r *http.Request)

// NewServer starts a fake API. Unknown routes answer 404 with a Polar
// style error body.
func NewServer(t *testing.T, routes map[string]Route) *Server {
	t.Helper()
	s := &Server{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body bytes.Buffer
		body.ReadFrom(r.Body)
		s.mu.Lock()
		s.requests = append(s.requests, Request{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Body: body.String()})
		s.mu.Unlock()

		if route, ok := routes[r.Method+" "+r.URL.Path]; ok {
			route(w, r)
			return
		}
		JSON(http.StatusNotFound, map[string]any{"error": "ResourceNotFound", "detail": "Not found"})(w, r)
	}))
	t.Cleanup(s.Close)
	return s
}

// Requests returns the requests received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// JSON answers with status and v encoded as JSON.
func JSON(status int, v any) Route {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(v)
	}
}

// Page answers with a list page holding items.
func Page(total, maxPage int, items ...any) Route {
	if items == nil {
		items = []any{}
	}
	return JSON(http.StatusOK, map[string]any{
		"items":      items,
		"pagination": map[string]any{"total_count": total, "max_page": maxPage},
	})
}
