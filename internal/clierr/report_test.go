package clierr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"syscall"
	"testing"

	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
)

// timeoutError satisfies net.Error and reports a timeout.
type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func newTestLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func connRefused() error {
	return &net.OpError{Op: "dial", Net: "tcp", Err: os.NewSyscallError("connect", syscall.ECONNREFUSED)}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"exit", Exit(0), KindControl},
		{"wrapped exit", fmt.Errorf("stop: %w", Exit(4)), KindControl},
		{"validation", &polar.ValidationError{Errors: []polar.FieldError{{Loc: []string{"query", "limit"}, Msg: "bad"}}}, KindValidation},
		{"api", &polar.APIError{StatusCode: 404}, KindAPI},
		{"wrapped api", fmt.Errorf("get order: %w", &polar.APIError{StatusCode: 500}), KindAPI},
		{"sdk", &polar.SDKError{Message: "bad response"}, KindSDK},
		{"transport connect", &polar.TransportError{Err: connRefused()}, KindConnection},
		{"transport timeout", &polar.TransportError{Timeout: true, Err: context.DeadlineExceeded}, KindTimeout},
		{"raw dial error", connRefused(), KindConnection},
		{"raw dns error", &net.DNSError{Err: "no such host", Name: "api.invalid"}, KindConnection},
		{"raw refused errno", fmt.Errorf("dial: %w", syscall.ECONNREFUSED), KindConnection},
		{"raw deadline", fmt.Errorf("request: %w", context.DeadlineExceeded), KindTimeout},
		{"raw net timeout", &net.OpError{Op: "read", Net: "tcp", Err: timeoutError{}}, KindTimeout},
		{"dial timeout", &net.OpError{Op: "dial", Net: "tcp", Err: timeoutError{}}, KindTimeout},
		{"unknown", errors.New("unexpected"), KindUnknown},
		{"canceled", context.Canceled, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.want {
				t.Errorf("Classify() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDiagnose(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Diagnostic
	}{
		{
			name: "validation error",
			err: &polar.ValidationError{Errors: []polar.FieldError{
				{Loc: []string{"query", "limit"}, Msg: "must be between 1 and 100"},
				{Loc: []string{"query", "page"}, Msg: "must be at least 1"},
				{Msg: "no location"},
			}},
			want: Diagnostic{Title: "Validation error", Lines: []string{
				"  query.limit: must be between 1 and 100",
				"  query.page: must be at least 1",
				"  no location",
			}},
		},
		{
			name: "api error with flat body",
			err:  &polar.APIError{StatusCode: 404, Body: `{"error": "not_found", "detail": "Order missing"}`},
			want: Diagnostic{Title: "API error (404)", Lines: []string{"not_found: Order missing"}},
		},
		{
			name: "api error without body",
			err:  &polar.APIError{StatusCode: 502},
			want: Diagnostic{Title: "API error (502)", Lines: []string{"Unknown error"}},
		},
		{
			// A validation list inside an HTTP body stays an API error.
			name: "api error with validation body",
			err:  &polar.APIError{StatusCode: 422, Body: `{"detail": [{"loc": ["body", "price"], "msg": "must be positive"}]}`},
			want: Diagnostic{Title: "API error (422)", Lines: []string{"  body.price: must be positive"}},
		},
		{
			name: "sdk error with body",
			err:  &polar.SDKError{Message: "failed to decode response", Body: "<html>bad gateway</html>"},
			want: Diagnostic{Title: "API error", Lines: []string{"<html>bad gateway</html>"}},
		},
		{
			name: "sdk error without body",
			err:  &polar.SDKError{Message: "failed to encode request"},
			want: Diagnostic{Title: "Error", Lines: []string{"polar: failed to encode request"}},
		},
		{
			name: "connection failure",
			err:  &polar.TransportError{Err: errors.New("dial tcp 127.0.0.1:1: connect: connection refused")},
			want: Diagnostic{Title: "Connection failed", Lines: []string{"Could not connect to API server"}},
		},
		{
			name: "timeout",
			err:  &polar.TransportError{Timeout: true, Err: context.DeadlineExceeded},
			want: Diagnostic{Title: "Request timed out", Lines: []string{"The server took too long to respond"}},
		},
		{
			name: "unknown",
			err:  errors.New("unexpected"),
			want: Diagnostic{Title: "Error", Lines: []string{"unexpected"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Diagnose(tt.err)
			if !ok {
				t.Fatalf("Diagnose() reported no diagnostic")
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Diagnose mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiagnose_ConnectionTitleIgnoresMessage(t *testing.T) {
	messages := []string{"connection refused", "no route to host", "", "weird text: 500"}
	for _, msg := range messages {
		d, ok := Diagnose(&polar.TransportError{Err: errors.New(msg)})
		if !ok || d.Title != "Connection failed" {
			t.Errorf("message %q: got title %q, want %q", msg, d.Title, "Connection failed")
		}
	}
}

func TestReport_ControlSignalPassesThrough(t *testing.T) {
	for _, code := range []int{0, 1, 2, 42} {
		var buf bytes.Buffer
		signal := Exit(code)

		got := Report(&buf, signal)

		if got != error(signal) {
			t.Errorf("code %d: Report returned %v, want the original signal", code, got)
		}
		if buf.Len() != 0 {
			t.Errorf("code %d: expected no output, got %q", code, buf.String())
		}
	}
}

func TestReport_WrappedControlSignalReturnedUnchanged(t *testing.T) {
	var buf bytes.Buffer
	wrapped := fmt.Errorf("aborting: %w", Exit(3))

	got := Report(&buf, wrapped)

	if got != wrapped {
		t.Errorf("Report returned %v, want the original error", got)
	}
	if ExitCode(got) != 3 {
		t.Errorf("ExitCode = %d, want 3", ExitCode(got))
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestReport_NilError(t *testing.T) {
	var buf bytes.Buffer
	if err := Report(&buf, nil); err != nil {
		t.Errorf("Report(nil) = %v, want nil", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestReport_RendersAndExitsOne(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "single line",
			err:  &polar.APIError{StatusCode: 404, Body: `{"error": "not_found", "detail": "Order missing"}`},
			want: "API error (404): not_found: Order missing\n",
		},
		{
			name: "multi line",
			err: &polar.ValidationError{Errors: []polar.FieldError{
				{Loc: []string{"query", "limit"}, Msg: "too large"},
			}},
			want: "Validation error:\n  query.limit: too large\n",
		},
		{
			name: "connection",
			err:  &polar.TransportError{Err: connRefused()},
			want: "Connection failed: Could not connect to API server\n",
		},
		{
			name: "timeout",
			err:  fmt.Errorf("list orders: %w", context.DeadlineExceeded),
			want: "Request timed out: The server took too long to respond\n",
		},
		{
			name: "unknown",
			err:  errors.New("unexpected"),
			want: "Error: unexpected\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			got := Report(&buf, tt.err)

			if code := ExitCode(got); code != ExitFailure {
				t.Errorf("exit code = %d, want %d", code, ExitFailure)
			}
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReport_Deterministic(t *testing.T) {
	err := &polar.APIError{StatusCode: 400, Body: `{"b": 1, "a": {"z": true, "y": null}}`}

	var first, second bytes.Buffer
	Report(&first, err)
	Report(&second, err)

	if first.String() != second.String() {
		t.Errorf("output differs between runs:\n%s\n---\n%s", first.String(), second.String())
	}
}

// execHandled runs a command whose body is wrapped with Handle.
func execHandled(t *testing.T, run RunFunc) (error, string) {
	t.Helper()
	var errBuf bytes.Buffer
	cmd := &cobra.Command{
		Use:           "test",
		RunE:          Handle(run),
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.SetErr(&errBuf)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	return err, errBuf.String()
}

func TestHandle_Success(t *testing.T) {
	err, stderr := execHandled(t, func(cmd *cobra.Command, args []string) error {
		return nil
	})
	if err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
	if stderr != "" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestHandle_ControlSignal(t *testing.T) {
	err, stderr := execHandled(t, func(cmd *cobra.Command, args []string) error {
		return Exit(0)
	})
	if ExitCode(err) != 0 {
		t.Errorf("exit code = %d, want 0", ExitCode(err))
	}
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Errorf("expected the control signal to pass through, got %v", err)
	}
	if stderr != "" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestHandle_ClassifiedError(t *testing.T) {
	err, stderr := execHandled(t, func(cmd *cobra.Command, args []string) error {
		return fmt.Errorf("get order: %w", &polar.APIError{StatusCode: 429, Body: `{"error": "rate_limited"}`})
	})
	if ExitCode(err) != ExitFailure {
		t.Errorf("exit code = %d, want %d", ExitCode(err), ExitFailure)
	}
	if stderr != "API error (429): rate_limited\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestHandle_RecoversPanic(t *testing.T) {
	err, stderr := execHandled(t, func(cmd *cobra.Command, args []string) error {
		var m map[string]int
		m["boom"] = 1
		return nil
	})
	if ExitCode(err) != ExitFailure {
		t.Errorf("exit code = %d, want %d", ExitCode(err), ExitFailure)
	}
	if stderr != "Error: assignment to entry in nil map\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestHandle_UsesContextOptions(t *testing.T) {
	var logBuf, errBuf bytes.Buffer
	cmd := &cobra.Command{
		Use:           "test",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: Handle(func(cmd *cobra.Command, args []string) error {
			return errors.New("boom")
		}),
	}
	cmd.SetErr(&errBuf)
	cmd.SetArgs([]string{})

	logger := newTestLogger(&logBuf)
	cmd.ExecuteContext(WithOptions(context.Background(), Options{Logger: logger, NoColor: true}))

	if errBuf.String() != "Error: boom\n" {
		t.Errorf("unexpected stderr: %q", errBuf.String())
	}
	if !bytes.Contains(logBuf.Bytes(), []byte("kind=unknown")) {
		t.Errorf("expected debug log with error kind, got %q", logBuf.String())
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"exit", Exit(7), 7},
		{"usage", Usagef("bad flag %q", "x"), ExitUsage},
		{"plain", errors.New("unknown command"), ExitUsage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
