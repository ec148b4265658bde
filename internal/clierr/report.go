package clierr

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"nathanbeddoewebdev/polar/internal/polar"
	"nathanbeddoewebdev/polar/internal/ui/styles"

	"github.com/spf13/cobra"
)

// Fixed transport messages.
const (
	connectionFailedLine = "Could not connect to API server"
	timedOutLine         = "The server took too long to respond"
)

// Diagnostic is the user-facing report for a single failed command.
type Diagnostic struct {
	Title string
	Lines []string
}

// String renders the diagnostic without styling.
func (d Diagnostic) String() string {
	return d.render(func(s string) string { return s })
}

// render writes "Title: line" when there is a single unindented line and
// a title followed by one line per entry otherwise.
func (d Diagnostic) render(title func(string) string) string {
	var b strings.Builder
	head := title(d.Title + ":")
	if len(d.Lines) == 1 && !strings.HasPrefix(d.Lines[0], " ") {
		fmt.Fprintf(&b, "%s %s\n", head, d.Lines[0])
		return b.String()
	}
	b.WriteString(head)
	b.WriteByte('\n')
	for _, line := range d.Lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// Diagnose builds the diagnostic for err. It reports false for nil and for
// control signals, which are never rendered.
func Diagnose(err error) (Diagnostic, bool) {
	if err == nil {
		return Diagnostic{}, false
	}

	switch Classify(err) {
	case KindControl:
		return Diagnostic{}, false

	case KindValidation:
		var validationErr *polar.ValidationError
		errors.As(err, &validationErr)
		lines := make([]string, 0, len(validationErr.Errors))
		for _, fe := range validationErr.Errors {
			if len(fe.Loc) == 0 {
				lines = append(lines, "  "+fe.Msg)
				continue
			}
			lines = append(lines, fmt.Sprintf("  %s: %s", strings.Join(fe.Loc, "."), fe.Msg))
		}
		return Diagnostic{Title: "Validation error", Lines: lines}, true

	case KindAPI:
		var apiErr *polar.APIError
		errors.As(err, &apiErr)
		return Diagnostic{
			Title: fmt.Sprintf("API error (%d)", apiErr.StatusCode),
			Lines: FormatBody(apiErr.Body),
		}, true

	case KindSDK:
		var sdkErr *polar.SDKError
		errors.As(err, &sdkErr)
		if sdkErr.Body != "" {
			return Diagnostic{Title: "API error", Lines: FormatBody(sdkErr.Body)}, true
		}
		return Diagnostic{Title: "Error", Lines: []string{err.Error()}}, true

	case KindConnection:
		return Diagnostic{Title: "Connection failed", Lines: []string{connectionFailedLine}}, true

	case KindTimeout:
		return Diagnostic{Title: "Request timed out", Lines: []string{timedOutLine}}, true

	default:
		return Diagnostic{Title: "Error", Lines: []string{err.Error()}}, true
	}
}

// Reporter writes diagnostics to an error stream.
type Reporter struct {
	// Out receives rendered diagnostics. It should be the error stream.
	Out io.Writer

	// Logger receives the raw error at debug level. May be nil.
	Logger *slog.Logger

	// NoColor disables styling of the diagnostic title.
	NoColor bool
}

// Report renders err and converts it into an exit signal. A nil error
// yields nil; a control signal is returned unchanged and nothing is
// written; every other error yields an *ExitError with code ExitFailure.
func (r *Reporter) Report(err error) error {
	d, ok := Diagnose(err)
	if !ok {
		return err
	}

	if r.Logger != nil {
		r.Logger.Debug("command failed", "kind", Classify(err).String(), "error", err)
	}

	palette := styles.For(r.Out, r.NoColor)
	io.WriteString(r.Out, d.render(func(s string) string {
		return palette.Render(palette.Error, s)
	}))

	return Exit(ExitFailure)
}

// Report renders err to w with default options. See Reporter.Report.
func Report(w io.Writer, err error) error {
	return (&Reporter{Out: w}).Report(err)
}

// Options configures the reporter used by Handle.
type Options struct {
	Logger  *slog.Logger
	NoColor bool
}

type optionsKey struct{}

// WithOptions returns a context carrying reporter options for Handle.
func WithOptions(ctx context.Context, opts Options) context.Context {
	return context.WithValue(ctx, optionsKey{}, opts)
}

func optionsFrom(ctx context.Context) Options {
	if ctx == nil {
		return Options{}
	}
	opts, _ := ctx.Value(optionsKey{}).(Options)
	return opts
}

// RunFunc matches cobra's RunE signature.
type RunFunc func(cmd *cobra.Command, args []string) error

// Handle wraps a command body so that every error it returns, and any
// panic it raises, is reported on the command's error stream and turned
// into a single exit signal.
func Handle(run RunFunc) RunFunc {
	return func(cmd *cobra.Command, args []string) (err error) {
		opts := optionsFrom(cmd.Context())
		r := &Reporter{Out: cmd.ErrOrStderr(), Logger: opts.Logger, NoColor: opts.NoColor}

		defer func() {
			if p := recover(); p != nil {
				err = r.Report(fmt.Errorf("%v", p))
			}
		}()

		return r.Report(run(cmd, args))
	}
}
