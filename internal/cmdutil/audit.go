package cmdutil

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"nathanbeddoewebdev/polar/internal/auditlog"
	"nathanbeddoewebdev/polar/internal/clierr"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Audited records every run of a state-changing command in the local
// history. Failing to write the history never fails the command.
func Audited(run clierr.RunFunc) clierr.RunFunc {
	return func(cmd *cobra.Command, args []string) error {
		cmd.SetContext(auditlog.WithResourceSlot(cmd.Context()))

		start := time.Now()
		err := run(cmd, args)
		recordHistory(cmd, args, start, err)
		return err
	}
}

func recordHistory(cmd *cobra.Command, args []string, start time.Time, runErr error) {
	env := Env(cmd)
	res := auditlog.ResourceFromContext(cmd.Context())

	entry := &auditlog.Entry{
		Timestamp:    start,
		Command:      cmd.CommandPath(),
		Args:         strings.Join(auditlog.SanitizeArgs(invocationArgs(cmd, args)), " "),
		Environment:  string(env.Environment),
		ResourceType: res.Type,
		ResourceID:   res.ID,
		Outcome:      auditlog.OutcomeSuccess,
		DurationMs:   time.Since(start).Milliseconds(),
	}
	if runErr != nil {
		entry.Outcome = auditlog.OutcomeError
		entry.Detail = summarize(runErr)
	}

	repo, err := auditlog.Open()
	if err != nil {
		env.Logger.Debug("history unavailable", "error", err)
		return
	}
	defer repo.Close()

	if err := repo.Save(cmd.Context(), entry); err != nil {
		env.Logger.Debug("failed to record history", "error", err)
	}
}

// invocationArgs rebuilds the positional arguments and explicitly set
// flags of a run.
func invocationArgs(cmd *cobra.Command, args []string) []string {
	out := append([]string(nil), args...)
	cmd.Flags().Visit(func(f *pflag.Flag) {
		out = append(out, "--"+f.Name+"="+f.Value.String())
	})
	return out
}

// summarize condenses an error into the one line shown in the history.
func summarize(err error) string {
	var exitErr *clierr.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Error()
	}
	d, ok := clierr.Diagnose(err)
	if !ok {
		return err.Error()
	}
	if len(d.Lines) == 0 {
		return d.Title
	}
	return fmt.Sprintf("%s: %s", d.Title, strings.TrimSpace(d.Lines[0]))
}
