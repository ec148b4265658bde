package audit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"nathanbeddoewebdev/polar/internal/auditlog"
	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/output"

	"github.com/spf13/cobra"
)

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent history entries",
		Long: `List recent history entries, newest first.

Examples:
  polar audit list
  polar audit list --limit 50
  polar audit list --command "polar webhooks delete"
  polar --sandbox audit list --env -o json`,
		Args: cobra.NoArgs,
		RunE: clierr.Handle(runList),
	}

	cmd.Flags().Int("limit", auditlog.DefaultLimit, "Number of entries to display")
	cmd.Flags().String("command", "", "Filter by exact command path")
	cmd.Flags().Bool("env", false, "Only show entries for the current environment")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		return fmt.Errorf("--limit must be greater than 0")
	}

	filter := auditlog.Filter{Limit: limit}
	filter.Command, _ = cmd.Flags().GetString("command")
	filter.Command = strings.TrimSpace(filter.Command)
	if onlyEnv, _ := cmd.Flags().GetBool("env"); onlyEnv {
		filter.Environment = string(cmdutil.Env(cmd).Environment)
	}

	entries, err := withRepo(cmd.Context(), func(ctx context.Context, repo auditlog.Repository) ([]auditlog.Entry, error) {
		return repo.List(ctx, filter)
	})
	if err != nil {
		return err
	}

	return cmdutil.Printer(cmd).List(entries, historyTable(entries))
}

func historyTable(entries []auditlog.Entry) *output.TableView {
	view := &output.TableView{
		Headers: []string{"Time", "Env", "Command", "Outcome", "Duration", "Resource", "Detail"},
		Empty:   "No history entries found.",
	}
	for _, entry := range entries {
		detail := entry.Detail
		if detail == "" {
			detail = "-"
		}
		view.AddRow(
			output.Time(entry.Timestamp),
			entry.Environment,
			entry.Command,
			entry.Outcome,
			formatDuration(entry.DurationMs),
			formatResource(entry),
			detail,
		)
	}
	return view
}

func formatDuration(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	d := time.Duration(ms) * time.Millisecond
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%dm", int(d.Minutes()))
}

func formatResource(entry auditlog.Entry) string {
	switch {
	case entry.ResourceType == "" && entry.ResourceID == "":
		return "-"
	case entry.ResourceID == "":
		return entry.ResourceType
	case entry.ResourceType == "":
		return entry.ResourceID
	default:
		return entry.ResourceType + ":" + entry.ResourceID
	}
}

// withRepo opens the history, runs fn and closes it again.
func withRepo[T any](ctx context.Context, fn func(ctx context.Context, repo auditlog.Repository) (T, error)) (T, error) {
	repo, err := auditlog.Open()
	if err != nil {
		var zero T
		return zero, err
	}
	defer repo.Close()
	return fn(ctx, repo)
}
