package audit

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"nathanbeddoewebdev/polar/internal/auditlog"
	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/output"

	"github.com/spf13/cobra"
)

func PruneCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete history entries older than a duration",
		Long: `Delete history entries older than a duration.

Examples:
  polar audit prune --older-than 30d
  polar audit prune --older-than 72h`,
		Args: cobra.NoArgs,
		RunE: clierr.Handle(runPrune),
	}

	cmd.Flags().String("older-than", "", "Remove entries older than this duration (e.g. 30d, 72h)")
	cmd.MarkFlagRequired("older-than")

	return cmd
}

func runPrune(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetString("older-than")
	olderThan, err := parseDuration(strings.TrimSpace(raw))
	if err != nil {
		return err
	}

	removed, err := withRepo(cmd.Context(), func(ctx context.Context, repo auditlog.Repository) (int64, error) {
		return repo.Prune(ctx, olderThan)
	})
	if err != nil {
		return err
	}

	cmdutil.Success(cmd, "Removed %s.", output.Plural(int(removed), "history entry"))
	return nil
}

// parseDuration accepts time.ParseDuration syntax plus a whole number of
// days such as "30d".
func parseDuration(input string) (time.Duration, error) {
	if before, ok := strings.CutSuffix(input, "d"); ok {
		days, err := strconv.Atoi(before)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", input)
		}
		if days < 0 {
			return 0, fmt.Errorf("duration must be positive")
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}

	d, err := time.ParseDuration(input)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", input)
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must be positive")
	}
	return d, nil
}
