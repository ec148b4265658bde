package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/output"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

const (
	dateLayout      = "2006-01-02"
	defaultInterval = "day"
	defaultDays     = 30
)

var now = time.Now

// ShowCommand returns the "metrics show" command.
func ShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show metrics over a date range",
		Long: `Show metrics of an organization over a date range, one row per interval
and a final row of totals. Currency metrics are shown in major units.

Without --start and --end the last 30 days are shown. Repeat --metric to
pick columns; by default every metric the API returns is shown. --chart
plots each metric over the range instead; it has no effect on JSON or YAML
output.

Intervals: ` + strings.Join(polar.MetricIntervals, ", ") + `

Examples:
  polar metrics show --metric revenue --metric orders
  polar metrics show --start 2026-01-01 --end 2026-06-30 --interval month`,
		Args: cobra.NoArgs,
		RunE: clierr.Handle(runShow),
	}

	cmdutil.AddOrgFlag(cmd)
	cmd.Flags().String("start", "", "First day, YYYY-MM-DD (default 30 days ago)")
	cmd.Flags().String("end", "", "Last day, YYYY-MM-DD (default today)")
	cmd.Flags().String("interval", defaultInterval, "Interval of each row")
	cmd.Flags().StringArray("metric", nil, "Metric slug to show (repeatable)")
	cmd.Flags().Bool("chart", false, "Plot each metric instead of printing a table")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	orgFlag, _ := cmd.Flags().GetString("org")
	orgID, err := cmdutil.ResolveOrgID(cmd, orgFlag)
	if err != nil {
		return err
	}
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")
	interval, _ := cmd.Flags().GetString("interval")
	slugs, _ := cmd.Flags().GetStringArray("metric")
	chart, _ := cmd.Flags().GetBool("chart")

	today := now().UTC()
	if strings.TrimSpace(end) == "" {
		end = today.Format(dateLayout)
	}
	if strings.TrimSpace(start) == "" {
		start = today.AddDate(0, 0, -defaultDays).Format(dateLayout)
	}
	params := polar.MetricsParams{
		OrganizationID: orgID,
		StartDate:      strings.TrimSpace(start),
		EndDate:        strings.TrimSpace(end),
		Interval:       strings.TrimSpace(interval),
	}

	client, err := cmdutil.NewClient(cmd)
	if err != nil {
		return err
	}

	m, err := cmdutil.Spin(cmd, "Fetching metrics...", func(ctx context.Context) (*polar.Metrics, error) {
		return client.GetMetrics(ctx, params)
	})
	if err != nil {
		return err
	}

	selected, err := selectMetrics(m, slugs)
	if err != nil {
		return err
	}
	cols := columns(selected, slugs)
	if chart && cmdutil.Env(cmd).Output == output.Table {
		return writeCharts(cmd.OutOrStdout(), selected, cols)
	}
	return cmdutil.Printer(cmd).List(selected, metricsTable(selected, cols, params.Interval))
}

// selectMetrics narrows m to the named slugs. With no slugs m is returned
// unchanged.
func selectMetrics(m *polar.Metrics, slugs []string) (*polar.Metrics, error) {
	if len(slugs) == 0 {
		return m, nil
	}

	out := &polar.Metrics{
		Periods: make([]polar.MetricPeriod, len(m.Periods)),
		Totals:  make(map[string]float64, len(slugs)),
		Metrics: make(map[string]polar.MetricDefinition, len(slugs)),
	}
	for _, slug := range slugs {
		def, ok := m.Metrics[slug]
		if !ok {
			return nil, fmt.Errorf("unknown metric %q", slug)
		}
		out.Metrics[slug] = def
		if total, ok := m.Totals[slug]; ok {
			out.Totals[slug] = total
		}
	}
	for i, p := range m.Periods {
		values := make(map[string]float64, len(slugs))
		for _, slug := range slugs {
			if v, ok := p.Values[slug]; ok {
				values[slug] = v
			}
		}
		out.Periods[i] = polar.MetricPeriod{Timestamp: p.Timestamp, Values: values}
	}
	return out, nil
}
