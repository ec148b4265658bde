package metrics

import (
	"maps"
	"math"
	"slices"
	"strconv"

	"nathanbeddoewebdev/polar/internal/output"
	"nathanbeddoewebdev/polar/internal/polar"
)

// columns returns the metric slugs in display order: as requested, else
// sorted.
func columns(m *polar.Metrics, requested []string) []string {
	if len(requested) > 0 {
		return requested
	}
	return slices.Sorted(maps.Keys(m.Metrics))
}

func metricsTable(m *polar.Metrics, slugs []string, interval string) *output.TableView {
	headers := []string{"Period"}
	for _, slug := range slugs {
		name := m.Metrics[slug].DisplayName
		if name == "" {
			name = slug
		}
		headers = append(headers, name)
	}

	view := &output.TableView{Headers: headers, Empty: "No metrics in this range."}
	for _, p := range m.Periods {
		row := []string{formatPeriod(p, interval)}
		for _, slug := range slugs {
			row = append(row, formatValue(m.Metrics[slug], p.Values, slug))
		}
		view.AddRow(row...)
	}
	if len(view.Rows) > 0 && len(m.Totals) > 0 {
		row := []string{"Total"}
		for _, slug := range slugs {
			row = append(row, formatValue(m.Metrics[slug], m.Totals, slug))
		}
		view.AddRow(row...)
	}
	return view
}

func formatPeriod(p polar.MetricPeriod, interval string) string {
	if interval == "hour" {
		return output.Time(p.Timestamp)
	}
	return output.Date(p.Timestamp)
}

// formatValue renders values[slug] by the metric's type. Currency values
// are in cents and percentages are ratios.
func formatValue(def polar.MetricDefinition, values map[string]float64, slug string) string {
	v, ok := values[slug]
	if !ok {
		return "-"
	}
	switch def.Type {
	case "currency":
		return output.Amount(int(math.Round(v)), "")
	case "percentage":
		return strconv.FormatFloat(v*100, 'f', 1, 64) + "%"
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}
