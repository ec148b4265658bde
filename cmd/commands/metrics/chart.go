package metrics

import (
	"fmt"
	"io"

	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/guptarohit/asciigraph"
)

// chartHeight is the height of every metric chart in rows.
const chartHeight = 8

// writeCharts plots one chart per metric, each followed by its total.
func writeCharts(w io.Writer, m *polar.Metrics, slugs []string) error {
	for i, slug := range slugs {
		def := m.Metrics[slug]
		name := def.DisplayName
		if name == "" {
			name = slug
		}
		if i > 0 {
			fmt.Fprintln(w)
		}

		series := make([]float64, 0, len(m.Periods))
		for _, p := range m.Periods {
			series = append(series, chartValue(def, p.Values[slug]))
		}
		if len(series) == 0 {
			if _, err := fmt.Fprintf(w, "%s: no data\n", name); err != nil {
				return err
			}
			continue
		}

		chart := asciigraph.Plot(series,
			asciigraph.Height(chartHeight),
			asciigraph.Precision(chartPrecision(def)),
			asciigraph.Caption(name),
		)
		if _, err := fmt.Fprintf(w, "%s\n  total: %s\n", chart, formatValue(def, m.Totals, slug)); err != nil {
			return err
		}
	}
	return nil
}

// chartValue converts a raw value to the unit shown on the axis: currency
// in major units, percentages out of 100.
func chartValue(def polar.MetricDefinition, v float64) float64 {
	switch def.Type {
	case "currency":
		return v / 100
	case "percentage":
		return v * 100
	default:
		return v
	}
}

func chartPrecision(def polar.MetricDefinition) uint {
	switch def.Type {
	case "currency":
		return 2
	case "percentage":
		return 1
	default:
		return 0
	}
}
