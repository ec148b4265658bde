package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/x/ansi"
)

// MaxCellWidth is the widest a table cell may render before it is cut.
const MaxCellWidth = 48

const timeLayout = "2006-01-02 15:04:05 UTC"

// TableView is a column-aligned list with an optional footer line.
type TableView struct {
	Headers []string
	Rows    [][]string
	Footer  string

	// Empty is printed instead of the table when there are no rows.
	Empty string
}

// AddRow appends a row of cells.
func (t *TableView) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Write renders the table. Headers are uppercased and underlined with
// dashes; cells wider than MaxCellWidth are truncated.
func (t *TableView) Write(w io.Writer) error {
	if len(t.Rows) == 0 && t.Empty != "" {
		_, err := fmt.Fprintln(w, t.Empty)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)

	headers := make([]string, len(t.Headers))
	rules := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		headers[i] = strings.ToUpper(h)
		rules[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	fmt.Fprintln(tw, strings.Join(rules, "\t"))

	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = Cell(c)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	if err := tw.Flush(); err != nil {
		return err
	}
	if t.Footer != "" {
		_, err := fmt.Fprintf(w, "\n%s\n", t.Footer)
		return err
	}
	return nil
}

// Cell prepares a value for a table cell: tabs and newlines are flattened
// and overly wide values are cut with an ellipsis.
func Cell(s string) string {
	s = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ").Replace(s)
	if ansi.StringWidth(s) <= MaxCellWidth {
		return s
	}
	return ansi.Truncate(s, MaxCellWidth, "…")
}

// DetailView is a vertical key/value listing of a single resource.
type DetailView struct {
	Fields []Field
}

// Field is a single labelled value.
type Field struct {
	Label string
	Value string
}

// Add appends a field. Empty values are skipped.
func (d *DetailView) Add(label, value string) {
	if value == "" {
		return
	}
	d.Fields = append(d.Fields, Field{Label: label, Value: value})
}

// Write renders the fields as an aligned two-column listing.
func (d *DetailView) Write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, f := range d.Fields {
		fmt.Fprintf(tw, "  %s:\t%s\n", f.Label, f.Value)
	}
	return tw.Flush()
}

// Footer describes the position of a list page, e.g. "Page 1 of 3 (27 total)".
func Footer(page, maxPage, total int) string {
	if maxPage < page {
		maxPage = page
	}
	return fmt.Sprintf("Page %d of %d (%d total)", page, maxPage, total)
}

// Time formats a timestamp in UTC, or "-" when unset.
func Time(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(timeLayout)
}

// Date formats a timestamp as a UTC calendar date, or "-" when unset.
func Date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("2006-01-02")
}

// Amount formats an amount in the smallest currency unit, e.g. 1500 "usd"
// becomes "15.00 USD".
func Amount(minor int, currency string) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	s := fmt.Sprintf("%s%d.%02d", sign, minor/100, minor%100)
	if currency == "" {
		return s
	}
	return s + " " + strings.ToUpper(currency)
}

// Bool renders a flag as "yes" or "no".
func Bool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// Count renders an integer for a table cell.
func Count(n int) string {
	return strconv.Itoa(n)
}
