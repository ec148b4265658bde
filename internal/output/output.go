// Package output renders API resources as tables, JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"nathanbeddoewebdev/polar/internal/util"

	"gopkg.in/yaml.v3"
)

// Format is an output format selected with --output.
type Format string

const (
	Table Format = "table"
	JSON  Format = "json"
	YAML  Format = "yaml"
)

// Formats lists every supported format in help order.
func Formats() []Format {
	return []Format{Table, JSON, YAML}
}

// ParseFormat accepts a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(util.NormalizeKey(s))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%q is not one of 'table', 'json', 'yaml'", s)
}

// Printer writes resources in a single format. The table view is supplied
// by the caller because only it knows which columns matter; JSON and YAML
// encode the resource itself.
type Printer struct {
	Out    io.Writer
	Format Format
}

// NewPrinter returns a printer writing to w.
func NewPrinter(w io.Writer, f Format) *Printer {
	return &Printer{Out: w, Format: f}
}

// List prints a collection. view is only consulted for table output.
func (p *Printer) List(data any, view *TableView) error {
	if p.Format == Table {
		return view.Write(p.Out)
	}
	return p.encode(data)
}

// Item prints a single resource. view is only consulted for table output.
func (p *Printer) Item(data any, view *DetailView) error {
	if p.Format == Table {
		return view.Write(p.Out)
	}
	return p.encode(data)
}

func (p *Printer) encode(data any) error {
	switch p.Format {
	case JSON:
		return WriteJSON(p.Out, data)
	case YAML:
		return WriteYAML(p.Out, data)
	default:
		return fmt.Errorf("output: unsupported format %q", p.Format)
	}
}

// WriteJSON encodes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("output: failed to encode JSON: %w", err)
	}
	return nil
}

// WriteYAML encodes v as YAML. Values go through JSON first so field names
// and omitted fields match the JSON output.
func WriteYAML(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("output: failed to encode YAML: %w", err)
	}

	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("output: failed to encode YAML: %w", err)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return fmt.Errorf("output: failed to encode YAML: %w", err)
	}
	return enc.Close()
}

// Plural returns "1 order" or "3 orders".
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	if strings.HasSuffix(noun, "y") && !strings.HasSuffix(noun, "ey") {
		return fmt.Sprintf("%d %sies", n, strings.TrimSuffix(noun, "y"))
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
