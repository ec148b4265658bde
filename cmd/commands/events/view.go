package events

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"nathanbeddoewebdev/polar/internal/output"
	"nathanbeddoewebdev/polar/internal/polar"
)

func eventTable(events []polar.Event) *output.TableView {
	view := &output.TableView{
		Headers: []string{"ID", "Name", "Source", "Customer", "Timestamp"},
		Empty:   "No events found.",
	}
	for _, e := range events {
		view.AddRow(e.ID, e.Name, e.Source, customerLabel(e), output.Time(e.Timestamp))
	}
	return view
}

func eventDetail(e *polar.Event) *output.DetailView {
	var view output.DetailView
	view.Add("ID", e.ID)
	view.Add("Name", e.Name)
	view.Add("Source", e.Source)
	view.Add("Customer", e.CustomerID)
	view.Add("External customer", e.ExternalCustomerID)
	view.Add("Metadata", formatMetadata(e.Metadata))
	view.Add("Timestamp", output.Time(e.Timestamp))
	return &view
}

func customerLabel(e polar.Event) string {
	switch {
	case e.CustomerID != "":
		return e.CustomerID
	case e.ExternalCustomerID != "":
		return e.ExternalCustomerID
	default:
		return "-"
	}
}

// formatMetadata renders metadata as "key=value" pairs sorted by key.
func formatMetadata(m map[string]any) string {
	pairs := make([]string, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, m[k]))
	}
	return strings.Join(pairs, ", ")
}
