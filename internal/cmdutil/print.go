package cmdutil

import (
	"nathanbeddoewebdev/polar/internal/output"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

// PrintPage prints one page of a list endpoint. Table output gets a
// "Page N of M" footer; JSON and YAML encode the page with its pagination.
func PrintPage[T any](cmd *cobra.Command, page *polar.ListResource[T], params polar.ListParams, table func([]T) *output.TableView) error {
	view := table(page.Items)
	if len(page.Items) > 0 {
		view.Footer = output.Footer(params.Page, page.Pagination.MaxPage, page.Pagination.TotalCount)
	}
	return Printer(cmd).List(page, view)
}

// PrintFetched prints resources fetched by ID. A single resource uses the
// detail view; several are listed in the table view.
func PrintFetched[T any](cmd *cobra.Command, items []*T, table func([]T) *output.TableView, detail func(*T) *output.DetailView) error {
	p := Printer(cmd)
	if len(items) == 1 {
		return p.Item(items[0], detail(items[0]))
	}

	values := make([]T, len(items))
	for i, item := range items {
		values[i] = *item
	}
	return p.List(values, table(values))
}
