package eventtypes

import (
	"context"
	"strings"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/output"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

// ListCommand returns the "event-types list" command.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List event types with their occurrence counts",
		Args:  cobra.NoArgs,
		RunE:  clierr.Handle(runList),
	}

	cmdutil.AddOrgFlag(cmd)
	cmdutil.AddPageFlags(cmd)
	cmd.Flags().String("query", "", "Only show event types whose name matches")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	base, err := cmdutil.ListParams(cmd)
	if err != nil {
		return err
	}
	query, _ := cmd.Flags().GetString("query")
	params := polar.SearchListParams{ListParams: base, Query: strings.TrimSpace(query)}

	client, err := cmdutil.NewClient(cmd)
	if err != nil {
		return err
	}

	page, err := cmdutil.Spin(cmd, "Fetching event types...", func(ctx context.Context) (*polar.ListResource[polar.EventType], error) {
		return client.ListEventTypes(ctx, params)
	})
	if err != nil {
		return err
	}

	return cmdutil.PrintPage(cmd, page, base, typeTable)
}

func typeTable(types []polar.EventType) *output.TableView {
	view := &output.TableView{
		Headers: []string{"Name", "Label", "Occurrences", "First seen", "Last seen"},
		Empty:   "No event types found.",
	}
	for _, et := range types {
		view.AddRow(et.Name, et.Label, output.Count(et.Occurrences), output.Date(et.FirstSeen), output.Date(et.LastSeen))
	}
	return view
}
