package meters

import (
	"context"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/output"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

// GetCommand returns the "meters get" command.
func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>...",
		Short: "Show one or more meters",
		Args:  cobra.MinimumNArgs(1),
		RunE: clierr.Handle(func(cmd *cobra.Command, args []string) error {
			client, err := cmdutil.NewClient(cmd)
			if err != nil {
				return err
			}

			meters, err := cmdutil.Spin(cmd, "Fetching meters...", func(ctx context.Context) ([]*polar.Meter, error) {
				return cmdutil.FetchEach(ctx, args, client.GetMeter)
			})
			if err != nil {
				return err
			}

			return cmdutil.PrintFetched(cmd, meters, meterTable, meterDetail)
		}),
	}
}

func meterTable(meters []polar.Meter) *output.TableView {
	view := &output.TableView{
		Headers: []string{"ID", "Name", "Aggregation", "Created"},
		Empty:   "No meters found.",
	}
	for _, m := range meters {
		view.AddRow(m.ID, m.Name, aggregation(m.Aggregation), output.Date(m.CreatedAt))
	}
	return view
}

func meterDetail(m *polar.Meter) *output.DetailView {
	var view output.DetailView
	view.Add("ID", m.ID)
	view.Add("Name", m.Name)
	view.Add("Aggregation", aggregation(m.Aggregation))
	view.Add("Organization", m.OrganizationID)
	view.Add("Created", output.Time(m.CreatedAt))
	return &view
}

// aggregation renders "sum(tokens)", or just "count" for functions without
// a property.
func aggregation(a polar.MeterAggregation) string {
	if a.Property == "" {
		return a.Func
	}
	return a.Func + "(" + a.Property + ")"
}
