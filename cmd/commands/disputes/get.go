package disputes

import (
	"context"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/output"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

// GetCommand returns the "disputes get" command.
func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>...",
		Short: "Show one or more disputes",
		Args:  cobra.MinimumNArgs(1),
		RunE: clierr.Handle(func(cmd *cobra.Command, args []string) error {
			client, err := cmdutil.NewClient(cmd)
			if err != nil {
				return err
			}

			disputes, err := cmdutil.Spin(cmd, "Fetching disputes...", func(ctx context.Context) ([]*polar.Dispute, error) {
				return cmdutil.FetchEach(ctx, args, client.GetDispute)
			})
			if err != nil {
				return err
			}

			return cmdutil.PrintFetched(cmd, disputes, disputeTable, disputeDetail)
		}),
	}
}

func disputeTable(disputes []polar.Dispute) *output.TableView {
	view := &output.TableView{
		Headers: []string{"ID", "Status", "Amount", "Order", "Resolved", "Created"},
		Empty:   "No disputes found.",
	}
	for _, d := range disputes {
		view.AddRow(d.ID, d.Status, output.Amount(d.Amount, d.Currency), d.OrderID, output.Bool(d.Resolved), output.Date(d.CreatedAt))
	}
	return view
}

func disputeDetail(d *polar.Dispute) *output.DetailView {
	var view output.DetailView
	view.Add("ID", d.ID)
	view.Add("Status", d.Status)
	view.Add("Amount", output.Amount(d.Amount, d.Currency))
	view.Add("Tax", output.Amount(d.TaxAmount, d.Currency))
	view.Add("Resolved", output.Bool(d.Resolved))
	view.Add("Closed", output.Bool(d.Closed))
	view.Add("Order", d.OrderID)
	view.Add("Payment", d.PaymentID)
	view.Add("Created", output.Time(d.CreatedAt))
	return &view
}
