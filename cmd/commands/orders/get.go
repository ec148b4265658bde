package orders

import (
	"context"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/output"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

// GetCommand returns the "orders get" command.
func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>...",
		Short: "Show one or more orders",
		Args:  cobra.MinimumNArgs(1),
		RunE: clierr.Handle(func(cmd *cobra.Command, args []string) error {
			client, err := cmdutil.NewClient(cmd)
			if err != nil {
				return err
			}

			orders, err := cmdutil.Spin(cmd, "Fetching orders...", func(ctx context.Context) ([]*polar.Order, error) {
				return cmdutil.FetchEach(ctx, args, client.GetOrder)
			})
			if err != nil {
				return err
			}

			return cmdutil.PrintFetched(cmd, orders, orderTable, orderDetail)
		}),
	}
}

func orderTable(orders []polar.Order) *output.TableView {
	view := &output.TableView{
		Headers: []string{"ID", "Status", "Amount", "Customer", "Created"},
		Empty:   "No orders found.",
	}
	for _, o := range orders {
		view.AddRow(o.ID, o.Status, output.Amount(o.TotalAmount, o.Currency), o.CustomerID, output.Date(o.CreatedAt))
	}
	return view
}

func orderDetail(o *polar.Order) *output.DetailView {
	var view output.DetailView
	view.Add("ID", o.ID)
	view.Add("Status", o.Status)
	view.Add("Amount", output.Amount(o.TotalAmount, o.Currency))
	view.Add("Billing reason", o.BillingReason)
	view.Add("Customer", o.CustomerID)
	view.Add("Product", o.ProductID)
	view.Add("Subscription", o.SubscriptionID)
	view.Add("Created", output.Time(o.CreatedAt))
	return &view
}
