package payments

import (
	"context"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/output"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

// GetCommand returns the "payments get" command.
func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>...",
		Short: "Show one or more payments",
		Args:  cobra.MinimumNArgs(1),
		RunE: clierr.Handle(func(cmd *cobra.Command, args []string) error {
			client, err := cmdutil.NewClient(cmd)
			if err != nil {
				return err
			}

			payments, err := cmdutil.Spin(cmd, "Fetching payments...", func(ctx context.Context) ([]*polar.Payment, error) {
				return cmdutil.FetchEach(ctx, args, client.GetPayment)
			})
			if err != nil {
				return err
			}

			return cmdutil.PrintFetched(cmd, payments, paymentTable, paymentDetail)
		}),
	}
}

func paymentTable(payments []polar.Payment) *output.TableView {
	view := &output.TableView{
		Headers: []string{"ID", "Status", "Amount", "Method", "Order", "Created"},
		Empty:   "No payments found.",
	}
	for _, p := range payments {
		order := p.OrderID
		if order == "" {
			order = "-"
		}
		view.AddRow(p.ID, p.Status, output.Amount(p.Amount, p.Currency), p.Method, order, output.Date(p.CreatedAt))
	}
	return view
}

func paymentDetail(p *polar.Payment) *output.DetailView {
	var view output.DetailView
	view.Add("ID", p.ID)
	view.Add("Status", p.Status)
	view.Add("Amount", output.Amount(p.Amount, p.Currency))
	view.Add("Method", p.Method)
	view.Add("Processor", p.Processor)
	view.Add("Decline reason", p.DeclineReason)
	view.Add("Order", p.OrderID)
	view.Add("Checkout", p.CheckoutID)
	view.Add("Created", output.Time(p.CreatedAt))
	return &view
}
