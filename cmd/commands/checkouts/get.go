package checkouts

import (
	"context"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/output"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

// GetCommand returns the "checkouts get" command.
func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>...",
		Short: "Show one or more checkout sessions",
		Args:  cobra.MinimumNArgs(1),
		RunE: clierr.Handle(func(cmd *cobra.Command, args []string) error {
			client, err := cmdutil.NewClient(cmd)
			if err != nil {
				return err
			}

			checkouts, err := cmdutil.Spin(cmd, "Fetching checkouts...", func(ctx context.Context) ([]*polar.Checkout, error) {
				return cmdutil.FetchEach(ctx, args, client.GetCheckout)
			})
			if err != nil {
				return err
			}

			return cmdutil.PrintFetched(cmd, checkouts, checkoutTable, checkoutDetail)
		}),
	}
}

func checkoutTable(checkouts []polar.Checkout) *output.TableView {
	view := &output.TableView{
		Headers: []string{"ID", "Status", "Amount", "Customer", "Created"},
		Empty:   "No checkouts found.",
	}
	for _, c := range checkouts {
		view.AddRow(c.ID, c.Status, output.Amount(c.Amount, c.Currency), customerLabel(c), output.Date(c.CreatedAt))
	}
	return view
}

func checkoutDetail(c *polar.Checkout) *output.DetailView {
	var view output.DetailView
	view.Add("ID", c.ID)
	view.Add("Status", c.Status)
	view.Add("Amount", output.Amount(c.Amount, c.Currency))
	view.Add("Product", c.ProductID)
	view.Add("Customer", c.CustomerID)
	view.Add("Customer email", c.CustomerEmail)
	view.Add("URL", c.URL)
	if c.ExpiresAt != nil {
		view.Add("Expires", output.Time(*c.ExpiresAt))
	}
	view.Add("Created", output.Time(c.CreatedAt))
	return &view
}

// customerLabel prefers the email entered at checkout over the customer ID.
func customerLabel(c polar.Checkout) string {
	switch {
	case c.CustomerEmail != "":
		return c.CustomerEmail
	case c.CustomerID != "":
		return c.CustomerID
	default:
		return "-"
	}
}
