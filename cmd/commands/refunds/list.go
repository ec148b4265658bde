package refunds

import (
	"context"
	"strings"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/output"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

// ListCommand returns the "refunds list" command.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List refunds of an organization",
		Long: `List refunds of an organization, newest first.

Without --succeeded refunds in every status are listed.

Examples:
  polar refunds list --order <order-id>
  polar refunds list --succeeded=false`,
		Args: cobra.NoArgs,
		RunE: clierr.Handle(runList),
	}

	cmdutil.AddOrgFlag(cmd)
	cmdutil.AddPageFlags(cmd)
	cmd.Flags().String("order", "", "Only show refunds of this order ID")
	cmd.Flags().String("subscription", "", "Only show refunds of this subscription ID")
	cmd.Flags().String("customer", "", "Only show refunds of this customer ID")
	cmd.Flags().Bool("succeeded", false, "Only succeeded refunds (--succeeded=false for the rest)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	base, err := cmdutil.ListParams(cmd)
	if err != nil {
		return err
	}
	order, _ := cmd.Flags().GetString("order")
	subscription, _ := cmd.Flags().GetString("subscription")
	customer, _ := cmd.Flags().GetString("customer")
	params := polar.RefundListParams{
		ListParams:     base,
		OrderID:        strings.TrimSpace(order),
		SubscriptionID: strings.TrimSpace(subscription),
		CustomerID:     strings.TrimSpace(customer),
	}
	if cmd.Flags().Changed("succeeded") {
		succeeded, _ := cmd.Flags().GetBool("succeeded")
		params.Succeeded = &succeeded
	}

	client, err := cmdutil.NewClient(cmd)
	if err != nil {
		return err
	}

	page, err := cmdutil.Spin(cmd, "Fetching refunds...", func(ctx context.Context) (*polar.ListResource[polar.Refund], error) {
		return client.ListRefunds(ctx, params)
	})
	if err != nil {
		return err
	}

	return cmdutil.PrintPage(cmd, page, base, refundTable)
}

func refundTable(refunds []polar.Refund) *output.TableView {
	view := &output.TableView{
		Headers: []string{"ID", "Status", "Reason", "Amount", "Order", "Created"},
		Empty:   "No refunds found.",
	}
	for _, r := range refunds {
		view.AddRow(r.ID, r.Status, r.Reason, output.Amount(r.Amount, r.Currency), r.OrderID, output.Date(r.CreatedAt))
	}
	return view
}
