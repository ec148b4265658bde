package payments

import (
	"context"
	"strings"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

// ListCommand returns the "payments list" command.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payments of an organization",
		Long: `List payment attempts of an organization, including declined ones.

Statuses: ` + strings.Join(polar.PaymentStatuses, ", ") + `

Examples:
  polar payments list --status failed
  polar payments list --order <order-id>`,
		Args: cobra.NoArgs,
		RunE: clierr.Handle(runList),
	}

	cmdutil.AddOrgFlag(cmd)
	cmdutil.AddPageFlags(cmd)
	cmd.Flags().String("order", "", "Only show payments of this order ID")
	cmd.Flags().String("checkout", "", "Only show payments of this checkout ID")
	cmd.Flags().String("status", "", "Only show payments in this status")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	base, err := cmdutil.ListParams(cmd)
	if err != nil {
		return err
	}
	order, _ := cmd.Flags().GetString("order")
	checkout, _ := cmd.Flags().GetString("checkout")
	status, _ := cmd.Flags().GetString("status")
	params := polar.PaymentListParams{
		ListParams: base,
		OrderID:    strings.TrimSpace(order),
		CheckoutID: strings.TrimSpace(checkout),
		Status:     strings.TrimSpace(status),
	}

	client, err := cmdutil.NewClient(cmd)
	if err != nil {
		return err
	}

	page, err := cmdutil.Spin(cmd, "Fetching payments...", func(ctx context.Context) (*polar.ListResource[polar.Payment], error) {
		return client.ListPayments(ctx, params)
	})
	if err != nil {
		return err
	}

	return cmdutil.PrintPage(cmd, page, base, paymentTable)
}
