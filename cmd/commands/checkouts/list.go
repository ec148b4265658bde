package checkouts

import (
	"context"
	"strings"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

// ListCommand returns the "checkouts list" command.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List checkout sessions of an organization",
		Long: `List checkout sessions of an organization, newest first.

Statuses: ` + strings.Join(polar.CheckoutStatuses, ", ") + `

Examples:
  polar checkouts list --status open
  polar checkouts list --customer <customer-id>`,
		Args: cobra.NoArgs,
		RunE: clierr.Handle(runList),
	}

	cmdutil.AddOrgFlag(cmd)
	cmdutil.AddPageFlags(cmd)
	cmd.Flags().String("product", "", "Only show checkouts of this product ID")
	cmd.Flags().String("customer", "", "Only show checkouts of this customer ID")
	cmd.Flags().String("status", "", "Only show checkouts in this status")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	base, err := cmdutil.ListParams(cmd)
	if err != nil {
		return err
	}
	product, _ := cmd.Flags().GetString("product")
	customer, _ := cmd.Flags().GetString("customer")
	status, _ := cmd.Flags().GetString("status")
	params := polar.CheckoutListParams{
		ListParams: base,
		ProductID:  strings.TrimSpace(product),
		CustomerID: strings.TrimSpace(customer),
		Status:     strings.TrimSpace(status),
	}

	client, err := cmdutil.NewClient(cmd)
	if err != nil {
		return err
	}

	page, err := cmdutil.Spin(cmd, "Fetching checkouts...", func(ctx context.Context) (*polar.ListResource[polar.Checkout], error) {
		return client.ListCheckouts(ctx, params)
	})
	if err != nil {
		return err
	}

	return cmdutil.PrintPage(cmd, page, base, checkoutTable)
}
