package checkoutlinks

import (
	"context"
	"strings"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

// ListCommand returns the "checkout-links list" command.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List checkout links of an organization",
		Long: `List checkout links of an organization.

Examples:
  polar checkout-links list
  polar checkout-links list --product <product-id>`,
		Args: cobra.NoArgs,
		RunE: clierr.Handle(runList),
	}

	cmdutil.AddOrgFlag(cmd)
	cmdutil.AddPageFlags(cmd)
	cmd.Flags().String("product", "", "Only show links selling this product ID")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	base, err := cmdutil.ListParams(cmd)
	if err != nil {
		return err
	}
	product, _ := cmd.Flags().GetString("product")
	params := polar.CheckoutLinkListParams{ListParams: base, ProductID: strings.TrimSpace(product)}

	client, err := cmdutil.NewClient(cmd)
	if err != nil {
		return err
	}

	page, err := cmdutil.Spin(cmd, "Fetching checkout links...", func(ctx context.Context) (*polar.ListResource[polar.CheckoutLink], error) {
		return client.ListCheckoutLinks(ctx, params)
	})
	if err != nil {
		return err
	}

	return cmdutil.PrintPage(cmd, page, base, linkTable)
}
