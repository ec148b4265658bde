package checkoutlinks

import (
	"context"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

// GetCommand returns the "checkout-links get" command.
func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>...",
		Short: "Show one or more checkout links",
		Args:  cobra.MinimumNArgs(1),
		RunE: clierr.Handle(func(cmd *cobra.Command, args []string) error {
			client, err := cmdutil.NewClient(cmd)
			if err != nil {
				return err
			}

			links, err := cmdutil.Spin(cmd, "Fetching checkout links...", func(ctx context.Context) ([]*polar.CheckoutLink, error) {
				return cmdutil.FetchEach(ctx, args, client.GetCheckoutLink)
			})
			if err != nil {
				return err
			}

			return cmdutil.PrintFetched(cmd, links, linkTable, linkDetail)
		}),
	}
}
