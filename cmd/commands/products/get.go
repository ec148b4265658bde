package products

import (
	"context"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

// GetCommand returns the "products get" command.
func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>...",
		Short: "Show one or more products",
		Args:  cobra.MinimumNArgs(1),
		RunE: clierr.Handle(func(cmd *cobra.Command, args []string) error {
			client, err := cmdutil.NewClient(cmd)
			if err != nil {
				return err
			}

			products, err := cmdutil.Spin(cmd, "Fetching products...", func(ctx context.Context) ([]*polar.Product, error) {
				return cmdutil.FetchEach(ctx, args, client.GetProduct)
			})
			if err != nil {
				return err
			}

			return cmdutil.PrintFetched(cmd, products, productTable, productDetail)
		}),
	}
}
