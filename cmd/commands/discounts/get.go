package discounts

import (
	"context"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

// GetCommand returns the "discounts get" command.
func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>...",
		Short: "Show one or more discounts",
		Args:  cobra.MinimumNArgs(1),
		RunE: clierr.Handle(func(cmd *cobra.Command, args []string) error {
			client, err := cmdutil.NewClient(cmd)
			if err != nil {
				return err
			}

			discounts, err := cmdutil.Spin(cmd, "Fetching discounts...", func(ctx context.Context) ([]*polar.Discount, error) {
				return cmdutil.FetchEach(ctx, args, client.GetDiscount)
			})
			if err != nil {
				return err
			}

			return cmdutil.PrintFetched(cmd, discounts, discountTable, discountDetail)
		}),
	}
}
