package products

import (
	"context"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

// ListCommand returns the "products list" command.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products of an organization",
		Long: `List products of an organization, one page at a time.

Examples:
  polar products list
  polar products list --org <id> --limit 50
  polar products list --page 2 -o yaml`,
		Args: cobra.NoArgs,
		RunE: clierr.Handle(func(cmd *cobra.Command, args []string) error {
			params, err := cmdutil.ListParams(cmd)
			if err != nil {
				return err
			}
			client, err := cmdutil.NewClient(cmd)
			if err != nil {
				return err
			}

			page, err := cmdutil.Spin(cmd, "Fetching products...", func(ctx context.Context) (*polar.ListResource[polar.Product], error) {
				return client.ListProducts(ctx, params)
			})
			if err != nil {
				return err
			}

			return cmdutil.PrintPage(cmd, page, params, productTable)
		}),
	}

	cmdutil.AddOrgFlag(cmd)
	cmdutil.AddPageFlags(cmd)

	return cmd
}
