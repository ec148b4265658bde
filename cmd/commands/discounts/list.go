package discounts

import (
	"context"
	"strings"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

// ListCommand returns the "discounts list" command.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List discounts of an organization",
		Long: `List discounts of an organization, optionally searching by name.

Examples:
  polar discounts list
  polar discounts list --query launch`,
		Args: cobra.NoArgs,
		RunE: clierr.Handle(runList),
	}

	cmdutil.AddOrgFlag(cmd)
	cmdutil.AddPageFlags(cmd)
	cmd.Flags().String("query", "", "Only show discounts whose name matches")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	base, err := cmdutil.ListParams(cmd)
	if err != nil {
		return err
	}
	query, _ := cmd.Flags().GetString("query")
	params := polar.SearchListParams{ListParams: base, Query: strings.TrimSpace(query)}

	client, err := cmdutil.NewClient(cmd)
	if err != nil {
		return err
	}

	page, err := cmdutil.Spin(cmd, "Fetching discounts...", func(ctx context.Context) (*polar.ListResource[polar.Discount], error) {
		return client.ListDiscounts(ctx, params)
	})
	if err != nil {
		return err
	}

	return cmdutil.PrintPage(cmd, page, base, discountTable)
}
