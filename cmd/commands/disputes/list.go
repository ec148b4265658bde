package disputes

import (
	"context"
	"strings"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

// ListCommand returns the "disputes list" command.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List disputes of an organization",
		Long: `List payment disputes of an organization.

Statuses: ` + strings.Join(polar.DisputeStatuses, ", ") + `

Examples:
  polar disputes list --status needs_response`,
		Args: cobra.NoArgs,
		RunE: clierr.Handle(runList),
	}

	cmdutil.AddOrgFlag(cmd)
	cmdutil.AddPageFlags(cmd)
	cmd.Flags().String("order", "", "Only show disputes of this order ID")
	cmd.Flags().String("status", "", "Only show disputes in this status")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	base, err := cmdutil.ListParams(cmd)
	if err != nil {
		return err
	}
	order, _ := cmd.Flags().GetString("order")
	status, _ := cmd.Flags().GetString("status")
	params := polar.DisputeListParams{
		ListParams: base,
		OrderID:    strings.TrimSpace(order),
		Status:     strings.TrimSpace(status),
	}

	client, err := cmdutil.NewClient(cmd)
	if err != nil {
		return err
	}

	page, err := cmdutil.Spin(cmd, "Fetching disputes...", func(ctx context.Context) (*polar.ListResource[polar.Dispute], error) {
		return client.ListDisputes(ctx, params)
	})
	if err != nil {
		return err
	}

	return cmdutil.PrintPage(cmd, page, base, disputeTable)
}
