package subscriptions

import (
	"context"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

// NewCommand returns the "subscriptions" command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscriptions",
		Aliases: []string{"subscription", "subs"},
		Short:   "List and inspect subscriptions",
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}

// ListCommand returns the "subscriptions list" command.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subscriptions of an organization",
		Long: `List subscriptions of an organization.

Without --active both active and ended subscriptions are listed.

Examples:
  polar subscriptions list --active
  polar subscriptions list --active=false -o json`,
		Args: cobra.NoArgs,
		RunE: clierr.Handle(runList),
	}

	cmdutil.AddOrgFlag(cmd)
	cmdutil.AddPageFlags(cmd)
	cmd.Flags().Bool("active", false, "Only active subscriptions (--active=false for ended ones)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	base, err := cmdutil.ListParams(cmd)
	if err != nil {
		return err
	}
	params := polar.SubscriptionListParams{ListParams: base}
	if cmd.Flags().Changed("active") {
		active, _ := cmd.Flags().GetBool("active")
		params.Active = &active
	}

	client, err := cmdutil.NewClient(cmd)
	if err != nil {
		return err
	}

	page, err := cmdutil.Spin(cmd, "Fetching subscriptions...", func(ctx context.Context) (*polar.ListResource[polar.Subscription], error) {
		return client.ListSubscriptions(ctx, params)
	})
	if err != nil {
		return err
	}

	return cmdutil.PrintPage(cmd, page, base, subscriptionTable)
}

// GetCommand returns the "subscriptions get" command.
func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>...",
		Short: "Show one or more subscriptions",
		Args:  cobra.MinimumNArgs(1),
		RunE: clierr.Handle(func(cmd *cobra.Command, args []string) error {
			client, err := cmdutil.NewClient(cmd)
			if err != nil {
				return err
			}

			subs, err := cmdutil.Spin(cmd, "Fetching subscriptions...", func(ctx context.Context) ([]*polar.Subscription, error) {
				return cmdutil.FetchEach(ctx, args, client.GetSubscription)
			})
			if err != nil {
				return err
			}

			return cmdutil.PrintFetched(cmd, subs, subscriptionTable, subscriptionDetail)
		}),
	}
}
