package webhooks

import (
	"context"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

// ListCommand returns the "webhooks list" command.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List webhook endpoints",
		Args:  cobra.NoArgs,
		RunE: clierr.Handle(func(cmd *cobra.Command, args []string) error {
			params, err := cmdutil.ListParams(cmd)
			if err != nil {
				return err
			}
			client, err := cmdutil.NewClient(cmd)
			if err != nil {
				return err
			}

			page, err := cmdutil.Spin(cmd, "Fetching webhook endpoints...", func(ctx context.Context) (*polar.ListResource[polar.WebhookEndpoint], error) {
				return client.ListWebhookEndpoints(ctx, params)
			})
			if err != nil {
				return err
			}

			return cmdutil.PrintPage(cmd, page, params, webhookTable)
		}),
	}

	cmdutil.AddOrgFlag(cmd)
	cmdutil.AddPageFlags(cmd)

	return cmd
}

// GetCommand returns the "webhooks get" command.
func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>...",
		Short: "Show one or more webhook endpoints",
		Args:  cobra.MinimumNArgs(1),
		RunE: clierr.Handle(func(cmd *cobra.Command, args []string) error {
			client, err := cmdutil.NewClient(cmd)
			if err != nil {
				return err
			}

			endpoints, err := cmdutil.Spin(cmd, "Fetching webhook endpoints...", func(ctx context.Context) ([]*polar.WebhookEndpoint, error) {
				return cmdutil.FetchEach(ctx, args, client.GetWebhookEndpoint)
			})
			if err != nil {
				return err
			}
			// The signing secret is only ever printed by create.
			for _, e := range endpoints {
				e.Secret = ""
			}

			return cmdutil.PrintFetched(cmd, endpoints, webhookTable, webhookDetail)
		}),
	}
}
