package webhooks

import (
	"context"
	"fmt"
	"strings"

	"nathanbeddoewebdev/polar/internal/auditlog"
	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/output"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

// CreateCommand returns the "webhooks create" command.
func CreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a webhook endpoint",
		Long: `Create a webhook endpoint that receives the given events.

The signing secret is only shown once, right after creation.

Examples:
  polar webhooks create --url https://example.com/hooks --event order.created
  polar webhooks create --url https://example.com/hooks \
    --event subscription.created --event subscription.canceled --format slack`,
		Args: cobra.NoArgs,
		RunE: clierr.Handle(cmdutil.Audited(runCreate)),
	}

	cmdutil.AddOrgFlag(cmd)
	cmd.Flags().String("url", "", "HTTPS URL that receives deliveries (required)")
	cmd.Flags().StringSlice("event", nil, "Event to deliver (repeatable, required)")
	cmd.Flags().String("format", "raw", "Payload format: raw, discord, slack")
	cmd.Flags().String("secret", "", "Signing secret (generated by Polar when omitted)")
	cmd.MarkFlagRequired("url")
	cmd.MarkFlagRequired("event")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	orgFlag, _ := cmd.Flags().GetString("org")
	orgID, err := cmdutil.ResolveOrgID(cmd, orgFlag)
	if err != nil {
		return err
	}

	rawURL, _ := cmd.Flags().GetString("url")
	events, _ := cmd.Flags().GetStringSlice("event")
	format, _ := cmd.Flags().GetString("format")
	secret, _ := cmd.Flags().GetString("secret")

	in := polar.WebhookEndpointCreate{
		URL:            strings.TrimSpace(rawURL),
		Format:         strings.ToLower(strings.TrimSpace(format)),
		Events:         events,
		Secret:         secret,
		OrganizationID: orgID,
	}

	client, err := cmdutil.NewClient(cmd)
	if err != nil {
		return err
	}

	endpoint, err := cmdutil.Spin(cmd, "Creating webhook endpoint...", func(ctx context.Context) (*polar.WebhookEndpoint, error) {
		return client.CreateWebhookEndpoint(ctx, in)
	})
	if err != nil {
		return err
	}
	auditlog.SetResource(cmd.Context(), auditlog.Resource{Type: "webhook_endpoint", ID: endpoint.ID})

	printer := cmdutil.Printer(cmd)
	if printer.Format != output.Table {
		return printer.Item(endpoint, nil)
	}

	cmdutil.Success(cmd, "Created webhook endpoint %s", endpoint.ID)
	fmt.Fprintln(cmd.OutOrStdout())
	if err := webhookDetail(endpoint).Write(cmd.OutOrStdout()); err != nil {
		return err
	}
	if endpoint.Secret != "" {
		fmt.Fprintln(cmd.OutOrStdout(), "\nStore the secret now. It will not be shown again.")
	}
	return nil
}
