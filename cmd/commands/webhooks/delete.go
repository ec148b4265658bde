package webhooks

import (
	"context"
	"fmt"

	"nathanbeddoewebdev/polar/internal/auditlog"
	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"

	"github.com/spf13/cobra"
)

// DeleteCommand returns the "webhooks delete" command.
func DeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a webhook endpoint",
		Long: `Delete a webhook endpoint. Deliveries to it stop immediately.

Asks for confirmation unless --yes is given. Without a terminal --yes is
required.`,
		Args: cobra.ExactArgs(1),
		RunE: clierr.Handle(cmdutil.Audited(runDelete)),
	}

	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	id := args[0]
	auditlog.SetResource(cmd.Context(), auditlog.Resource{Type: "webhook_endpoint", ID: id})
	yes, _ := cmd.Flags().GetBool("yes")

	client, err := cmdutil.NewClient(cmd)
	if err != nil {
		return err
	}

	ok, err := cmdutil.Confirm(cmd, fmt.Sprintf("Delete webhook endpoint %s?", id), "Delete", yes)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(cmd.ErrOrStderr(), "Aborted.")
		return clierr.Exit(clierr.ExitFailure)
	}

	_, err = cmdutil.Spin(cmd, "Deleting webhook endpoint...", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, client.DeleteWebhookEndpoint(ctx, id)
	})
	if err != nil {
		return err
	}

	cmdutil.Success(cmd, "Deleted webhook endpoint %s", id)
	return nil
}
