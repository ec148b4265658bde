package events

import (
	"context"
	"strings"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

// ListCommand returns the "events list" command.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events of an organization",
		Long: `List events of an organization, newest first.

Events with source "user" are ingested by your application; "system"
events are emitted by Polar itself.

Examples:
  polar events list --source user
  polar events list --name api.call --customer <customer-id>`,
		Args: cobra.NoArgs,
		RunE: clierr.Handle(runList),
	}

	cmdutil.AddOrgFlag(cmd)
	cmdutil.AddPageFlags(cmd)
	cmd.Flags().String("customer", "", "Only show events of this customer ID")
	cmd.Flags().String("name", "", "Only show events with this name")
	cmd.Flags().String("source", "", "Only show events from this source (system, user)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	base, err := cmdutil.ListParams(cmd)
	if err != nil {
		return err
	}
	customer, _ := cmd.Flags().GetString("customer")
	name, _ := cmd.Flags().GetString("name")
	source, _ := cmd.Flags().GetString("source")
	params := polar.EventListParams{
		ListParams: base,
		CustomerID: strings.TrimSpace(customer),
		Name:       strings.TrimSpace(name),
		Source:     strings.TrimSpace(source),
	}

	client, err := cmdutil.NewClient(cmd)
	if err != nil {
		return err
	}

	page, err := cmdutil.Spin(cmd, "Fetching events...", func(ctx context.Context) (*polar.ListResource[polar.Event], error) {
		return client.ListEvents(ctx, params)
	})
	if err != nil {
		return err
	}

	return cmdutil.PrintPage(cmd, page, base, eventTable)
}
