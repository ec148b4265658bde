package webhooks

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "webhooks" command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "webhooks",
		Aliases: []string{"webhook"},
		Short:   "Manage webhook endpoints",
		Long: `Manage the webhook endpoints that receive event deliveries for an
organization.`,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(GetCommand())
	cmd.AddCommand(CreateCommand())
	cmd.AddCommand(DeleteCommand())

	return cmd
}
