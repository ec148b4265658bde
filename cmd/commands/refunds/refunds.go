package refunds

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "refunds" command group. Refunds are only listed;
// the API has no endpoint for a single refund.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "refunds",
		Aliases: []string{"refund"},
		Short:   "List refunds",
	}

	cmd.AddCommand(ListCommand())

	return cmd
}
