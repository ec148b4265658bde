package orders

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "orders" command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orders",
		Aliases: []string{"order"},
		Short:   "List and inspect orders",
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
