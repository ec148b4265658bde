package products

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "products" command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product"},
		Short:   "List and inspect products",
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
