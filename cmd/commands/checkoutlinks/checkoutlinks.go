package checkoutlinks

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "checkout-links" command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "checkout-links",
		Aliases: []string{"checkout-link"},
		Short:   "List and inspect checkout links",
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
