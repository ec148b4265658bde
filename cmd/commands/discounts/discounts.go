package discounts

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "discounts" command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "discounts",
		Aliases: []string{"discount"},
		Short:   "List and inspect discounts",
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
