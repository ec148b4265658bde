package payments

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "payments" command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "payments",
		Aliases: []string{"payment"},
		Short:   "List and inspect payment attempts",
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
