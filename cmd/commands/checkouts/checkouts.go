package checkouts

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "checkouts" command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "checkouts",
		Aliases: []string{"checkout"},
		Short:   "List and inspect checkout sessions",
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
