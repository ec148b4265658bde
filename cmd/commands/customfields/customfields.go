package customfields

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "custom-fields" command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "custom-fields",
		Aliases: []string{"custom-field"},
		Short:   "List and inspect checkout custom fields",
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
