package members

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "members" command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "members",
		Aliases: []string{"member"},
		Short:   "List and inspect members of business customers",
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
