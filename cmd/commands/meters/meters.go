package meters

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "meters" command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "meters",
		Aliases: []string{"meter"},
		Short:   "List and inspect usage meters",
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
