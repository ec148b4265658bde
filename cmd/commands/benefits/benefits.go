package benefits

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "benefits" command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "benefits",
		Aliases: []string{"benefit"},
		Short:   "List and inspect benefits",
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
