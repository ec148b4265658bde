package disputes

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "disputes" command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "disputes",
		Aliases: []string{"dispute"},
		Short:   "List and inspect payment disputes",
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
