package metrics

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "metrics" command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Show revenue, order and subscription metrics",
	}

	cmd.AddCommand(ShowCommand())

	return cmd
}
