package events

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "events" command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "events",
		Aliases: []string{"event"},
		Short:   "List and inspect usage and system events",
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
