package eventtypes

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "event-types" command group. Event types are only
// listed; the API has no endpoint for a single type.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "event-types",
		Aliases: []string{"event-type"},
		Short:   "List the event names seen for an organization",
	}

	cmd.AddCommand(ListCommand())

	return cmd
}
