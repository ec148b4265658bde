package events

import (
	"context"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

// GetCommand returns the "events get" command.
func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>...",
		Short: "Show one or more events",
		Args:  cobra.MinimumNArgs(1),
		RunE: clierr.Handle(func(cmd *cobra.Command, args []string) error {
			client, err := cmdutil.NewClient(cmd)
			if err != nil {
				return err
			}

			events, err := cmdutil.Spin(cmd, "Fetching events...", func(ctx context.Context) ([]*polar.Event, error) {
				return cmdutil.FetchEach(ctx, args, client.GetEvent)
			})
			if err != nil {
				return err
			}

			return cmdutil.PrintFetched(cmd, events, eventTable, eventDetail)
		}),
	}
}
