package org

import (
	"context"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

// GetCommand returns the "org get" command.
func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>...",
		Short: "Show one or more organizations",
		Args:  cobra.MinimumNArgs(1),
		RunE: clierr.Handle(func(cmd *cobra.Command, args []string) error {
			client, err := cmdutil.NewClient(cmd)
			if err != nil {
				return err
			}

			orgs, err := cmdutil.Spin(cmd, "Fetching organization...", func(ctx context.Context) ([]*polar.Organization, error) {
				return cmdutil.FetchEach(ctx, args, client.GetOrganization)
			})
			if err != nil {
				return err
			}

			return cmdutil.PrintFetched(cmd, orgs, orgTable, orgDetail)
		}),
	}
}
