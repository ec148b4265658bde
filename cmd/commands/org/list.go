package org

import (
	"context"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

// ListCommand returns the "org list" command.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List organizations",
		Long: `List the organizations the current token can access.

Examples:
  polar org list
  polar org list --limit 50 -o json`,
		Args: cobra.NoArgs,
		RunE: clierr.Handle(runList),
	}

	cmdutil.AddPageFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	client, err := cmdutil.NewClient(cmd)
	if err != nil {
		return err
	}

	page, _ := cmd.Flags().GetInt("page")
	limit, _ := cmd.Flags().GetInt("limit")
	params := polar.ListParams{Page: page, Limit: limit}

	result, err := cmdutil.Spin(cmd, "Fetching organizations...", func(ctx context.Context) (*polar.ListResource[polar.Organization], error) {
		return client.ListOrganizations(ctx, params)
	})
	if err != nil {
		return err
	}

	return cmdutil.PrintPage(cmd, result, params, orgTable)
}
