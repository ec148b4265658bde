package benefits

import (
	"context"
	"strings"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

// ListCommand returns the "benefits list" command.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List benefits of an organization",
		Long: `List benefits of an organization.

Types: ` + strings.Join(polar.BenefitTypes, ", ") + `

Examples:
  polar benefits list
  polar benefits list --type license_keys`,
		Args: cobra.NoArgs,
		RunE: clierr.Handle(runList),
	}

	cmdutil.AddOrgFlag(cmd)
	cmdutil.AddPageFlags(cmd)
	cmd.Flags().String("type", "", "Only show benefits of this type")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	base, err := cmdutil.ListParams(cmd)
	if err != nil {
		return err
	}
	kind, _ := cmd.Flags().GetString("type")
	params := polar.BenefitListParams{ListParams: base, Type: strings.TrimSpace(kind)}

	client, err := cmdutil.NewClient(cmd)
	if err != nil {
		return err
	}

	page, err := cmdutil.Spin(cmd, "Fetching benefits...", func(ctx context.Context) (*polar.ListResource[polar.Benefit], error) {
		return client.ListBenefits(ctx, params)
	})
	if err != nil {
		return err
	}

	return cmdutil.PrintPage(cmd, page, base, benefitTable)
}
