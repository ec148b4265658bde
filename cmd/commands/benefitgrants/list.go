package benefitgrants

import (
	"context"
	"strings"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/output"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

// ListCommand returns the "benefit-grants list" command.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers granted a benefit",
		Long: `List the grants of a benefit, one per customer.

Without --granted both active and revoked grants are listed.

Examples:
  polar benefit-grants list --benefit <benefit-id>
  polar benefit-grants list --benefit <benefit-id> --granted=false`,
		Args: cobra.NoArgs,
		RunE: clierr.Handle(runList),
	}

	cmdutil.AddPageFlags(cmd)
	cmd.Flags().String("benefit", "", "Benefit ID (required)")
	cmd.Flags().String("customer", "", "Only show grants of this customer ID")
	cmd.Flags().Bool("granted", false, "Only granted benefits (--granted=false for revoked ones)")
	cmd.MarkFlagRequired("benefit")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	page, _ := cmd.Flags().GetInt("page")
	limit, _ := cmd.Flags().GetInt("limit")
	benefit, _ := cmd.Flags().GetString("benefit")
	customer, _ := cmd.Flags().GetString("customer")

	base := polar.ListParams{Page: page, Limit: limit}
	params := polar.BenefitGrantListParams{
		ListParams: base,
		BenefitID:  strings.TrimSpace(benefit),
		CustomerID: strings.TrimSpace(customer),
	}
	if cmd.Flags().Changed("granted") {
		granted, _ := cmd.Flags().GetBool("granted")
		params.Granted = &granted
	}

	client, err := cmdutil.NewClient(cmd)
	if err != nil {
		return err
	}

	grants, err := cmdutil.Spin(cmd, "Fetching benefit grants...", func(ctx context.Context) (*polar.ListResource[polar.BenefitGrant], error) {
		return client.ListBenefitGrants(ctx, params)
	})
	if err != nil {
		return err
	}

	return cmdutil.PrintPage(cmd, grants, base, grantTable)
}

func grantTable(grants []polar.BenefitGrant) *output.TableView {
	view := &output.TableView{
		Headers: []string{"ID", "Customer", "Status", "Since", "Created"},
		Empty:   "No grants found.",
	}
	for _, g := range grants {
		view.AddRow(g.ID, g.CustomerID, grantStatus(g), grantSince(g), output.Date(g.CreatedAt))
	}
	return view
}

// grantStatus is "revoked", "granted" or "pending" for a grant that is
// still being processed.
func grantStatus(g polar.BenefitGrant) string {
	switch {
	case g.IsRevoked:
		return "revoked"
	case g.IsGranted:
		return "granted"
	default:
		return "pending"
	}
}

// grantSince is the date of the grant's current status.
func grantSince(g polar.BenefitGrant) string {
	switch {
	case g.IsRevoked && g.RevokedAt != nil:
		return output.Date(*g.RevokedAt)
	case g.IsGranted && g.GrantedAt != nil:
		return output.Date(*g.GrantedAt)
	default:
		return "-"
	}
}
