package licensekeys

import (
	"context"
	"strings"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

// ListCommand returns the "license-keys list" command.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List license keys of an organization",
		Long: `List license keys of an organization. Keys are shown masked.

Examples:
  polar license-keys list
  polar license-keys list --benefit <benefit-id>`,
		Args: cobra.NoArgs,
		RunE: clierr.Handle(runList),
	}

	cmdutil.AddOrgFlag(cmd)
	cmdutil.AddPageFlags(cmd)
	cmd.Flags().String("benefit", "", "Only show keys issued by this benefit ID")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	base, err := cmdutil.ListParams(cmd)
	if err != nil {
		return err
	}
	benefit, _ := cmd.Flags().GetString("benefit")
	params := polar.LicenseKeyListParams{ListParams: base, BenefitID: strings.TrimSpace(benefit)}

	client, err := cmdutil.NewClient(cmd)
	if err != nil {
		return err
	}

	page, err := cmdutil.Spin(cmd, "Fetching license keys...", func(ctx context.Context) (*polar.ListResource[polar.LicenseKey], error) {
		return client.ListLicenseKeys(ctx, params)
	})
	if err != nil {
		return err
	}

	return cmdutil.PrintPage(cmd, page, base, keyTable)
}
