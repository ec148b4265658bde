package licensekeys

import (
	"context"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

// GetCommand returns the "license-keys get" command.
func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>...",
		Short: "Show one or more license keys",
		Args:  cobra.MinimumNArgs(1),
		RunE: clierr.Handle(func(cmd *cobra.Command, args []string) error {
			client, err := cmdutil.NewClient(cmd)
			if err != nil {
				return err
			}

			keys, err := cmdutil.Spin(cmd, "Fetching license keys...", func(ctx context.Context) ([]*polar.LicenseKey, error) {
				return cmdutil.FetchEach(ctx, args, client.GetLicenseKey)
			})
			if err != nil {
				return err
			}

			return cmdutil.PrintFetched(cmd, keys, keyTable, keyDetail)
		}),
	}
}
