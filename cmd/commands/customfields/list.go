package customfields

import (
	"context"
	"strings"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

// ListCommand returns the "custom-fields list" command.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List custom fields of an organization",
		Long: `List custom fields of an organization.

Types: ` + strings.Join(polar.CustomFieldTypes, ", "),
		Args: cobra.NoArgs,
		RunE: clierr.Handle(runList),
	}

	cmdutil.AddOrgFlag(cmd)
	cmdutil.AddPageFlags(cmd)
	cmd.Flags().String("type", "", "Only show fields of this type")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	base, err := cmdutil.ListParams(cmd)
	if err != nil {
		return err
	}
	kind, _ := cmd.Flags().GetString("type")
	params := polar.CustomFieldListParams{ListParams: base, Type: strings.TrimSpace(kind)}

	client, err := cmdutil.NewClient(cmd)
	if err != nil {
		return err
	}

	page, err := cmdutil.Spin(cmd, "Fetching custom fields...", func(ctx context.Context) (*polar.ListResource[polar.CustomField], error) {
		return client.ListCustomFields(ctx, params)
	})
	if err != nil {
		return err
	}

	return cmdutil.PrintPage(cmd, page, base, fieldTable)
}
