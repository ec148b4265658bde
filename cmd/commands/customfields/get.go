package customfields

import (
	"context"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/output"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

// GetCommand returns the "custom-fields get" command.
func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>...",
		Short: "Show one or more custom fields",
		Args:  cobra.MinimumNArgs(1),
		RunE: clierr.Handle(func(cmd *cobra.Command, args []string) error {
			client, err := cmdutil.NewClient(cmd)
			if err != nil {
				return err
			}

			fields, err := cmdutil.Spin(cmd, "Fetching custom fields...", func(ctx context.Context) ([]*polar.CustomField, error) {
				return cmdutil.FetchEach(ctx, args, client.GetCustomField)
			})
			if err != nil {
				return err
			}

			return cmdutil.PrintFetched(cmd, fields, fieldTable, fieldDetail)
		}),
	}
}

func fieldTable(fields []polar.CustomField) *output.TableView {
	view := &output.TableView{
		Headers: []string{"ID", "Slug", "Name", "Type", "Created"},
		Empty:   "No custom fields found.",
	}
	for _, f := range fields {
		view.AddRow(f.ID, f.Slug, f.Name, f.Type, output.Date(f.CreatedAt))
	}
	return view
}

func fieldDetail(f *polar.CustomField) *output.DetailView {
	var view output.DetailView
	view.Add("ID", f.ID)
	view.Add("Slug", f.Slug)
	view.Add("Name", f.Name)
	view.Add("Type", f.Type)
	view.Add("Organization", f.OrganizationID)
	view.Add("Created", output.Time(f.CreatedAt))
	return &view
}
