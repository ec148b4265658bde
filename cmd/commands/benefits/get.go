package benefits

import (
	"context"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/output"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

// GetCommand returns the "benefits get" command.
func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>...",
		Short: "Show one or more benefits",
		Args:  cobra.MinimumNArgs(1),
		RunE: clierr.Handle(func(cmd *cobra.Command, args []string) error {
			client, err := cmdutil.NewClient(cmd)
			if err != nil {
				return err
			}

			benefits, err := cmdutil.Spin(cmd, "Fetching benefits...", func(ctx context.Context) ([]*polar.Benefit, error) {
				return cmdutil.FetchEach(ctx, args, client.GetBenefit)
			})
			if err != nil {
				return err
			}

			return cmdutil.PrintFetched(cmd, benefits, benefitTable, benefitDetail)
		}),
	}
}

func benefitTable(benefits []polar.Benefit) *output.TableView {
	view := &output.TableView{
		Headers: []string{"ID", "Type", "Description", "Created"},
		Empty:   "No benefits found.",
	}
	for _, b := range benefits {
		view.AddRow(b.ID, b.Type, b.Description, output.Date(b.CreatedAt))
	}
	return view
}

func benefitDetail(b *polar.Benefit) *output.DetailView {
	var view output.DetailView
	view.Add("ID", b.ID)
	view.Add("Type", b.Type)
	view.Add("Description", b.Description)
	view.Add("Selectable", output.Bool(b.Selectable))
	view.Add("Deletable", output.Bool(b.Deletable))
	view.Add("Organization", b.OrganizationID)
	view.Add("Created", output.Time(b.CreatedAt))
	return &view
}
