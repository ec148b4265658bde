package members

import (
	"context"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/output"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

// GetCommand returns the "members get" command.
func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>...",
		Short: "Show one or more members",
		Args:  cobra.MinimumNArgs(1),
		RunE: clierr.Handle(func(cmd *cobra.Command, args []string) error {
			client, err := cmdutil.NewClient(cmd)
			if err != nil {
				return err
			}

			members, err := cmdutil.Spin(cmd, "Fetching members...", func(ctx context.Context) ([]*polar.Member, error) {
				return cmdutil.FetchEach(ctx, args, client.GetMember)
			})
			if err != nil {
				return err
			}

			return cmdutil.PrintFetched(cmd, members, memberTable, memberDetail)
		}),
	}
}

func memberTable(members []polar.Member) *output.TableView {
	view := &output.TableView{
		Headers: []string{"ID", "Email", "Name", "Role", "Customer", "Created"},
		Empty:   "No members found.",
	}
	for _, m := range members {
		name := m.Name
		if name == "" {
			name = "-"
		}
		view.AddRow(m.ID, m.Email, name, m.Role, m.CustomerID, output.Date(m.CreatedAt))
	}
	return view
}

func memberDetail(m *polar.Member) *output.DetailView {
	var view output.DetailView
	view.Add("ID", m.ID)
	view.Add("Email", m.Email)
	view.Add("Name", m.Name)
	view.Add("Role", m.Role)
	view.Add("Customer", m.CustomerID)
	view.Add("Created", output.Time(m.CreatedAt))
	return &view
}
