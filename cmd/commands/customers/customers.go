package customers

import (
	"context"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/output"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

// NewCommand returns the "customers" command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer"},
		Short:   "List and inspect customers",
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}

// ListCommand returns the "customers list" command.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers of an organization",
		Long: `List customers of an organization, optionally filtered by email.

Examples:
  polar customers list
  polar customers list --email jane@example.com`,
		Args: cobra.NoArgs,
		RunE: clierr.Handle(runList),
	}

	cmdutil.AddOrgFlag(cmd)
	cmdutil.AddPageFlags(cmd)
	cmd.Flags().String("email", "", "Only show the customer with this email address")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	base, err := cmdutil.ListParams(cmd)
	if err != nil {
		return err
	}
	email, _ := cmd.Flags().GetString("email")
	params := polar.CustomerListParams{ListParams: base, Email: email}

	client, err := cmdutil.NewClient(cmd)
	if err != nil {
		return err
	}

	page, err := cmdutil.Spin(cmd, "Fetching customers...", func(ctx context.Context) (*polar.ListResource[polar.Customer], error) {
		return client.ListCustomers(ctx, params)
	})
	if err != nil {
		return err
	}

	return cmdutil.PrintPage(cmd, page, base, customerTable)
}

// GetCommand returns the "customers get" command.
func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>...",
		Short: "Show one or more customers",
		Args:  cobra.MinimumNArgs(1),
		RunE: clierr.Handle(func(cmd *cobra.Command, args []string) error {
			client, err := cmdutil.NewClient(cmd)
			if err != nil {
				return err
			}

			customers, err := cmdutil.Spin(cmd, "Fetching customers...", func(ctx context.Context) ([]*polar.Customer, error) {
				return cmdutil.FetchEach(ctx, args, client.GetCustomer)
			})
			if err != nil {
				return err
			}

			return cmdutil.PrintFetched(cmd, customers, customerTable, customerDetail)
		}),
	}
}

func customerTable(customers []polar.Customer) *output.TableView {
	view := &output.TableView{
		Headers: []string{"ID", "Email", "Name", "Created"},
		Empty:   "No customers found.",
	}
	for _, c := range customers {
		name := c.Name
		if name == "" {
			name = "-"
		}
		view.AddRow(c.ID, c.Email, name, output.Date(c.CreatedAt))
	}
	return view
}

func customerDetail(c *polar.Customer) *output.DetailView {
	var view output.DetailView
	view.Add("ID", c.ID)
	view.Add("Email", c.Email)
	view.Add("Name", c.Name)
	view.Add("External ID", c.ExternalID)
	view.Add("Organization", c.OrganizationID)
	view.Add("Created", output.Time(c.CreatedAt))
	return &view
}
