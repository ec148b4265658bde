package audit

import "github.com/spf13/cobra"

// NewCommand returns the "audit" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "View and prune the local command history",
		Long: "View a local history of commands that changed state (logins,\n" +
			"configuration changes, webhook endpoints) and prune old entries.\n\n" +
			"History is stored in ~/.config/polar/history.db (override with\n" +
			"POLAR_HISTORY_DB).",
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(PruneCommand())

	return cmd
}
