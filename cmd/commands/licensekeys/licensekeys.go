package licensekeys

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "license-keys" command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "license-keys",
		Aliases: []string{"license-key", "keys"},
		Short:   "List and inspect license keys",
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
