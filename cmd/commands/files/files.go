package files

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "files" command group. Uploads go through the
// dashboard; the CLI only lists them.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "files",
		Aliases: []string{"file"},
		Short:   "List uploaded files",
	}

	cmd.AddCommand(ListCommand())

	return cmd
}
