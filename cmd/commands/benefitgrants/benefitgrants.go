package benefitgrants

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "benefit-grants" command group. Grants are listed
// per benefit; the API has no endpoint for a single grant.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "benefit-grants",
		Aliases: []string{"benefit-grant", "grants"},
		Short:   "List the grants of a benefit",
	}

	cmd.AddCommand(ListCommand())

	return cmd
}
