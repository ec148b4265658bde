package org

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "org" command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "org",
		Short: "Inspect organizations and choose a default",
		Long: `Inspect the organizations your token can access.

The default organization is used by list commands when --org is omitted.
Production and sandbox keep separate defaults.`,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(GetCommand())
	cmd.AddCommand(SetDefaultCommand())

	return cmd
}
