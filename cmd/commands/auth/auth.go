package auth

import (
	"github.com/spf13/cobra"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage Polar access tokens",
		Long: `Manage Polar organization access tokens.

Tokens are stored in the OS keychain, one per environment. The
POLAR_ACCESS_TOKEN environment variable takes precedence over a stored
token.`,
	}

	cmd.AddCommand(LoginCommand())
	cmd.AddCommand(StatusCommand())
	cmd.AddCommand(LogoutCommand())

	return cmd
}
