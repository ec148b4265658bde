package auth

import (
	"errors"
	"fmt"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/services/auth"

	"github.com/spf13/cobra"
)

func LogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored token for the current environment",
		Long: `Remove the stored token for the current environment from the keychain.

Examples:
  polar auth logout
  polar --sandbox auth logout`,
		Args: cobra.NoArgs,
		RunE: clierr.Handle(cmdutil.Audited(func(cmd *cobra.Command, args []string) error {
			env := cmdutil.Env(cmd).Environment

			err := storeFor().DeleteToken(env)
			if errors.Is(err, auth.ErrTokenNotFound) {
				fmt.Fprintf(cmd.OutOrStdout(), "No stored token for %s.\n", env)
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to remove token from keychain: %w", err)
			}

			cmdutil.Success(cmd, "Removed token for %s", env)
			return nil
		})),
	}
}
