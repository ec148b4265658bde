package auth

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/polar"
	"nathanbeddoewebdev/polar/internal/services/auth"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

// storeFor returns the token store used by the auth commands.
var storeFor = auth.DefaultStore

func LoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an organization access token",
		Long: `Store an organization access token in the local keychain.

The token is checked against the API before it is saved. Without --token
it is read from a hidden prompt, or from stdin when stdin is not a
terminal.

Examples:
  polar auth login
  polar --sandbox auth login --token polar_oat_...
  echo "$TOKEN" | polar auth login`,
		Args: cobra.NoArgs,
		RunE: clierr.Handle(cmdutil.Audited(runLogin)),
	}

	cmd.Flags().String("token", "", "Access token (optional, overrides prompt)")
	cmd.Flags().Bool("no-verify", false, "Save the token without checking it against the API")

	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	env := cmdutil.Env(cmd)

	token, _ := cmd.Flags().GetString("token")
	token = strings.TrimSpace(token)
	if token == "" {
		var err error
		token, err = readToken(cmd)
		if err != nil {
			return err
		}
	}
	if token == "" {
		return errors.New("token cannot be empty")
	}

	if noVerify, _ := cmd.Flags().GetBool("no-verify"); !noVerify {
		client := cmdutil.ClientWithToken(cmd, token)
		_, err := cmdutil.Spin(cmd, "Verifying token...", func(ctx context.Context) (*polar.ListResource[polar.Organization], error) {
			return client.ListOrganizations(ctx, polar.ListParams{Page: 1, Limit: 1})
		})
		if err != nil {
			return err
		}
	}

	if err := storeFor().SetToken(env.Environment, token); err != nil {
		return fmt.Errorf("failed to save token to keychain: %w", err)
	}

	cmdutil.Success(cmd, "Saved token for %s", env.Environment)
	return nil
}

// readToken prompts for a token on a terminal, or reads the first line of
// stdin otherwise.
func readToken(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Enter access token: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("failed to read token: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return strings.TrimSpace(line), nil
}
