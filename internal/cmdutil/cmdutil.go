// Package cmdutil holds helpers shared by the command packages: building
// an API client, resolving the organization, spinners, prompts and
// output.
package cmdutil

import (
	"errors"
	"fmt"
	"strings"

	"nathanbeddoewebdev/polar/internal/clicontext"
	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/output"
	"nathanbeddoewebdev/polar/internal/polar"
	"nathanbeddoewebdev/polar/internal/services/auth"
	"nathanbeddoewebdev/polar/internal/ui/styles"

	"github.com/spf13/cobra"
)

// Version is the CLI version reported by --version and the User-Agent.
var Version = "0.1.0"

// Env returns the invocation state set up by the root command.
func Env(cmd *cobra.Command) *clicontext.Context {
	return clicontext.From(cmd.Context())
}

// NewClient builds an API client for the selected environment using the
// stored or environment-provided token.
func NewClient(cmd *cobra.Command) (*polar.Client, error) {
	env := Env(cmd)

	token, _, err := auth.ResolveToken(auth.DefaultStore(), env.Environment)
	if errors.Is(err, auth.ErrTokenNotFound) {
		return nil, fmt.Errorf("not logged in to %s (run '%s' or set %s)", env.Environment, LoginHint(env.Environment), auth.TokenEnvVar)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read token from keychain: %w", err)
	}

	return ClientWithToken(cmd, token), nil
}

// ClientWithToken builds an API client for the selected environment that
// authenticates with token.
func ClientWithToken(cmd *cobra.Command, token string) *polar.Client {
	env := Env(cmd)
	return polar.NewClient(
		polar.WithBaseURL(env.BaseURL),
		polar.WithToken(token),
		polar.WithLogger(env.Logger),
		polar.WithUserAgent("polar-cli/"+Version),
	)
}

// LoginHint returns the command that stores a token for env.
func LoginHint(env polar.Environment) string {
	if env == polar.Sandbox {
		return "polar --sandbox auth login"
	}
	return "polar auth login"
}

// ResolveOrgID returns flag when set, else the environment's default
// organization. With neither, it prints a hint and returns an exit signal.
func ResolveOrgID(cmd *cobra.Command, flag string) (string, error) {
	if id := strings.TrimSpace(flag); id != "" {
		return id, nil
	}

	env := Env(cmd)
	if id := env.Config.DefaultOrg(env.Environment); id != "" {
		return id, nil
	}

	palette := styles.For(cmd.ErrOrStderr(), env.NoColor)
	fmt.Fprintf(cmd.ErrOrStderr(), "%s Pass %s or set a default with %s.\n",
		palette.Render(palette.Error, "No organization specified."),
		palette.Render(palette.Label, "--org <id>"),
		palette.Render(palette.Label, "polar org set-default <id>"),
	)
	return "", clierr.Exit(clierr.ExitFailure)
}

// Printer returns a printer for the selected output format on stdout.
func Printer(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), Env(cmd).Output)
}

// Success prints a styled confirmation line on stdout.
func Success(cmd *cobra.Command, format string, args ...any) {
	palette := styles.For(cmd.OutOrStdout(), Env(cmd).NoColor)
	fmt.Fprintln(cmd.OutOrStdout(), palette.Render(palette.Success, fmt.Sprintf(format, args...)))
}

// AddOrgFlag registers the --org flag shared by list commands.
func AddOrgFlag(cmd *cobra.Command) {
	cmd.Flags().String("org", "", "Organization ID (defaults to the configured default organization)")
}

// AddPageFlags registers --page and --limit.
func AddPageFlags(cmd *cobra.Command) {
	cmd.Flags().Int("page", 1, "Page number")
	cmd.Flags().Int("limit", polar.DefaultPageSize, fmt.Sprintf("Items per page (max %d)", polar.MaxPageSize))
}

// ListParams reads --org, --page and --limit, resolving the organization.
func ListParams(cmd *cobra.Command) (polar.ListParams, error) {
	orgFlag, _ := cmd.Flags().GetString("org")
	orgID, err := ResolveOrgID(cmd, orgFlag)
	if err != nil {
		return polar.ListParams{}, err
	}
	page, _ := cmd.Flags().GetInt("page")
	limit, _ := cmd.Flags().GetInt("limit")
	return polar.ListParams{OrganizationID: orgID, Page: page, Limit: limit}, nil
}
