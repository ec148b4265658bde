package auth

import (
	"errors"
	"os"
	"strings"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/output"
	"nathanbeddoewebdev/polar/internal/polar"
	"nathanbeddoewebdev/polar/internal/services/auth"

	"github.com/spf13/cobra"
)

// tokenStatus is the login state of one environment.
type tokenStatus struct {
	Environment polar.Environment `json:"environment"`
	LoggedIn    bool              `json:"logged_in"`
	Source      auth.Source       `json:"source,omitempty"`
	Token       string            `json:"token,omitempty"`
	Error       string            `json:"error,omitempty"`
}

func StatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show authentication status per environment",
		Long: `Show whether a token is available for production and sandbox, and
where it comes from. Tokens are masked.

Example:
  polar auth status`,
		Args: cobra.NoArgs,
		RunE: clierr.Handle(func(cmd *cobra.Command, args []string) error {
			store := storeFor()

			var statuses []tokenStatus
			for _, env := range []polar.Environment{polar.Production, polar.Sandbox} {
				statuses = append(statuses, resolveStatus(store, env))
			}

			return cmdutil.Printer(cmd).List(statuses, statusTable(statuses))
		}),
	}

	return cmd
}

func resolveStatus(store auth.Store, env polar.Environment) tokenStatus {
	st := tokenStatus{Environment: env}
	token, source, err := auth.ResolveToken(store, env)
	switch {
	case err == nil:
		st.LoggedIn = true
		st.Source = source
		st.Token = auth.MaskToken(token)
	case errors.Is(err, auth.ErrTokenNotFound):
	default:
		st.Error = err.Error()
	}
	return st
}

func statusTable(statuses []tokenStatus) *output.TableView {
	view := &output.TableView{
		Headers: []string{"Environment", "Status", "Source", "Token"},
	}
	for _, st := range statuses {
		state := "not logged in"
		switch {
		case st.Error != "":
			state = "error (" + st.Error + ")"
		case st.LoggedIn:
			state = "logged in"
		}
		source := string(st.Source)
		if st.Source == auth.SourceEnv {
			source = auth.TokenEnvVar
		}
		view.AddRow(string(st.Environment), state, dash(source), dash(st.Token))
	}
	if strings.TrimSpace(os.Getenv(auth.TokenEnvVar)) != "" {
		view.Footer = auth.TokenEnvVar + " is set and overrides stored tokens."
	}
	return view
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
