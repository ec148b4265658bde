package org

import (
	"context"
	"fmt"

	"nathanbeddoewebdev/polar/internal/auditlog"
	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/config"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

// SetDefaultCommand returns the "org set-default" command.
func SetDefaultCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-default <id>",
		Short: "Set the default organization for the current environment",
		Long: `Set the organization used when --org is omitted.

The organization is looked up first, so an ID your token cannot access is
rejected. Use --sandbox to set the sandbox default.

Examples:
  polar org set-default 0b4f8a2e-6a61-4d3c-9a9f-1c7f3c2d5e10
  polar --sandbox org set-default 5a0c7e61-0d8f-4b52-8d7e-2f4b9c1a3e77`,
		Args: cobra.ExactArgs(1),
		RunE: clierr.Handle(cmdutil.Audited(runSetDefault)),
	}
}

func runSetDefault(cmd *cobra.Command, args []string) error {
	auditlog.SetResource(cmd.Context(), auditlog.Resource{Type: "organization", ID: args[0]})

	client, err := cmdutil.NewClient(cmd)
	if err != nil {
		return err
	}

	org, err := cmdutil.Spin(cmd, "Looking up organization...", func(ctx context.Context) (*polar.Organization, error) {
		return client.GetOrganization(ctx, args[0])
	})
	if err != nil {
		return err
	}

	env := cmdutil.Env(cmd)
	err = config.Update(func(cfg *config.Config) error {
		cfg.SetDefaultOrg(env.Environment, org.ID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save default organization: %w", err)
	}
	env.Config.SetDefaultOrg(env.Environment, org.ID)

	cmdutil.Success(cmd, "Default organization set to %s (%s) for %s", org.Name, org.ID, env.Environment)
	return nil
}
