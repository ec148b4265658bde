package config

import (
	"strings"

	"nathanbeddoewebdev/polar/internal/auditlog"
	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/config"

	"github.com/spf13/cobra"
)

// SetCommand returns the "config set" command.
func SetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: "Set a persistent configuration value.\n\n" +
			config.KeysHelp() +
			"\nExamples:\n" +
			"  polar config set default-org 0b4f8a2e-6a61-4d3c-9a9f-1c7f3c2d5e10\n" +
			"  polar config set output json",
		Args: cobra.ExactArgs(2),
		RunE: clierr.Handle(cmdutil.Audited(func(cmd *cobra.Command, args []string) error {
			return apply(cmd, args[0], strings.TrimSpace(args[1]))
		})),
	}
}

// UnsetCommand returns the "config unset" command.
func UnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Clear a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: clierr.Handle(cmdutil.Audited(func(cmd *cobra.Command, args []string) error {
			return apply(cmd, args[0], "")
		})),
	}
}

// apply validates value for key and saves it. An empty value clears the key.
func apply(cmd *cobra.Command, key, value string) error {
	spec, err := lookup(key)
	if err != nil {
		return err
	}
	auditlog.SetResource(cmd.Context(), auditlog.Resource{Type: "config_key", ID: spec.Name})

	var stored string
	err = config.Update(func(cfg *config.Config) error {
		if err := spec.Set(cfg, value); err != nil {
			return err
		}
		stored = spec.Get(cfg)
		return nil
	})
	if err != nil {
		return err
	}

	if stored == "" {
		cmdutil.Success(cmd, "%s cleared", spec.Name)
		return nil
	}
	cmdutil.Success(cmd, "%s set to %q", spec.Name, stored)
	return nil
}
