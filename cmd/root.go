package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"strings"

	"nathanbeddoewebdev/polar/cmd/commands/audit"
	"nathanbeddoewebdev/polar/cmd/commands/auth"
	"nathanbeddoewebdev/polar/cmd/commands/benefitgrants"
	"nathanbeddoewebdev/polar/cmd/commands/benefits"
	"nathanbeddoewebdev/polar/cmd/commands/checkoutlinks"
	"nathanbeddoewebdev/polar/cmd/commands/checkouts"
	cfgcmd "nathanbeddoewebdev/polar/cmd/commands/config"
	"nathanbeddoewebdev/polar/cmd/commands/customers"
	"nathanbeddoewebdev/polar/cmd/commands/customfields"
	"nathanbeddoewebdev/polar/cmd/commands/discounts"
	"nathanbeddoewebdev/polar/cmd/commands/disputes"
	"nathanbeddoewebdev/polar/cmd/commands/events"
	"nathanbeddoewebdev/polar/cmd/commands/eventtypes"
	"nathanbeddoewebdev/polar/cmd/commands/files"
	"nathanbeddoewebdev/polar/cmd/commands/licensekeys"
	"nathanbeddoewebdev/polar/cmd/commands/members"
	"nathanbeddoewebdev/polar/cmd/commands/meters"
	"nathanbeddoewebdev/polar/cmd/commands/metrics"
	"nathanbeddoewebdev/polar/cmd/commands/orders"
	"nathanbeddoewebdev/polar/cmd/commands/org"
	"nathanbeddoewebdev/polar/cmd/commands/payments"
	"nathanbeddoewebdev/polar/cmd/commands/products"
	"nathanbeddoewebdev/polar/cmd/commands/refunds"
	"nathanbeddoewebdev/polar/cmd/commands/subscriptions"
	"nathanbeddoewebdev/polar/cmd/commands/webhooks"
	"nathanbeddoewebdev/polar/internal/clicontext"
	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/config"
	"nathanbeddoewebdev/polar/internal/output"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/spf13/cobra"
)

// BaseURLEnvVar overrides the API base URL when --base-url is not given.
const BaseURLEnvVar = "POLAR_BASE_URL"

// globalFlags holds the persistent flags shared by every command.
type globalFlags struct {
	baseURL string
	sandbox bool
	output  string
	noColor bool
	verbose bool
}

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "polar",
		Short: "Command-line client for the Polar API",
		Long: `polar is a command-line client for the Polar commerce API. It lists and
inspects products, customers, orders and subscriptions, and manages
webhook endpoints.

Quick start:
  polar auth login                 # Store an organization access token
  polar org list                   # Find your organization ID
  polar org set-default <id>       # Use it when --org is omitted
  polar products list              # List products
  polar --sandbox orders list      # Talk to the sandbox environment`,
		Version:       cmdutil.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
			return clierr.Exit(clierr.ExitUsage)
		},
	}
	cmd.SetVersionTemplate("polar {{.Version}}\n")

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.baseURL, "base-url", "", "API base URL (env "+BaseURLEnvVar+")")
	pf.BoolVar(&flags.sandbox, "sandbox", false, "Use the sandbox environment")
	pf.StringVarP(&flags.output, "output", "o", "", "Output format: table, json, yaml (default from config, else table)")
	pf.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(auth.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(org.NewCommand())
	cmd.AddCommand(products.NewCommand())
	cmd.AddCommand(customers.NewCommand())
	cmd.AddCommand(orders.NewCommand())
	cmd.AddCommand(subscriptions.NewCommand())
	cmd.AddCommand(members.NewCommand())
	cmd.AddCommand(checkouts.NewCommand())
	cmd.AddCommand(checkoutlinks.NewCommand())
	cmd.AddCommand(discounts.NewCommand())
	cmd.AddCommand(customfields.NewCommand())
	cmd.AddCommand(benefits.NewCommand())
	cmd.AddCommand(benefitgrants.NewCommand())
	cmd.AddCommand(licensekeys.NewCommand())
	cmd.AddCommand(payments.NewCommand())
	cmd.AddCommand(refunds.NewCommand())
	cmd.AddCommand(disputes.NewCommand())
	cmd.AddCommand(meters.NewCommand())
	cmd.AddCommand(events.NewCommand())
	cmd.AddCommand(eventtypes.NewCommand())
	cmd.AddCommand(metrics.NewCommand())
	cmd.AddCommand(files.NewCommand())
	cmd.AddCommand(webhooks.NewCommand())
	cmd.AddCommand(audit.NewCommand())

	return cmd
}

// setup resolves the global flags into a clicontext.Context and stores it,
// together with the reporter options, on the command context.
func setup(cmd *cobra.Command, flags *globalFlags) error {
	var format output.Format
	if cmd.Flags().Changed("output") {
		f, err := output.ParseFormat(flags.output)
		if err != nil {
			return clierr.Usagef("Invalid value for '--output' / '-o': %v", err)
		}
		format = f
	}

	baseURL, err := resolveBaseURL(flags)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if flags.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load()
	if err != nil {
		return (&clierr.Reporter{Out: cmd.ErrOrStderr(), Logger: logger, NoColor: flags.noColor}).Report(err)
	}

	if format == "" {
		format = output.Table
		if cfg.Output != "" {
			f, err := output.ParseFormat(cfg.Output)
			if err != nil {
				logger.Warn("ignoring invalid output format in config", "value", cfg.Output)
			} else {
				format = f
			}
		}
	}

	env := polar.EnvironmentFor(flags.sandbox)
	if baseURL == "" {
		baseURL = env.ServerURL()
	}

	cc := &clicontext.Context{
		Environment: env,
		BaseURL:     baseURL,
		Output:      format,
		NoColor:     flags.noColor,
		Verbose:     flags.verbose,
		Logger:      logger,
		Config:      cfg,
	}
	logger.Debug("resolved invocation", "environment", env, "base_url", baseURL, "output", format)

	ctx := clicontext.With(cmd.Context(), cc)
	ctx = clierr.WithOptions(ctx, clierr.Options{Logger: logger, NoColor: flags.noColor})
	cmd.SetContext(ctx)
	return nil
}

// resolveBaseURL returns the --base-url flag, else POLAR_BASE_URL, else "".
func resolveBaseURL(flags *globalFlags) (string, error) {
	raw := strings.TrimSpace(flags.baseURL)
	source := "--base-url"
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv(BaseURLEnvVar))
		source = BaseURLEnvVar
	}
	if raw == "" {
		return "", nil
	}

	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", clierr.Usagef("Invalid value for '%s': %q is not an http(s) URL", source, raw)
	}
	return strings.TrimRight(raw, "/"), nil
}

// run executes the CLI with args and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return clierr.ExitOK
	}

	var exitErr *clierr.ExitError
	if !errors.As(err, &exitErr) {
		// Argument and flag errors that never reached a command body.
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if cmd == nil {
			cmd = root
		}
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.CommandPath())
	}
	return clierr.ExitCode(err)
}

// Execute runs the root command and exits the process with its exit code.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
