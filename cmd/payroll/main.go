package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/payroll/internal/cliconfig"
	"github.com/bft-labs/payroll/internal/logging"
	"github.com/bft-labs/payroll/internal/rosterfile"
	"github.com/bft-labs/payroll/internal/watch"
	"github.com/bft-labs/payroll/pkg/roster"
)

const longHelp = `Print payslips and the total payroll for a roster of employees.

The roster is read from a TOML file (or YAML with a .yaml/.yml extension).
Each employee is salaried, hourly or commissioned; see the README for the
field list. With --watch the report is printed again whenever the roster
file changes.`

var exampleUsage = strings.TrimSpace(`
  payroll --roster staff.toml
  payroll --roster staff.yaml --locale fr --currency " EUR"
  payroll --config $HOME/.payroll/config.toml --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	log := logging.Stderr()
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		log.Error().Err(err).Msg("payroll")
		os.Exit(1)
	}
}

func newRootCommand(out io.Writer) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "payroll",
		Short:         "Print payslips and the total payroll for a roster of employees",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := resolveConfig(cmd.Flags(), &cfg, cfgPath); err != nil {
				return err
			}

			log, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
			if err != nil {
				return err
			}
			log.Debug().Interface("config", cfg).Msg("configuration")

			if !cfg.Watch {
				return report(out, cfg, log)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			w := watch.New(cfg.RosterFile, cfg.Debounce, log, func(context.Context) {
				if err := report(out, cfg, log); err != nil {
					log.Error().Err(err).Msg("report failed")
				}
			})
			return w.Run(ctx)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.payroll/config.toml)")
	root.Flags().StringVar(&cfg.RosterFile, "roster", cfg.RosterFile, "roster file (TOML, or YAML by extension)")
	root.Flags().StringVar(&cfg.Currency, "currency", cfg.Currency, "currency suffix appended to the total")
	root.Flags().StringVar(&cfg.Locale, "locale", cfg.Locale, "payslip labels: en or fr")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "print the report again whenever the roster file changes")
	root.Flags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "delay after a change before reprinting")

	return root
}

// resolveConfig layers the config file, then PAYROLL_* env vars, under any
// flags set on the command line.
func resolveConfig(flags *pflag.FlagSet, cfg *cliconfig.Config, cfgPath string) error {
	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	flags.Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
			return err
		}
	} else if cfgPath != "" {
		return fmt.Errorf("config file %s not found", cfgPath)
	}

	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}

	return cfg.Validate()
}

func report(out io.Writer, cfg cliconfig.Config, log zerolog.Logger) error {
	r, err := rosterfile.Roster(cfg.RosterFile, roster.WithFormat(cfg.Format()))
	if err != nil {
		return err
	}
	log.Info().
		Str("roster", cfg.RosterFile).
		Int("employees", r.Len()).
		Int("capacity", r.Cap()).
		Int("grows", r.Grows()).
		Msg("roster loaded")

	return r.PrintPayslips(out)
}
