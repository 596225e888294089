package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rpgo/optionpricer/internal/calculation"
	"github.com/rpgo/optionpricer/internal/config"
	"github.com/rpgo/optionpricer/internal/domain"
	"github.com/rpgo/optionpricer/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "OPTPRICER"

// app carries the state shared by every subcommand.
type app struct {
	v *viper.Viper
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "optpricer",
		Short:         "Price European and knock-in barrier options with Black-Scholes and Monte Carlo",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.v.BindPFlags(cmd.Flags())
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "YAML configuration file (defaults to the built-in reference scenario)")
	pf.String("output-dir", "", "write reports to this directory instead of stdout")
	pf.Uint64("seed", 0, "random seed for every simulation (0 picks one and reports it)")
	pf.Int("workers", 0, "parallel workers per simulation (0 runs sequentially)")
	pf.Bool("verbose", false, "enable debug logging")
	pf.String("log-format", "text", "log format: text or json")

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		a.newPriceCmd(),
		a.newSimulateCmd(),
		a.newSensitivityCmd(),
		newFormatsCmd(),
		newInitCmd(),
	)
	return root
}

// loadConfiguration reads --config (or the defaults) and applies flag and environment overrides.
func (a *app) loadConfiguration() (*domain.Configuration, error) {
	parser := config.NewInputParser()
	cfg := config.DefaultConfiguration()
	if path := a.v.GetString("config"); path != "" {
		loaded, err := parser.LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if a.v.IsSet("seed") {
		cfg.Simulation.Seed = a.v.GetUint64("seed")
	}
	if a.v.IsSet("workers") {
		cfg.Simulation.Workers = a.v.GetInt("workers")
	}
	if err := parser.ValidateConfiguration(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func (a *app) newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if a.v.GetBool("verbose") {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(a.v.GetString("log-format"), "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func (a *app) newEngine(cmd *cobra.Command) *calculation.PricingEngine {
	engine := calculation.NewPricingEngine()
	engine.SetLogger(calculation.SlogLogger{L: a.newLogger(cmd.ErrOrStderr())})
	return engine
}

// emit prints console formats to stdout unless --output-dir is set; file formats are always written to disk.
func (a *app) emit(cmd *cobra.Command, report *domain.PricingReport, format string) error {
	dir := a.v.GetString("output-dir")
	name := output.NormalizeFormatName(format)
	if dir == "" && (name == "console" || name == "console-verbose") {
		data, err := output.GetFormatterByName(name).Format(report)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if dir == "" {
		dir = "."
	}
	files, err := output.GenerateReport(report, format, dir)
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", f)
	}
	return nil
}
