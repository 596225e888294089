package main

import (
	"time"

	"github.com/rpgo/optionpricer/internal/domain"
	"github.com/spf13/cobra"
)

func (a *app) newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate a path ensemble and export a sample of it as a plot or CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfiguration()
			if err != nil {
				return err
			}
			plot := cfg.Plot
			plot.Enabled = true
			if a.v.IsSet("steps") {
				plot.NumSteps = a.v.GetInt("steps")
			}
			if a.v.IsSet("paths") {
				plot.NumPaths = a.v.GetInt("paths")
			}
			if a.v.IsSet("max-lines") {
				plot.MaxLines = a.v.GetInt("max-lines")
			}
			run := domain.RunSpec{NumSteps: plot.NumSteps, NumPaths: plot.NumPaths}
			if err := run.SimulationConfig(cfg.Simulation).Validate(); err != nil {
				return err
			}

			engine := a.newEngine(cmd)
			bs, intrinsic, err := engine.PriceAnalytic(cfg.Market.MarketParameters)
			if err != nil {
				return err
			}
			sample, err := engine.SamplePaths(cfg.Market.MarketParameters, plot, cfg.Simulation)
			if err != nil {
				return err
			}
			report := &domain.PricingReport{
				Market:       cfg.Market,
				BlackScholes: bs,
				Intrinsic:    intrinsic,
				Paths:        &sample,
				GeneratedAt:  time.Now(),
			}
			return a.emit(cmd, report, a.v.GetString("format"))
		},
	}
	cmd.Flags().String("format", "html", "output format: html or paths-csv")
	cmd.Flags().Int("steps", 0, "time steps per path (overrides plot.num_steps)")
	cmd.Flags().Int("paths", 0, "number of simulated paths (overrides plot.num_paths)")
	cmd.Flags().Int("max-lines", 0, "paths kept in the sample, 0 keeps all (overrides plot.max_lines)")
	return cmd
}
