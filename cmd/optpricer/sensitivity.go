package main

import (
	"fmt"

	"github.com/rpgo/optionpricer/internal/domain"
	"github.com/spf13/cobra"
)

func (a *app) newSensitivityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sensitivity",
		Short: "Reprice under multiplicative volatility shocks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfiguration()
			if err != nil {
				return err
			}
			if a.v.IsSet("shocks") {
				shocks, err := cmd.Flags().GetFloat64Slice("shocks")
				if err != nil {
					return err
				}
				cfg.Sensitivity.VolatilityShocks = shocks
			}
			if a.v.IsSet("barrier-run") {
				cfg.Sensitivity.BarrierRun = a.v.GetString("barrier-run")
			}
			if len(cfg.Sensitivity.VolatilityShocks) == 0 {
				return fmt.Errorf("no volatility shocks configured")
			}

			// only the run re-priced under the shocks is simulated
			runs := []domain.RunSpec{}
			for _, r := range cfg.Runs {
				if r.Label() == cfg.Sensitivity.BarrierRun {
					runs = append(runs, r)
				}
			}
			if cfg.Sensitivity.BarrierRun != "" && len(runs) == 0 {
				return fmt.Errorf("barrier run %q is not configured", cfg.Sensitivity.BarrierRun)
			}
			cfg.Runs = runs
			cfg.Plot.Enabled = false

			report, err := a.newEngine(cmd).Run(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return a.emit(cmd, report, a.v.GetString("format"))
		},
	}
	cmd.Flags().String("format", "console", "output format (see the formats command)")
	cmd.Flags().Float64Slice("shocks", nil, "volatility factors, e.g. 1.1,0.9 (overrides sensitivity.volatility_shocks)")
	cmd.Flags().String("barrier-run", "", "run to reprice by Monte Carlo under each shock (overrides sensitivity.barrier_run)")
	return cmd
}
