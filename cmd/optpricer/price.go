package main

import (
	"github.com/spf13/cobra"
)

func (a *app) newPriceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Run the full pricing report: Black-Scholes, every Monte Carlo run and the volatility shocks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfiguration()
			if err != nil {
				return err
			}
			if a.v.GetBool("no-plot") {
				cfg.Plot.Enabled = false
			}
			report, err := a.newEngine(cmd).Run(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return a.emit(cmd, report, a.v.GetString("format"))
		},
	}
	cmd.Flags().String("format", "console", "output format (see the formats command, or all)")
	cmd.Flags().Bool("no-plot", false, "skip the path sample used by the html and paths-csv formats")
	return cmd
}
