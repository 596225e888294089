package calculation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rpgo/optionpricer/internal/domain"
	"github.com/rpgo/optionpricer/internal/payoff"
	"github.com/rpgo/optionpricer/internal/pricing"
	"github.com/rpgo/optionpricer/internal/simulation"
)

// PricingEngine orchestrates the analytic and Monte Carlo pricers for a configuration
type PricingEngine struct {
	Simulator *simulation.Simulator
	Logger    Logger
}

// NewPricingEngine creates a new pricing engine
func NewPricingEngine() *PricingEngine {
	return &PricingEngine{
		Simulator: simulation.NewSimulator(),
		Logger:    NopLogger{},
	}
}

// SetLogger sets the logger for the pricing engine. If nil is provided, a no-op logger is used.
func (pe *PricingEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// Run prices the configured contract analytically, once per Monte Carlo run, and under each
// volatility shock. The context is checked between simulations; a single simulation is not interrupted.
func (pe *PricingEngine) Run(ctx context.Context, config *domain.Configuration) (*domain.PricingReport, error) {
	market := config.Market
	if err := market.Validate(); err != nil {
		return nil, fmt.Errorf("market parameters: %w", err)
	}

	report := &domain.PricingReport{
		Market:      market,
		GeneratedAt: nowFunc(),
	}

	bs, intrinsic, err := pe.PriceAnalytic(market.MarketParameters)
	if err != nil {
		return nil, err
	}
	report.BlackScholes = bs
	report.Intrinsic = intrinsic

	// an unset seed is resolved by the first run and pinned for the rest of the report
	settings := config.Simulation
	for _, run := range config.Runs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result, err := pe.RunMonteCarlo(market, run, settings)
		if err != nil {
			return nil, fmt.Errorf("run %s: %w", run.Label(), err)
		}
		settings.Seed = result.Seed
		report.MonteCarlo = append(report.MonteCarlo, result)
	}

	if len(config.Sensitivity.VolatilityShocks) > 0 {
		shocks, err := pe.runSensitivity(ctx, config, settings)
		if err != nil {
			return nil, fmt.Errorf("volatility sensitivity: %w", err)
		}
		report.Sensitivity = shocks
	}

	if config.Plot.Enabled {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sample, err := pe.SamplePaths(market.MarketParameters, config.Plot, settings)
		if err != nil {
			return nil, fmt.Errorf("path sample: %w", err)
		}
		report.Paths = &sample
	}

	return report, nil
}

// PriceAnalytic returns the Black-Scholes price, falling back to intrinsic value when the
// maturity is too short for d1/d2 to be evaluated. The bool reports the fallback.
func (pe *PricingEngine) PriceAnalytic(p domain.MarketParameters) (domain.PriceEstimate, bool, error) {
	est, err := pricing.BlackScholes(p)
	switch {
	case errors.Is(err, domain.ErrNumericalDegeneracy):
		pe.Logger.Warnf("black-scholes degenerate at T=%g sigma=%g, using intrinsic value", p.Maturity, p.Volatility)
		return pricing.Intrinsic(p), true, nil
	case err != nil:
		return domain.PriceEstimate{}, false, fmt.Errorf("black-scholes: %w", err)
	}
	pe.Logger.Debugf("black-scholes call=%.6f put=%.6f", est.Call, est.Put)
	return est, false, nil
}

// RunMonteCarlo simulates one ensemble and prices the European and barrier knock-in options on it.
// The ensemble is dropped before returning.
func (pe *PricingEngine) RunMonteCarlo(market domain.BarrierParameters, run domain.RunSpec, settings domain.SimulationSettings) (domain.MonteCarloResult, error) {
	if err := market.Validate(); err != nil {
		return domain.MonteCarloResult{}, err
	}
	start := nowFunc()
	cfg := run.SimulationConfig(settings)
	ensemble, err := pe.Simulator.Simulate(market.MarketParameters, cfg)
	if err != nil {
		return domain.MonteCarloResult{}, err
	}

	european, err := payoff.EvaluateEuropean(ensemble, market.Strike, market.RiskFreeRate, market.Maturity)
	if err != nil {
		return domain.MonteCarloResult{}, err
	}
	barrier, err := payoff.EvaluateBarrierKnockIn(ensemble, market.Barrier, market.Strike, market.RiskFreeRate, market.Maturity)
	if err != nil {
		return domain.MonteCarloResult{}, err
	}
	knockIn, err := payoff.KnockInRate(ensemble, market.Barrier)
	if err != nil {
		return domain.MonteCarloResult{}, err
	}

	result := domain.MonteCarloResult{
		Name:        run.Label(),
		NumSteps:    cfg.NumSteps,
		NumPaths:    cfg.NumPaths,
		Seed:        ensemble.Seed(),
		European:    european,
		Barrier:     barrier,
		KnockInRate: knockIn,
		Terminal:    ensemble.TerminalSummary(),
		Elapsed:     nowFunc().Sub(start),
	}
	pe.Logger.Infof("%s: %d steps x %d paths in %s (seed %d, knock-in %.2f%%)",
		result.Name, result.NumSteps, result.NumPaths, result.Elapsed.Round(time.Millisecond), result.Seed, 100*knockIn)
	return result, nil
}

// SamplePaths simulates the plot ensemble and keeps at most plot.MaxLines paths.
func (pe *PricingEngine) SamplePaths(p domain.MarketParameters, plot domain.PlotSettings, settings domain.SimulationSettings) (domain.PathSample, error) {
	run := domain.RunSpec{Name: "plot", NumSteps: plot.NumSteps, NumPaths: plot.NumPaths}
	ensemble, err := pe.Simulator.Simulate(p, run.SimulationConfig(settings))
	if err != nil {
		return domain.PathSample{}, err
	}
	return ensemble.Sample(plot.MaxLines), nil
}

// runSensitivity reprices under each volatility shock. The barrier run, when named, is re-simulated
// with the same seed so shocked and base prices share random numbers.
func (pe *PricingEngine) runSensitivity(ctx context.Context, config *domain.Configuration, settings domain.SimulationSettings) ([]domain.SensitivityResult, error) {
	market := config.Market
	results, err := pricing.VolatilityShock(market.MarketParameters, config.Sensitivity.VolatilityShocks)
	if err != nil {
		return nil, err
	}
	if config.Sensitivity.BarrierRun == "" {
		return results, nil
	}

	run, ok := findRun(config.Runs, config.Sensitivity.BarrierRun)
	if !ok {
		return nil, fmt.Errorf("barrier run %q is not configured", config.Sensitivity.BarrierRun)
	}
	for i := range results {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		shocked := market
		shocked.Volatility = results[i].Volatility
		mc, err := pe.RunMonteCarlo(shocked, run, settings)
		if err != nil {
			return nil, err
		}
		barrier := mc.Barrier
		results[i].Barrier = &barrier
	}
	return results, nil
}

func findRun(runs []domain.RunSpec, name string) (domain.RunSpec, bool) {
	for _, r := range runs {
		if r.Label() == name {
			return r, true
		}
	}
	return domain.RunSpec{}, false
}
