package output

import (
	"fmt"

	"github.com/rpgo/optionpricer/internal/domain"
)

// GenerateAssumptions lists the modeling assumptions behind a report, rendered in detailed outputs.
func GenerateAssumptions(report *domain.PricingReport) []string {
	m := report.Market
	assumptions := []string{
		fmt.Sprintf("Underlying follows geometric Brownian motion with drift %s and constant volatility %s",
			FormatPercentage(m.Drift), FormatPercentage(m.Volatility)),
		fmt.Sprintf("Payoffs are discounted at the continuously compounded risk-free rate %s over %g years",
			FormatPercentage(m.RiskFreeRate), m.Maturity),
		"Black-Scholes prices assume risk-neutral drift; simulated prices use the configured drift",
		fmt.Sprintf("Barrier %g is monitored only at simulation time steps (including t=0); knock-in is triggered at or above the barrier", m.Barrier),
		"Coarser monitoring misses crossings between steps, so knock-in prices are biased low",
	}
	if report.Intrinsic {
		assumptions = append(assumptions, "Closed-form price replaced by intrinsic value (maturity too short to evaluate)")
	}
	return assumptions
}
