package output

import (
	"math"

	"github.com/rpgo/optionpricer/internal/domain"
)

// RunDiagnostic compares one Monte Carlo run against the closed-form benchmark.
type RunDiagnostic struct {
	Name string
	// CallError and PutError are Monte Carlo minus Black-Scholes.
	CallError float64
	PutError  float64
	// ParityGap is (C - P) - (S0 - K e^{-rT}) on the simulated European prices.
	ParityGap float64
	// BarrierCallShare is the knock-in call as a fraction of the European call.
	BarrierCallShare float64
	BarrierPutShare  float64
}

// AnalyzeReport computes per-run diagnostics in report order.
// Extracted from the formatters for testability.
func AnalyzeReport(report *domain.PricingReport) []RunDiagnostic {
	if report == nil {
		return nil
	}
	m := report.Market
	forwardGap := m.Spot - m.Strike*m.DiscountFactor()
	diags := make([]RunDiagnostic, 0, len(report.MonteCarlo))
	for _, mc := range report.MonteCarlo {
		diags = append(diags, RunDiagnostic{
			Name:             mc.Name,
			CallError:        mc.European.Call - report.BlackScholes.Call,
			PutError:         mc.European.Put - report.BlackScholes.Put,
			ParityGap:        mc.European.Call - mc.European.Put - forwardGap,
			BarrierCallShare: share(mc.Barrier.Call, mc.European.Call),
			BarrierPutShare:  share(mc.Barrier.Put, mc.European.Put),
		})
	}
	return diags
}

// WorstAbsoluteError returns the largest |CallError| or |PutError| across runs.
func WorstAbsoluteError(diags []RunDiagnostic) float64 {
	worst := 0.0
	for _, d := range diags {
		worst = math.Max(worst, math.Max(math.Abs(d.CallError), math.Abs(d.PutError)))
	}
	return worst
}

func share(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole
}
