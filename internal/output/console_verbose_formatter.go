package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/optionpricer/internal/domain"
)

// ConsoleVerboseFormatter renders the full report: inputs, price tables, diagnostics and assumptions.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string      { return "console-verbose" }
func (c ConsoleVerboseFormatter) Extension() string { return "txt" }

func (c ConsoleVerboseFormatter) Format(report *domain.PricingReport) ([]byte, error) {
	var buf bytes.Buffer
	m := report.Market

	fmt.Fprintln(&buf, "OPTION PRICING REPORT")
	fmt.Fprintln(&buf, strings.Repeat("=", 80))
	if !report.GeneratedAt.IsZero() {
		fmt.Fprintf(&buf, "Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05"))
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "MARKET PARAMETERS")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "  Spot (S0):            %g\n", m.Spot)
	fmt.Fprintf(&buf, "  Strike (K):           %g\n", m.Strike)
	fmt.Fprintf(&buf, "  Barrier (Sb):         %g\n", m.Barrier)
	fmt.Fprintf(&buf, "  Risk-free rate (r):   %s\n", FormatPercentage(m.RiskFreeRate))
	fmt.Fprintf(&buf, "  Drift (mu):           %s\n", FormatPercentage(m.Drift))
	fmt.Fprintf(&buf, "  Volatility (sigma):   %s\n", FormatPercentage(m.Volatility))
	fmt.Fprintf(&buf, "  Maturity (T, years):  %g\n", m.Maturity)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "PRICES")
	fmt.Fprintln(&buf, strings.Repeat("-", 80))
	fmt.Fprintf(&buf, "%-28s %8s %10s %14s %14s\n", "Method", "Steps", "Paths", "Call", "Put")
	label := "Black-Scholes"
	if report.Intrinsic {
		label = "Intrinsic (T->0)"
	}
	fmt.Fprintf(&buf, "%-28s %8s %10s %14s %14s\n", label, "-", "-", FormatPremium(report.BlackScholes.Call), FormatPremium(report.BlackScholes.Put))
	for _, mc := range report.MonteCarlo {
		fmt.Fprintf(&buf, "%-28s %8d %10d %14s %14s\n", "MC European "+mc.Name, mc.NumSteps, mc.NumPaths, FormatPremium(mc.European.Call), FormatPremium(mc.European.Put))
	}
	for _, mc := range report.MonteCarlo {
		fmt.Fprintf(&buf, "%-28s %8d %10d %14s %14s\n", "MC knock-in "+mc.Name, mc.NumSteps, mc.NumPaths, FormatPremium(mc.Barrier.Call), FormatPremium(mc.Barrier.Put))
	}
	fmt.Fprintln(&buf)

	if len(report.MonteCarlo) > 0 {
		fmt.Fprintln(&buf, "SIMULATION DIAGNOSTICS")
		fmt.Fprintln(&buf, strings.Repeat("-", 80))
		for i, d := range AnalyzeReport(report) {
			mc := report.MonteCarlo[i]
			fmt.Fprintf(&buf, "  %s (seed %d, %s)\n", d.Name, mc.Seed, formatDuration(mc.Elapsed))
			fmt.Fprintf(&buf, "    Error vs Black-Scholes:  call %s  put %s\n", FormatPremium(d.CallError), FormatPremium(d.PutError))
			fmt.Fprintf(&buf, "    Put-call parity gap:     %s\n", FormatPremium(d.ParityGap))
			fmt.Fprintf(&buf, "    Knock-in rate:           %s\n", FormatPercentage(mc.KnockInRate))
			fmt.Fprintf(&buf, "    Knock-in share:          call %s  put %s\n", FormatPercentage(d.BarrierCallShare), FormatPercentage(d.BarrierPutShare))
			fmt.Fprintf(&buf, "    Terminal price:          mean %.4f  sd %.4f  min %.4f  max %.4f\n",
				mc.Terminal.Mean, mc.Terminal.StdDev, mc.Terminal.Min, mc.Terminal.Max)
			pr := mc.Terminal.Percentiles
			fmt.Fprintf(&buf, "    Terminal percentiles:    P10 %.4f  P25 %.4f  P50 %.4f  P75 %.4f  P90 %.4f\n",
				pr.P10, pr.P25, pr.P50, pr.P75, pr.P90)
		}
		fmt.Fprintln(&buf)
	}

	if len(report.Sensitivity) > 0 {
		fmt.Fprintln(&buf, "VOLATILITY SENSITIVITY")
		fmt.Fprintln(&buf, strings.Repeat("-", 80))
		fmt.Fprintf(&buf, "%-8s %8s %14s %10s %14s %10s %14s %14s\n", "Factor", "Sigma", "BS Call", "Change", "BS Put", "Change", "KI Call", "KI Put")
		for _, s := range report.Sensitivity {
			kiCall, kiPut := "-", "-"
			if s.Barrier != nil {
				kiCall, kiPut = FormatPremium(s.Barrier.Call), FormatPremium(s.Barrier.Put)
			}
			fmt.Fprintf(&buf, "%-8g %8s %14s %10s %14s %10s %14s %14s\n",
				s.Factor, FormatPercentage(s.Volatility),
				FormatPremium(s.BlackScholes.Call), FormatChange(s.BlackScholes.Call, report.BlackScholes.Call),
				FormatPremium(s.BlackScholes.Put), FormatChange(s.BlackScholes.Put, report.BlackScholes.Put),
				kiCall, kiPut)
		}
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, "ASSUMPTIONS")
	fmt.Fprintln(&buf, strings.Repeat("-", 80))
	for _, a := range GenerateAssumptions(report) {
		fmt.Fprintf(&buf, "  - %s\n", a)
	}
	return buf.Bytes(), nil
}
