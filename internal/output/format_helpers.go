package output

import (
	"math"
	"strconv"
	"time"

	"github.com/rpgo/optionpricer/pkg/decimal"
	stddec "github.com/shopspring/decimal"
)

// FormatPremium formats an option price with a currency sign and four decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatPremium(v float64) string {
	if !finite(v) {
		return "n/a"
	}
	return decimal.NewPremium(v).Format()
}

// FormatPercentage formats a fraction (0.25) as a percentage with 2 decimals (25.00%).
func FormatPercentage(fraction float64) string {
	if !finite(fraction) {
		return "n/a"
	}
	return stddec.NewFromFloat(fraction).Mul(stddec.NewFromInt(100)).StringFixed(2) + "%"
}

// FormatChange formats the relative change of v against base, signed.
func FormatChange(v, base float64) string {
	if !finite(v) || !finite(base) {
		return "n/a"
	}
	pct := decimal.NewPremium(v).PercentChange(decimal.NewPremium(base))
	s := pct.StringFixed(2) + "%"
	if pct.IsPositive() {
		s = "+" + s
	}
	return s
}

// fixed renders a float with a fixed number of decimals for machine-readable output.
func fixed(v float64, places int32) string {
	if !finite(v) {
		return "NaN"
	}
	return stddec.NewFromFloat(v).StringFixed(places)
}

func formatDuration(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}

func intToString(i int) string { return strconv.Itoa(i) }

func uintToString(u uint64) string { return strconv.FormatUint(u, 10) }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
