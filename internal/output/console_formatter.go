package output

import (
	"bytes"
	"fmt"
	"math"

	"github.com/rpgo/optionpricer/internal/domain"
)

// ConsoleFormatter prints one line per price, in the order the prices were computed.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(report *domain.PricingReport) ([]byte, error) {
	var buf bytes.Buffer
	analytic := "Black-Scholes"
	if report.Intrinsic {
		analytic = "Intrinsic"
	}
	fmt.Fprintf(&buf, "%s price of a European call option is %s\n", analytic, FormatPremium(report.BlackScholes.Call))
	fmt.Fprintf(&buf, "%s price of a European put option is %s\n", analytic, FormatPremium(report.BlackScholes.Put))
	for _, mc := range report.MonteCarlo {
		fmt.Fprintf(&buf, "%s MC price of a European call option is %s\n", mc.Name, FormatPremium(mc.European.Call))
		fmt.Fprintf(&buf, "%s MC price of a European put option is %s\n", mc.Name, FormatPremium(mc.European.Put))
	}
	for _, mc := range report.MonteCarlo {
		fmt.Fprintf(&buf, "%s MC price of a knock-in barrier call option is %s\n", mc.Name, FormatPremium(mc.Barrier.Call))
		fmt.Fprintf(&buf, "%s MC price of a knock-in barrier put option is %s\n", mc.Name, FormatPremium(mc.Barrier.Put))
	}
	for _, s := range report.Sensitivity {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "%s the volatility by %s (sigma = %s)\n", shockVerb(s.Factor), FormatPercentage(math.Abs(s.Factor-1)), FormatPercentage(s.Volatility))
		fmt.Fprintf(&buf, "Black-Scholes price of a European call option is %s\n", FormatPremium(s.BlackScholes.Call))
		fmt.Fprintf(&buf, "Black-Scholes price of a European put option is %s\n", FormatPremium(s.BlackScholes.Put))
		if s.Barrier != nil {
			fmt.Fprintf(&buf, "MC price of a knock-in barrier call option is %s\n", FormatPremium(s.Barrier.Call))
			fmt.Fprintf(&buf, "MC price of a knock-in barrier put option is %s\n", FormatPremium(s.Barrier.Put))
		}
	}
	return buf.Bytes(), nil
}

func shockVerb(factor float64) string {
	switch {
	case factor > 1:
		return "Increasing"
	case factor < 1:
		return "Decreasing"
	default:
		return "Keeping"
	}
}
