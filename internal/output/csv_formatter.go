package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/optionpricer/internal/domain"
)

// CSVSummarizer writes one row per price estimate in report order.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "csv" }
func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.PricingReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Method", "Option", "Run", "Steps", "Paths", "Seed", "Volatility", "Call", "Put", "KnockInRate"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	sigma := fixed(report.Market.Volatility, 6)
	method := "black-scholes"
	if report.Intrinsic {
		method = "intrinsic"
	}
	rows := [][]string{
		{method, "european", "", "", "", "", sigma, fixed(report.BlackScholes.Call, 6), fixed(report.BlackScholes.Put, 6), ""},
	}
	for _, mc := range report.MonteCarlo {
		rows = append(rows, mcRow("european", mc, sigma, mc.European))
	}
	for _, mc := range report.MonteCarlo {
		rows = append(rows, mcRow("barrier-knock-in", mc, sigma, mc.Barrier))
	}
	for _, s := range report.Sensitivity {
		shocked := fixed(s.Volatility, 6)
		rows = append(rows, []string{"black-scholes", "european", "", "", "", "", shocked, fixed(s.BlackScholes.Call, 6), fixed(s.BlackScholes.Put, 6), ""})
		if s.Barrier != nil {
			rows = append(rows, []string{"monte-carlo", "barrier-knock-in", "", "", "", "", shocked, fixed(s.Barrier.Call, 6), fixed(s.Barrier.Put, 6), ""})
		}
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func mcRow(option string, mc domain.MonteCarloResult, sigma string, est domain.PriceEstimate) []string {
	return []string{
		"monte-carlo",
		option,
		mc.Name,
		intToString(mc.NumSteps),
		intToString(mc.NumPaths),
		uintToString(mc.Seed),
		sigma,
		fixed(est.Call, 6),
		fixed(est.Put, 6),
		fixed(mc.KnockInRate, 6),
	}
}
