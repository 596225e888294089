package domain

import "time"

// PricingReport collects every estimate produced for one Configuration.
type PricingReport struct {
	Market       BarrierParameters   `json:"market"`
	BlackScholes PriceEstimate       `json:"black_scholes"`
	Intrinsic    bool                `json:"intrinsic"` // true when the analytic price fell back to intrinsic value
	MonteCarlo   []MonteCarloResult  `json:"monte_carlo"`
	Sensitivity  []SensitivityResult `json:"sensitivity,omitempty"`
	Paths        *PathSample         `json:"paths,omitempty"`
	GeneratedAt  time.Time           `json:"generated_at"`
}

// MonteCarloResult holds the European and barrier estimates from one simulated ensemble.
type MonteCarloResult struct {
	Name        string        `json:"name"`
	NumSteps    int           `json:"num_steps"`
	NumPaths    int           `json:"num_paths"`
	Seed        uint64        `json:"seed"`
	European    PriceEstimate `json:"european"`
	Barrier     PriceEstimate `json:"barrier_knock_in"`
	KnockInRate float64       `json:"knock_in_rate"`
	Terminal    Summary       `json:"terminal"`
	Elapsed     time.Duration `json:"elapsed_ns"`
}

// SensitivityResult is the repricing under one volatility shock.
type SensitivityResult struct {
	Factor       float64        `json:"factor"`
	Volatility   float64        `json:"volatility"`
	BlackScholes PriceEstimate  `json:"black_scholes"`
	Barrier      *PriceEstimate `json:"barrier_knock_in,omitempty"`
}

// PathSample is a plottable subset of a simulated ensemble.
// Series[i] is one path indexed by time step; Times holds the matching year fractions.
type PathSample struct {
	Times      []float64   `json:"times"`
	Series     [][]float64 `json:"series"`
	TotalPaths int         `json:"total_paths"`
}

// Summary describes the distribution of simulated terminal prices.
type Summary struct {
	Mean        float64          `json:"mean"`
	StdDev      float64          `json:"std_dev"`
	Min         float64          `json:"min"`
	Max         float64          `json:"max"`
	Percentiles PercentileRanges `json:"percentiles"`
}

// PercentileRanges represents percentile ranges for simulated terminal prices
type PercentileRanges struct {
	P10 float64 `json:"p10"`
	P25 float64 `json:"p25"`
	P50 float64 `json:"p50"`
	P75 float64 `json:"p75"`
	P90 float64 `json:"p90"`
}
