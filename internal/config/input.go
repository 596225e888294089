package config

import (
	"fmt"
	"os"

	"github.com/rpgo/optionpricer/internal/domain"
	"github.com/rpgo/optionpricer/pkg/dateutil"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of pricing configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// DefaultConfiguration returns the reference scenario: S0=100, K=105, mu=r=5%, sigma=20%, T=1y,
// barrier 110, priced with a one-step and a 252-step run of 200000 paths.
func DefaultConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Market: domain.BarrierParameters{
			MarketParameters: domain.MarketParameters{
				Spot:         100,
				Strike:       105,
				RiskFreeRate: 0.05,
				Drift:        0.05,
				Volatility:   0.2,
				Maturity:     1.0,
			},
			Barrier: 110,
		},
		Runs: []domain.RunSpec{
			{Name: "one-step", NumSteps: 1, NumPaths: 200000},
			{Name: "multi-step", NumSteps: 252, NumPaths: 200000},
		},
		Sensitivity: domain.SensitivitySettings{
			VolatilityShocks: []float64{1.10, 0.90},
		},
		Plot: domain.PlotSettings{
			Enabled:  true,
			NumSteps: 10,
			NumPaths: 10000,
			MaxLines: 50,
		},
	}
}

// LoadFromFile loads configuration from a YAML file. Keys missing from the file keep their defaults.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes YAML on top of DefaultConfiguration and validates the result
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	config := DefaultConfiguration()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ApplyDates(config); err != nil {
		return nil, err
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// ApplyDates sets Market.Maturity from config.Dates when present.
func (ip *InputParser) ApplyDates(config *domain.Configuration) error {
	d := config.Dates
	if d == nil {
		return nil
	}
	if d.Valuation.IsZero() || d.Expiry.IsZero() {
		return fmt.Errorf("dates: both valuation and expiry are required")
	}
	dc, err := dateutil.ParseDayCount(d.DayCount)
	if err != nil {
		return fmt.Errorf("dates: %w", err)
	}
	if !d.Expiry.After(d.Valuation) {
		return fmt.Errorf("dates: expiry %s must be after valuation %s", d.Expiry.Format("2006-01-02"), d.Valuation.Format("2006-01-02"))
	}
	config.Market.Maturity = dateutil.YearFraction(d.Valuation, d.Expiry, dc)
	return nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := config.Market.Validate(); err != nil {
		return fmt.Errorf("market: %w", err)
	}

	if len(config.Runs) == 0 {
		return fmt.Errorf("no simulation runs provided")
	}

	names := make(map[string]bool, len(config.Runs))
	for i, run := range config.Runs {
		if err := ip.validateRun(run, config.Simulation); err != nil {
			return fmt.Errorf("run %d validation failed: %w", i, err)
		}
		if names[run.Label()] {
			return fmt.Errorf("run %d: duplicate run name %q", i, run.Label())
		}
		names[run.Label()] = true
	}

	for _, f := range config.Sensitivity.VolatilityShocks {
		if f <= 0 {
			return fmt.Errorf("volatility shock factors must be positive, got %g", f)
		}
	}
	if br := config.Sensitivity.BarrierRun; br != "" && !names[br] {
		return fmt.Errorf("sensitivity barrier_run %q does not name a configured run", br)
	}

	if config.Plot.Enabled {
		plotRun := domain.RunSpec{NumSteps: config.Plot.NumSteps, NumPaths: config.Plot.NumPaths}
		if err := ip.validateRun(plotRun, config.Simulation); err != nil {
			return fmt.Errorf("plot: %w", err)
		}
		if config.Plot.MaxLines < 0 {
			return fmt.Errorf("plot max_lines cannot be negative")
		}
	}

	return nil
}

// validateRun validates a single Monte Carlo run
func (ip *InputParser) validateRun(run domain.RunSpec, settings domain.SimulationSettings) error {
	return run.SimulationConfig(settings).Validate()
}
