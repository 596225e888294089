package domain

import (
	"fmt"
	"time"
)

// Configuration is the top-level pricing document loaded from YAML.
type Configuration struct {
	Market      BarrierParameters   `yaml:"market" json:"market"`
	Runs        []RunSpec           `yaml:"runs" json:"runs"`
	Simulation  SimulationSettings  `yaml:"simulation" json:"simulation"`
	Sensitivity SensitivitySettings `yaml:"sensitivity" json:"sensitivity"`
	Plot        PlotSettings        `yaml:"plot" json:"plot"`
	// Dates, when set, replaces Market.Maturity with the year fraction between them.
	Dates *MaturityDates `yaml:"dates,omitempty" json:"dates,omitempty"`
}

// MaturityDates derives the maturity from a valuation and an expiry date.
type MaturityDates struct {
	Valuation time.Time `yaml:"valuation" json:"valuation"`
	Expiry    time.Time `yaml:"expiry" json:"expiry"`
	DayCount  string    `yaml:"day_count" json:"day_count"` // act/365 (default), act/365.25, act/360, act/act
}

// RunSpec names one Monte Carlo discretization, e.g. the one-step and the 252-step run.
type RunSpec struct {
	Name     string `yaml:"name" json:"name"`
	NumSteps int    `yaml:"num_steps" json:"num_steps"`
	NumPaths int    `yaml:"num_paths" json:"num_paths"`
}

// SimulationSettings apply to every run.
type SimulationSettings struct {
	Seed    uint64 `yaml:"seed" json:"seed"`
	Workers int    `yaml:"workers" json:"workers"`
}

// SimulationConfig combines a run with the shared simulation settings.
func (r RunSpec) SimulationConfig(s SimulationSettings) SimulationConfig {
	return SimulationConfig{
		NumSteps: r.NumSteps,
		NumPaths: r.NumPaths,
		Seed:     s.Seed,
		Workers:  s.Workers,
	}
}

// Label returns the run name or a generated one.
func (r RunSpec) Label() string {
	if r.Name != "" {
		return r.Name
	}
	return fmt.Sprintf("%d-step", r.NumSteps)
}

// SensitivitySettings lists multiplicative volatility shocks (1.10 = +10%).
type SensitivitySettings struct {
	VolatilityShocks []float64 `yaml:"volatility_shocks" json:"volatility_shocks"`
	// BarrierRun names the run re-priced under each shock; empty skips Monte Carlo re-pricing.
	BarrierRun string `yaml:"barrier_run" json:"barrier_run"`
}

// PlotSettings controls the path ensemble kept for visualization.
type PlotSettings struct {
	Enabled  bool `yaml:"enabled" json:"enabled"`
	NumSteps int  `yaml:"num_steps" json:"num_steps"`
	NumPaths int  `yaml:"num_paths" json:"num_paths"`
	MaxLines int  `yaml:"max_lines" json:"max_lines"`
}
