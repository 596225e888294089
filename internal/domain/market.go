package domain

import (
	"math"
)

// MarketParameters holds the inputs shared by the analytic and Monte Carlo pricers.
// Drift is only used for path generation; discounting always happens at RiskFreeRate.
type MarketParameters struct {
	Spot         float64 `yaml:"spot" json:"spot"`                     // S0
	Strike       float64 `yaml:"strike" json:"strike"`                 // K
	RiskFreeRate float64 `yaml:"risk_free_rate" json:"risk_free_rate"` // r
	Drift        float64 `yaml:"drift" json:"drift"`                   // mu
	Volatility   float64 `yaml:"volatility" json:"volatility"`         // sigma
	Maturity     float64 `yaml:"maturity" json:"maturity"`             // T, in years
}

// Validate checks the positivity constraints on spot, strike, volatility and maturity.
func (p MarketParameters) Validate() error {
	if err := p.ValidateDynamics(); err != nil {
		return err
	}
	return positive("strike", p.Strike)
}

// ValidateDynamics checks only what path simulation needs; the strike is ignored.
func (p MarketParameters) ValidateDynamics() error {
	if err := positive("spot", p.Spot); err != nil {
		return err
	}
	if err := finite("risk_free_rate", p.RiskFreeRate); err != nil {
		return err
	}
	if err := finite("drift", p.Drift); err != nil {
		return err
	}
	if err := positive("volatility", p.Volatility); err != nil {
		return err
	}
	return positive("maturity", p.Maturity)
}

// DiscountFactor returns e^(-rT).
func (p MarketParameters) DiscountFactor() float64 {
	return math.Exp(-p.RiskFreeRate * p.Maturity)
}

// WithVolatility returns a copy of p with sigma replaced.
func (p MarketParameters) WithVolatility(sigma float64) MarketParameters {
	p.Volatility = sigma
	return p
}

// BarrierParameters extends MarketParameters with the knock-in barrier level.
type BarrierParameters struct {
	MarketParameters `yaml:",inline"`
	Barrier          float64 `yaml:"barrier" json:"barrier"` // Sb
}

// Validate checks the market parameters and requires a positive barrier.
func (b BarrierParameters) Validate() error {
	if err := b.MarketParameters.Validate(); err != nil {
		return err
	}
	return positive("barrier", b.Barrier)
}

// SimulationConfig controls the shape of a simulated path ensemble.
type SimulationConfig struct {
	NumSteps int    `yaml:"num_steps" json:"num_steps"`
	NumPaths int    `yaml:"num_paths" json:"num_paths"`
	Seed     uint64 `yaml:"seed" json:"seed"`       // 0 picks a fresh seed
	Workers  int    `yaml:"workers" json:"workers"` // 0 runs sequentially
}

// Validate requires at least one step and one path.
func (c SimulationConfig) Validate() error {
	if c.NumSteps < 1 {
		return NewDomainError("num_steps", float64(c.NumSteps), "must be at least 1")
	}
	if c.NumPaths < 1 {
		return NewDomainError("num_paths", float64(c.NumPaths), "must be at least 1")
	}
	if c.Workers < 0 {
		return NewDomainError("workers", float64(c.Workers), "cannot be negative")
	}
	return nil
}

// TimeStep returns dT for a maturity T.
func (c SimulationConfig) TimeStep(maturity float64) float64 {
	return maturity / float64(c.NumSteps)
}

// PriceEstimate is a call/put price pair.
type PriceEstimate struct {
	Call float64 `json:"call"`
	Put  float64 `json:"put"`
}

func positive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NewDomainError(field, v, "must be finite")
	}
	if v <= 0 {
		return NewDomainError(field, v, "must be positive")
	}
	return nil
}

func finite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NewDomainError(field, v, "must be finite")
	}
	return nil
}
