// Package payoff turns simulated path ensembles into Monte Carlo option prices.
//
// Barrier monitoring only looks at the simulated time steps. A continuous path can cross the barrier
// between two steps without being seen, so knock-in prices carry a downward discretization bias that
// shrinks as the number of steps grows.
package payoff

import (
	"math"

	"github.com/rpgo/optionpricer/internal/domain"
	"github.com/rpgo/optionpricer/internal/simulation"
)

// EvaluateEuropean returns the mean discounted European call and put payoff over all paths.
func EvaluateEuropean(e *simulation.PathEnsemble, strike, rate, maturity float64) (domain.PriceEstimate, error) {
	if err := checkInputs(e, strike, rate, maturity); err != nil {
		return domain.PriceEstimate{}, err
	}
	var acc accumulator
	for j := 0; j < e.Paths(); j++ {
		acc.add(e.Terminal(j), strike)
	}
	return acc.estimate(e.Paths(), discount(rate, maturity)), nil
}

// EvaluateBarrierKnockIn prices up-and-in options: a path pays the European payoff only if some
// simulated price, row 0 included, is >= barrier. Other paths pay exactly zero.
// If barrier <= S0 every path is knocked in at t=0 and the result equals EvaluateEuropean.
func EvaluateBarrierKnockIn(e *simulation.PathEnsemble, barrier, strike, rate, maturity float64) (domain.PriceEstimate, error) {
	if err := checkInputs(e, strike, rate, maturity); err != nil {
		return domain.PriceEstimate{}, err
	}
	if err := checkBarrier(barrier); err != nil {
		return domain.PriceEstimate{}, err
	}
	var acc accumulator
	for j := 0; j < e.Paths(); j++ {
		if knockedIn(e, j, barrier) {
			acc.add(e.Terminal(j), strike)
		}
	}
	return acc.estimate(e.Paths(), discount(rate, maturity)), nil
}

// KnockInRate returns the fraction of paths that touched the barrier.
func KnockInRate(e *simulation.PathEnsemble, barrier float64) (float64, error) {
	if err := checkEnsemble(e); err != nil {
		return 0, err
	}
	if err := checkBarrier(barrier); err != nil {
		return 0, err
	}
	hits := 0
	for j := 0; j < e.Paths(); j++ {
		if knockedIn(e, j, barrier) {
			hits++
		}
	}
	return float64(hits) / float64(e.Paths()), nil
}

func knockedIn(e *simulation.PathEnsemble, path int, barrier float64) bool {
	for t := 0; t <= e.Steps(); t++ {
		if e.At(t, path) >= barrier {
			return true
		}
	}
	return false
}

// accumulator sums undiscounted payoffs; discounting is applied once to the mean.
type accumulator struct {
	call, put float64
}

func (a *accumulator) add(terminal, strike float64) {
	a.call += math.Max(terminal-strike, 0)
	a.put += math.Max(strike-terminal, 0)
}

func (a accumulator) estimate(paths int, df float64) domain.PriceEstimate {
	n := float64(paths)
	return domain.PriceEstimate{Call: a.call / n * df, Put: a.put / n * df}
}

func discount(rate, maturity float64) float64 { return math.Exp(-rate * maturity) }

func checkEnsemble(e *simulation.PathEnsemble) error {
	if e.Paths() == 0 {
		return domain.NewDomainError("num_paths", 0, "ensemble has no paths")
	}
	if e.Steps() < 0 {
		return domain.NewDomainError("num_steps", float64(e.Steps()+1), "ensemble has no rows")
	}
	return nil
}

func checkInputs(e *simulation.PathEnsemble, strike, rate, maturity float64) error {
	if err := checkEnsemble(e); err != nil {
		return err
	}
	if strike <= 0 || math.IsNaN(strike) || math.IsInf(strike, 0) {
		return domain.NewDomainError("strike", strike, "must be positive")
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return domain.NewDomainError("risk_free_rate", rate, "must be finite")
	}
	if maturity <= 0 || math.IsNaN(maturity) || math.IsInf(maturity, 0) {
		return domain.NewDomainError("maturity", maturity, "must be positive")
	}
	return nil
}

func checkBarrier(barrier float64) error {
	if barrier <= 0 || math.IsNaN(barrier) || math.IsInf(barrier, 0) {
		return domain.NewDomainError("barrier", barrier, "must be positive")
	}
	return nil
}
