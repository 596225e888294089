// Package pricing implements the closed-form Black-Scholes-Merton pricer.
package pricing

import (
	"math"

	"github.com/rpgo/optionpricer/internal/domain"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultVolatilityShocks are the +/-10% sigma moves used for sensitivity analysis.
var DefaultVolatilityShocks = []float64{1.10, 0.90}

// BlackScholes prices a European call and put in closed form.
//
//	d1 = (ln(S0/K) + (r + sigma^2/2)T) / (sigma sqrt(T))
//	d2 = d1 - sigma sqrt(T)
//
// Invalid inputs return a *domain.DomainError. If sigma*sqrt(T) collapses to zero or d1/d2 are not
// finite, domain.ErrNumericalDegeneracy is returned instead of NaN or Inf prices.
func BlackScholes(p domain.MarketParameters) (domain.PriceEstimate, error) {
	d1, d2, err := dValues(p)
	if err != nil {
		return domain.PriceEstimate{}, err
	}

	discountedStrike := p.Strike * p.DiscountFactor()
	call := distuv.UnitNormal.CDF(d1)*p.Spot - distuv.UnitNormal.CDF(d2)*discountedStrike
	put := distuv.UnitNormal.CDF(-d2)*discountedStrike - distuv.UnitNormal.CDF(-d1)*p.Spot

	// deep in/out of the money the subtraction can land a hair below zero
	return domain.PriceEstimate{Call: math.Max(call, 0), Put: math.Max(put, 0)}, nil
}

// Intrinsic returns the option values with no time value left.
// It is the special case for maturities too short for BlackScholes.
func Intrinsic(p domain.MarketParameters) domain.PriceEstimate {
	return domain.PriceEstimate{
		Call: math.Max(p.Spot-p.Strike, 0),
		Put:  math.Max(p.Strike-p.Spot, 0),
	}
}

// Vega returns dPrice/dSigma, identical for calls and puts.
func Vega(p domain.MarketParameters) (float64, error) {
	d1, _, err := dValues(p)
	if err != nil {
		return 0, err
	}
	return p.Spot * distuv.UnitNormal.Prob(d1) * math.Sqrt(p.Maturity), nil
}

// VolatilityShock reprices p with sigma scaled by each factor.
func VolatilityShock(p domain.MarketParameters, factors []float64) ([]domain.SensitivityResult, error) {
	results := make([]domain.SensitivityResult, 0, len(factors))
	for _, f := range factors {
		if f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, domain.NewDomainError("volatility_shock", f, "factor must be positive")
		}
		shocked := p.WithVolatility(p.Volatility * f)
		est, err := BlackScholes(shocked)
		if err != nil {
			return nil, err
		}
		results = append(results, domain.SensitivityResult{
			Factor:       f,
			Volatility:   shocked.Volatility,
			BlackScholes: est,
		})
	}
	return results, nil
}

func dValues(p domain.MarketParameters) (float64, float64, error) {
	if err := p.Validate(); err != nil {
		return 0, 0, err
	}
	volSqrtT := p.Volatility * math.Sqrt(p.Maturity)
	if volSqrtT == 0 {
		return 0, 0, domain.ErrNumericalDegeneracy
	}
	d1 := (math.Log(p.Spot/p.Strike) + (p.RiskFreeRate+0.5*p.Volatility*p.Volatility)*p.Maturity) / volSqrtT
	d2 := d1 - volSqrtT
	if math.IsNaN(d1) || math.IsInf(d1, 0) || math.IsNaN(d2) || math.IsInf(d2, 0) {
		return 0, 0, domain.ErrNumericalDegeneracy
	}
	return d1, d2, nil
}
