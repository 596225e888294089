package pricing

import (
	"errors"
	"math"
	"testing"

	"github.com/rpgo/optionpricer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func market(s0, k, t, r, sigma float64) domain.MarketParameters {
	return domain.MarketParameters{Spot: s0, Strike: k, Maturity: t, RiskFreeRate: r, Drift: r, Volatility: sigma}
}

func TestBlackScholes_ReferenceCase(t *testing.T) {
	est, err := BlackScholes(market(100, 100, 1, 0.05, 0.2))
	require.NoError(t, err)
	assert.InDelta(t, 10.450583572185565, est.Call, 1e-9)
	assert.InDelta(t, 5.573526022256971, est.Put, 1e-9)
}

func TestBlackScholes_DefaultScenario(t *testing.T) {
	// S0=100, K=105, r=0.05, sigma=0.2, T=1
	est, err := BlackScholes(market(100, 105, 1, 0.05, 0.2))
	require.NoError(t, err)
	assert.InDelta(t, 8.021352235143176, est.Call, 1e-6)
	assert.InDelta(t, 7.9004418077181455, est.Put, 1e-6)
}

func TestBlackScholes_PutCallParity(t *testing.T) {
	spots := []float64{50, 90, 100, 110, 250}
	strikes := []float64{60, 100, 105, 200}
	maturities := []float64{0.05, 0.5, 1, 3}
	rates := []float64{-0.01, 0, 0.05, 0.1}
	vols := []float64{0.05, 0.2, 0.6}

	for _, s0 := range spots {
		for _, k := range strikes {
			for _, mat := range maturities {
				for _, r := range rates {
					for _, sigma := range vols {
						p := market(s0, k, mat, r, sigma)
						est, err := BlackScholes(p)
						require.NoError(t, err)
						parity := s0 - k*math.Exp(-r*mat)
						assert.InDelta(t, parity, est.Call-est.Put, 1e-9, "params %+v", p)
						assert.GreaterOrEqual(t, est.Call, 0.0)
						assert.GreaterOrEqual(t, est.Put, 0.0)
					}
				}
			}
		}
	}
}

func TestBlackScholes_MonotonicInVolatility(t *testing.T) {
	prev, err := BlackScholes(market(100, 105, 1, 0.05, 0.05))
	require.NoError(t, err)
	for sigma := 0.1; sigma <= 1.0; sigma += 0.05 {
		est, err := BlackScholes(market(100, 105, 1, 0.05, sigma))
		require.NoError(t, err)
		assert.Greater(t, est.Call, prev.Call, "call at sigma=%g", sigma)
		assert.Greater(t, est.Put, prev.Put, "put at sigma=%g", sigma)
		prev = est
	}
}

func TestBlackScholes_InvalidInputs(t *testing.T) {
	cases := map[string]domain.MarketParameters{
		"zero spot":       market(0, 105, 1, 0.05, 0.2),
		"negative strike": market(100, -1, 1, 0.05, 0.2),
		"zero maturity":   market(100, 105, 0, 0.05, 0.2),
		"zero volatility": market(100, 105, 1, 0.05, 0),
		"nan rate":        market(100, 105, 1, math.NaN(), 0.2),
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := BlackScholes(p)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrDomain))
			var de *domain.DomainError
			assert.True(t, errors.As(err, &de))
		})
	}
}

func TestBlackScholes_NumericalDegeneracy(t *testing.T) {
	// sigma*sqrt(T) underflows to zero
	_, err := BlackScholes(market(100, 105, 1e-300, 0.05, 1e-200))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNumericalDegeneracy)
	assert.False(t, errors.Is(err, domain.ErrDomain))
}

func TestIntrinsic(t *testing.T) {
	est := Intrinsic(market(90, 100, 1, 0.05, 0.2))
	assert.Equal(t, 0.0, est.Call)
	assert.Equal(t, 10.0, est.Put)

	est = Intrinsic(market(120, 100, 1, 0.05, 0.2))
	assert.Equal(t, 20.0, est.Call)
	assert.Equal(t, 0.0, est.Put)
}

func TestVega(t *testing.T) {
	p := market(100, 105, 1, 0.05, 0.2)
	vega, err := Vega(p)
	require.NoError(t, err)
	assert.Greater(t, vega, 0.0)

	// finite difference check
	h := 1e-5
	up, err := BlackScholes(p.WithVolatility(p.Volatility + h))
	require.NoError(t, err)
	down, err := BlackScholes(p.WithVolatility(p.Volatility - h))
	require.NoError(t, err)
	assert.InDelta(t, (up.Call-down.Call)/(2*h), vega, 1e-4)
	assert.InDelta(t, (up.Put-down.Put)/(2*h), vega, 1e-4)
}

func TestVolatilityShock(t *testing.T) {
	p := market(100, 105, 1, 0.05, 0.2)
	base, err := BlackScholes(p)
	require.NoError(t, err)

	results, err := VolatilityShock(p, DefaultVolatilityShocks)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.InDelta(t, 0.22, results[0].Volatility, 1e-12)
	assert.Greater(t, results[0].BlackScholes.Call, base.Call)
	assert.Greater(t, results[0].BlackScholes.Put, base.Put)

	assert.InDelta(t, 0.18, results[1].Volatility, 1e-12)
	assert.Less(t, results[1].BlackScholes.Call, base.Call)
	assert.Less(t, results[1].BlackScholes.Put, base.Put)

	_, err = VolatilityShock(p, []float64{0})
	assert.ErrorIs(t, err, domain.ErrDomain)
}
