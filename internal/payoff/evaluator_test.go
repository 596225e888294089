package payoff

import (
	"math"
	"testing"

	"github.com/rpgo/optionpricer/internal/domain"
	"github.com/rpgo/optionpricer/internal/pricing"
	"github.com/rpgo/optionpricer/internal/simulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handBuilt(t *testing.T) *simulation.PathEnsemble {
	t.Helper()
	e, err := simulation.NewPathEnsemble(0.5,
		[]float64{100, 112, 108}, // touches 110, ends ITM for call
		[]float64{100, 95, 90},   // never touches, ends ITM for put
		[]float64{100, 104, 115}, // touches at maturity only
		[]float64{100, 110, 95},  // touches exactly 110, ends ITM for put
	)
	require.NoError(t, err)
	return e
}

func TestEvaluateEuropean_HandBuilt(t *testing.T) {
	e := handBuilt(t)
	est, err := EvaluateEuropean(e, 105, 0.05, 1)
	require.NoError(t, err)

	df := math.Exp(-0.05)
	assert.InDelta(t, (3.0+0+10+0)/4*df, est.Call, 1e-12)
	assert.InDelta(t, (0+15.0+0+10)/4*df, est.Put, 1e-12)
}

func TestEvaluateBarrierKnockIn_HandBuilt(t *testing.T) {
	e := handBuilt(t)
	est, err := EvaluateBarrierKnockIn(e, 110, 105, 0.05, 1)
	require.NoError(t, err)

	df := math.Exp(-0.05)
	// path 1 never reaches 110 and pays nothing
	assert.InDelta(t, (3.0+10)/4*df, est.Call, 1e-12)
	assert.InDelta(t, 10.0/4*df, est.Put, 1e-12)

	rate, err := KnockInRate(e, 110)
	require.NoError(t, err)
	assert.Equal(t, 0.75, rate)
}

func TestEvaluateBarrierKnockIn_NoPathTouches(t *testing.T) {
	est, err := EvaluateBarrierKnockIn(handBuilt(t), 500, 105, 0.05, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.PriceEstimate{}, est)
}

func TestEvaluate_InvalidInputs(t *testing.T) {
	e := handBuilt(t)

	_, err := EvaluateEuropean(nil, 105, 0.05, 1)
	assert.ErrorIs(t, err, domain.ErrDomain)
	_, err = EvaluateEuropean(&simulation.PathEnsemble{}, 105, 0.05, 1)
	assert.ErrorIs(t, err, domain.ErrDomain)
	_, err = EvaluateBarrierKnockIn(nil, 110, 105, 0.05, 1)
	assert.ErrorIs(t, err, domain.ErrDomain)
	_, err = EvaluateBarrierKnockIn(&simulation.PathEnsemble{}, 110, 105, 0.05, 1)
	assert.ErrorIs(t, err, domain.ErrDomain)
	_, err = KnockInRate(nil, 110)
	assert.ErrorIs(t, err, domain.ErrDomain)

	_, err = EvaluateEuropean(e, 0, 0.05, 1)
	assert.ErrorIs(t, err, domain.ErrDomain)
	_, err = EvaluateEuropean(e, 105, math.NaN(), 1)
	assert.ErrorIs(t, err, domain.ErrDomain)
	_, err = EvaluateEuropean(e, 105, 0.05, 0)
	assert.ErrorIs(t, err, domain.ErrDomain)
	_, err = EvaluateBarrierKnockIn(e, -1, 105, 0.05, 1)
	assert.ErrorIs(t, err, domain.ErrDomain)
}

func TestEvaluate_DoesNotMutateEnsemble(t *testing.T) {
	e := handBuilt(t)
	before := make([][]float64, e.Paths())
	for j := range before {
		before[j] = e.Path(j)
	}
	_, err := EvaluateEuropean(e, 105, 0.05, 1)
	require.NoError(t, err)
	_, err = EvaluateBarrierKnockIn(e, 110, 105, 0.05, 1)
	require.NoError(t, err)
	for j := range before {
		assert.Equal(t, before[j], e.Path(j))
	}
}

func simulate(t *testing.T, p domain.MarketParameters, steps, paths int, seed uint64) *simulation.PathEnsemble {
	t.Helper()
	e, err := simulation.NewSimulator().Simulate(p, domain.SimulationConfig{NumSteps: steps, NumPaths: paths, Seed: seed, Workers: 4})
	require.NoError(t, err)
	return e
}

func defaultMarket() domain.MarketParameters {
	return domain.MarketParameters{Spot: 100, Strike: 105, RiskFreeRate: 0.05, Drift: 0.05, Volatility: 0.2, Maturity: 1}
}

func TestBarrierDominance(t *testing.T) {
	p := defaultMarket()
	for _, steps := range []int{1, 12, 52} {
		for seed := uint64(1); seed <= 3; seed++ {
			e := simulate(t, p, steps, 5000, seed)
			eu, err := EvaluateEuropean(e, p.Strike, p.RiskFreeRate, p.Maturity)
			require.NoError(t, err)
			for _, barrier := range []float64{101, 110, 130} {
				bar, err := EvaluateBarrierKnockIn(e, barrier, p.Strike, p.RiskFreeRate, p.Maturity)
				require.NoError(t, err)
				assert.LessOrEqual(t, bar.Call, eu.Call)
				assert.LessOrEqual(t, bar.Put, eu.Put)
				assert.GreaterOrEqual(t, bar.Call, 0.0)
				assert.GreaterOrEqual(t, bar.Put, 0.0)
			}
		}
	}
}

func TestDegenerateBarrierEqualsEuropean(t *testing.T) {
	p := defaultMarket()
	e := simulate(t, p, 24, 3000, 17)
	eu, err := EvaluateEuropean(e, p.Strike, p.RiskFreeRate, p.Maturity)
	require.NoError(t, err)

	for _, barrier := range []float64{p.Spot, 90, 1} {
		bar, err := EvaluateBarrierKnockIn(e, barrier, p.Strike, p.RiskFreeRate, p.Maturity)
		require.NoError(t, err)
		assert.Equal(t, eu, bar, "barrier %g", barrier)

		rate, err := KnockInRate(e, barrier)
		require.NoError(t, err)
		assert.Equal(t, 1.0, rate)
	}
}

func TestMoreMonitoringDatesKnockInMorePaths(t *testing.T) {
	// one 252-step path set contains the terminal row of a 1-step run as a subset of checks,
	// so on average finer monitoring detects more crossings
	p := defaultMarket()
	coarse, err := KnockInRate(simulate(t, p, 1, 20000, 5), 110)
	require.NoError(t, err)
	fine, err := KnockInRate(simulate(t, p, 252, 20000, 5), 110)
	require.NoError(t, err)
	assert.Greater(t, fine, coarse)
}

func TestMonteCarloConvergesToBlackScholes(t *testing.T) {
	if testing.Short() {
		t.Skip("large simulation")
	}
	p := defaultMarket()
	bs, err := pricing.BlackScholes(p)
	require.NoError(t, err)

	for _, steps := range []int{1, 50} {
		e := simulate(t, p, steps, 100000, 2024)
		mc, err := EvaluateEuropean(e, p.Strike, p.RiskFreeRate, p.Maturity)
		require.NoError(t, err)
		// standard error is about 0.045 for the call at this sample size
		assert.InDelta(t, bs.Call, mc.Call, 0.5, "steps=%d", steps)
		assert.InDelta(t, bs.Put, mc.Put, 0.5, "steps=%d", steps)
	}
}
