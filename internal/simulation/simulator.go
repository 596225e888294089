// Package simulation generates geometric Brownian motion price paths.
package simulation

import (
	"math"
	"sync"

	"github.com/rpgo/optionpricer/internal/domain"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// DefaultBatchSize is the number of paths drawn from one random stream.
const DefaultBatchSize = 1024

// SourceFunc returns the random source for one batch of paths.
// Every call must return an independent source; the simulator never shares one between goroutines.
type SourceFunc func(seed uint64, stream int) rand.Source

// PCGSource is the default SourceFunc.
func PCGSource(seed uint64, stream int) rand.Source {
	return rand.NewSource(streamSeed(seed, stream))
}

// Simulator produces path ensembles. It holds no per-call state and is safe for concurrent use.
type Simulator struct {
	sources   SourceFunc
	batchSize int
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithSourceFunc replaces the default PCG streams.
func WithSourceFunc(f SourceFunc) Option {
	return func(s *Simulator) {
		if f != nil {
			s.sources = f
		}
	}
}

// WithBatchSize sets how many paths share one random stream.
func WithBatchSize(n int) Option {
	return func(s *Simulator) {
		if n > 0 {
			s.batchSize = n
		}
	}
}

// NewSimulator creates a simulator.
func NewSimulator(opts ...Option) *Simulator {
	s := &Simulator{sources: PCGSource, batchSize: DefaultBatchSize}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Simulate draws cfg.NumPaths independent GBM paths of cfg.NumSteps steps under drift mu:
//
//	S[t+1] = S[t] * exp((mu - sigma^2/2)dT + sigma*sqrt(dT)*Z)
//
// Paths are split into fixed batches, one random stream per batch, so the result depends only on the
// seed and batch size. cfg.Workers bounds how many batches run at once; 0 runs them in order on the
// calling goroutine.
func (s *Simulator) Simulate(p domain.MarketParameters, cfg domain.SimulationConfig) (*PathEnsemble, error) {
	if err := p.ValidateDynamics(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := resolveSeed(cfg.Seed)
	dt := cfg.TimeStep(p.Maturity)
	grid := mat.NewDense(cfg.NumSteps+1, cfg.NumPaths, nil)
	st := stepper{
		spot:      p.Spot,
		drift:     (p.Drift - 0.5*p.Volatility*p.Volatility) * dt,
		diffusion: p.Volatility * math.Sqrt(dt),
		steps:     cfg.NumSteps,
		raw:       grid.RawMatrix(),
	}

	batches := (cfg.NumPaths + s.batchSize - 1) / s.batchSize
	run := func(b int) {
		from := b * s.batchSize
		to := min(from+s.batchSize, cfg.NumPaths)
		st.fill(rand.New(s.sources(seed, b)), from, to)
	}

	if cfg.Workers == 0 || batches == 1 {
		for b := 0; b < batches; b++ {
			run(b)
		}
	} else {
		var wg sync.WaitGroup
		semaphore := make(chan struct{}, cfg.Workers)
		for b := 0; b < batches; b++ {
			wg.Add(1)
			go func(batch int) {
				defer wg.Done()
				semaphore <- struct{}{}
				defer func() { <-semaphore }()

				run(batch)
			}(b)
		}
		wg.Wait()
	}

	return &PathEnsemble{grid: grid, dt: dt, seed: seed}, nil
}

// stepper writes columns of the backing row-major grid; batches touch disjoint columns.
type stepper struct {
	spot      float64
	drift     float64
	diffusion float64
	steps     int
	raw       blas64.General
}

func (st stepper) fill(rng *rand.Rand, from, to int) {
	data, stride := st.raw.Data, st.raw.Stride
	for j := from; j < to; j++ {
		price := st.spot
		data[j] = price
		for t := 1; t <= st.steps; t++ {
			price *= math.Exp(st.drift + st.diffusion*rng.NormFloat64())
			data[t*stride+j] = price
		}
	}
}
