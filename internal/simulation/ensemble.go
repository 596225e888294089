package simulation

import (
	"fmt"
	"sort"

	"github.com/rpgo/optionpricer/internal/domain"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// PathEnsemble is a (steps+1) x paths grid of simulated prices.
// Row t is time t*dT, column j is path j, and row 0 equals S0 for every path.
// An ensemble is never modified after Simulate returns it.
type PathEnsemble struct {
	grid *mat.Dense
	dt   float64
	seed uint64
}

// NewPathEnsemble builds an ensemble from explicit price paths, each indexed by time step.
// All paths must share the same non-zero length.
func NewPathEnsemble(dt float64, paths ...[]float64) (*PathEnsemble, error) {
	if len(paths) == 0 {
		return nil, domain.NewDomainError("num_paths", 0, "ensemble has no paths")
	}
	rows := len(paths[0])
	if rows == 0 {
		return nil, domain.NewDomainError("num_steps", 0, "ensemble has no rows")
	}
	grid := mat.NewDense(rows, len(paths), nil)
	for j, p := range paths {
		if len(p) != rows {
			return nil, fmt.Errorf("path %d has %d points, want %d: %w", j, len(p), rows, domain.ErrDomain)
		}
		grid.SetCol(j, p)
	}
	return &PathEnsemble{grid: grid, dt: dt}, nil
}

// Steps returns the number of simulated time steps (rows minus one).
func (e *PathEnsemble) Steps() int {
	if e == nil || e.grid == nil {
		return -1
	}
	r, _ := e.grid.Dims()
	return r - 1
}

// Paths returns the number of simulated paths (columns).
func (e *PathEnsemble) Paths() int {
	if e == nil || e.grid == nil {
		return 0
	}
	_, c := e.grid.Dims()
	return c
}

// TimeStep returns dT.
func (e *PathEnsemble) TimeStep() float64 { return e.dt }

// Seed returns the seed the ensemble was simulated with, or 0 for hand-built ensembles.
func (e *PathEnsemble) Seed() uint64 { return e.seed }

// At returns the price of path at step.
func (e *PathEnsemble) At(step, path int) float64 { return e.grid.At(step, path) }

// Terminal returns the price of path at maturity.
func (e *PathEnsemble) Terminal(path int) float64 { return e.grid.At(e.Steps(), path) }

// Path returns a copy of one trajectory.
func (e *PathEnsemble) Path(path int) []float64 { return mat.Col(nil, path, e.grid) }

// Terminals returns a copy of the last row.
func (e *PathEnsemble) Terminals() []float64 { return mat.Row(nil, e.Steps(), e.grid) }

// Matrix exposes the grid as a read-only mat.Matrix.
func (e *PathEnsemble) Matrix() mat.Matrix { return readOnly{e.grid} }

// Times returns the year fraction of every row.
func (e *PathEnsemble) Times() []float64 {
	times := make([]float64, e.Steps()+1)
	for i := range times {
		times[i] = float64(i) * e.dt
	}
	return times
}

// TerminalSummary describes the distribution of terminal prices.
func (e *PathEnsemble) TerminalSummary() domain.Summary {
	terminals := e.Terminals()
	mean, std := stat.MeanStdDev(terminals, nil)
	if len(terminals) < 2 {
		std = 0
	}
	sort.Float64s(terminals)
	q := func(p float64) float64 { return stat.Quantile(p, stat.Empirical, terminals, nil) }
	return domain.Summary{
		Mean:   mean,
		StdDev: std,
		Min:    terminals[0],
		Max:    terminals[len(terminals)-1],
		Percentiles: domain.PercentileRanges{
			P10: q(0.10),
			P25: q(0.25),
			P50: q(0.50),
			P75: q(0.75),
			P90: q(0.90),
		},
	}
}

// Sample returns at most maxLines evenly spaced paths for plotting.
func (e *PathEnsemble) Sample(maxLines int) domain.PathSample {
	n := e.Paths()
	if maxLines <= 0 || maxLines > n {
		maxLines = n
	}
	sample := domain.PathSample{
		Times:      e.Times(),
		Series:     make([][]float64, 0, maxLines),
		TotalPaths: n,
	}
	if maxLines == 0 {
		return sample
	}
	stride := n / maxLines
	for i := 0; i < maxLines; i++ {
		sample.Series = append(sample.Series, e.Path(i*stride))
	}
	return sample
}

type readOnly struct{ m mat.Matrix }

func (r readOnly) Dims() (int, int)    { return r.m.Dims() }
func (r readOnly) At(i, j int) float64 { return r.m.At(i, j) }
func (r readOnly) T() mat.Matrix       { return mat.Transpose{Matrix: r} }
