// Public domain.

// Package distsolver estimates distances for catalogue sources.
package distsolver

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/soniakeys/gaiadist/edsd"
	"github.com/soniakeys/gaiadist/gaia"
	"github.com/soniakeys/gaiadist/internal/catalog"
	"github.com/soniakeys/gaiadist/numeric"
)

// Params are the solver settings, normally from the config file.
type Params struct {
	LengthScale float64 // pc
	ErrFloor    float64 // mas
	Tol         float64 // CDF integration tolerance
	QuantTol    float64 // CDF tolerance of quantile search
	Interp      numeric.Interpolation
	Quantiles   []float64
	Draws       int // Monte Carlo draws per source
}

// DefaultParams has the length scale of Astraatmadja and Bailer-Jones
// and the 5th and 95th percentiles.
var DefaultParams = Params{
	LengthScale: 1350,
	Tol:         gaia.CdfTol,
	QuantTol:    gaia.QuantTol,
	Interp:      numeric.Quadratic,
	Quantiles:   []float64{.05, .95},
}

// Solver holds parameters for solving sources.  It is safe for
// concurrent use as long as each goroutine supplies its own Rand.
type Solver struct {
	p Params
}

// New creates a Solver.  Params are copied.
func New(p Params) *Solver {
	p.Quantiles = append([]float64{}, p.Quantiles...)
	return &Solver{p}
}

// Rand is the random number source for Monte Carlo draws.
type Rand interface {
	Float64() float64
}

// Result is the return type of Solve.  Distances are in parsec.
//
// Values that could not be computed are NaN.  Err is the reason, if any.
type Result struct {
	PlxErr    float64 // mas, as clipped
	Mode      float64
	Modulus   float64
	Quantiles []float64
	MeanMC    float64
	SdMC      float64
	Err       error
}

// Solve computes the distance posterior of a single source.
func (s *Solver) Solve(src *catalog.Source, rnd Rand) Result {
	r := Result{
		Mode:      math.NaN(),
		Modulus:   math.NaN(),
		MeanMC:    math.NaN(),
		SdMC:      math.NaN(),
		Quantiles: make([]float64, len(s.p.Quantiles)),
	}
	for i := range r.Quantiles {
		r.Quantiles[i] = math.NaN()
	}
	r.PlxErr = s.clipErr(src.PlxErr)
	e, err := edsd.New(src.Plx, r.PlxErr, s.p.LengthScale*.001)
	if err != nil {
		r.Err = err
		return r
	}
	r.Mode = 1000 * e.BestEstimation()
	r.Modulus = gaia.DistanceToModulus(r.Mode)
	if len(s.p.Quantiles) == 0 && s.p.Draws == 0 {
		return r
	}

	cdf, err := e.CalculateCdf(s.p.Tol)
	if cdf == nil {
		r.Err = err
		return r
	}
	// results at the depth limit are kept, with the error noted
	r.Err = err
	f, err := numeric.Interpolate(cdf, s.p.Interp)
	if err != nil {
		r.Err = err
		return r
	}
	rmax := cdf.X(cdf.Count() - 1)
	for i, q := range s.p.Quantiles {
		r.Quantiles[i] = 1000 *
			numeric.FindValueMonotonic(f, 0, rmax, q, s.p.QuantTol)
	}
	if s.p.Draws > 0 {
		r.MeanMC, r.SdMC = s.draw(f, rmax, rnd)
	}
	return r
}

// draw samples the distance posterior by inverting its CDF, returning the
// mean and standard deviation of the draws.
func (s *Solver) draw(cdf numeric.Function, rmax float64, rnd Rand) (mean, sd float64) {
	ds := make([]float64, 0, s.p.Draws)
	for i := 0; i < s.p.Draws; i++ {
		d := numeric.FindValueMonotonic(cdf, 0, rmax, rnd.Float64(), s.p.QuantTol)
		if !math.IsNaN(d) {
			ds = append(ds, d*1000)
		}
	}
	switch len(ds) {
	case 0:
		return math.NaN(), math.NaN()
	case 1:
		return ds[0], 0
	}
	return stat.MeanStdDev(ds, nil)
}

// ErrDepth reports a result computed with the integration depth limit.
// Such results are still printed.
func ErrDepth(err error) bool {
	return errors.Is(err, numeric.ErrMaxDepth)
}
