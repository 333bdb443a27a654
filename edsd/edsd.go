// Public domain.

// Package edsd implements the Exponentially Decreasing Space Density prior
// for estimating distance from a measured parallax.
//
// The posterior for distance r given parallax ϖ with error σ and length
// scale L is proportional to
//
//	r² exp(-r/L) exp(-(ϖ - 1/r)² / 2σ²)
//
// See Bailer-Jones, PASP 127, p994 (2015), and Astraatmadja and
// Bailer-Jones, ApJ 833, a119 (2016).
//
// Units are the caller's choice as long as they are consistent:  parallax
// in mas gives distance and length scale in kpc.
package edsd

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/soniakeys/gaiadist/numeric"
	"github.com/soniakeys/gaiadist/poly"
)

var (
	ErrParams = errors.New("invalid EDSD parameters")
	ErrNoMode = errors.New("EDSD posterior has no mode")
)

// limit on doubling the upper integration bound
const maxDoublings = 64

// Edsd is the EDSD distance posterior for a single measurement.
// It is immutable and safe for concurrent use.
type Edsd struct {
	plx, eplx, l float64
	mode         float64
	pdfExpMode   float64 // log kernel at mode
}

// New constructs the posterior for parallax plx with error eplx, and
// prior length scale l.
func New(plx, eplx, l float64) (*Edsd, error) {
	switch {
	case math.IsNaN(plx) || math.IsInf(plx, 0):
		return nil, fmt.Errorf("%w: parallax %g", ErrParams, plx)
	case !(eplx > 0) || math.IsInf(eplx, 1):
		return nil, fmt.Errorf("%w: parallax error %g", ErrParams, eplx)
	case !(l > 0) || math.IsInf(l, 1):
		return nil, fmt.Errorf("%w: length scale %g", ErrParams, l)
	}
	e := &Edsd{plx: plx, eplx: eplx, l: l}
	// mode solves r³/L - 2r² + (ϖ/σ²)r - 1/σ² = 0
	ivar := 1 / (eplx * eplx)
	e.mode = poly.LowestPositiveRoot(-2*l, plx*l*ivar, -l*ivar)
	if !(e.mode > 0) {
		return nil, fmt.Errorf("%w: plx %g, eplx %g, L %g",
			ErrNoMode, plx, eplx, l)
	}
	e.pdfExpMode = e.pdfExp(e.mode)
	return e, nil
}

// pdfExp is the log of the posterior kernel, omitting the r² term.
func (e *Edsd) pdfExp(r float64) float64 {
	d := (e.plx - 1/r) / e.eplx
	return -.5*d*d - r/e.l
}

// BestEstimation returns the mode of the posterior.
func (e *Edsd) BestEstimation() float64 { return e.mode }

// LengthScale returns the prior length scale.
func (e *Edsd) LengthScale() float64 { return e.l }

// UnnormalizedProbabilityAt evaluates the posterior, unnormalized.
//
// The exponent is offset by its value at the mode, which changes only the
// normalization but keeps exp in range for small parallax errors.
func (e *Edsd) UnnormalizedProbabilityAt(r float64) float64 {
	if r <= 0 {
		return 0
	}
	return r * r * math.Exp(e.pdfExp(r)-e.pdfExpMode)
}

// Pdf returns the posterior scaled so its value at the mode is exactly 1.
func (e *Edsd) Pdf() numeric.Function {
	return func(r float64) float64 {
		if r <= 0 {
			return 0
		}
		s := r / e.mode
		return s * s * math.Exp(e.pdfExp(r)-e.pdfExpMode)
	}
}

// CalculateCdf numerically integrates the posterior, returning the
// cumulative distribution sampled from 0 to a distance beyond which Pdf is
// less than tol.  The first value is 0 and the last is exactly 1.
//
// Tol is also the integration tolerance.  If integration reached the
// refinement depth limit the result is returned along with an error
// wrapping numeric.ErrMaxDepth.
func (e *Edsd) CalculateCdf(tol float64) (*numeric.Samples, error) {
	pdf := e.Pdf()
	rmax := math.Max(2*e.mode, 3*e.l)
	for i := 0; pdf(rmax) >= tol && i < maxDoublings; i++ {
		rmax *= 2
	}

	// force samples at the features of the distribution
	pts := []float64{0, e.mode, e.l, 2 * e.l, 3 * e.l, rmax}
	pm := 1 / e.mode
	for k := 1.; k <= 3; k++ {
		pts = append(pts, 1/(pm+k*e.eplx), 1/(pm-k*e.eplx))
	}
	const ngrid = 10
	for i := 1; i <= ngrid; i++ {
		pts = append(pts, rmax*float64(i)/ngrid)
	}
	pts = preparePoints(pts, rmax)

	cdf, err := numeric.Integrate(pdf, pts, tol)
	if cdf == nil {
		return nil, err
	}
	return cdf.Normalize(), err
}

// preparePoints returns the distinct finite values of pts in [0, rmax],
// sorted.
func preparePoints(pts []float64, rmax float64) []float64 {
	ok := pts[:0]
	for _, p := range pts {
		if p >= 0 && p <= rmax {
			ok = append(ok, p)
		}
	}
	sort.Float64s(ok)
	out := ok[:0]
	for _, p := range ok {
		if len(out) == 0 || p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

// Quantiles returns the distances at which the posterior CDF takes the
// values qs, each in the range 0..1.
//
// The CDF is computed with CalculateCdf(tol), interpolated with m, and
// searched with numeric.FindValueMonotonic to a CDF tolerance of ytol.
// Quantiles that cannot be located are NaN.
func (e *Edsd) Quantiles(tol, ytol float64, m numeric.Interpolation,
	qs ...float64) ([]float64, error) {
	cdf, err := e.CalculateCdf(tol)
	if cdf == nil {
		return nil, err
	}
	f, ferr := numeric.Interpolate(cdf, m)
	if ferr != nil {
		return nil, ferr
	}
	rmax := cdf.X(cdf.Count() - 1)
	r := make([]float64, len(qs))
	for i, q := range qs {
		r[i] = numeric.FindValueMonotonic(f, 0, rmax, q, ytol)
	}
	return r, err
}
