// Public domain.

// Package numeric has continuous and sampled real functions of one variable,
// with adaptive Simpson quadrature, interpolation and a monotonic root
// finder built on them.
//
// Values that are undefined, such as an interpolated function evaluated
// outside the range of its samples, are returned as NaN rather than as
// errors.  Callers must check.
package numeric

import (
	"errors"
	"fmt"
	"math"
)

// Function is a continuous real function of one real variable.
//
// A Function holds no state.  It may be evaluated at any point, any number
// of times, in any order.
type Function func(x float64) float64

// NumericFunction is a finite sequence of (x, y) samples.
//
// X values are non-decreasing with index.
type NumericFunction interface {
	Count() int
	X(i int) float64
	Y(i int) float64
}

// Samples is the NumericFunction implementation used throughout the
// package.  It is immutable once constructed.
type Samples struct {
	xs, ys []float64
}

var nan = math.NaN()

// ErrSamples is returned by NewSamples for unusable sample arrays.
var ErrSamples = errors.New("invalid samples")

// NewSamples constructs a Samples object.  xs and ys are copied.
//
// xs and ys must have the same length and xs must be non-decreasing.
func NewSamples(xs, ys []float64) (*Samples, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d x values, %d y values",
			ErrSamples, len(xs), len(ys))
	}
	for i := 1; i < len(xs); i++ {
		// use ! >= to catch NaN
		if !(xs[i] >= xs[i-1]) {
			return nil, fmt.Errorf("%w: x[%d]=%g follows x[%d]=%g",
				ErrSamples, i, xs[i], i-1, xs[i-1])
		}
	}
	return &Samples{
		xs: append([]float64{}, xs...),
		ys: append([]float64{}, ys...),
	}, nil
}

// Count returns the number of samples.
func (s *Samples) Count() int { return len(s.xs) }

// X returns the x value of sample i.
func (s *Samples) X(i int) float64 { return s.xs[i] }

// Y returns the y value of sample i.
func (s *Samples) Y(i int) float64 { return s.ys[i] }

// Normalize returns a copy of s with all y values divided by the last one,
// so that the last is exactly 1.
func (s *Samples) Normalize() *Samples {
	ys := make([]float64, len(s.ys))
	if n := len(s.ys); n > 0 {
		d := s.ys[n-1]
		for i, y := range s.ys {
			ys[i] = y / d
		}
	}
	return &Samples{xs: s.xs, ys: ys}
}

// Sample evaluates f at each of xs.  xs must be non-decreasing.
func Sample(f Function, xs []float64) (*Samples, error) {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	return NewSamples(xs, ys)
}

// arrays extracts the samples of any NumericFunction.
func arrays(nf NumericFunction) (xs, ys []float64) {
	if s, ok := nf.(*Samples); ok {
		return s.xs, s.ys
	}
	n := nf.Count()
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := range xs {
		xs[i] = nf.X(i)
		ys[i] = nf.Y(i)
	}
	return
}
