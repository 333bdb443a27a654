// Public domain.

package numeric

import (
	"errors"
	"fmt"
	"sort"

	"github.com/soniakeys/meeus/v3/interp"
	gonuminterp "gonum.org/v1/gonum/interp"
)

// Interpolation selects a strategy for turning samples into a Function.
type Interpolation int

const (
	Linear Interpolation = iota
	Quadratic
	Spline
)

var interpNames = []string{"linear", "quadratic", "spline"}

func (m Interpolation) String() string {
	if m < 0 || int(m) >= len(interpNames) {
		return fmt.Sprintf("Interpolation(%d)", int(m))
	}
	return interpNames[m]
}

// ParseInterpolation returns the Interpolation named by s, as produced by
// Interpolation.String.
func ParseInterpolation(s string) (Interpolation, error) {
	for i, n := range interpNames {
		if s == n {
			return Interpolation(i), nil
		}
	}
	return 0, fmt.Errorf("unknown interpolation %q", s)
}

// ErrSpline is returned when samples cannot be fit by a spline.
var ErrSpline = errors.New("samples unsuitable for spline")

// Interpolate returns a Function interpolating nf with strategy m.
func Interpolate(nf NumericFunction, m Interpolation) (Function, error) {
	switch m {
	case Linear:
		return InterpolateLinear(nf), nil
	case Quadratic:
		return InterpolateQuadratic(nf), nil
	case Spline:
		return InterpolateSpline(nf)
	}
	return nil, fmt.Errorf("unknown interpolation %d", int(m))
}

// bins holds samples for interpolators that look up by bin.
type bins struct {
	xs, ys []float64
}

func newBins(nf NumericFunction) bins {
	xs, ys := arrays(nf)
	return bins{xs, ys}
}

// inRange is false for an empty sample set, a NaN x, or x outside
// [xlo, xhi].
func (b bins) inRange(x float64) bool {
	n := len(b.xs)
	return n > 0 && x >= b.xs[0] && x <= b.xs[n-1]
}

// index returns the largest i with xs[i] <= x.  x must be in range.
func (b bins) index(x float64) int {
	return sort.Search(len(b.xs), func(i int) bool { return b.xs[i] > x }) - 1
}

func (b bins) linear(x float64) float64 {
	if !b.inRange(x) {
		return nan
	}
	ix := b.index(x)
	if ix >= len(b.xs)-1 {
		return b.ys[len(b.ys)-1]
	}
	x0, x1 := b.xs[ix], b.xs[ix+1]
	y0, y1 := b.ys[ix], b.ys[ix+1]
	return y0 + (x-x0)/(x1-x0)*(y1-y0)
}

// InterpolateLinear returns a Function linearly interpolating between
// samples of nf.  It is NaN outside the range of the samples.
func InterpolateLinear(nf NumericFunction) Function {
	return newBins(nf).linear
}

// parabola evaluates at x the Lagrange parabola through samples i0..i0+2,
// or returns NaN if those samples don't all exist or repeat an x value.
func (b bins) parabola(i0 int, x float64) float64 {
	if i0 < 0 || i0+2 >= len(b.xs) ||
		b.xs[i0] == b.xs[i0+1] || b.xs[i0+1] == b.xs[i0+2] {
		return nan
	}
	t := make([]struct{ X, Y float64 }, 3)
	for i := range t {
		t[i].X = b.xs[i0+i]
		t[i].Y = b.ys[i0+i]
	}
	return interp.Lagrange(x, t)
}

// InterpolateQuadratic returns a Function interpolating nf with
// parabolas through three adjacent samples.  Between samples ix and ix+1
// the parabolas through ix-1..ix+1 and ix..ix+2 are averaged where both
// exist.  Windows with repeated x values are not used, and where neither
// window can be used, or there are fewer than three samples, the
// interpolation is linear.  The Function is NaN outside the range of the
// samples.
func InterpolateQuadratic(nf NumericFunction) Function {
	b := newBins(nf)
	if len(b.xs) < 3 {
		return b.linear
	}
	return func(x float64) float64 {
		if !b.inRange(x) {
			return nan
		}
		ix := b.index(x)
		if ix >= len(b.xs)-1 {
			ix = len(b.xs) - 2
		}
		y1 := b.parabola(ix-1, x)
		y2 := b.parabola(ix, x)
		switch {
		case y1 == y1 && y2 == y2:
			return (y1 + y2) * .5
		case y1 == y1:
			return y1
		case y2 == y2:
			return y2
		}
		return b.linear(x)
	}
}

// InterpolateSpline returns a Function fitting a natural cubic spline to
// the samples of nf.  At least three samples with strictly increasing x
// are required.  The Function is NaN outside the range of the samples.
func InterpolateSpline(nf NumericFunction) (Function, error) {
	b := newBins(nf)
	if len(b.xs) < 3 {
		return nil, fmt.Errorf("%w: %d samples", ErrSpline, len(b.xs))
	}
	for i := 1; i < len(b.xs); i++ {
		if !(b.xs[i] > b.xs[i-1]) {
			return nil, fmt.Errorf("%w: x not strictly increasing at %d",
				ErrSpline, i)
		}
	}
	var s gonuminterp.NaturalCubic
	if err := s.Fit(b.xs, b.ys); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpline, err)
	}
	return func(x float64) float64 {
		if !b.inRange(x) {
			return nan
		}
		return s.Predict(x)
	}, nil
}
