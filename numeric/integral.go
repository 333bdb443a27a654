// Public domain.

package numeric

import (
	"errors"
	"fmt"
	"math"
)

// MaxDepth limits adaptive refinement.  A segment is bisected at most
// MaxDepth times.
const MaxDepth = 50

var (
	ErrInterval = errors.New("interval bounds out of order")
	ErrPoints   = errors.New("at least two points required")
	ErrMaxDepth = errors.New("refinement depth limit reached")
)

// Integral is a node of an adaptive Simpson's rule quadrature over [lo, hi].
//
// A node is either a leaf or has exactly two children covering the halves
// of its interval.  Children are attached only during refinement.
type Integral struct {
	f              Function
	lo, mid, hi    float64
	flo, fmid, fhi float64
	area           float64
	sub1, sub2     *Integral
}

// NewIntegral creates an unrefined integral of f over [lo, hi].
func NewIntegral(f Function, lo, hi float64) (*Integral, error) {
	// ! <= catches NaN
	if !(lo <= hi) {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrInterval, lo, hi)
	}
	return newIntegral(f, lo, hi, f(lo), f(hi)), nil
}

// newIntegral takes already computed endpoint values.  Bounds must be
// ordered.
func newIntegral(f Function, lo, hi, flo, fhi float64) *Integral {
	mid := (lo + hi) * .5
	fmid := f(mid)
	return &Integral{
		f:    f,
		lo:   lo,
		mid:  mid,
		hi:   hi,
		flo:  flo,
		fmid: fmid,
		fhi:  fhi,
		area: (hi - lo) / 6 * (flo + 4*fmid + fhi),
	}
}

// Area returns the current estimate of the integral.  Refinement does not
// change the area of a node, only that of its descendants.
func (n *Integral) Area() float64 { return n.area }

// Bounds returns the interval of integration.
func (n *Integral) Bounds() (lo, hi float64) { return n.lo, n.hi }

// Leaf reports whether the node has no children.
func (n *Integral) Leaf() bool { return n.sub1 == nil }

// Fill refines the integral until the Simpson estimates of each leaf
// agree with the sum of those of its halves to within tol.
//
// The number of leaves left unconverged at MaxDepth is returned.
func (n *Integral) Fill(tol float64) int {
	return n.fill(tol, 0)
}

func (n *Integral) fill(tol float64, depth int) (unconverged int) {
	sub1 := newIntegral(n.f, n.lo, n.mid, n.flo, n.fmid)
	sub2 := newIntegral(n.f, n.mid, n.hi, n.fmid, n.fhi)
	// a NaN area compares false and stops refinement
	if !(math.Abs(sub1.area+sub2.area-n.area) > tol) {
		return 0
	}
	n.sub1 = sub1
	n.sub2 = sub2
	if depth+1 >= MaxDepth {
		return 2
	}
	return sub1.fill(tol, depth+1) + sub2.fill(tol, depth+1)
}

// count returns the number of leaves.
func (n *Integral) count() int {
	if n.sub1 == nil {
		return 1
	}
	return n.sub1.count() + n.sub2.count()
}

// store writes right endpoints and areas of leaves to xs and as starting
// at index i, in ascending order.  It returns the next unused index.
func (n *Integral) store(xs, as []float64, i int) int {
	if n.sub1 == nil {
		xs[i] = n.hi
		as[i] = n.area
		return i + 1
	}
	i = n.sub1.store(xs, as, i)
	return n.sub2.store(xs, as, i)
}

// Integrate numerically integrates f, returning the cumulative integral
// from points[0] sampled at adaptively chosen points up to points[last].
//
// Each interval between adjacent points is refined independently so
// features of f such as peaks can be forced to segment boundaries.
// Points must be ordered.  The first sample returned is (points[0], 0).
//
// If refinement reached MaxDepth anywhere, the complete result is still
// returned, along with an error wrapping ErrMaxDepth.
func Integrate(f Function, points []float64, tol float64) (*Samples, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrPoints, len(points))
	}
	segs := make([]*Integral, len(points)-1)
	fhi := f(points[0])
	unconverged := 0
	n := 1
	for i := range segs {
		lo, hi := points[i], points[i+1]
		if !(lo <= hi) {
			return nil, fmt.Errorf("%w: points[%d]=%g, points[%d]=%g",
				ErrInterval, i, lo, i+1, hi)
		}
		flo := fhi
		fhi = f(hi)
		s := newIntegral(f, lo, hi, flo, fhi)
		unconverged += s.fill(tol, 0)
		n += s.count()
		segs[i] = s
	}
	xs := make([]float64, n)
	ys := make([]float64, n)
	xs[0] = points[0]
	j := 1
	for _, s := range segs {
		j = s.store(xs, ys, j)
	}
	for i := 1; i < n; i++ {
		ys[i] += ys[i-1]
	}
	r := &Samples{xs: xs, ys: ys}
	if unconverged > 0 {
		return r, fmt.Errorf("%w: %d segments unconverged",
			ErrMaxDepth, unconverged)
	}
	return r, nil
}
