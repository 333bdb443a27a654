// Public domain.

// Package poly finds real roots of cubic polynomials.
package poly

import (
	"math"
	"sort"

	"github.com/soniakeys/meeus/v3/base"
)

// number of Newton steps used to polish each root
const polish = 3

// SolveCubic returns the real roots of x³ + a2 x² + a1 x + a0 = 0 in
// ascending order.  Repeated roots may be returned once or more than once.
func SolveCubic(a2, a1, a0 float64) []float64 {
	q := (3*a1 - a2*a2) / 9
	r := (9*a2*a1 - 27*a0 - 2*a2*a2*a2) / 54
	shift := a2 / 3
	d := q*q*q + r*r

	var roots []float64
	if d > 0 {
		// one real root
		sd := math.Sqrt(d)
		roots = []float64{math.Cbrt(r+sd) + math.Cbrt(r-sd) - shift}
	} else if q == 0 {
		// triple root.  (d <= 0 and q == 0 means r == 0 too.)
		roots = []float64{-shift}
	} else {
		// three real roots, trigonometric form
		sq := math.Sqrt(-q)
		c := r / (sq * sq * sq)
		// rounding can push c just outside the domain of Acos
		c = math.Max(-1, math.Min(1, c))
		th := math.Acos(c)
		roots = make([]float64, 3)
		for k := range roots {
			roots[k] = 2*sq*math.Cos((th+2*math.Pi*float64(k))/3) - shift
		}
	}
	for i, x := range roots {
		roots[i] = newton(x, a2, a1, a0)
	}
	sort.Float64s(roots)
	return roots
}

// newton polishes a root.  Steps that don't improve the residual are
// discarded, as happens near repeated roots.
func newton(x, a2, a1, a0 float64) float64 {
	for i := 0; i < polish; i++ {
		fx := base.Horner(x, a0, a1, a2, 1)
		if fx == 0 {
			break
		}
		dfx := base.Horner(x, a1, 2*a2, 3)
		if dfx == 0 {
			break
		}
		nx := x - fx/dfx
		if !(math.Abs(base.Horner(nx, a0, a1, a2, 1)) < math.Abs(fx)) {
			break
		}
		x = nx
	}
	return x
}

// LowestPositiveRoot returns the smallest real root > 0 of
// x³ + a2 x² + a1 x + a0 = 0, or NaN if there is none.
func LowestPositiveRoot(a2, a1, a0 float64) float64 {
	for _, x := range SolveCubic(a2, a1, a0) {
		if x > 0 {
			return x
		}
	}
	return math.NaN()
}
