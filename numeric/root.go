// Public domain.

package numeric

import "math"

// maxBisect limits iterations of FindValueMonotonic.
const maxBisect = 100

// FindValueMonotonic finds x in [xlo, xhi] where f(x) = y0 to within ytol.
//
// F must be non-decreasing on [xlo, xhi].  This is not checked; results are
// unspecified if it is not so.  NaN is returned if y0 is outside
// [f(xlo), f(xhi)].
func FindValueMonotonic(f Function, xlo, xhi, y0, ytol float64) float64 {
	// ! <= to reject NaN as well
	if !(f(xlo) <= y0 && y0 <= f(xhi)) {
		return nan
	}
	for i := 0; i < maxBisect; i++ {
		xmid := (xlo + xhi) * .5
		ymid := f(xmid)
		if math.Abs(ymid-y0) <= ytol {
			return xmid
		}
		if ymid < y0 {
			xlo = xmid
		} else {
			xhi = xmid
		}
	}
	return (xlo + xhi) * .5
}
