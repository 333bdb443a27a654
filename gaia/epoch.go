// Public domain.

package gaia

import (
	"math"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/unit"
)

// AuYrKms is the astronomical unit in km yr/s.  See ESA SP-1200 table
// 1.2.2 and eq. 1.5.24.
const AuYrKms = 4.740470446

// RvMasyrToKms converts normalised radial velocity in mas/yr to radial
// velocity in km/s.
func RvMasyrToKms(rvMasyr, plxMas float64) float64 {
	return rvMasyr * AuYrKms / plxMas
}

// RvKmsToMasyr converts radial velocity in km/s to normalised radial
// velocity in mas/yr.
func RvKmsToMasyr(rvKms, plxMas float64) float64 {
	return rvKms * plxMas / AuYrKms
}

func masToRad(mas float64) float64 { return unit.AngleFromSec(mas * .001).Rad() }
func radToMas(rad float64) float64 { return unit.Angle(rad).Sec() * 1000 }

// Astrometry indexes for EpochProp.
const (
	RA    = iota // deg
	Dec          // deg
	Plx          // mas
	PMRA         // mas/yr, includes cos(dec)
	PMDec        // mas/yr
	RV           // km/s
)

// EpochProp propagates astrometry a, observed at some epoch, by tYr years.
//
// The propagation is rigorous, following ESA SP-1200 section 1.5.5.
// A NaN radial velocity is taken as zero for propagation and returned as
// NaN.
func EpochProp(tYr float64, a [6]float64) [6]float64 {
	hasRv := !math.IsNaN(a[RV])
	ra := unit.AngleFromDeg(a[RA]).Rad()
	dec := unit.AngleFromDeg(a[Dec]).Rad()
	plx := masToRad(a[Plx])
	pmra := masToRad(a[PMRA])
	pmdec := masToRad(a[PMDec])
	var zeta float64 // normalised radial velocity, rad/yr
	if hasRv {
		zeta = a[RV] * plx / AuYrKms
	}

	p, q, r := triad(ra, dec)

	// proper motion vector
	var pm0, qm coord.Cart
	pm0.MulScalar(&p, pmra)
	qm.MulScalar(&q, pmdec)
	pm0.Add(&pm0, &qm)
	mu2 := pm0.Square()

	zt := 1 + zeta*tYr
	w := (mu2 + zeta*zeta) * tYr
	f := 1 / math.Sqrt(1+2*zeta*tYr+w*tYr)
	f3 := f * f * f

	// direction at tYr
	var u, pt coord.Cart
	u.MulScalar(&r, zt)
	pt.MulScalar(&pm0, tYr)
	u.Add(&u, &pt)
	u.MulScalar(&u, f)

	// proper motion at tYr
	var pm1, rt coord.Cart
	pm1.MulScalar(&pm0, zt)
	rt.MulScalar(&r, mu2*tYr)
	pm1.Sub(&pm1, &rt)
	pm1.MulScalar(&pm1, f3)

	ra1 := math.Atan2(u.Y, u.X)
	dec1 := math.Atan2(u.Z, math.Hypot(u.X, u.Y))
	p1, q1, _ := triad(ra1, dec1)
	plx1 := plx * f
	zeta1 := (zeta + w) * f * f

	var b [6]float64
	b[RA] = unit.PMod(unit.Angle(ra1).Deg(), 360)
	b[Dec] = unit.Angle(dec1).Deg()
	b[Plx] = radToMas(plx1)
	b[PMRA] = radToMas(pm1.Dot(&p1))
	b[PMDec] = radToMas(pm1.Dot(&q1))
	if hasRv {
		b[RV] = zeta1 * AuYrKms / plx1
	} else {
		b[RV] = math.NaN()
	}
	return b
}

// triad returns the normal triad at ra, dec:  unit vectors toward
// increasing ra, increasing dec, and the source.
func triad(ra, dec float64) (p, q, r coord.Cart) {
	sa, ca := math.Sincos(ra)
	sd, cd := math.Sincos(dec)
	p = coord.Cart{X: -sa, Y: ca}
	q = coord.Cart{X: -sd * ca, Y: -sd * sa, Z: cd}
	r = coord.Cart{X: cd * ca, Y: cd * sa, Z: sd}
	return
}
