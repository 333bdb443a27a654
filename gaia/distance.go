// Public domain.

// Package gaia has functions for astrometry in the units of the Gaia
// gaia_source catalogue: degrees for positions, mas for parallaxes,
// mas/yr for proper motions, km/s for radial velocities, and parsec for
// distances.
//
// Functions return NaN where a value cannot be computed.
package gaia

import (
	"math"

	"github.com/soniakeys/gaiadist/edsd"
	"github.com/soniakeys/gaiadist/numeric"
)

// Quantile computation parameters.
const (
	CdfTol   = 1e-6
	QuantTol = 1e-5
)

// DistanceEstimateEdsd returns the mode of the EDSD distance posterior in
// parsec for parallax plxMas with error plxErrorMas, using prior length
// scale lPc in parsec.
func DistanceEstimateEdsd(plxMas, plxErrorMas, lPc float64) float64 {
	e, err := edsd.New(plxMas, plxErrorMas, lPc*.001)
	if err != nil {
		return math.NaN()
	}
	return 1000 * e.BestEstimation()
}

// DistanceBoundsEdsd returns the 5th and 95th percentiles of the EDSD
// distance posterior in parsec.
func DistanceBoundsEdsd(plxMas, plxErrorMas, lPc float64) []float64 {
	return DistanceQuantilesEdsd(plxMas, plxErrorMas, lPc, .05, .95)
}

// DistanceQuantilesEdsd returns distances in parsec at quantiles qpoints,
// each in the range 0..1, of the EDSD distance posterior.
//
// This integrates the posterior numerically so it is relatively slow.
func DistanceQuantilesEdsd(plxMas, plxErrorMas, lPc float64,
	qpoints ...float64) []float64 {
	return quantiles(plxMas, plxErrorMas, lPc, numeric.Quadratic, qpoints)
}

// quadratic interpolation of the CDF does better than splines, see for
// example plx=40, plxError=0.75.
func quantiles(plxMas, plxErrorMas, lPc float64, m numeric.Interpolation,
	qpoints []float64) []float64 {
	r := make([]float64, len(qpoints))
	e, err := edsd.New(plxMas, plxErrorMas, lPc*.001)
	if err == nil {
		var q []float64
		// an ErrMaxDepth result is still usable
		if q, _ = e.Quantiles(CdfTol, QuantTol, m, qpoints...); q != nil {
			for i, d := range q {
				r[i] = 1000 * d
			}
			return r
		}
	}
	for i := range r {
		r[i] = math.NaN()
	}
	return r
}

// DistanceToModulus converts a distance in parsec to a distance modulus,
// 5 log10(distPc) - 5.
func DistanceToModulus(distPc float64) float64 {
	return 5*math.Log10(distPc) - 5
}

// ModulusToDistance converts a distance modulus to a distance in parsec,
// 10^(1 + distmod/5).
func ModulusToDistance(distmod float64) float64 {
	return math.Pow(10, 1+.2*distmod)
}
