// Public domain.

package distsolver

import (
	"errors"
	"math"
	"testing"

	xrand "golang.org/x/exp/rand"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soniakeys/gaiadist/edsd"
	"github.com/soniakeys/gaiadist/gaia"
	"github.com/soniakeys/gaiadist/internal/catalog"
)

func TestClipErr(t *testing.T) {
	s := New(DefaultParams)
	assert.Equal(t, .3, s.clipErr(.3))
	assert.Equal(t, 0., s.clipErr(0))

	p := DefaultParams
	p.ErrFloor = .1
	s = New(p)
	assert.Equal(t, .3, s.clipErr(.3))
	assert.Equal(t, .1, s.clipErr(.05))
	assert.Equal(t, .1, s.clipErr(0))
	assert.Equal(t, .1, s.clipErr(math.NaN()))
}

func TestSolveMatchesGaia(t *testing.T) {
	s := New(DefaultParams)
	src := &catalog.Source{ID: "x", Plx: 2, PlxErr: .2}
	r := s.Solve(src, nil)
	require.NoError(t, r.Err)
	assert.Equal(t, gaia.DistanceEstimateEdsd(2, .2, 1350), r.Mode)
	assert.InDelta(t, gaia.DistanceToModulus(r.Mode), r.Modulus, 1e-12)
	b := gaia.DistanceBoundsEdsd(2, .2, 1350)
	require.Len(t, r.Quantiles, 2)
	assert.Equal(t, b[0], r.Quantiles[0])
	assert.Equal(t, b[1], r.Quantiles[1])
	assert.True(t, math.IsNaN(r.MeanMC))
}

func TestSolveInvalid(t *testing.T) {
	s := New(DefaultParams)
	r := s.Solve(&catalog.Source{ID: "x", Plx: 2, PlxErr: 0}, nil)
	assert.True(t, errors.Is(r.Err, edsd.ErrParams))
	assert.True(t, math.IsNaN(r.Mode))
	for _, q := range r.Quantiles {
		assert.True(t, math.IsNaN(q))
	}

	// with an error floor the same source solves
	p := DefaultParams
	p.ErrFloor = .5
	r = New(p).Solve(&catalog.Source{ID: "x", Plx: 2, PlxErr: 0}, nil)
	assert.NoError(t, r.Err)
	assert.Equal(t, .5, r.PlxErr)
	assert.False(t, math.IsNaN(r.Mode))
}

func TestSolveDraws(t *testing.T) {
	p := DefaultParams
	p.Draws = 2000
	p.Quantiles = []float64{.5}
	s := New(p)
	rnd := xrand.New(&xrand.PCGSource{})
	rnd.Seed(3)
	r := s.Solve(&catalog.Source{ID: "x", Plx: 10, PlxErr: .1}, rnd)
	require.NoError(t, r.Err)
	// narrow posterior: the mean is near the median, and the spread is
	// about σ/ϖ² = 1 pc
	assert.InDelta(t, r.Quantiles[0], r.MeanMC, .2)
	assert.InDelta(t, 1, r.SdMC, .2)

	// repeatable with the same seed
	rnd.Seed(3)
	r2 := s.Solve(&catalog.Source{ID: "x", Plx: 10, PlxErr: .1}, rnd)
	assert.Equal(t, r.MeanMC, r2.MeanMC)
}

func TestNewCopiesQuantiles(t *testing.T) {
	p := DefaultParams
	p.Quantiles = []float64{.1, .9}
	s := New(p)
	p.Quantiles[0] = .7
	assert.Equal(t, .1, s.p.Quantiles[0])
}

type seqRand struct {
	v []float64
	i int
}

func (r *seqRand) Float64() float64 {
	x := r.v[r.i%len(r.v)]
	r.i++
	return x
}

func TestDrawStats(t *testing.T) {
	p := DefaultParams
	p.Draws = 3
	s := New(p)
	uniform := func(x float64) float64 { return x }
	mean, sd := s.draw(uniform, 1, &seqRand{v: []float64{.2, .4, .6}})
	assert.InDelta(t, 400, mean, .05)
	assert.InDelta(t, 200, sd, .05)

	// single draw has no spread
	p.Draws = 1
	mean, sd = New(p).draw(uniform, 1, &seqRand{v: []float64{.5}})
	assert.InDelta(t, 500, mean, .05)
	assert.Equal(t, 0., sd)

	// no draw lands in the CDF range
	above := func(x float64) float64 { return x + 2 }
	mean, sd = s.draw(above, 1, &seqRand{v: []float64{.5}})
	assert.True(t, math.IsNaN(mean))
	assert.True(t, math.IsNaN(sd))
}
