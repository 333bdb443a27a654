// Public domain.

package numeric

import (
	"errors"
	"math"
	"testing"
)

func TestSimpsonArea(t *testing.T) {
	cube := func(x float64) float64 { return x * x * x }
	for _, c := range []struct{ lo, hi float64 }{
		{0, 1}, {-2, 3}, {1.5, 1.5}, {-4, -1},
	} {
		n, err := NewIntegral(cube, c.lo, c.hi)
		if err != nil {
			t.Fatal(err)
		}
		mid := (c.lo + c.hi) / 2
		want := (c.hi - c.lo) / 6 * (cube(c.lo) + 4*cube(mid) + cube(c.hi))
		if g := n.Area(); g != want {
			t.Errorf("[%g, %g]: area %g, want %g", c.lo, c.hi, g, want)
		}
		if !n.Leaf() {
			t.Error("new integral has children")
		}
	}
}

func TestNewIntegralBadBounds(t *testing.T) {
	f := func(x float64) float64 { return x }
	if _, err := NewIntegral(f, 2, 1); !errors.Is(err, ErrInterval) {
		t.Fatalf("lo > hi: got %v, want ErrInterval", err)
	}
	if _, err := NewIntegral(f, math.NaN(), 1); !errors.Is(err, ErrInterval) {
		t.Fatalf("NaN lo: got %v, want ErrInterval", err)
	}
}

func TestFillStates(t *testing.T) {
	// Simpson is exact for cubics, so no refinement happens.
	n, _ := NewIntegral(func(x float64) float64 { return x * x * x }, 0, 2)
	if u := n.Fill(1e-12); u != 0 || !n.Leaf() {
		t.Fatalf("cubic refined: unconverged %d, leaf %t", u, n.Leaf())
	}
	// exp is not, so it must be.
	n, _ = NewIntegral(math.Exp, 0, 4)
	if u := n.Fill(1e-9); u != 0 {
		t.Fatal("unconverged", u)
	}
	if n.Leaf() {
		t.Fatal("exp not refined")
	}
	if c := n.count(); c < 4 {
		t.Fatal("expected several leaves, got", c)
	}
}

func TestIntegrateIdentity(t *testing.T) {
	id := func(x float64) float64 { return x }
	r, err := Integrate(id, []float64{0, 10}, 1e-9)
	if err != nil {
		t.Fatal(err)
	}
	if r.X(0) != 0 || r.Y(0) != 0 {
		t.Fatalf("first sample (%g, %g), want (0, 0)", r.X(0), r.Y(0))
	}
	for i := 0; i < r.Count(); i++ {
		x := r.X(i)
		if e := x * x / 2; math.Abs(r.Y(i)-e) > 1e-9 {
			t.Errorf("at %g: %g, want %g", x, r.Y(i), e)
		}
	}
}

func TestIntegrateConverges(t *testing.T) {
	pts := []float64{0, 1, math.Pi / 2, 2, math.Pi}
	prev := math.Inf(1)
	for _, tol := range []float64{1e-2, 1e-5, 1e-8, 1e-11} {
		r, err := Integrate(math.Sin, pts, tol)
		if err != nil {
			t.Fatal(err)
		}
		last := r.Count() - 1
		if r.X(last) != math.Pi {
			t.Fatalf("last x %g", r.X(last))
		}
		e := math.Abs(r.Y(last) - 2)
		if e > tol*float64(len(pts))*10 {
			t.Errorf("tol %g: error %g", tol, e)
		}
		if e > prev {
			t.Errorf("tol %g: error %g larger than %g", tol, e, prev)
		}
		prev = e
		for i := 1; i <= last; i++ {
			if r.X(i) <= r.X(i-1) {
				t.Fatalf("x not increasing at %d", i)
			}
			if r.Y(i) < r.Y(i-1) {
				t.Fatalf("cumulative integral decreases at %d", i)
			}
		}
	}
}

func TestIntegrateForcedPoints(t *testing.T) {
	pts := []float64{-1, 0, .25, 3}
	r, err := Integrate(math.Abs, pts, 1e-6)
	if err != nil {
		t.Fatal(err)
	}
	found := map[float64]bool{}
	for i := 0; i < r.Count(); i++ {
		found[r.X(i)] = true
	}
	for _, p := range pts {
		if !found[p] {
			t.Errorf("point %g not a sample", p)
		}
	}
	if g := r.Y(r.Count() - 1); math.Abs(g-5) > 1e-6 {
		t.Errorf("integral of |x| over [-1, 3] = %g, want 5", g)
	}
}

func TestIntegrateBadPoints(t *testing.T) {
	id := func(x float64) float64 { return x }
	if _, err := Integrate(id, []float64{1}, 1e-6); !errors.Is(err, ErrPoints) {
		t.Error("single point: got", err)
	}
	if _, err := Integrate(id, []float64{0, 2, 1}, 1e-6); !errors.Is(err, ErrInterval) {
		t.Error("unordered: got", err)
	}
}

func TestIntegrateMaxDepth(t *testing.T) {
	// a step never satisfies a zero tolerance
	step := func(x float64) float64 {
		if x < 1/3. {
			return 0
		}
		return 1
	}
	r, err := Integrate(step, []float64{0, 1}, 0)
	if !errors.Is(err, ErrMaxDepth) {
		t.Fatal("got", err)
	}
	if r == nil {
		t.Fatal("no result with ErrMaxDepth")
	}
	if g := r.Y(r.Count() - 1); math.Abs(g-2/3.) > 1e-9 {
		t.Errorf("integral %g, want %g", g, 2/3.)
	}
}
