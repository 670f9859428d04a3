package vmath

import (
	stdmath "math"
	"testing"

	"github.com/ajroetker/go-vmath/lanes"
)

// Test grids and tolerance helpers shared by the function tests.

func linspace64(a, b float64, n int) []float64 {
	out := make([]float64, n)
	step := (b - a) / float64(n-1)
	for i := range out {
		out[i] = a + float64(i)*step
	}
	return out
}

func linspace32(a, b float32, n int) []float32 {
	out := make([]float32, n)
	step := (b - a) / float32(n-1)
	for i := range out {
		out[i] = a + float32(i)*step
	}
	return out
}

// checkClose64 verifies |got-want| <= tol*max(1, |want|), which behaves
// as a relative bound for large results and an absolute one near zero.
func checkClose64(t *testing.T, x, got, want, tol float64) {
	t.Helper()
	if stdmath.IsNaN(want) {
		if !stdmath.IsNaN(got) {
			t.Errorf("f(%g) = %g, want NaN", x, got)
		}
		return
	}
	if stdmath.IsInf(want, 0) {
		if got != want {
			t.Errorf("f(%g) = %g, want %g", x, got, want)
		}
		return
	}
	scale := stdmath.Abs(want)
	if scale < 1 {
		scale = 1
	}
	if stdmath.Abs(got-want) > tol*scale {
		t.Errorf("f(%g) = %g, want %g (err %g)", x, got, want, stdmath.Abs(got-want))
	}
}

func checkClose32(t *testing.T, x, got float32, want float64, tol float64) {
	t.Helper()
	checkClose64(t, float64(x), float64(got), float64(float32(want)), tol)
}

// sweep64 runs fn over the grid one full vector at a time and checks
// every lane against the scalar reference.
func sweep64(t *testing.T, grid []float64, fn func(lanes.Vec[float64]) lanes.Vec[float64], ref func(float64) float64, tol float64) {
	t.Helper()
	step := lanes.MaxLanes[float64]()
	for i := 0; i < len(grid); i += step {
		in := lanes.Load(grid[i:])
		out := fn(in).Data()
		for j, x := range in.Data() {
			checkClose64(t, x, out[j], ref(x), tol)
		}
	}
}

func sweep32(t *testing.T, grid []float32, fn func(lanes.Vec[float32]) lanes.Vec[float32], ref func(float64) float64, tol float64) {
	t.Helper()
	step := lanes.MaxLanes[float32]()
	for i := 0; i < len(grid); i += step {
		in := lanes.Load(grid[i:])
		out := fn(in).Data()
		for j, x := range in.Data() {
			checkClose32(t, x, out[j], ref(float64(x)), tol)
		}
	}
}

// bitEqual64 requires got and want to share a bit pattern, treating all
// NaNs as equal.
func bitEqual64(got, want float64) bool {
	if stdmath.IsNaN(got) && stdmath.IsNaN(want) {
		return true
	}
	return stdmath.Float64bits(got) == stdmath.Float64bits(want)
}

func bitEqual32(got, want float32) bool {
	if got != got && want != want {
		return true
	}
	return stdmath.Float32bits(got) == stdmath.Float32bits(want)
}

// ulpDiff64 returns the distance between got and want in representable
// float64 steps, treating +0 and -0 as equal. Callers screen NaN and
// Inf first.
func ulpDiff64(got, want float64) int64 {
	g := int64(stdmath.Float64bits(got))
	w := int64(stdmath.Float64bits(want))
	if g < 0 {
		g = stdmath.MinInt64 - g
	}
	if w < 0 {
		w = stdmath.MinInt64 - w
	}
	d := g - w
	if d < 0 {
		d = -d
	}
	return d
}

// sweepULP64 is sweep64 with the bound denominated in ULPs of the
// reference result, which stays meaningful where the result itself is
// near zero.
func sweepULP64(t *testing.T, grid []float64, fn func(lanes.Vec[float64]) lanes.Vec[float64], ref func(float64) float64, maxULP int64) {
	t.Helper()
	step := lanes.MaxLanes[float64]()
	for i := 0; i < len(grid); i += step {
		in := lanes.Load(grid[i:])
		out := fn(in).Data()
		for j, x := range in.Data() {
			want := ref(x)
			if stdmath.IsNaN(want) || stdmath.IsInf(want, 0) {
				continue
			}
			if d := ulpDiff64(out[j], want); d > maxULP {
				t.Errorf("f(%g) = %g, want %g (%d ulp)", x, out[j], want, d)
			}
		}
	}
}

const (
	tol64 = 1e-12 // fast paths stay within a few ULP; this leaves headroom
	tol32 = 1e-5
)
