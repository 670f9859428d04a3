package vmath

import (
	stdmath "math"
	"testing"

	"github.com/ajroetker/go-vmath/lanes"
)

func TestExpAnchors(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"exp(0) = 1", 0, 1},
		{"exp(1) = e", 1, stdmath.E},
		{"exp(-1)", -1, 1 / stdmath.E},
		{"exp(ln2) = 2", stdmath.Ln2, 2},
		{"exp(10)", 10, stdmath.Exp(10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Exp64(lanes.Set(tt.input)).Data()[0]
			checkClose64(t, tt.input, got, tt.want, tol64)

			got32 := Exp32(lanes.Set(float32(tt.input))).Data()[0]
			checkClose32(t, float32(tt.input), got32, stdmath.Exp(float64(float32(tt.input))), tol32)
		})
	}
	if got := Exp64(lanes.Set(0.0)).Data()[0]; got != 1 {
		t.Errorf("exp(0) = %g, want exactly 1", got)
	}
}

func TestExpSweep(t *testing.T) {
	sweep64(t, linspace64(-700, 700, 4001), Exp64, stdmath.Exp, tol64)
	sweep64(t, linspace64(-1, 1, 2001), Exp64, stdmath.Exp, tol64)
	sweep32(t, linspace32(-85, 85, 4001), Exp32, stdmath.Exp, tol32)
}

// Lanes outside the fast path must match the scalar routine bit for bit.
func TestExpSpecialsBitExact(t *testing.T) {
	specials := []float64{
		710, -710, 1000, -1000, 709.9, -745.4,
		stdmath.Inf(1), stdmath.Inf(-1), stdmath.NaN(),
	}
	got := Exp64(lanes.Load(specials)).Data()
	for i, x := range specials {
		if want := stdmath.Exp(x); !bitEqual64(got[i], want) {
			t.Errorf("Exp(%g) = %g, want %g bit-exact", x, got[i], want)
		}
	}

	specials32 := []float32{
		89, -89, 1000, float32(stdmath.Inf(1)), float32(stdmath.Inf(-1)), float32(stdmath.NaN()),
	}
	got32 := Exp32(lanes.Load(specials32)).Data()
	for i, x := range specials32 {
		if want := expf(x); !bitEqual32(got32[i], want) {
			t.Errorf("Exp32(%g) = %g, want %g bit-exact", x, got32[i], want)
		}
	}
}

// 2^n for integer n reassembles exactly from the table.
func TestExp2Integers(t *testing.T) {
	for _, n := range []float64{-10, -3, -1, 0, 1, 2, 3, 10, 100, -100} {
		got := Exp2_64(lanes.Set(n)).Data()[0]
		if want := stdmath.Exp2(n); got != want {
			t.Errorf("Exp2(%v) = %g, want exactly %g", n, got, want)
		}
	}
	for _, n := range []float32{-10, -1, 0, 1, 5, 20} {
		got := Exp2_32(lanes.Set(n)).Data()[0]
		if want := exp2f(n); got != want {
			t.Errorf("Exp2_32(%v) = %g, want exactly %g", n, got, want)
		}
	}
}

func TestExp2Sweep(t *testing.T) {
	sweep64(t, linspace64(-1020, 1020, 4001), Exp2_64, stdmath.Exp2, tol64)
	sweep32(t, linspace32(-125, 125, 4001), Exp2_32, stdmath.Exp2, tol32)
}

func TestExpm1Anchors(t *testing.T) {
	if got := Expm1_64(lanes.Set(0.0)).Data()[0]; got != 0 || stdmath.Signbit(got) {
		t.Errorf("expm1(+0) = %g, want +0", got)
	}
	negZero := stdmath.Copysign(0, -1)
	if got := Expm1_64(lanes.Set(negZero)).Data()[0]; !bitEqual64(got, negZero) {
		t.Errorf("expm1(-0) = %g, want -0", got)
	}
	if got := Expm1_64(lanes.Set(stdmath.Inf(-1))).Data()[0]; got != -1 {
		t.Errorf("expm1(-Inf) = %g, want -1", got)
	}
	if got := Expm1_64(lanes.Set(stdmath.Inf(1))).Data()[0]; !stdmath.IsInf(got, 1) {
		t.Errorf("expm1(+Inf) = %g, want +Inf", got)
	}
}

// Near zero the result must track x to full relative precision; the
// whole point of expm1 is avoiding the exp(x)-1 cancellation.
func TestExpm1SmallRelative(t *testing.T) {
	for _, x := range []float64{1e-5, -1e-5, 1e-10, -1e-10, 1e-15, 3e-8} {
		got := Expm1_64(lanes.Set(x)).Data()[0]
		want := stdmath.Expm1(x)
		if stdmath.Abs(got-want) > 1e-13*stdmath.Abs(want) {
			t.Errorf("expm1(%g) = %g, want %g (relative)", x, got, want)
		}
	}
	for _, x := range []float32{1e-5, -1e-5, 1e-10, 3e-8} {
		got := Expm1_32(lanes.Set(x)).Data()[0]
		want := float32(stdmath.Expm1(float64(x)))
		if stdmath.Abs(float64(got-want)) > 1e-5*stdmath.Abs(float64(want)) {
			t.Errorf("expm1f(%g) = %g, want %g (relative)", x, got, want)
		}
	}
}

func TestExpm1Sweep(t *testing.T) {
	sweep64(t, linspace64(-30, 30, 3001), Expm1_64, stdmath.Expm1, tol64)
	sweep32(t, linspace32(-15, 15, 3001), Expm1_32, stdmath.Expm1, tol32)
}

func TestExpGenericAndNaNIsolation(t *testing.T) {
	in := []float64{1, stdmath.NaN(), 2}
	out := Exp(lanes.Load(in)).Data()
	if !stdmath.IsNaN(out[1]) {
		t.Error("NaN lane did not propagate")
	}
	clean := Exp(lanes.Load([]float64{1, 0, 2})).Data()
	if out[0] != clean[0] || out[2] != clean[2] {
		t.Error("NaN lane disturbed its neighbours")
	}
}

// exp must not show local inversions from polynomial ringing: on a grid
// where the true increment dwarfs the error bound, outputs are
// non-decreasing.
func TestExpMonotonic(t *testing.T) {
	grid := linspace64(-20, 20, 40001)
	prev := stdmath.Inf(-1)
	step := lanes.MaxLanes[float64]()
	for i := 0; i < len(grid); i += step {
		for _, y := range Exp64(lanes.Load(grid[i:])).Data() {
			if y < prev {
				t.Fatalf("exp not monotonic: %g after %g", y, prev)
			}
			prev = y
		}
	}
}
