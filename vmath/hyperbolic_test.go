package vmath

import (
	stdmath "math"
	"testing"

	"github.com/ajroetker/go-vmath/lanes"
)

func TestSinhAnchors(t *testing.T) {
	if got := Sinh64(lanes.Set(0.0)).Data()[0]; !bitEqual64(got, 0) {
		t.Errorf("sinh(+0) = %g, want +0", got)
	}
	negZero := stdmath.Copysign(0, -1)
	if got := Sinh64(lanes.Set(negZero)).Data()[0]; !bitEqual64(got, negZero) {
		t.Errorf("sinh(-0) = %g, want -0", got)
	}
	if got := Sinh64(lanes.Set(stdmath.Inf(1))).Data()[0]; !stdmath.IsInf(got, 1) {
		t.Errorf("sinh(+Inf) = %g", got)
	}
	if got := Sinh64(lanes.Set(1000.0)).Data()[0]; !bitEqual64(got, stdmath.Sinh(1000)) {
		t.Errorf("sinh overflow lane = %g, want %g", got, stdmath.Sinh(1000))
	}
}

// sinh and asinh are odd bit for bit: the sign is carried outside the
// evaluation.
func TestHyperbolicParityBitExact(t *testing.T) {
	for _, x := range linspace64(0.001, 100, 499) {
		sp := Sinh64(lanes.Set(x)).Data()[0]
		sn := Sinh64(lanes.Set(-x)).Data()[0]
		if !bitEqual64(sn, -sp) {
			t.Fatalf("sinh parity broken at %g", x)
		}
		ap := Asinh64(lanes.Set(x)).Data()[0]
		an := Asinh64(lanes.Set(-x)).Data()[0]
		if !bitEqual64(an, -ap) {
			t.Fatalf("asinh parity broken at %g", x)
		}
		cp := Cosh64(lanes.Set(x)).Data()[0]
		cn := Cosh64(lanes.Set(-x)).Data()[0]
		if !bitEqual64(cn, cp) {
			t.Fatalf("cosh parity broken at %g", x)
		}
	}
}

func TestSinhSweep(t *testing.T) {
	sweep64(t, linspace64(-700, 700, 4001), Sinh64, stdmath.Sinh, tol64)
	sweep64(t, linspace64(-2, 2, 2001), Sinh64, stdmath.Sinh, tol64)
	sweep32(t, linspace32(-85, 85, 4001), Sinh32, stdmath.Sinh, tol32)
}

func TestSinhSmallRelative(t *testing.T) {
	for _, x := range []float64{1e-5, -1e-5, 1e-10, 1e-30} {
		got := Sinh64(lanes.Set(x)).Data()[0]
		want := stdmath.Sinh(x)
		if stdmath.Abs(got-want) > 1e-13*stdmath.Abs(want) {
			t.Errorf("sinh(%g) = %g, want %g (relative)", x, got, want)
		}
	}
}

func TestCoshAnchorsAndSweep(t *testing.T) {
	if got := Cosh64(lanes.Set(0.0)).Data()[0]; got != 1 {
		t.Errorf("cosh(0) = %g, want exactly 1", got)
	}
	if got := Cosh64(lanes.Set(stdmath.Inf(-1))).Data()[0]; !stdmath.IsInf(got, 1) {
		t.Errorf("cosh(-Inf) = %g, want +Inf", got)
	}
	if got := Cosh64(lanes.Set(710.0)).Data()[0]; !bitEqual64(got, stdmath.Cosh(710)) {
		t.Errorf("cosh(710) = %g, want %g", got, stdmath.Cosh(710))
	}
	sweep64(t, linspace64(-700, 700, 4001), Cosh64, stdmath.Cosh, tol64)
	sweep32(t, linspace32(-85, 85, 4001), Cosh32, stdmath.Cosh, tol32)

	// cosh(x) >= 1 everywhere.
	for _, x := range linspace64(-5, 5, 1001) {
		if got := Cosh64(lanes.Set(x)).Data()[0]; got < 1 {
			t.Fatalf("cosh(%g) = %g < 1", x, got)
		}
	}
}

func TestAsinhAnchorsAndSweep(t *testing.T) {
	negZero := stdmath.Copysign(0, -1)
	if got := Asinh64(lanes.Set(negZero)).Data()[0]; !bitEqual64(got, negZero) {
		t.Errorf("asinh(-0) = %g, want -0", got)
	}
	if got := Asinh64(lanes.Set(stdmath.Inf(1))).Data()[0]; !stdmath.IsInf(got, 1) {
		t.Errorf("asinh(+Inf) = %g", got)
	}
	if got := Asinh64(lanes.Set(1e300)).Data()[0]; !bitEqual64(got, stdmath.Asinh(1e300)) {
		t.Errorf("asinh(1e300) = %g, want %g", got, stdmath.Asinh(1e300))
	}
	sweep64(t, linspace64(-100, 100, 4001), Asinh64, stdmath.Asinh, tol64)
	sweep64(t, linspace64(-1, 1, 2001), Asinh64, stdmath.Asinh, tol64)
	sweep32(t, linspace32(-100, 100, 4001), Asinh32, stdmath.Asinh, tol32)
}

func TestAsinhSmallRelative(t *testing.T) {
	for _, x := range []float64{1e-5, -1e-5, 1e-10, 1e-30} {
		got := Asinh64(lanes.Set(x)).Data()[0]
		want := stdmath.Asinh(x)
		if stdmath.Abs(got-want) > 1e-13*stdmath.Abs(want) {
			t.Errorf("asinh(%g) = %g, want %g (relative)", x, got, want)
		}
	}
}
