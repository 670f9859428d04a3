package vmath

import (
	stdmath "math"
	"testing"

	"github.com/ajroetker/go-vmath/lanes"
)

// Strict mode changes which lanes are neutralised before the fast path,
// never the values produced: flagged lanes come from the scalar fallback
// either way. Results must be bit-identical across the two modes.
func TestStrictModeValueEquivalence(t *testing.T) {
	// Stays clear of [512, 704], where strict exp classifies lanes as
	// special that the relaxed bound keeps on the fast path.
	inputs := []float64{
		-1000, -5, -1, -1e-30, stdmath.Copysign(0, -1), 0, 1e-30, 0.5, 3, 300, 710,
		stdmath.Inf(1), stdmath.Inf(-1), stdmath.NaN(),
	}
	fns := map[string]func(lanes.Vec[float64]) lanes.Vec[float64]{
		"exp":   Exp64,
		"expm1": Expm1_64,
		"log1p": Log1p_64,
		"tan":   Tan64,
		"sinh":  Sinh64,
		"cosh":  Cosh64,
		"asinh": Asinh64,
	}

	for name, fn := range fns {
		t.Run(name, func(t *testing.T) {
			SetStrictExceptions(false)
			relaxed := fn(lanes.Load(inputs)).Data()
			SetStrictExceptions(true)
			strict := fn(lanes.Load(inputs)).Data()
			SetStrictExceptions(false)
			for i := range inputs {
				if !bitEqual64(strict[i], relaxed[i]) {
					t.Errorf("%s(%g): strict %g != relaxed %g", name, inputs[i], strict[i], relaxed[i])
				}
			}
		})
	}
}

func TestStrictModeToggle(t *testing.T) {
	SetStrictExceptions(true)
	if !StrictExceptions() {
		t.Fatal("strict mode did not latch")
	}
	SetStrictExceptions(false)
	if StrictExceptions() {
		t.Fatal("strict mode did not clear")
	}
}

// A single special lane must not disturb its neighbours: the fast-path
// bits of unflagged lanes are kept exactly as computed.
func TestSpecialLaneIsolation(t *testing.T) {
	clean := []float64{0.5, 1.5, 2.5, 3.5}
	dirty := []float64{0.5, stdmath.NaN(), 2.5, stdmath.Inf(1)}

	fns := []func(lanes.Vec[float64]) lanes.Vec[float64]{
		Exp64, Log1p_64, Sinh64, Erf64, Cbrt64,
	}
	for _, fn := range fns {
		want := fn(lanes.Load(clean)).Data()
		got := fn(lanes.Load(dirty)).Data()
		if !bitEqual64(got[0], want[0]) || !bitEqual64(got[2], want[2]) {
			t.Errorf("special lanes leaked into clean ones: got %v, clean %v", got, want)
		}
		if !stdmath.IsNaN(got[1]) {
			t.Errorf("NaN lane did not stay NaN: %v", got[1])
		}
	}
}

// Every function is total: no panics, and NaN in means NaN out.
func TestTotalityOnWildInputs(t *testing.T) {
	wild := []float64{
		stdmath.NaN(), stdmath.Inf(1), stdmath.Inf(-1),
		0, stdmath.Copysign(0, -1), 0x1p-1074, -0x1p-1074,
		stdmath.MaxFloat64, -stdmath.MaxFloat64, 1, -1,
	}
	oneArg := []func(lanes.Vec[float64]) lanes.Vec[float64]{
		Exp64, Exp2_64, Expm1_64, Log64, Log2_64, Log10_64, Log1p_64,
		Sin64, Cos64, Tan64, Asin64, Acos64, Atan64,
		Sinh64, Cosh64, Asinh64, Erf64, Erfc64, Cbrt64,
	}
	step := lanes.MaxLanes[float64]()
	for _, fn := range oneArg {
		for i := 0; i < len(wild); i += step {
			in := lanes.Load(wild[i:])
			out := fn(in).Data()
			if len(out) != in.NumLanes() {
				t.Fatalf("lane count changed: %d -> %d", in.NumLanes(), len(out))
			}
			for j, x := range in.Data() {
				if stdmath.IsNaN(x) && !stdmath.IsNaN(out[j]) {
					t.Errorf("NaN input produced %v", out[j])
				}
			}
		}
	}
}
