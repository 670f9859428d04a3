// Copyright 2025 go-vmath Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lanes

import (
	stdmath "math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadStoreRoundTrip(t *testing.T) {
	src := make([]float32, MaxLanes[float32]())
	for i := range src {
		src[i] = float32(i) * 0.5
	}
	v := Load(src)
	if v.NumLanes() != len(src) {
		t.Fatalf("NumLanes = %d, want %d", v.NumLanes(), len(src))
	}
	dst := make([]float32, len(src))
	v.Store(dst)
	if diff := cmp.Diff(src, dst); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadShortSlice(t *testing.T) {
	src := []float64{1, 2, 3}
	v := Load(src)
	if v.NumLanes() != 3 {
		t.Fatalf("NumLanes = %d, want 3 for a short slice", v.NumLanes())
	}
	// Store into an even shorter destination only writes what fits.
	dst := []float64{-1, -1}
	v.Store(dst)
	if dst[0] != 1 || dst[1] != 2 {
		t.Errorf("short store wrote %v", dst)
	}
}

func TestSetZero(t *testing.T) {
	s := Set[float64](2.5)
	if s.NumLanes() != MaxLanes[float64]() {
		t.Fatalf("Set lanes = %d, want %d", s.NumLanes(), MaxLanes[float64]())
	}
	for i, x := range s.Data() {
		if x != 2.5 {
			t.Fatalf("lane %d = %v, want 2.5", i, x)
		}
	}
	z := Zero[int32]()
	for i, x := range z.Data() {
		if x != 0 {
			t.Fatalf("lane %d = %v, want 0", i, x)
		}
	}
}

func TestIota(t *testing.T) {
	v := Iota[float32]()
	if v.NumLanes() != MaxLanes[float32]() {
		t.Fatalf("Iota lanes = %d, want %d", v.NumLanes(), MaxLanes[float32]())
	}
	for i, x := range v.Data() {
		if x != float32(i) {
			t.Fatalf("lane %d = %v, want %d", i, x, i)
		}
	}
}

func TestArithmetic(t *testing.T) {
	a := Load([]float64{1, 2, 3, -4})
	b := Load([]float64{0.5, -2, 10, 4})

	checks := []struct {
		name string
		got  Vec[float64]
		want []float64
	}{
		{"add", Add(a, b), []float64{1.5, 0, 13, 0}},
		{"sub", Sub(a, b), []float64{0.5, 4, -7, -8}},
		{"mul", Mul(a, b), []float64{0.5, -4, 30, -16}},
		{"div", Div(a, b), []float64{2, -1, 0.3, -1}},
		{"min", Min(a, b), []float64{0.5, -2, 3, -4}},
		{"max", Max(a, b), []float64{1, 2, 10, 4}},
	}
	for _, c := range checks {
		t.Run(c.name, func(t *testing.T) {
			got := c.got.Data()
			for i := range c.want {
				if stdmath.Abs(got[i]-c.want[i]) > 1e-15 {
					t.Errorf("lane %d = %v, want %v", i, got[i], c.want[i])
				}
			}
		})
	}
}

func TestMismatchedLaneCounts(t *testing.T) {
	a := Load([]float64{1, 2, 3, 4})
	b := Load([]float64{10, 20})
	sum := Add(a, b)
	if sum.NumLanes() != 2 {
		t.Fatalf("result lanes = %d, want min(4,2) = 2", sum.NumLanes())
	}
	if diff := cmp.Diff([]float64{11, 22}, sum.Data()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestNegPreservesSignedZero(t *testing.T) {
	v := Neg(Load([]float64{0, stdmath.Copysign(0, -1), 1}))
	d := v.Data()
	if !stdmath.Signbit(d[0]) {
		t.Errorf("Neg(+0) = %v, want -0", d[0])
	}
	if stdmath.Signbit(d[1]) {
		t.Errorf("Neg(-0) = %v, want +0", d[1])
	}
	if d[2] != -1 {
		t.Errorf("Neg(1) = %v, want -1", d[2])
	}
}

func TestFMASingleRounding(t *testing.T) {
	// (1+2^-30)^2 has cross terms below the rounding of a separate
	// multiply; a fused evaluation keeps them.
	x := 1 + 0x1p-30
	got := FMA(Set(x), Set(x), Set[float64](-1)).Data()[0]
	want := stdmath.FMA(x, x, -1)
	if got != want {
		t.Errorf("FMA = %g, want %g", got, want)
	}
	if rounded := x*x - 1; got == rounded {
		t.Errorf("FMA matched the double-rounded product %g; fusion lost", rounded)
	}
}

func TestRoundToEven(t *testing.T) {
	v := RoundToEven(Load([]float64{0.5, 1.5, 2.5, -0.5, 2.4, -2.6}))
	want := []float64{0, 2, 2, 0, 2, -3}
	for i, w := range want {
		if v.Data()[i] != w {
			t.Errorf("lane %d = %v, want %v", i, v.Data()[i], w)
		}
	}
}

func TestConvertRoundTrip(t *testing.T) {
	v := Load([]float64{1.9, -1.9, 0, 123456789})
	i64 := ConvertToInt64(v)
	want := []int64{1, -1, 0, 123456789}
	for i, w := range want {
		if i64.Data()[i] != w {
			t.Errorf("truncate lane %d = %d, want %d", i, i64.Data()[i], w)
		}
	}
	back := FromInt64[float64](i64)
	for i, w := range want {
		if back.Data()[i] != float64(w) {
			t.Errorf("from-int lane %d = %v, want %v", i, back.Data()[i], float64(w))
		}
	}
}

func TestGather(t *testing.T) {
	table := []float64{10, 20, 30, 40}
	idx := Load([]int64{3, 0, 2, 1})
	got := Gather(table, idx)
	if diff := cmp.Diff([]float64{40, 10, 30, 20}, got.Data()); diff != "" {
		t.Errorf("gather mismatch (-want +got):\n%s", diff)
	}
}

func TestSqrtAbs(t *testing.T) {
	v := Load([]float64{4, 2.25, 0})
	s := Sqrt(v).Data()
	if s[0] != 2 || s[1] != 1.5 || s[2] != 0 {
		t.Errorf("Sqrt = %v", s)
	}
	a := Abs(Load([]float64{-1, 1, stdmath.Copysign(0, -1)})).Data()
	if a[0] != 1 || a[1] != 1 || stdmath.Signbit(a[2]) {
		t.Errorf("Abs = %v", a)
	}
}
