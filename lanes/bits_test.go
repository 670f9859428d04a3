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
)

// Reinterpretation must be total: every bit pattern survives a round
// trip, including NaN payloads, signed zeros and subnormals.
func TestBitCastTotality64(t *testing.T) {
	patterns := []uint64{
		0x0000000000000000, // +0
		0x8000000000000000, // -0
		0x0000000000000001, // smallest subnormal
		0x000fffffffffffff, // largest subnormal
		0x0010000000000000, // smallest normal
		0x3ff0000000000000, // 1.0
		0x7fefffffffffffff, // largest finite
		0x7ff0000000000000, // +Inf
		0xfff0000000000000, // -Inf
		0x7ff8000000000000, // quiet NaN
		0x7ff0000000000001, // signalling NaN payload
		0xfff5deadbeefcafe, // NaN with payload and sign
	}
	v := Vec[uint64]{data: patterns}
	round := AsUint64(AsFloat64(v))
	for i, p := range patterns {
		if round.data[i] != p {
			t.Errorf("pattern %#016x round-tripped to %#016x", p, round.data[i])
		}
	}
}

func TestBitCastTotality32(t *testing.T) {
	patterns := []uint32{
		0x00000000, 0x80000000, 0x00000001, 0x007fffff,
		0x00800000, 0x3f800000, 0x7f7fffff, 0x7f800000,
		0xff800000, 0x7fc00000, 0x7f800001, 0xffabcdef,
	}
	v := Vec[uint32]{data: patterns}
	round := AsUint32(AsFloat32(v))
	for i, p := range patterns {
		if round.data[i] != p {
			t.Errorf("pattern %#08x round-tripped to %#08x", p, round.data[i])
		}
	}
}

func TestBitwiseOps(t *testing.T) {
	a := Load([]uint32{0xf0f0f0f0, 0xffffffff, 0x00000000})
	b := Load([]uint32{0x0ff00ff0, 0x12345678, 0xabcdef01})

	and := And(a, b).Data()
	or := Or(a, b).Data()
	xor := Xor(a, b).Data()
	andnot := AndNot(a, b).Data()
	for i := range and {
		if and[i] != a.Data()[i]&b.Data()[i] {
			t.Errorf("And lane %d = %#x", i, and[i])
		}
		if or[i] != a.Data()[i]|b.Data()[i] {
			t.Errorf("Or lane %d = %#x", i, or[i])
		}
		if xor[i] != a.Data()[i]^b.Data()[i] {
			t.Errorf("Xor lane %d = %#x", i, xor[i])
		}
		if andnot[i] != a.Data()[i]&^b.Data()[i] {
			t.Errorf("AndNot lane %d = %#x", i, andnot[i])
		}
	}
}

func TestShiftSemantics(t *testing.T) {
	// Unsigned lanes shift logically.
	u := ShiftRight(Load([]uint64{0x8000000000000000}), 60)
	if got := u.Data()[0]; got != 0x8 {
		t.Errorf("logical shift = %#x, want 0x8", got)
	}
	// Signed lanes shift arithmetically, preserving the sign.
	s := ShiftRight(Load([]int64{-4096}), 12)
	if got := s.Data()[0]; got != -1 {
		t.Errorf("arithmetic shift = %d, want -1", got)
	}
	l := ShiftLeft(Load([]uint32{0x3}), 23)
	if got := l.Data()[0]; got != 0x01800000 {
		t.Errorf("shift left = %#x, want 0x01800000", got)
	}
}

func TestSignBitSurgery(t *testing.T) {
	// Clearing the sign bit of -1.5 yields 1.5; setting it on 2.0 yields -2.0.
	neg := Load([]float64{-1.5})
	abs := AsFloat64(And(AsUint64(neg), Load([]uint64{0x7fffffffffffffff})))
	if abs.Data()[0] != 1.5 {
		t.Errorf("cleared sign: %v", abs.Data()[0])
	}
	pos := Load([]float64{2})
	flipped := AsFloat64(Xor(AsUint64(pos), Load([]uint64{0x8000000000000000})))
	if flipped.Data()[0] != -2 {
		t.Errorf("flipped sign: %v", flipped.Data()[0])
	}
	if !stdmath.Signbit(flipped.Data()[0]) {
		t.Error("sign bit not set after xor")
	}
}
