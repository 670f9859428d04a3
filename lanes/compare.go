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

// Equal returns a mask with lane i set where a[i] == b[i].
// Float comparisons follow IEEE-754: NaN compares unequal to everything,
// and +0 compares equal to -0.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	n := lanesOf(a, b)
	m := Mask[T]{bits: make([]bool, n)}
	for i := 0; i < n; i++ {
		m.bits[i] = a.data[i] == b.data[i]
	}
	return m
}

// NotEqual returns a mask with lane i set where a[i] != b[i].
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	n := lanesOf(a, b)
	m := Mask[T]{bits: make([]bool, n)}
	for i := 0; i < n; i++ {
		m.bits[i] = a.data[i] != b.data[i]
	}
	return m
}

// Less returns a mask with lane i set where a[i] < b[i].
func Less[T Lanes](a, b Vec[T]) Mask[T] {
	n := lanesOf(a, b)
	m := Mask[T]{bits: make([]bool, n)}
	for i := 0; i < n; i++ {
		m.bits[i] = a.data[i] < b.data[i]
	}
	return m
}

// LessEq returns a mask with lane i set where a[i] <= b[i].
func LessEq[T Lanes](a, b Vec[T]) Mask[T] {
	n := lanesOf(a, b)
	m := Mask[T]{bits: make([]bool, n)}
	for i := 0; i < n; i++ {
		m.bits[i] = a.data[i] <= b.data[i]
	}
	return m
}

// Greater returns a mask with lane i set where a[i] > b[i].
func Greater[T Lanes](a, b Vec[T]) Mask[T] {
	n := lanesOf(a, b)
	m := Mask[T]{bits: make([]bool, n)}
	for i := 0; i < n; i++ {
		m.bits[i] = a.data[i] > b.data[i]
	}
	return m
}

// GreaterEq returns a mask with lane i set where a[i] >= b[i].
func GreaterEq[T Lanes](a, b Vec[T]) Mask[T] {
	n := lanesOf(a, b)
	m := Mask[T]{bits: make([]bool, n)}
	for i := 0; i < n; i++ {
		m.bits[i] = a.data[i] >= b.data[i]
	}
	return m
}

// IsNaN returns a mask with lane i set where a[i] is NaN.
func IsNaN[T Floats](a Vec[T]) Mask[T] {
	m := Mask[T]{bits: make([]bool, len(a.data))}
	for i, x := range a.data {
		m.bits[i] = x != x
	}
	return m
}

// Merge selects a[i] where mask lane i is set, b[i] otherwise.
// Lanes not covered by the mask take b.
func Merge[T Lanes](a, b Vec[T], mask Mask[T]) Vec[T] {
	n := lanesOf(a, b)
	result := Vec[T]{data: make([]T, n)}
	for i := 0; i < n; i++ {
		if mask.GetBit(i) {
			result.data[i] = a.data[i]
		} else {
			result.data[i] = b.data[i]
		}
	}
	return result
}

// MaskAnd returns the lane-wise AND of two masks.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	n := len(a.bits)
	if len(b.bits) < n {
		n = len(b.bits)
	}
	m := Mask[T]{bits: make([]bool, n)}
	for i := 0; i < n; i++ {
		m.bits[i] = a.bits[i] && b.bits[i]
	}
	return m
}

// MaskOr returns the lane-wise OR of two masks.
func MaskOr[T Lanes](a, b Mask[T]) Mask[T] {
	n := len(a.bits)
	if len(b.bits) < n {
		n = len(b.bits)
	}
	m := Mask[T]{bits: make([]bool, n)}
	for i := 0; i < n; i++ {
		m.bits[i] = a.bits[i] || b.bits[i]
	}
	return m
}

// MaskNot returns the lane-wise complement of a mask.
func MaskNot[T Lanes](a Mask[T]) Mask[T] {
	m := Mask[T]{bits: make([]bool, len(a.bits))}
	for i, bit := range a.bits {
		m.bits[i] = !bit
	}
	return m
}

// RetagMask reinterprets a mask over lane type From as a mask over lane
// type To. The two types must have the same lane width (e.g. float64 and
// uint64); the bit pattern is carried over unchanged.
func RetagMask[To, From Lanes](m Mask[From]) Mask[To] {
	out := Mask[To]{bits: make([]bool, len(m.bits))}
	copy(out.bits, m.bits)
	return out
}
