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

import "math"

// Load creates a vector from the first MaxLanes[T]() elements of data.
// Shorter slices produce a shorter vector; the tail of a sliced walk is
// handled this way without explicit masking.
func Load[T Lanes](data []T) Vec[T] {
	n := MaxLanes[T]()
	if len(data) < n {
		n = len(data)
	}
	v := Vec[T]{data: make([]T, n)}
	copy(v.data, data[:n])
	return v
}

// Store writes the vector's lanes to dst.
func Store[T Lanes](v Vec[T], dst []T) {
	v.Store(dst)
}

// Set creates a vector with every lane equal to value.
func Set[T Lanes](value T) Vec[T] {
	n := MaxLanes[T]()
	v := Vec[T]{data: make([]T, n)}
	for i := range v.data {
		v.data[i] = value
	}
	return v
}

// Zero creates a vector with all lanes zero.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{data: make([]T, MaxLanes[T]())}
}

// Iota creates a vector with lanes 0, 1, 2, ...
func Iota[T Lanes]() Vec[T] {
	n := MaxLanes[T]()
	v := Vec[T]{data: make([]T, n)}
	for i := range v.data {
		v.data[i] = T(i)
	}
	return v
}

// lanesOf returns the common lane count of two vectors.
func lanesOf[A, B Lanes](a Vec[A], b Vec[B]) int {
	n := len(a.data)
	if len(b.data) < n {
		n = len(b.data)
	}
	return n
}

// Add returns a + b element-wise.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	n := lanesOf(a, b)
	result := Vec[T]{data: make([]T, n)}
	for i := 0; i < n; i++ {
		result.data[i] = a.data[i] + b.data[i]
	}
	return result
}

// Sub returns a - b element-wise.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	n := lanesOf(a, b)
	result := Vec[T]{data: make([]T, n)}
	for i := 0; i < n; i++ {
		result.data[i] = a.data[i] - b.data[i]
	}
	return result
}

// Mul returns a * b element-wise.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	n := lanesOf(a, b)
	result := Vec[T]{data: make([]T, n)}
	for i := 0; i < n; i++ {
		result.data[i] = a.data[i] * b.data[i]
	}
	return result
}

// Div returns a / b element-wise.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	n := lanesOf(a, b)
	result := Vec[T]{data: make([]T, n)}
	for i := 0; i < n; i++ {
		result.data[i] = a.data[i] / b.data[i]
	}
	return result
}

// Neg returns -a element-wise. For floats this flips the sign bit, so
// Neg of a zero lane yields the zero of the opposite sign.
func Neg[T Floats](a Vec[T]) Vec[T] {
	result := Vec[T]{data: make([]T, len(a.data))}
	for i, x := range a.data {
		result.data[i] = -x
	}
	return result
}

// Abs returns |a| element-wise, clearing the sign bit of each lane.
func Abs[T Floats](a Vec[T]) Vec[T] {
	result := Vec[T]{data: make([]T, len(a.data))}
	for i, x := range a.data {
		result.data[i] = T(math.Abs(float64(x)))
	}
	return result
}

// Min returns the element-wise minimum of a and b.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	n := lanesOf(a, b)
	result := Vec[T]{data: make([]T, n)}
	for i := 0; i < n; i++ {
		if b.data[i] < a.data[i] {
			result.data[i] = b.data[i]
		} else {
			result.data[i] = a.data[i]
		}
	}
	return result
}

// Max returns the element-wise maximum of a and b.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	n := lanesOf(a, b)
	result := Vec[T]{data: make([]T, n)}
	for i := 0; i < n; i++ {
		if a.data[i] < b.data[i] {
			result.data[i] = b.data[i]
		} else {
			result.data[i] = a.data[i]
		}
	}
	return result
}

// Sqrt returns the element-wise square root.
func Sqrt[T Floats](a Vec[T]) Vec[T] {
	result := Vec[T]{data: make([]T, len(a.data))}
	for i, x := range a.data {
		result.data[i] = T(math.Sqrt(float64(x)))
	}
	return result
}

// FMA returns a*b + c element-wise with a single rounding per lane
// (fused multiply-add).
func FMA[T Floats](a, b, c Vec[T]) Vec[T] {
	n := lanesOf(a, b)
	if len(c.data) < n {
		n = len(c.data)
	}
	result := Vec[T]{data: make([]T, n)}
	for i := 0; i < n; i++ {
		result.data[i] = T(math.FMA(float64(a.data[i]), float64(b.data[i]), float64(c.data[i])))
	}
	return result
}

// MulAdd is FMA with the accumulator last: a*b + c.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	return FMA(a, b, c)
}

// RoundToEven rounds each lane to the nearest integer, ties to even.
func RoundToEven[T Floats](a Vec[T]) Vec[T] {
	result := Vec[T]{data: make([]T, len(a.data))}
	for i, x := range a.data {
		result.data[i] = T(math.RoundToEven(float64(x)))
	}
	return result
}

// ConvertToInt32 truncates each float lane to int32.
func ConvertToInt32[T Floats](a Vec[T]) Vec[int32] {
	result := Vec[int32]{data: make([]int32, len(a.data))}
	for i, x := range a.data {
		result.data[i] = int32(x)
	}
	return result
}

// ConvertToInt64 truncates each float lane to int64.
func ConvertToInt64[T Floats](a Vec[T]) Vec[int64] {
	result := Vec[int64]{data: make([]int64, len(a.data))}
	for i, x := range a.data {
		result.data[i] = int64(x)
	}
	return result
}

// FromInt32 converts each int32 lane to the float type T.
func FromInt32[T Floats](a Vec[int32]) Vec[T] {
	result := Vec[T]{data: make([]T, len(a.data))}
	for i, x := range a.data {
		result.data[i] = T(x)
	}
	return result
}

// FromInt64 converts each int64 lane to the float type T.
func FromInt64[T Floats](a Vec[int64]) Vec[T] {
	result := Vec[T]{data: make([]T, len(a.data))}
	for i, x := range a.data {
		result.data[i] = T(x)
	}
	return result
}

// Gather builds a vector by indexing table with each lane of idx.
// Indices must be in [0, len(table)).
func Gather[T Lanes, I Ints](table []T, idx Vec[I]) Vec[T] {
	result := Vec[T]{data: make([]T, len(idx.data))}
	for i, j := range idx.data {
		result.data[i] = table[j]
	}
	return result
}
