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

// Bit reinterpretation between float and integer lanes. These are total:
// every bit pattern round-trips exactly, including NaN payloads, signed
// zeros, subnormals and infinities. All exponent/mantissa surgery in the
// math kernels goes through these casts.

// AsUint32 reinterprets float32 lanes as their IEEE-754 bit patterns.
func AsUint32(a Vec[float32]) Vec[uint32] {
	result := Vec[uint32]{data: make([]uint32, len(a.data))}
	for i, x := range a.data {
		result.data[i] = math.Float32bits(x)
	}
	return result
}

// AsFloat32 reinterprets uint32 lanes as float32 values.
func AsFloat32(a Vec[uint32]) Vec[float32] {
	result := Vec[float32]{data: make([]float32, len(a.data))}
	for i, x := range a.data {
		result.data[i] = math.Float32frombits(x)
	}
	return result
}

// AsUint64 reinterprets float64 lanes as their IEEE-754 bit patterns.
func AsUint64(a Vec[float64]) Vec[uint64] {
	result := Vec[uint64]{data: make([]uint64, len(a.data))}
	for i, x := range a.data {
		result.data[i] = math.Float64bits(x)
	}
	return result
}

// AsFloat64 reinterprets uint64 lanes as float64 values.
func AsFloat64(a Vec[uint64]) Vec[float64] {
	result := Vec[float64]{data: make([]float64, len(a.data))}
	for i, x := range a.data {
		result.data[i] = math.Float64frombits(x)
	}
	return result
}

// AsInt64 reinterprets uint64 lanes as int64, preserving bits. Used where
// an arithmetic shift of a float64 bit pattern is needed.
func AsInt64(a Vec[uint64]) Vec[int64] {
	result := Vec[int64]{data: make([]int64, len(a.data))}
	for i, x := range a.data {
		result.data[i] = int64(x)
	}
	return result
}

// AsInt32 reinterprets uint32 lanes as int32, preserving bits.
func AsInt32(a Vec[uint32]) Vec[int32] {
	result := Vec[int32]{data: make([]int32, len(a.data))}
	for i, x := range a.data {
		result.data[i] = int32(x)
	}
	return result
}

// AsUint32FromInt reinterprets int32 lanes as uint32, preserving bits.
func AsUint32FromInt(a Vec[int32]) Vec[uint32] {
	result := Vec[uint32]{data: make([]uint32, len(a.data))}
	for i, x := range a.data {
		result.data[i] = uint32(x)
	}
	return result
}

// AsUint64FromInt reinterprets int64 lanes as uint64, preserving bits.
func AsUint64FromInt(a Vec[int64]) Vec[uint64] {
	result := Vec[uint64]{data: make([]uint64, len(a.data))}
	for i, x := range a.data {
		result.data[i] = uint64(x)
	}
	return result
}

// And returns a & b element-wise.
func And[T Ints](a, b Vec[T]) Vec[T] {
	n := lanesOf(a, b)
	result := Vec[T]{data: make([]T, n)}
	for i := 0; i < n; i++ {
		result.data[i] = a.data[i] & b.data[i]
	}
	return result
}

// Or returns a | b element-wise.
func Or[T Ints](a, b Vec[T]) Vec[T] {
	n := lanesOf(a, b)
	result := Vec[T]{data: make([]T, n)}
	for i := 0; i < n; i++ {
		result.data[i] = a.data[i] | b.data[i]
	}
	return result
}

// Xor returns a ^ b element-wise.
func Xor[T Ints](a, b Vec[T]) Vec[T] {
	n := lanesOf(a, b)
	result := Vec[T]{data: make([]T, n)}
	for i := 0; i < n; i++ {
		result.data[i] = a.data[i] ^ b.data[i]
	}
	return result
}

// AndNot returns a &^ b element-wise (clear in a the bits set in b).
func AndNot[T Ints](a, b Vec[T]) Vec[T] {
	n := lanesOf(a, b)
	result := Vec[T]{data: make([]T, n)}
	for i := 0; i < n; i++ {
		result.data[i] = a.data[i] &^ b.data[i]
	}
	return result
}

// Not returns ^a element-wise.
func Not[T Ints](a Vec[T]) Vec[T] {
	result := Vec[T]{data: make([]T, len(a.data))}
	for i, x := range a.data {
		result.data[i] = ^x
	}
	return result
}

// ShiftLeft shifts each lane left by k bits.
func ShiftLeft[T Ints](a Vec[T], k uint) Vec[T] {
	result := Vec[T]{data: make([]T, len(a.data))}
	for i, x := range a.data {
		result.data[i] = x << k
	}
	return result
}

// ShiftRight shifts each lane right by k bits. The shift is logical for
// unsigned lane types and arithmetic for signed lane types, matching Go's
// >> operator.
func ShiftRight[T Ints](a Vec[T], k uint) Vec[T] {
	result := Vec[T]{data: make([]T, len(a.data))}
	for i, x := range a.data {
		result.data[i] = x >> k
	}
	return result
}
