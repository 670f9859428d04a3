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

// Package lanes provides a portable SIMD-lane abstraction for the vmath
// elementary functions.
//
// A Vec[T] holds up to MaxLanes[T]() elements and every operation is
// element-wise and lane-count independent: the same code runs with 4, 8 or
// 16 lanes depending on the emulated vector width selected at startup.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-vmath/lanes"
//
//	x := lanes.Load(data)
//	y := lanes.Mul(x, x)
//	lanes.Store(y, out)
package lanes

// Floats is a constraint for floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// Ints is a constraint for the integer lane types used for bit
// manipulation of floating-point lanes.
type Ints interface {
	~int32 | ~int64 | ~uint32 | ~uint64
}

// Lanes is a constraint for all supported lane types.
type Lanes interface {
	Floats | Ints
}

// Vec is a portable vector of lanes. It wraps a slice in this emulated
// implementation; the operations are written so that a SIMD backend could
// replace the representation without changing callers.
//
// Vec instances should not be created directly; use Load, Set, or Zero.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// Primarily for testing; not for performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's lanes to dst. If dst is shorter than the
// vector, only len(dst) lanes are written.
func (v Vec[T]) Store(dst []T) {
	n := len(v.data)
	if len(dst) < n {
		n = len(dst)
	}
	copy(dst[:n], v.data[:n])
}

// Mask is the result of a comparison. Use it with Merge to select lanes.
//
// Mask instances should not be created directly; use comparison operations
// like Equal, Less, or GreaterEq instead.
type Mask[T Lanes] struct {
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AllTrue reports whether every lane of the mask is set.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return len(m.bits) > 0
}

// AnyTrue reports whether at least one lane of the mask is set.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// CountTrue returns the number of set lanes.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is set. Out-of-range lanes read as false.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}
