package vmath

import "github.com/ajroetker/go-vmath/lanes"

// apply1 walks src in vector-width chunks, applying fn and storing into
// dst. The final partial chunk is handled by Load/Store clamping.
func apply1[T lanes.Floats](dst, src []T, fn func(lanes.Vec[T]) lanes.Vec[T]) {
	if len(dst) < len(src) {
		panic("vmath: dst shorter than src")
	}
	step := lanes.MaxLanes[T]()
	for i := 0; i < len(src); i += step {
		fn(lanes.Load(src[i:])).Store(dst[i:])
	}
}

// apply2 is apply1 for two-argument functions; a and b must have equal
// length.
func apply2[T lanes.Floats](dst, a, b []T, fn func(x, y lanes.Vec[T]) lanes.Vec[T]) {
	if len(a) != len(b) {
		panic("vmath: input length mismatch")
	}
	if len(dst) < len(a) {
		panic("vmath: dst shorter than src")
	}
	step := lanes.MaxLanes[T]()
	for i := 0; i < len(a); i += step {
		fn(lanes.Load(a[i:]), lanes.Load(b[i:])).Store(dst[i:])
	}
}
