package vmath

import (
	"math"

	"github.com/ajroetker/go-vmath/lanes"
)

// Tangent via the shared pi/2 reduction and the sin/cos polynomial
// pair: with x = n*pi/2 + r and r in [-pi/4, pi/4],
//
//	tan(x) = sin(r)/cos(r)   for even n,
//	tan(x) = -cos(r)/sin(r)  for odd n (reciprocity around pi/2).

// Tan32 returns tan(x) for each float32 lane. Inputs beyond 2^15 in
// magnitude fall back to the scalar reference. Maximum observed error
// of the fast path is 3.5 ULP.
func Tan32(x lanes.Vec[float32]) lanes.Vec[float32] {
	special := lanes.Greater(lanes.Abs(x), lanes.Set[float32](0x1p15))

	sinr, cosr, q := sincosCore32(x)
	odd := lanes.RetagMask[float32](lanes.NotEqual(
		lanes.And(q, lanes.Set[int32](1)), lanes.Zero[int32]()))

	even := lanes.Div(sinr, cosr)
	recip := lanes.Div(lanes.Neg(cosr), sinr)
	y := lanes.Merge(recip, even, odd)

	// The reduction loses the sign of zero; restore it.
	y = lanes.Merge(x, y, lanes.Equal(x, lanes.Zero[float32]()))
	return fixSpecial(x, y, special, tanf)
}

// Tan64 returns tan(x) for each float64 lane. Inputs beyond 2^23 in
// magnitude fall back to the scalar reference. Maximum observed error
// of the fast path is 3.5 ULP.
func Tan64(x lanes.Vec[float64]) lanes.Vec[float64] {
	ax := lanes.And(lanes.AsUint64(x), lanes.Set(absMask64))
	var special lanes.Mask[float64]
	if StrictExceptions() {
		// Also keep tiny inputs (risk of spurious underflow) on the
		// scalar path.
		special = lanes.RetagMask[float64](lanes.GreaterEq(
			lanes.Sub(ax, lanes.Set[uint64](0x3e50000000000000)),
			lanes.Set[uint64](0x4160000000000000-0x3e50000000000000)))
	} else {
		special = lanes.RetagMask[float64](lanes.Greater(
			ax, lanes.Set[uint64](0x4160000000000000)))
	}

	xs := x
	if StrictExceptions() {
		xs = neutralize(x, special, 1)
	}
	sinr, cosr, q := sincosCore64(xs)
	odd := lanes.RetagMask[float64](lanes.NotEqual(
		lanes.And(q, lanes.Set[int64](1)), lanes.Zero[int64]()))

	even := lanes.Div(sinr, cosr)
	recip := lanes.Div(lanes.Neg(cosr), sinr)
	y := lanes.Merge(recip, even, odd)

	y = lanes.Merge(xs, y, lanes.Equal(xs, lanes.Zero[float64]()))
	return fixSpecial(x, y, special, math.Tan)
}

// Tan returns tan(x) for each lane.
func Tan[T lanes.Floats](x lanes.Vec[T]) lanes.Vec[T] {
	switch v := any(x).(type) {
	case lanes.Vec[float32]:
		return any(Tan32(v)).(lanes.Vec[T])
	case lanes.Vec[float64]:
		return any(Tan64(v)).(lanes.Vec[T])
	}
	panic("vmath: unsupported lane type")
}

// TanSlice computes tan(x) for every element of src into dst.
func TanSlice[T lanes.Floats](dst, src []T) {
	apply1(dst, src, Tan[T])
}
