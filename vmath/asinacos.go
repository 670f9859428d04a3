package vmath

import (
	"math"

	"github.com/ajroetker/go-vmath/lanes"
)

// Inverse sine and cosine share one odd polynomial: for |x| <= 0.5,
//
//	Q(|x|) = z + z*z2*P(z2), z = |x|, z2 = x^2,
//
// and for |x| in (0.5, 1] the change of variable z2 = (1-|x|)/2,
// z = sqrt(z2) gives asin(|x|) = pi/2 - 2*Q and the acos identities.

func asinQ32(x, ax lanes.Vec[float32]) (p lanes.Vec[float32], aLeHalf lanes.Mask[float32]) {
	aLeHalf = lanes.LessEq(ax, lanes.Set[float32](0.5))
	z2Big := lanes.FMA(ax, lanes.Set[float32](-0.5), lanes.Set[float32](0.5))
	z2 := lanes.Merge(lanes.Mul(x, x), z2Big, aLeHalf)
	z := lanes.Merge(ax, lanes.Sqrt(z2), aLeHalf)

	p = horner(z2, asinPoly32[:])
	p = lanes.FMA(lanes.Mul(z, z2), p, z)
	return p, aLeHalf
}

func asinQ64(x, ax lanes.Vec[float64]) (p lanes.Vec[float64], aLeHalf lanes.Mask[float64]) {
	aLeHalf = lanes.LessEq(ax, lanes.Set[float64](0.5))
	z2Big := lanes.FMA(ax, lanes.Set[float64](-0.5), lanes.Set[float64](0.5))
	z2 := lanes.Merge(lanes.Mul(x, x), z2Big, aLeHalf)
	z := lanes.Merge(ax, lanes.Sqrt(z2), aLeHalf)

	p = horner(z2, asinPoly64[:])
	p = lanes.FMA(lanes.Mul(z, z2), p, z)
	return p, aLeHalf
}

// Asin32 returns asin(x) for each float32 lane; |x| > 1 yields NaN.
// Maximum observed error of the fast path is 2.5 ULP.
func Asin32(x lanes.Vec[float32]) lanes.Vec[float32] {
	ax := lanes.Abs(x)
	special := lanes.MaskOr(lanes.Greater(ax, lanes.Set[float32](1)), lanes.IsNaN(x))

	p, aLeHalf := asinQ32(x, ax)
	big := lanes.FMA(lanes.Set[float32](-2), p, lanes.Set(piOver2_32))
	y := copySign32(lanes.Merge(p, big, aLeHalf), x)
	return fixSpecial(x, y, special, asinf)
}

// Asin64 returns asin(x) for each float64 lane; |x| > 1 yields NaN.
// Maximum observed error of the fast path is 2.5 ULP.
func Asin64(x lanes.Vec[float64]) lanes.Vec[float64] {
	ax := lanes.Abs(x)
	special := lanes.MaskOr(lanes.Greater(ax, lanes.Set[float64](1)), lanes.IsNaN(x))

	p, aLeHalf := asinQ64(x, ax)
	big := lanes.FMA(lanes.Set[float64](-2), p, lanes.Set(piOver2_64))
	y := copySign64(lanes.Merge(p, big, aLeHalf), x)
	return fixSpecial(x, y, special, math.Asin)
}

// Acos32 returns acos(x) for each float32 lane; |x| > 1 yields NaN.
// Maximum observed error of the fast path is 2.5 ULP.
func Acos32(x lanes.Vec[float32]) lanes.Vec[float32] {
	ax := lanes.Abs(x)
	special := lanes.MaskOr(lanes.Greater(ax, lanes.Set[float32](1)), lanes.IsNaN(x))

	p, aLeHalf := asinQ32(x, ax)
	// Transplant the sign of x onto Q.
	y := copySign32(p, x)

	neg := lanes.Less(x, lanes.Zero[float32]())
	off := lanes.Merge(lanes.Set(pi_32), lanes.Zero[float32](), neg)
	mul := lanes.Merge(lanes.Set[float32](-1), lanes.Set[float32](2), aLeHalf)
	add := lanes.Merge(lanes.Set(piOver2_32), off, aLeHalf)

	out := lanes.FMA(mul, y, add)
	return fixSpecial(x, out, special, acosf)
}

// Acos64 returns acos(x) for each float64 lane; |x| > 1 yields NaN.
// Maximum observed error of the fast path is 2.5 ULP.
func Acos64(x lanes.Vec[float64]) lanes.Vec[float64] {
	ax := lanes.Abs(x)
	special := lanes.MaskOr(lanes.Greater(ax, lanes.Set[float64](1)), lanes.IsNaN(x))

	p, aLeHalf := asinQ64(x, ax)
	y := copySign64(p, x)

	neg := lanes.Less(x, lanes.Zero[float64]())
	off := lanes.Merge(lanes.Set(pi_64), lanes.Zero[float64](), neg)
	mul := lanes.Merge(lanes.Set[float64](-1), lanes.Set[float64](2), aLeHalf)
	add := lanes.Merge(lanes.Set(piOver2_64), off, aLeHalf)

	out := lanes.FMA(mul, y, add)
	return fixSpecial(x, out, special, math.Acos)
}

// Asin returns asin(x) for each lane.
func Asin[T lanes.Floats](x lanes.Vec[T]) lanes.Vec[T] {
	switch v := any(x).(type) {
	case lanes.Vec[float32]:
		return any(Asin32(v)).(lanes.Vec[T])
	case lanes.Vec[float64]:
		return any(Asin64(v)).(lanes.Vec[T])
	}
	panic("vmath: unsupported lane type")
}

// Acos returns acos(x) for each lane.
func Acos[T lanes.Floats](x lanes.Vec[T]) lanes.Vec[T] {
	switch v := any(x).(type) {
	case lanes.Vec[float32]:
		return any(Acos32(v)).(lanes.Vec[T])
	case lanes.Vec[float64]:
		return any(Acos64(v)).(lanes.Vec[T])
	}
	panic("vmath: unsupported lane type")
}

// AsinSlice computes asin(x) for every element of src into dst.
func AsinSlice[T lanes.Floats](dst, src []T) {
	apply1(dst, src, Asin[T])
}

// AcosSlice computes acos(x) for every element of src into dst.
func AcosSlice[T lanes.Floats](dst, src []T) {
	apply1(dst, src, Acos[T])
}
