package vmath

import (
	"math"

	"github.com/ajroetker/go-vmath/lanes"
)

// The hyperbolics ride on the exp kernels. With t = expm1(|x|),
//
//	sinh(x) = (t + t/(t+1)) * (sign(x) * 0.5)
//
// which stays accurate near zero where exp(|x|) - exp(-|x|) would
// cancel. cosh uses exp directly since there is no cancellation.

// Sinh32 returns sinh(x) for each float32 lane. Maximum observed error
// of the fast path is 3 ULP.
func Sinh32(x lanes.Vec[float32]) lanes.Vec[float32] {
	ix := lanes.AsUint32(x)
	sign := lanes.And(ix, lanes.Set(signMask32))
	au := lanes.And(ix, lanes.Set(absMask32))

	// Same bound as the expm1 fast path; catches Inf and NaN too.
	var special lanes.Mask[uint32]
	if StrictExceptions() {
		special = lanes.GreaterEq(
			lanes.Sub(au, lanes.Set[uint32](0x39800000)),
			lanes.Set[uint32](0x42af5e20-0x39800000))
	} else {
		special = lanes.GreaterEq(au, lanes.Set[uint32](0x42af5e20))
	}
	sf := lanes.RetagMask[float32](special)

	ax := lanes.AsFloat32(au)
	if StrictExceptions() {
		ax = neutralize(ax, sf, 1)
	}
	halfsign := lanes.AsFloat32(lanes.Or(sign, lanes.Set[uint32](0x3f000000)))

	t := expm1Core32(ax)
	s := lanes.Add(t, lanes.Div(t, lanes.Add(t, lanes.Set[float32](1))))
	y := lanes.Mul(s, halfsign)
	return fixSpecial(x, y, sf, sinhf)
}

// Sinh64 returns sinh(x) for each float64 lane. Maximum observed error
// of the fast path is 3 ULP.
func Sinh64(x lanes.Vec[float64]) lanes.Vec[float64] {
	ix := lanes.AsUint64(x)
	sign := lanes.And(ix, lanes.Set(signMask64))
	au := lanes.And(ix, lanes.Set(absMask64))

	var special lanes.Mask[uint64]
	if StrictExceptions() {
		special = lanes.GreaterEq(
			lanes.Sub(au, lanes.Set[uint64](0x3e50000000000000)),
			lanes.Set[uint64](0x40862b7d369a5aa9-0x3e50000000000000))
	} else {
		special = lanes.GreaterEq(au, lanes.Set[uint64](0x40862b7d369a5aa9))
	}
	sf := lanes.RetagMask[float64](special)

	ax := lanes.AsFloat64(au)
	if StrictExceptions() {
		ax = neutralize(ax, sf, 1)
	}
	halfsign := lanes.AsFloat64(lanes.Or(sign, lanes.Set[uint64](0x3fe0000000000000)))

	t := expm1Core64(ax)
	s := lanes.Add(t, lanes.Div(t, lanes.Add(t, lanes.Set[float64](1))))
	y := lanes.Mul(s, halfsign)
	return fixSpecial(x, y, sf, math.Sinh)
}

// Cosh32 returns cosh(x) for each float32 lane. Arguments beyond the
// exp fast path (|x| >= 0x1.5d5e2ap+6, where cosh may still be finite)
// take the scalar fallback. Maximum observed error of the fast path is
// 2.5 ULP.
func Cosh32(x lanes.Vec[float32]) lanes.Vec[float32] {
	au := lanes.And(lanes.AsUint32(x), lanes.Set(absMask32))
	special := lanes.RetagMask[float32](
		lanes.GreaterEq(au, lanes.Set(math.Float32bits(0x1.5d5e2ap+6))))

	ax := lanes.AsFloat32(au)
	if StrictExceptions() {
		ax = neutralize(ax, special, 1)
	}
	t, _ := expCore32(ax)
	half := lanes.Set[float32](0.5)
	y := lanes.FMA(half, t, lanes.Div(half, t))
	return fixSpecial(x, y, special, coshf)
}

// Cosh64 returns cosh(x) for each float64 lane. Maximum observed error
// of the fast path is 2.5 ULP.
func Cosh64(x lanes.Vec[float64]) lanes.Vec[float64] {
	au := lanes.And(lanes.AsUint64(x), lanes.Set(absMask64))
	special := lanes.RetagMask[float64](
		lanes.GreaterEq(au, lanes.Set[uint64](0x4086000000000000))) // 704.0

	ax := lanes.AsFloat64(au)
	if StrictExceptions() {
		ax = neutralize(ax, special, 1)
	}
	t := expCore64(ax)
	half := lanes.Set[float64](0.5)
	y := lanes.FMA(half, t, lanes.Div(half, t))
	return fixSpecial(x, y, special, math.Cosh)
}

// Asinh32 returns asinh(x) for each float32 lane, via
// log1p(|x| + x^2/(1 + sqrt(x^2+1))) with the sign folded back in.
// Maximum observed error of the fast path is 3 ULP.
func Asinh32(x lanes.Vec[float32]) lanes.Vec[float32] {
	ix := lanes.AsUint32(x)
	sign := lanes.And(ix, lanes.Set(signMask32))
	au := lanes.And(ix, lanes.Set(absMask32))

	// x^2 must not overflow: cap at 2^63.
	var special lanes.Mask[uint32]
	if StrictExceptions() {
		special = lanes.GreaterEq(
			lanes.Sub(au, lanes.Set[uint32](0x39800000)),
			lanes.Set[uint32](0x5f000000-0x39800000))
	} else {
		special = lanes.GreaterEq(au, lanes.Set[uint32](0x5f000000))
	}
	sf := lanes.RetagMask[float32](special)

	ax := lanes.AsFloat32(au)
	if StrictExceptions() {
		ax = neutralize(ax, sf, 0)
	}
	d := lanes.Add(lanes.Set[float32](1), lanes.Sqrt(lanes.FMA(ax, ax, lanes.Set[float32](1))))
	arg := lanes.FMA(lanes.Div(ax, d), ax, ax)
	y := xorSign32(Log1p_32(arg), sign)
	return fixSpecial(x, y, sf, asinhf)
}

// Asinh64 returns asinh(x) for each float64 lane. Maximum observed
// error of the fast path is 3 ULP.
func Asinh64(x lanes.Vec[float64]) lanes.Vec[float64] {
	ix := lanes.AsUint64(x)
	sign := lanes.And(ix, lanes.Set(signMask64))
	au := lanes.And(ix, lanes.Set(absMask64))

	var special lanes.Mask[uint64]
	if StrictExceptions() {
		special = lanes.GreaterEq(
			lanes.Sub(au, lanes.Set[uint64](0x3e50000000000000)),
			lanes.Set[uint64](0x5fe0000000000000-0x3e50000000000000))
	} else {
		special = lanes.GreaterEq(au, lanes.Set[uint64](0x5fe0000000000000))
	}
	sf := lanes.RetagMask[float64](special)

	ax := lanes.AsFloat64(au)
	if StrictExceptions() {
		ax = neutralize(ax, sf, 0)
	}
	d := lanes.Add(lanes.Set[float64](1), lanes.Sqrt(lanes.FMA(ax, ax, lanes.Set[float64](1))))
	arg := lanes.FMA(lanes.Div(ax, d), ax, ax)
	y := xorSign64(Log1p_64(arg), sign)
	return fixSpecial(x, y, sf, math.Asinh)
}

// Sinh returns sinh(x) for each lane.
func Sinh[T lanes.Floats](x lanes.Vec[T]) lanes.Vec[T] {
	switch v := any(x).(type) {
	case lanes.Vec[float32]:
		return any(Sinh32(v)).(lanes.Vec[T])
	case lanes.Vec[float64]:
		return any(Sinh64(v)).(lanes.Vec[T])
	}
	panic("vmath: unsupported lane type")
}

// Cosh returns cosh(x) for each lane.
func Cosh[T lanes.Floats](x lanes.Vec[T]) lanes.Vec[T] {
	switch v := any(x).(type) {
	case lanes.Vec[float32]:
		return any(Cosh32(v)).(lanes.Vec[T])
	case lanes.Vec[float64]:
		return any(Cosh64(v)).(lanes.Vec[T])
	}
	panic("vmath: unsupported lane type")
}

// Asinh returns asinh(x) for each lane.
func Asinh[T lanes.Floats](x lanes.Vec[T]) lanes.Vec[T] {
	switch v := any(x).(type) {
	case lanes.Vec[float32]:
		return any(Asinh32(v)).(lanes.Vec[T])
	case lanes.Vec[float64]:
		return any(Asinh64(v)).(lanes.Vec[T])
	}
	panic("vmath: unsupported lane type")
}

// SinhSlice computes sinh(x) for every element of src into dst.
func SinhSlice[T lanes.Floats](dst, src []T) {
	apply1(dst, src, Sinh[T])
}

// CoshSlice computes cosh(x) for every element of src into dst.
func CoshSlice[T lanes.Floats](dst, src []T) {
	apply1(dst, src, Cosh[T])
}

// AsinhSlice computes asinh(x) for every element of src into dst.
func AsinhSlice[T lanes.Floats](dst, src []T) {
	apply1(dst, src, Asinh[T])
}
