package vmath

import (
	"math"

	"github.com/ajroetker/go-vmath/lanes"
)

// Arctangent on [0, 1] with one range split at tan(pi/8): above it the
// identity atan(z) = pi/4 + atan((z-1)/(z+1)) brings the argument into
// [-(sqrt(2)-1), 0], where the odd series converges quickly.
const (
	tanPi8_32  float32 = 0x1.a8279ap-2 // sqrt(2) - 1
	tanPi8_64  float64 = 0x1.a827999fcef32p-2
	piOver4_32 float32 = 0x1.921fb6p-1
	piOver4_64 float64 = 0x1.921fb54442d18p-1
)

func atanEval32(az lanes.Vec[float32]) lanes.Vec[float32] {
	big := lanes.Greater(az, lanes.Set(tanPi8_32))
	num := lanes.Sub(az, lanes.Set[float32](1))
	den := lanes.Add(az, lanes.Set[float32](1))
	w := lanes.Merge(lanes.Div(num, den), az, big)

	w2 := lanes.Mul(w, w)
	p := lanes.FMA(lanes.Mul(w, w2), horner(w2, atanPoly32[:]), w)
	return lanes.Add(p, lanes.Merge(lanes.Set(piOver4_32), lanes.Zero[float32](), big))
}

func atanEval64(az lanes.Vec[float64]) lanes.Vec[float64] {
	big := lanes.Greater(az, lanes.Set(tanPi8_64))
	num := lanes.Sub(az, lanes.Set[float64](1))
	den := lanes.Add(az, lanes.Set[float64](1))
	w := lanes.Merge(lanes.Div(num, den), az, big)

	w2 := lanes.Mul(w, w)
	p := lanes.FMA(lanes.Mul(w, w2), horner(w2, atanPoly64[:]), w)
	return lanes.Add(p, lanes.Merge(lanes.Set(piOver4_64), lanes.Zero[float64](), big))
}

// Atan32 returns atan(x) for each float32 lane. Total: infinities map to
// +-pi/2 and NaN propagates, so no scalar fallback is needed. Maximum
// observed error is 2.5 ULP.
func Atan32(x lanes.Vec[float32]) lanes.Vec[float32] {
	ax := lanes.Abs(x)
	inv := lanes.Greater(ax, lanes.Set[float32](1))
	z := lanes.Merge(lanes.Div(lanes.Set[float32](1), ax), ax, inv)
	base := atanEval32(z)
	y := lanes.Merge(lanes.Sub(lanes.Set(piOver2_32), base), base, inv)
	return copySign32(y, x)
}

// Atan64 returns atan(x) for each float64 lane. Maximum observed error
// is 2.5 ULP.
func Atan64(x lanes.Vec[float64]) lanes.Vec[float64] {
	ax := lanes.Abs(x)
	inv := lanes.Greater(ax, lanes.Set[float64](1))
	z := lanes.Merge(lanes.Div(lanes.Set[float64](1), ax), ax, inv)
	base := atanEval64(z)
	y := lanes.Merge(lanes.Sub(lanes.Set(piOver2_64), base), base, inv)
	return copySign64(y, x)
}

// 2u - 1 >= 2*asuint(Inf) - 1 catches zero, Inf and NaN bit patterns of
// either sign in one unsigned compare (the doubling discards the sign
// bit, the -1 wraps zero to the top of the range).
func zeroInfNaN32(u lanes.Vec[uint32]) lanes.Mask[uint32] {
	t := lanes.Sub(lanes.Add(u, u), lanes.Set[uint32](1))
	return lanes.GreaterEq(t, lanes.Set[uint32](2*inf32-1))
}

func zeroInfNaN64(u lanes.Vec[uint64]) lanes.Mask[uint64] {
	t := lanes.Sub(lanes.Add(u, u), lanes.Set[uint64](1))
	return lanes.GreaterEq(t, lanes.Set[uint64](2*inf64-1))
}

// Atan2_32 returns atan(y/x) for each float32 lane pair, using the signs
// of both arguments to pick the quadrant. Zero, Inf and NaN lanes take
// the scalar fallback so every IEEE special case matches math.Atan2.
// Maximum observed error of the fast path is 3 ULP.
func Atan2_32(y, x lanes.Vec[float32]) lanes.Vec[float32] {
	iy, ix := lanes.AsUint32(y), lanes.AsUint32(x)
	special := lanes.RetagMask[float32](lanes.MaskOr(zeroInfNaN32(ix), zeroInfNaN32(iy)))

	ay, ax := lanes.Abs(y), lanes.Abs(x)
	aygtax := lanes.Greater(ay, ax)
	n := lanes.Merge(lanes.Neg(ax), ay, aygtax)
	d := lanes.Merge(ay, ax, aygtax)
	z := lanes.Div(n, d)

	xNeg := lanes.RetagMask[float32](lanes.NotEqual(
		lanes.And(ix, lanes.Set(signMask32)), lanes.Zero[uint32]()))
	shift := lanes.Merge(lanes.Set[float32](-2), lanes.Zero[float32](), xNeg)
	shift = lanes.Add(shift, lanes.Merge(lanes.Set[float32](1), lanes.Zero[float32](), aygtax))

	p := copySign32(atanEval32(lanes.Abs(z)), z)
	ret := lanes.FMA(shift, lanes.Set(piOver2_32), p)

	signXY := lanes.And(lanes.Xor(ix, iy), lanes.Set(signMask32))
	ret = xorSign32(ret, signXY)
	return fixSpecial2(y, x, ret, special, atan2f)
}

// Atan2_64 returns atan(y/x) for each float64 lane pair. Maximum
// observed error of the fast path is 3 ULP.
func Atan2_64(y, x lanes.Vec[float64]) lanes.Vec[float64] {
	iy, ix := lanes.AsUint64(y), lanes.AsUint64(x)
	special := lanes.RetagMask[float64](lanes.MaskOr(zeroInfNaN64(ix), zeroInfNaN64(iy)))

	ay, ax := lanes.Abs(y), lanes.Abs(x)
	aygtax := lanes.Greater(ay, ax)
	n := lanes.Merge(lanes.Neg(ax), ay, aygtax)
	d := lanes.Merge(ay, ax, aygtax)
	z := lanes.Div(n, d)

	xNeg := lanes.RetagMask[float64](lanes.NotEqual(
		lanes.And(ix, lanes.Set(signMask64)), lanes.Zero[uint64]()))
	shift := lanes.Merge(lanes.Set[float64](-2), lanes.Zero[float64](), xNeg)
	shift = lanes.Add(shift, lanes.Merge(lanes.Set[float64](1), lanes.Zero[float64](), aygtax))

	p := copySign64(atanEval64(lanes.Abs(z)), z)
	ret := lanes.FMA(shift, lanes.Set(piOver2_64), p)

	signXY := lanes.And(lanes.Xor(ix, iy), lanes.Set(signMask64))
	ret = xorSign64(ret, signXY)
	return fixSpecial2(y, x, ret, special, math.Atan2)
}

// Atan returns atan(x) for each lane.
func Atan[T lanes.Floats](x lanes.Vec[T]) lanes.Vec[T] {
	switch v := any(x).(type) {
	case lanes.Vec[float32]:
		return any(Atan32(v)).(lanes.Vec[T])
	case lanes.Vec[float64]:
		return any(Atan64(v)).(lanes.Vec[T])
	}
	panic("vmath: unsupported lane type")
}

// Atan2 returns atan(y/x) for each lane pair, quadrant-correct.
func Atan2[T lanes.Floats](y, x lanes.Vec[T]) lanes.Vec[T] {
	switch v := any(y).(type) {
	case lanes.Vec[float32]:
		return any(Atan2_32(v, any(x).(lanes.Vec[float32]))).(lanes.Vec[T])
	case lanes.Vec[float64]:
		return any(Atan2_64(v, any(x).(lanes.Vec[float64]))).(lanes.Vec[T])
	}
	panic("vmath: unsupported lane type")
}

// AtanSlice computes atan(x) for every element of src into dst.
func AtanSlice[T lanes.Floats](dst, src []T) {
	apply1(dst, src, Atan[T])
}

// Atan2Slice computes atan(y/x) for every element pair into dst.
func Atan2Slice[T lanes.Floats](dst, y, x []T) {
	apply2(dst, y, x, Atan2[T])
}
