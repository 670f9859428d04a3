package vmath

import (
	"math"

	"github.com/ajroetker/go-vmath/lanes"
)

// Cube root by exponent surgery: |x| = m * 2^e with m in [1, 2), and
// e = 3q + r with r in {-1, 0, 1}, so
//
//	cbrt(|x|) = cbrt(m) * cbrt(2^r) * 2^q.
//
// cbrt(m) starts from a linear seed and converges under Newton's
// y <- (2y + m/y^2)/3; q is exact so the 2^q factor is assembled
// directly in the exponent field. Zero, subnormal, Inf and NaN lanes
// take the scalar fallback.

// Cbrt32 returns cbrt(x) for each float32 lane. Maximum observed error
// is 1.5 ULP.
func Cbrt32(x lanes.Vec[float32]) lanes.Vec[float32] {
	ix := lanes.AsUint32(x)
	sign := lanes.And(ix, lanes.Set(signMask32))
	au := lanes.And(ix, lanes.Set(absMask32))
	special := lanes.RetagMask[float32](lanes.GreaterEq(
		lanes.Sub(au, lanes.Set(minNormal32)),
		lanes.Set(inf32-minNormal32)))

	m := lanes.AsFloat32(lanes.Or(
		lanes.And(au, lanes.Set[uint32](0x007fffff)), lanes.Set(oneBits32)))
	ei := lanes.Sub(lanes.AsInt32(lanes.ShiftRight(au, 23)), lanes.Set[int32](127))
	ef := lanes.FromInt32[float32](ei)

	q, _ := roundShift32(ef, 1.0/3)
	r := lanes.FMA(q, lanes.Set[float32](-3), ef)
	idx := lanes.Add(lanes.ConvertToInt32(r), lanes.Set[int32](1))

	third := lanes.Set[float32](1.0 / 3)
	y := lanes.FMA(lanes.Sub(m, lanes.Set[float32](1)), third, lanes.Set[float32](1))
	for i := 0; i < 3; i++ {
		y2 := lanes.Mul(y, y)
		y = lanes.Mul(lanes.FMA(lanes.Set[float32](2), y, lanes.Div(m, y2)), third)
	}

	scale := lanes.AsFloat32(lanes.ShiftLeft(
		lanes.AsUint32FromInt(lanes.Add(lanes.ConvertToInt32(q), lanes.Set[int32](127))), 23))
	out := lanes.Mul(lanes.Mul(y, lanes.Gather(cbrtTab32[:], idx)), scale)
	out = lanes.AsFloat32(lanes.Or(lanes.AsUint32(out), sign))
	return fixSpecial(x, out, special, cbrtf)
}

// Cbrt64 returns cbrt(x) for each float64 lane. Maximum observed error
// is 1.5 ULP.
func Cbrt64(x lanes.Vec[float64]) lanes.Vec[float64] {
	ix := lanes.AsUint64(x)
	sign := lanes.And(ix, lanes.Set(signMask64))
	au := lanes.And(ix, lanes.Set(absMask64))
	special := lanes.RetagMask[float64](lanes.GreaterEq(
		lanes.Sub(au, lanes.Set(minNormal64)),
		lanes.Set(inf64-minNormal64)))

	m := lanes.AsFloat64(lanes.Or(
		lanes.And(au, lanes.Set[uint64](0x000fffffffffffff)), lanes.Set(oneBits64)))
	ei := lanes.Sub(lanes.AsInt64(lanes.ShiftRight(au, 52)), lanes.Set[int64](1023))
	ef := lanes.FromInt64[float64](ei)

	q, _ := roundShift64(ef, 1.0/3)
	r := lanes.FMA(q, lanes.Set[float64](-3), ef)
	idx := lanes.Add(lanes.ConvertToInt64(r), lanes.Set[int64](1))

	third := lanes.Set[float64](1.0 / 3)
	y := lanes.FMA(lanes.Sub(m, lanes.Set[float64](1)), third, lanes.Set[float64](1))
	for i := 0; i < 4; i++ {
		y2 := lanes.Mul(y, y)
		y = lanes.Mul(lanes.FMA(lanes.Set[float64](2), y, lanes.Div(m, y2)), third)
	}

	scale := lanes.AsFloat64(lanes.ShiftLeft(
		lanes.AsUint64FromInt(lanes.Add(lanes.ConvertToInt64(q), lanes.Set[int64](1023))), 52))
	out := lanes.Mul(lanes.Mul(y, lanes.Gather(cbrtTab64[:], idx)), scale)
	out = lanes.AsFloat64(lanes.Or(lanes.AsUint64(out), sign))
	return fixSpecial(x, out, special, math.Cbrt)
}

// Cbrt returns cbrt(x) for each lane.
func Cbrt[T lanes.Floats](x lanes.Vec[T]) lanes.Vec[T] {
	switch v := any(x).(type) {
	case lanes.Vec[float32]:
		return any(Cbrt32(v)).(lanes.Vec[T])
	case lanes.Vec[float64]:
		return any(Cbrt64(v)).(lanes.Vec[T])
	}
	panic("vmath: unsupported lane type")
}

// CbrtSlice computes cbrt(x) for every element of src into dst.
func CbrtSlice[T lanes.Floats](dst, src []T) {
	apply1(dst, src, Cbrt[T])
}
