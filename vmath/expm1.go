package vmath

import (
	"math"

	"github.com/ajroetker/go-vmath/lanes"
)

// (expm1(f) - f)/f^2 polynomials for f in [-ln2/2, ln2/2].
var expm1Poly32 = []float32{
	0x1.fffffep-2, 0x1.5554aep-3, 0x1.555736p-5, 0x1.12287cp-7, 0x1.6b55a2p-10,
}

var expm1Poly64 = []float64{
	0x1p-1, 0x1.5555555555559p-3, 0x1.555555555554bp-5,
	0x1.111111110f663p-7, 0x1.6c16c16c1b5f3p-10,
	0x1.a01a01affa35dp-13, 0x1.a01a018b4ecbbp-16,
	0x1.71ddf82db5bb4p-19, 0x1.27e517fc0d54bp-22,
	0x1.af5eedae67435p-26, 0x1.1f143d060a28ap-29,
}

// expm1Core32 evaluates expm1 without special-case handling: callers
// guarantee the input is within the fast path's range.
func expm1Core32(x lanes.Vec[float32]) lanes.Vec[float32] {
	j, _ := roundShift32(x, invLn2_32)
	i := lanes.ConvertToInt32(j)
	f := codyWaite2(x, j, -ln2Hi32, -ln2Lo32)

	p := horner(f, expm1Poly32)
	p = lanes.FMA(lanes.Mul(f, f), p, f)

	// t = 2^i by exponent assembly.
	t := lanes.AsFloat32(lanes.Add(
		lanes.AsUint32FromInt(lanes.ShiftLeft(i, 23)), lanes.Set(oneBits32)))
	// expm1(x) = p*t + (t-1).
	return lanes.FMA(p, t, lanes.Sub(t, lanes.Set[float32](1)))
}

func expm1Core64(x lanes.Vec[float64]) lanes.Vec[float64] {
	j, _ := roundShift64(x, invLn2_64)
	i := lanes.ConvertToInt64(j)
	f := codyWaite2(x, j, -ln2Hi64, -ln2Lo64)

	f2 := lanes.Mul(f, f)
	f4 := lanes.Mul(f2, f2)
	f8 := lanes.Mul(f4, f4)
	p := lanes.FMA(f2, estrin10(f, f2, f4, f8, expm1Poly64), f)

	t := lanes.AsFloat64(lanes.Add(
		lanes.AsUint64FromInt(lanes.ShiftLeft(i, 52)), lanes.Set(oneBits64)))
	return lanes.FMA(p, t, lanes.Sub(t, lanes.Set[float64](1)))
}

// Expm1_32 returns e^x - 1 for each float32 lane.
// Maximum observed error of the fast path is 1.6 ULP.
func Expm1_32(x lanes.Vec[float32]) lanes.Vec[float32] {
	ix := lanes.AsUint32(x)
	ax := lanes.And(ix, lanes.Set(absMask32))

	// Large inputs of either sign, NaN, Inf and -0.
	special := lanes.MaskOr(
		lanes.GreaterEq(ax, lanes.Set[uint32](0x42af5e20)),
		lanes.Equal(ix, lanes.Set(signMask32)))
	if StrictExceptions() {
		special = lanes.MaskOr(special, lanes.Less(ax, lanes.Set[uint32](0x34000000)))
		sf := lanes.RetagMask[float32](special)
		y := expm1Core32(neutralize(x, sf, 1))
		return fixSpecial(x, y, sf, expm1f)
	}
	sf := lanes.RetagMask[float32](special)
	return fixSpecial(x, expm1Core32(x), sf, expm1f)
}

// Expm1_64 returns e^x - 1 for each float64 lane.
// Maximum observed error of the fast path is 2.3 ULP.
func Expm1_64(x lanes.Vec[float64]) lanes.Vec[float64] {
	ix := lanes.AsUint64(x)
	ax := lanes.And(ix, lanes.Set(absMask64))

	special := lanes.MaskOr(
		lanes.GreaterEq(ax, lanes.Set[uint64](0x40862b7d369a5aa9)),
		lanes.Equal(ix, lanes.Set(signMask64)))
	if StrictExceptions() {
		special = lanes.MaskOr(special, lanes.Less(ax, lanes.Set[uint64](0x3cc0000000000000)))
		sf := lanes.RetagMask[float64](special)
		y := expm1Core64(neutralize(x, sf, 1))
		return fixSpecial(x, y, sf, math.Expm1)
	}
	sf := lanes.RetagMask[float64](special)
	return fixSpecial(x, expm1Core64(x), sf, math.Expm1)
}

// Expm1 returns e^x - 1 for each lane, accurate for small x where
// computing exp(x) and subtracting would cancel.
func Expm1[T lanes.Floats](x lanes.Vec[T]) lanes.Vec[T] {
	switch v := any(x).(type) {
	case lanes.Vec[float32]:
		return any(Expm1_32(v)).(lanes.Vec[T])
	case lanes.Vec[float64]:
		return any(Expm1_64(v)).(lanes.Vec[T])
	}
	panic("vmath: unsupported lane type")
}

// Expm1Slice computes e^x - 1 for every element of src into dst.
func Expm1Slice[T lanes.Floats](dst, src []T) {
	apply1(dst, src, Expm1[T])
}
