package vmath

import (
	"math"

	"github.com/ajroetker/go-vmath/lanes"
)

// sin(r) = r + r^3 P(r^2) and cos(r) = 1 - r^2/2 + r^4 Q(r^2) for
// r in [-pi/4, pi/4].
var sinPoly32 = []float32{
	-1.6666654611e-1, 8.3321608736e-3, -1.9515295891e-4,
}

var cosPoly32 = []float32{
	4.166664568298827e-2, -1.388731625493765e-3, 2.443315711809948e-5,
}

var sinPoly64 = []float64{
	-1.66666666666666307295e-1, 8.33333333332211858878e-3,
	-1.98412698295895385996e-4, 2.75573136213857245213e-6,
	-2.50507477628578072866e-8, 1.58962301576546568060e-10,
}

var cosPoly64 = []float64{
	4.16666666666665929218e-2, -1.38888888888730564116e-3,
	2.48015872888517179684e-5, -2.75573141792967388112e-7,
	2.08757008419747316778e-9, -1.13585365213876817300e-11,
}

// Three-term pi/2 splits for the Cody-Waite reduction r = x - n*pi/2.
const (
	negPio2_1_32 float32 = -0x1.921fb6p+0
	negPio2_2_32 float32 = 0x1.777a5cp-25
	negPio2_3_32 float32 = 0x1.ee59dap-50
	invPio2_32   float32 = 0x1.45f306p-1
	trigRange32  float32 = 0x1p17

	negPio2_1_64 float64 = -0x1.921fb50000000p+0
	negPio2_2_64 float64 = -0x1.110b460000000p-26
	negPio2_3_64 float64 = -0x1.1a62633145c07p-54
	invPio2_64   float64 = 0x1.45f306dc9c883p-1
	trigRange64  float64 = 0x1p23
)

// sincosCore32 reduces x by n = round(x*2/pi) and evaluates both the
// sin and cos polynomials of the remainder.
func sincosCore32(x lanes.Vec[float32]) (sinr, cosr lanes.Vec[float32], q lanes.Vec[int32]) {
	n, _ := roundShift32(x, invPio2_32)
	q = lanes.ConvertToInt32(n)
	r := codyWaite3(x, n, negPio2_1_32, negPio2_2_32, negPio2_3_32)

	r2 := lanes.Mul(r, r)
	sinr = lanes.FMA(lanes.Mul(r, r2), horner(r2, sinPoly32), r)
	r4 := lanes.Mul(r2, r2)
	half := lanes.FMA(r2, lanes.Set[float32](-0.5), lanes.Set[float32](1))
	cosr = lanes.FMA(r4, horner(r2, cosPoly32), half)
	return sinr, cosr, q
}

func sincosCore64(x lanes.Vec[float64]) (sinr, cosr lanes.Vec[float64], q lanes.Vec[int64]) {
	n, _ := roundShift64(x, invPio2_64)
	q = lanes.ConvertToInt64(n)
	r := codyWaite3(x, n, negPio2_1_64, negPio2_2_64, negPio2_3_64)

	r2 := lanes.Mul(r, r)
	sinr = lanes.FMA(lanes.Mul(r, r2), horner(r2, sinPoly64), r)
	r4 := lanes.Mul(r2, r2)
	half := lanes.FMA(r2, lanes.Set[float64](-0.5), lanes.Set[float64](1))
	cosr = lanes.FMA(r4, horner(r2, cosPoly64), half)
	return sinr, cosr, q
}

// Sin32 returns sin(x) for each float32 lane. Inputs beyond 2^17 in
// magnitude fall back to the scalar reference. Maximum observed error
// of the fast path is 3.5 ULP.
func Sin32(x lanes.Vec[float32]) lanes.Vec[float32] {
	ix := lanes.AsUint32(x)
	sign := lanes.And(ix, lanes.Set(signMask32))
	ax := lanes.AsFloat32(lanes.And(ix, lanes.Set(absMask32)))
	special := lanes.Greater(ax, lanes.Set(trigRange32))

	sinr, cosr, q := sincosCore32(ax)
	odd := lanes.RetagMask[float32](lanes.NotEqual(
		lanes.And(q, lanes.Set[int32](1)), lanes.Zero[int32]()))
	neg := lanes.RetagMask[float32](lanes.NotEqual(
		lanes.And(q, lanes.Set[int32](2)), lanes.Zero[int32]()))

	base := lanes.Merge(cosr, sinr, odd)
	y := lanes.Merge(lanes.Neg(base), base, neg)
	// sin is odd: fold the input sign back in bitwise, preserving -0.
	y = lanes.AsFloat32(lanes.Xor(lanes.AsUint32(y), sign))
	return fixSpecial(x, y, special, sinf)
}

// Sin64 returns sin(x) for each float64 lane. Inputs beyond 2^23 in
// magnitude fall back to the scalar reference. Maximum observed error
// of the fast path is 3.5 ULP.
func Sin64(x lanes.Vec[float64]) lanes.Vec[float64] {
	ix := lanes.AsUint64(x)
	sign := lanes.And(ix, lanes.Set(signMask64))
	ax := lanes.AsFloat64(lanes.And(ix, lanes.Set(absMask64)))
	special := lanes.Greater(ax, lanes.Set(trigRange64))

	sinr, cosr, q := sincosCore64(ax)
	odd := lanes.RetagMask[float64](lanes.NotEqual(
		lanes.And(q, lanes.Set[int64](1)), lanes.Zero[int64]()))
	neg := lanes.RetagMask[float64](lanes.NotEqual(
		lanes.And(q, lanes.Set[int64](2)), lanes.Zero[int64]()))

	base := lanes.Merge(cosr, sinr, odd)
	y := lanes.Merge(lanes.Neg(base), base, neg)
	y = lanes.AsFloat64(lanes.Xor(lanes.AsUint64(y), sign))
	return fixSpecial(x, y, special, math.Sin)
}

// Cos32 returns cos(x) for each float32 lane. Maximum observed error of
// the fast path is 3.5 ULP.
func Cos32(x lanes.Vec[float32]) lanes.Vec[float32] {
	ax := lanes.Abs(x)
	special := lanes.Greater(ax, lanes.Set(trigRange32))

	sinr, cosr, q := sincosCore32(ax)
	odd := lanes.RetagMask[float32](lanes.NotEqual(
		lanes.And(q, lanes.Set[int32](1)), lanes.Zero[int32]()))
	// cos(q*pi/2 + r) negates for q mod 4 in {1, 2}.
	neg := lanes.RetagMask[float32](lanes.NotEqual(
		lanes.And(lanes.Add(q, lanes.Set[int32](1)), lanes.Set[int32](2)), lanes.Zero[int32]()))

	val := lanes.Merge(sinr, cosr, odd)
	y := lanes.Merge(lanes.Neg(val), val, neg)
	return fixSpecial(x, y, special, cosf)
}

// Cos64 returns cos(x) for each float64 lane. Maximum observed error of
// the fast path is 3.5 ULP.
func Cos64(x lanes.Vec[float64]) lanes.Vec[float64] {
	ax := lanes.Abs(x)
	special := lanes.Greater(ax, lanes.Set(trigRange64))

	sinr, cosr, q := sincosCore64(ax)
	odd := lanes.RetagMask[float64](lanes.NotEqual(
		lanes.And(q, lanes.Set[int64](1)), lanes.Zero[int64]()))
	neg := lanes.RetagMask[float64](lanes.NotEqual(
		lanes.And(lanes.Add(q, lanes.Set[int64](1)), lanes.Set[int64](2)), lanes.Zero[int64]()))

	val := lanes.Merge(sinr, cosr, odd)
	y := lanes.Merge(lanes.Neg(val), val, neg)
	return fixSpecial(x, y, special, math.Cos)
}

// Sin returns sin(x) for each lane.
func Sin[T lanes.Floats](x lanes.Vec[T]) lanes.Vec[T] {
	switch v := any(x).(type) {
	case lanes.Vec[float32]:
		return any(Sin32(v)).(lanes.Vec[T])
	case lanes.Vec[float64]:
		return any(Sin64(v)).(lanes.Vec[T])
	}
	panic("vmath: unsupported lane type")
}

// Cos returns cos(x) for each lane.
func Cos[T lanes.Floats](x lanes.Vec[T]) lanes.Vec[T] {
	switch v := any(x).(type) {
	case lanes.Vec[float32]:
		return any(Cos32(v)).(lanes.Vec[T])
	case lanes.Vec[float64]:
		return any(Cos64(v)).(lanes.Vec[T])
	}
	panic("vmath: unsupported lane type")
}

// SinCos returns sin(x) and cos(x) for each lane.
func SinCos[T lanes.Floats](x lanes.Vec[T]) (sin, cos lanes.Vec[T]) {
	return Sin(x), Cos(x)
}

// SinSlice computes sin(x) for every element of src into dst.
func SinSlice[T lanes.Floats](dst, src []T) {
	apply1(dst, src, Sin[T])
}

// CosSlice computes cos(x) for every element of src into dst.
func CosSlice[T lanes.Floats](dst, src []T) {
	apply1(dst, src, Cos[T])
}
