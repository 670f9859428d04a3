package vmath

import (
	"math"

	"github.com/ajroetker/go-vmath/lanes"
)

// log(1+x) series coefficients for |x| < 2^-5: log1p(x) = x + x^2 P(x).
var log1pSmall64 = []float64{
	-1.0 / 2, 1.0 / 3, -1.0 / 4, 1.0 / 5, -1.0 / 6, 1.0 / 7,
	-1.0 / 8, 1.0 / 9, -1.0 / 10, 1.0 / 11, -1.0 / 12,
}

var log1pSmall32 = []float32{
	-1.0 / 2, 1.0 / 3, -1.0 / 4, 1.0 / 5, -1.0 / 6, 1.0 / 7, -1.0 / 8,
}

const log1pSmallBound = 0x1p-5

// Log1p_32 returns log(1+x) for each float32 lane, accurate for small
// x. Maximum observed error of the fast path is 2.5 ULP.
func Log1p_32(x lanes.Vec[float32]) lanes.Vec[float32] {
	ix := lanes.AsUint32(x)
	ia := lanes.And(ix, lanes.Set(absMask32))
	// x <= -1 (incl. -Inf and negative NaN), +Inf, +NaN.
	special := lanes.RetagMask[float32](lanes.MaskOr(
		lanes.GreaterEq(ix, lanes.Set[uint32](0xbf800000)),
		lanes.GreaterEq(ia, lanes.Set(inf32))))
	xs := x
	if StrictExceptions() {
		xs = neutralize(x, special, 0)
	}

	// Small path: direct series, exact leading term.
	f2 := lanes.Mul(xs, xs)
	small := lanes.FMA(f2, horner(xs, log1pSmall32), xs)

	// Large path: m = 1+x through the log reduction, plus the rounding
	// correction c/m with c = x - (m-1).
	m := lanes.Add(xs, lanes.Set[float32](1))
	n, r := logReduce32(m)
	r2 := lanes.Mul(r, r)
	q := logFrac32(r, r2)
	ylog := lanes.FMA(q, r2, lanes.FMA(n, lanes.Set(ln2_32), r))
	cm := lanes.Div(lanes.Sub(xs, lanes.Sub(m, lanes.Set[float32](1))), m)
	large := lanes.Add(ylog, cm)

	inSmall := lanes.Less(lanes.Abs(xs), lanes.Set[float32](log1pSmallBound))
	y := lanes.Merge(small, large, inSmall)
	return fixSpecial(x, y, special, log1pf)
}

// Log1p_64 returns log(1+x) for each float64 lane, accurate for small
// x. Maximum observed error of the fast path is 2.5 ULP.
func Log1p_64(x lanes.Vec[float64]) lanes.Vec[float64] {
	ix := lanes.AsUint64(x)
	ia := lanes.And(ix, lanes.Set(absMask64))
	special := lanes.RetagMask[float64](lanes.MaskOr(
		lanes.GreaterEq(ix, lanes.Set[uint64](0xbff0000000000000)),
		lanes.GreaterEq(ia, lanes.Set(inf64))))
	xs := x
	if StrictExceptions() {
		xs = neutralize(x, special, 0)
	}

	f2 := lanes.Mul(xs, xs)
	small := lanes.FMA(f2, horner(xs, log1pSmall64), xs)

	m := lanes.Add(xs, lanes.Set[float64](1))
	kd, idx, z := logReduce64(m)
	invc := lanes.Gather(logInvC[:], idx)
	logc := lanes.Gather(logLnC[:], idx)
	r := lanes.FMA(z, invc, lanes.Set[float64](-1))
	r2 := lanes.Mul(r, r)
	q := horner(r, lnFracPoly64)
	hi := lanes.FMA(kd, lanes.Set(ln2Hi64), lanes.Add(logc, r))
	ylog := lanes.FMA(q, r2, lanes.FMA(kd, lanes.Set(ln2Lo64), hi))
	cm := lanes.Div(lanes.Sub(xs, lanes.Sub(m, lanes.Set[float64](1))), m)
	large := lanes.Add(ylog, cm)

	inSmall := lanes.Less(lanes.Abs(xs), lanes.Set[float64](log1pSmallBound))
	y := lanes.Merge(small, large, inSmall)
	return fixSpecial(x, y, special, math.Log1p)
}

// Log1p returns log(1+x) for each lane.
func Log1p[T lanes.Floats](x lanes.Vec[T]) lanes.Vec[T] {
	switch v := any(x).(type) {
	case lanes.Vec[float32]:
		return any(Log1p_32(v)).(lanes.Vec[T])
	case lanes.Vec[float64]:
		return any(Log1p_64(v)).(lanes.Vec[T])
	}
	panic("vmath: unsupported lane type")
}

// Log1pSlice computes log(1+x) for every element of src into dst.
func Log1pSlice[T lanes.Floats](dst, src []T) {
	apply1(dst, src, Log1p[T])
}
