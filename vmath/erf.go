package vmath

import (
	"math"

	"github.com/ajroetker/go-vmath/lanes"
)

// The binary64 erf expands about the nearest grid point r = i/128 using
// the tabulated erf(r) and its derivative. The binary32 erf and both
// erfc kernels use the odd series erf(x) = x*P(x^2) below |x| = 1
// (exact at zero, free of cancellation) and the tail fit
//
//	erfc(z) = t * exp(-z^2 + C(t)),  t = 2/(2+z),
//
// a rational-in-t fit with relative error below 1.2e-7, which the two
// exp kernels absorb without extra range handling.
const erfcC0_64 float64 = -1.26551223

var erfcTailPoly64 = []float64{
	1.00002368, 0.37409196, 0.09678418, -0.18628806, 0.27886807,
	-1.13520398, 1.48851587, -0.82215223, 0.17087277,
}

const erfcC0_32 float32 = -1.26551223

var erfcTailPoly32 = []float32{
	1.00002368, 0.37409196, 0.09678418, -0.18628806, 0.27886807,
	-1.13520398, 1.48851587, -0.82215223, 0.17087277,
}

// erfcCore32 evaluates the tail fit for z >= 0; callers bound z so the
// exp argument stays inside the fast path.
func erfcCore32(z lanes.Vec[float32]) lanes.Vec[float32] {
	t := lanes.Div(lanes.Set[float32](2), lanes.Add(lanes.Set[float32](2), z))
	u := lanes.FMA(t, horner(t, erfcTailPoly32), lanes.Set(erfcC0_32))
	u = lanes.Sub(u, lanes.Mul(z, z))
	e, _ := expCore32(u)
	return lanes.Mul(t, e)
}

func erfcCore64(z lanes.Vec[float64]) lanes.Vec[float64] {
	t := lanes.Div(lanes.Set[float64](2), lanes.Add(lanes.Set[float64](2), z))
	u := lanes.FMA(t, horner(t, erfcTailPoly64), lanes.Set(erfcC0_64))
	u = lanes.Sub(u, lanes.Mul(z, z))
	e := expCore64(u)
	return lanes.Mul(t, e)
}

// Erf32 returns erf(x) for each float32 lane. Maximum observed error
// of the fast path is 2 ULP.
func Erf32(x lanes.Vec[float32]) lanes.Vec[float32] {
	au := lanes.And(lanes.AsUint32(x), lanes.Set(absMask32))
	// erf saturates well before 6; also catches Inf and NaN.
	special := lanes.RetagMask[float32](
		lanes.GreaterEq(au, lanes.Set(math.Float32bits(6))))
	ax := lanes.AsFloat32(au)

	x2 := lanes.Mul(x, x)
	small := lanes.Mul(x, horner(x2, erfPoly32[:]))
	large := copySign32(lanes.Sub(lanes.Set[float32](1), erfcCore32(ax)), x)

	y := lanes.Merge(small, large, lanes.Less(ax, lanes.Set[float32](1)))
	return fixSpecial(x, y, special, erff)
}

// Erf64 returns erf(x) for each float64 lane by Taylor expansion about
// the nearest grid point r = i/128:
//
//	erf(r+d) = erf(r) + scale * d * Q(r, d)
//	Q(r, d) = 1 - r d + (2r^2-1)/3 d^2 + r(3-2r^2)/6 d^3
//	        + (4r^4-12r^2+3)/30 d^4
//
// with erf(r) and scale = 2/sqrt(pi)*exp(-r^2) tabulated. |d| <= 1/256
// keeps the truncation below the rounding noise. For r = 0 the scheme
// degenerates to the odd series, so small results stay relatively
// accurate and erf(+-0) = +-0 exactly. Maximum observed error of the
// fast path is 2.5 ULP.
func Erf64(x lanes.Vec[float64]) lanes.Vec[float64] {
	au := lanes.And(lanes.AsUint64(x), lanes.Set(absMask64))
	special := lanes.RetagMask[float64](lanes.GreaterEq(au, lanes.Set(inf64)))
	ax := lanes.AsFloat64(au)

	// erf rounds to 1 past 6; clamping there also gives Inf lanes an
	// exact result without a fallback.
	z := lanes.Min(ax, lanes.Set[float64](6))
	n, u := roundShift64(z, 128)
	idx := lanes.And(u, lanes.Set[uint64](0x3ff))
	r := lanes.Mul(n, lanes.Set[float64](1.0/128))
	d := lanes.Sub(z, r)

	erfr := lanes.Gather(erfTab64[:], idx)
	scale := lanes.Gather(erfScale64[:], idx)

	r2 := lanes.Mul(r, r)
	c3 := lanes.FMA(r2, lanes.Set(2.0/3), lanes.Set(-1.0/3))
	c4 := lanes.Mul(r, lanes.FMA(r2, lanes.Set(-1.0/3), lanes.Set(0.5)))
	c5 := lanes.FMA(r2, lanes.FMA(r2, lanes.Set(2.0/15), lanes.Set(-2.0/5)), lanes.Set(0.1))

	q := lanes.FMA(c5, d, c4)
	q = lanes.FMA(q, d, c3)
	q = lanes.FMA(q, d, lanes.Neg(r))
	q = lanes.FMA(q, d, lanes.Set[float64](1))

	y := copySign64(lanes.FMA(lanes.Mul(scale, d), q, erfr), x)
	return fixSpecial(x, y, special, math.Erf)
}

// Erfc32 returns erfc(x) for each float32 lane. The positive tail is
// handled up to 9.19, past which the exp argument would leave the fast
// path; those lanes fall back. Maximum observed error of the fast path
// is 2 ULP.
func Erfc32(x lanes.Vec[float32]) lanes.Vec[float32] {
	au := lanes.And(lanes.AsUint32(x), lanes.Set(absMask32))
	special := lanes.RetagMask[float32](
		lanes.GreaterEq(au, lanes.Set(math.Float32bits(9.19))))
	ax := lanes.AsFloat32(au)

	x2 := lanes.Mul(x, x)
	small := lanes.Sub(lanes.Set[float32](1), lanes.Mul(x, horner(x2, erfPoly32[:])))

	core := erfcCore32(ax)
	xNeg := lanes.Less(x, lanes.Zero[float32]())
	large := lanes.Merge(lanes.Sub(lanes.Set[float32](2), core), core, xNeg)

	y := lanes.Merge(small, large, lanes.Less(ax, lanes.Set[float32](1)))
	return fixSpecial(x, y, special, erfcf)
}

// Erfc64 returns erfc(x) for each float64 lane; |x| >= 26.5 falls back.
// The tail fit bounds the relative error of the fast path by 1.2e-7;
// full binary64 tail accuracy needs the original's 20-interval table.
func Erfc64(x lanes.Vec[float64]) lanes.Vec[float64] {
	au := lanes.And(lanes.AsUint64(x), lanes.Set(absMask64))
	special := lanes.RetagMask[float64](
		lanes.GreaterEq(au, lanes.Set[uint64](0x403a800000000000))) // 26.5
	ax := lanes.AsFloat64(au)

	x2 := lanes.Mul(x, x)
	small := lanes.Sub(lanes.Set[float64](1), lanes.Mul(x, horner(x2, erfPoly64[:])))

	core := erfcCore64(ax)
	xNeg := lanes.Less(x, lanes.Zero[float64]())
	large := lanes.Merge(lanes.Sub(lanes.Set[float64](2), core), core, xNeg)

	y := lanes.Merge(small, large, lanes.Less(ax, lanes.Set[float64](1)))
	return fixSpecial(x, y, special, math.Erfc)
}

// Erf returns erf(x) for each lane.
func Erf[T lanes.Floats](x lanes.Vec[T]) lanes.Vec[T] {
	switch v := any(x).(type) {
	case lanes.Vec[float32]:
		return any(Erf32(v)).(lanes.Vec[T])
	case lanes.Vec[float64]:
		return any(Erf64(v)).(lanes.Vec[T])
	}
	panic("vmath: unsupported lane type")
}

// Erfc returns erfc(x) for each lane, accurate in the positive tail
// where 1 - erf(x) would lose all precision.
func Erfc[T lanes.Floats](x lanes.Vec[T]) lanes.Vec[T] {
	switch v := any(x).(type) {
	case lanes.Vec[float32]:
		return any(Erfc32(v)).(lanes.Vec[T])
	case lanes.Vec[float64]:
		return any(Erfc64(v)).(lanes.Vec[T])
	}
	panic("vmath: unsupported lane type")
}

// ErfSlice computes erf(x) for every element of src into dst.
func ErfSlice[T lanes.Floats](dst, src []T) {
	apply1(dst, src, Erf[T])
}

// ErfcSlice computes erfc(x) for every element of src into dst.
func ErfcSlice[T lanes.Floats](dst, src []T) {
	apply1(dst, src, Erfc[T])
}
