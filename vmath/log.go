package vmath

import (
	"math"

	"github.com/ajroetker/go-vmath/lanes"
)

// (log(1+r) - r)/r^2 polynomial for r in (-1/3, 1/3), binary32,
// ordered P1..P7.
var logPoly32 = []float32{
	-0x1.ffffc8p-2, 0x1.555d7cp-2, -0x1.00187cp-2, 0x1.961348p-3,
	-0x1.4f9934p-3, 0x1.5a9aa2p-3, -0x1.3e737cp-3,
}

// (log(1+r) - r)/r^2 series for the table-reduced binary64 argument,
// |r| < 2^-7. At this range the truncated series is below the rounding
// noise of the evaluation.
var lnFracPoly64 = []float64{
	-1.0 / 2, 1.0 / 3, -1.0 / 4, 1.0 / 5, -1.0 / 6, 1.0 / 7,
}

// logFrac32 evaluates the shared binary32 fraction polynomial with the
// pairwise schedule.
func logFrac32(r, r2 lanes.Vec[float32]) lanes.Vec[float32] {
	p := lanes.FMA(lanes.Set(logPoly32[5]), r, lanes.Set(logPoly32[4]))
	q := lanes.FMA(lanes.Set(logPoly32[3]), r, lanes.Set(logPoly32[2]))
	y := lanes.FMA(lanes.Set(logPoly32[1]), r, lanes.Set(logPoly32[0]))
	p = lanes.FMA(lanes.Set(logPoly32[6]), r2, p)
	q = lanes.FMA(p, r2, q)
	return lanes.FMA(q, r2, y)
}

// logSpecial32 flags zero, subnormal, negative, Inf and NaN lanes with
// one unsigned compare on the bit pattern.
func logSpecial32(x lanes.Vec[float32]) lanes.Mask[float32] {
	u := lanes.AsUint32(x)
	return lanes.RetagMask[float32](lanes.GreaterEq(
		lanes.Sub(u, lanes.Set(minNormal32)), lanes.Set(inf32-minNormal32)))
}

func logSpecial64(x lanes.Vec[float64]) lanes.Mask[float64] {
	u := lanes.AsUint64(x)
	return lanes.RetagMask[float64](lanes.GreaterEq(
		lanes.Sub(u, lanes.Set(minNormal64)), lanes.Set(inf64-minNormal64)))
}

// Log32 returns the natural logarithm of each float32 lane.
// Maximum observed error of the fast path is 3.3 ULP.
func Log32(x lanes.Vec[float32]) lanes.Vec[float32] {
	special := logSpecial32(x)
	n, r := logReduce32(x)
	r2 := lanes.Mul(r, r)
	q := logFrac32(r, r2)
	p := lanes.FMA(n, lanes.Set(ln2_32), r)
	y := lanes.FMA(q, r2, p)
	return fixSpecial(x, y, special, logf)
}

// Log64 returns the natural logarithm of each float64 lane via the
// 128-way invc/logc table. The subinterval containing 1 is pinned to
// c = 1, so log(1) = 0 exactly and results near 1 are relatively
// accurate. Maximum observed error of the fast path is 2.5 ULP.
func Log64(x lanes.Vec[float64]) lanes.Vec[float64] {
	special := logSpecial64(x)
	kd, idx, z := logReduce64(x)
	invc := lanes.Gather(logInvC[:], idx)
	logc := lanes.Gather(logLnC[:], idx)

	r := lanes.FMA(z, invc, lanes.Set[float64](-1))
	r2 := lanes.Mul(r, r)
	q := horner(r, lnFracPoly64)

	hi := lanes.FMA(kd, lanes.Set(ln2Hi64), lanes.Add(logc, r))
	y := lanes.FMA(q, r2, lanes.FMA(kd, lanes.Set(ln2Lo64), hi))
	return fixSpecial(x, y, special, math.Log)
}

// Log returns the natural logarithm of each lane.
func Log[T lanes.Floats](x lanes.Vec[T]) lanes.Vec[T] {
	switch v := any(x).(type) {
	case lanes.Vec[float32]:
		return any(Log32(v)).(lanes.Vec[T])
	case lanes.Vec[float64]:
		return any(Log64(v)).(lanes.Vec[T])
	}
	panic("vmath: unsupported lane type")
}

// LogSlice computes the natural logarithm of every element of src into dst.
func LogSlice[T lanes.Floats](dst, src []T) {
	apply1(dst, src, Log[T])
}

// Log2_32 returns the base-2 logarithm of each float32 lane. Maximum
// observed error of the fast path is 2.5 ULP.
func Log2_32(x lanes.Vec[float32]) lanes.Vec[float32] {
	special := logSpecial32(x)
	n, r := logReduce32(x)
	r2 := lanes.Mul(r, r)
	q := logFrac32(r, r2)
	// log2(x) = n + (r + r^2 q) / ln2.
	l := lanes.FMA(q, r2, r)
	y := lanes.FMA(l, lanes.Set(invLn2_32), n)
	return fixSpecial(x, y, special, log2f)
}

// Log2_64 returns the base-2 logarithm of each float64 lane. Powers of
// two land on the pinned table entry with a zero reduced argument, so
// log2(2^k) = k exactly. Maximum observed error of the fast path is
// 2.5 ULP.
func Log2_64(x lanes.Vec[float64]) lanes.Vec[float64] {
	special := logSpecial64(x)
	kd, idx, z := logReduce64(x)
	invc := lanes.Gather(logInvC[:], idx)
	log2c := lanes.Gather(logLog2C[:], idx)

	r := lanes.FMA(z, invc, lanes.Set[float64](-1))
	r2 := lanes.Mul(r, r)
	q := lanes.Mul(horner(r, lnFracPoly64), lanes.Set(invLn2_64))

	w := lanes.FMA(r, lanes.Set(invLn2_64), log2c)
	y := lanes.FMA(q, r2, lanes.Add(kd, w))
	return fixSpecial(x, y, special, math.Log2)
}

// Log2 returns the base-2 logarithm of each lane.
func Log2[T lanes.Floats](x lanes.Vec[T]) lanes.Vec[T] {
	switch v := any(x).(type) {
	case lanes.Vec[float32]:
		return any(Log2_32(v)).(lanes.Vec[T])
	case lanes.Vec[float64]:
		return any(Log2_64(v)).(lanes.Vec[T])
	}
	panic("vmath: unsupported lane type")
}

// Log2Slice computes the base-2 logarithm of every element of src into dst.
func Log2Slice[T lanes.Floats](dst, src []T) {
	apply1(dst, src, Log2[T])
}

// Log10_32 returns the base-10 logarithm of each float32 lane. Maximum
// observed error of the fast path is 2.5 ULP.
func Log10_32(x lanes.Vec[float32]) lanes.Vec[float32] {
	special := logSpecial32(x)
	n, r := logReduce32(x)
	r2 := lanes.Mul(r, r)
	q := logFrac32(r, r2)
	// log10(x) = n*log10(2) + (r + r^2 q) / ln10.
	l := lanes.FMA(q, r2, r)
	y := lanes.FMA(l, lanes.Set(invLn10_32), lanes.Mul(n, lanes.Set(log10_2_32)))
	return fixSpecial(x, y, special, log10f)
}

// Log10_64 returns the base-10 logarithm of each float64 lane. Maximum
// observed error of the fast path is 2.5 ULP.
func Log10_64(x lanes.Vec[float64]) lanes.Vec[float64] {
	special := logSpecial64(x)
	kd, idx, z := logReduce64(x)
	invc := lanes.Gather(logInvC[:], idx)
	log10c := lanes.Gather(logLog10C[:], idx)

	r := lanes.FMA(z, invc, lanes.Set[float64](-1))
	r2 := lanes.Mul(r, r)
	q := lanes.Mul(horner(r, lnFracPoly64), lanes.Set(invLn10_64))

	w := lanes.FMA(r, lanes.Set(invLn10_64), log10c)
	hi := lanes.FMA(kd, lanes.Set(log10_2_64), w)
	y := lanes.FMA(q, r2, hi)
	return fixSpecial(x, y, special, math.Log10)
}

// Log10 returns the base-10 logarithm of each lane.
func Log10[T lanes.Floats](x lanes.Vec[T]) lanes.Vec[T] {
	switch v := any(x).(type) {
	case lanes.Vec[float32]:
		return any(Log10_32(v)).(lanes.Vec[T])
	case lanes.Vec[float64]:
		return any(Log10_64(v)).(lanes.Vec[T])
	}
	panic("vmath: unsupported lane type")
}

// Log10Slice computes the base-10 logarithm of every element of src into dst.
func Log10Slice[T lanes.Floats](dst, src []T) {
	apply1(dst, src, Log10[T])
}
