package vmath

import (
	"math"

	"github.com/ajroetker/go-vmath/lanes"
)

// exp(r)-1 polynomial for r in [-ln2/2, ln2/2], binary32.
var expPoly32 = []float32{
	0x1.0e4020p-7, 0x1.573e2ep-5, 0x1.555e66p-3, 0x1.fffdb6p-2, 0x1.ffffecp-1,
}

// exp(r)-1 polynomial for r in [-ln2/256, ln2/256], binary64, paired
// with the 128-entry table reduction.
const (
	expC1_64 float64 = 0x1.ffffffffffd43p-2
	expC2_64 float64 = 0x1.55555c75adbb2p-3
	expC3_64 float64 = 0x1.55555da646206p-5

	invLn2N_64 float64 = 0x1.71547652b82fep7  // N/ln2
	ln2HiN_64  float64 = 0x1.62e42fefa39efp-8 // ln2/N
	ln2LoN_64  float64 = 0x1.abc9e3b39803f3p-63
)

// 2^r - 1 polynomial for r in [-1/2, 1/2], binary32.
var exp2Poly32 = []float32{
	0x1.59977ap-10, 0x1.3ce9e4p-7, 0x1.c6bd32p-5, 0x1.ebfbdcp-3, 0x1.62e43p-1,
}

// (2^r - 1)/r polynomial for r in [-1/256, 1/256], binary64.
var exp2Poly64 = []float64{
	0x1.62e42fefa3686p-1, 0x1.ebfbdff82c241p-3,
	0x1.c6b09b16de99ap-5, 0x1.3b2abf5571ad8p-7,
}

// expCore32 evaluates the fast path: exp(x) = 2^n * (1 + poly(r)) with
// n = round(x/ln2). Also returns n for the caller's overflow check.
func expCore32(x lanes.Vec[float32]) (y, n lanes.Vec[float32]) {
	n, u := roundShift32(x, invLn2_32)
	r := codyWaite2(x, n, -ln2Hi32, -ln2Lo32)

	e := lanes.ShiftLeft(u, 23)
	scale := lanes.AsFloat32(lanes.Add(e, lanes.Set(oneBits32)))

	r2 := lanes.Mul(r, r)
	p := lanes.FMA(lanes.Set(expPoly32[0]), r, lanes.Set(expPoly32[1]))
	q := lanes.FMA(lanes.Set(expPoly32[2]), r, lanes.Set(expPoly32[3]))
	q = lanes.FMA(p, r2, q)
	p = lanes.Mul(r, lanes.Set(expPoly32[4]))
	poly := lanes.FMA(q, r2, p)

	return lanes.FMA(poly, scale, scale), n
}

// expCore64 evaluates exp via the 128-way table: n = round(x*N/ln2),
// scale = 2^(n/N) reassembled from the table entry plus the shifted
// round bits, result scale + scale*poly(r).
func expCore64(x lanes.Vec[float64]) lanes.Vec[float64] {
	n, u := roundShift64(x, invLn2N_64)
	r := codyWaite2(x, n, -ln2HiN_64, -ln2LoN_64)

	e := lanes.ShiftLeft(u, 52-expTableBits)
	idx := lanes.And(u, lanes.Set[uint64](expTableN-1))

	r2 := lanes.Mul(r, r)
	y := lanes.FMA(lanes.Set(expC2_64), r, lanes.Set(expC1_64))
	y = lanes.FMA(lanes.Set(expC3_64), r2, y)
	y = lanes.FMA(y, r2, r)

	sbits := lanes.Add(lanes.Gather(expTab[:], idx), e)
	s := lanes.AsFloat64(sbits)

	return lanes.FMA(y, s, s)
}

// Exp32 returns e^x for each float32 lane.
// Maximum observed error of the fast path is under 2 ULP.
func Exp32(x lanes.Vec[float32]) lanes.Vec[float32] {
	if StrictExceptions() {
		ax := lanes.And(lanes.AsUint32(x), lanes.Set(absMask32))
		special := lanes.RetagMask[float32](
			lanes.GreaterEq(ax, lanes.Set(math.Float32bits(0x1.5d5e2ap+6))))
		y, _ := expCore32(neutralize(x, special, 1))
		return fixSpecial(x, y, special, expf)
	}
	y, n := expCore32(x)
	special := lanes.Greater(lanes.Abs(n), lanes.Set[float32](126))
	return fixSpecial(x, y, special, expf)
}

// Exp64 returns e^x for each float64 lane.
// Maximum observed error of the fast path is under 2 ULP.
func Exp64(x lanes.Vec[float64]) lanes.Vec[float64] {
	if StrictExceptions() {
		top := lanes.ShiftRight(lanes.And(lanes.AsUint64(x), lanes.Set(absMask64)), 52)
		special := lanes.RetagMask[float64](
			lanes.GreaterEq(lanes.Sub(top, lanes.Set[uint64](0x200)), lanes.Set[uint64](0x408-0x200)))
		y := expCore64(neutralize(x, special, 1))
		return fixSpecial(x, y, special, math.Exp)
	}
	y := expCore64(x)
	special := lanes.Greater(lanes.Abs(x), lanes.Set[float64](704))
	return fixSpecial(x, y, special, math.Exp)
}

// Exp returns e^x for each lane.
func Exp[T lanes.Floats](x lanes.Vec[T]) lanes.Vec[T] {
	switch v := any(x).(type) {
	case lanes.Vec[float32]:
		return any(Exp32(v)).(lanes.Vec[T])
	case lanes.Vec[float64]:
		return any(Exp64(v)).(lanes.Vec[T])
	}
	panic("vmath: unsupported lane type")
}

// ExpSlice computes e^x for every element of src into dst.
func ExpSlice[T lanes.Floats](dst, src []T) {
	apply1(dst, src, Exp[T])
}

// Exp2_32 returns 2^x for each float32 lane. Maximum observed error of
// the fast path is 2 ULP.
func Exp2_32(x lanes.Vec[float32]) lanes.Vec[float32] {
	n, u := roundShift32(x, 1)
	r := lanes.Sub(x, n)

	e := lanes.ShiftLeft(u, 23)
	scale := lanes.AsFloat32(lanes.Add(e, lanes.Set(oneBits32)))

	r2 := lanes.Mul(r, r)
	p := lanes.FMA(lanes.Set(exp2Poly32[0]), r, lanes.Set(exp2Poly32[1]))
	q := lanes.FMA(lanes.Set(exp2Poly32[2]), r, lanes.Set(exp2Poly32[3]))
	q = lanes.FMA(p, r2, q)
	p = lanes.Mul(r, lanes.Set(exp2Poly32[4]))
	poly := lanes.FMA(q, r2, p)

	y := lanes.FMA(poly, scale, scale)
	special := lanes.Greater(lanes.Abs(n), lanes.Set[float32](126))
	return fixSpecial(x, y, special, exp2f)
}

// Exp2_64 returns 2^x for each float64 lane, sharing the exp table:
// the reduction step is 1/N in the exponent rather than ln2/N. Maximum
// observed error of the fast path is under 2 ULP.
func Exp2_64(x lanes.Vec[float64]) lanes.Vec[float64] {
	// k = round(x * N); the table step is 1/N in the exponent.
	n, u := roundShift64(x, expTableN)
	kd := lanes.Mul(n, lanes.Set[float64](1.0/expTableN))
	r := lanes.Sub(x, kd)

	e := lanes.ShiftLeft(u, 52-expTableBits)
	idx := lanes.And(u, lanes.Set[uint64](expTableN-1))
	sbits := lanes.Add(lanes.Gather(expTab[:], idx), e)
	s := lanes.AsFloat64(sbits)

	r2 := lanes.Mul(r, r)
	p01 := lanes.FMA(lanes.Set(exp2Poly64[1]), r, lanes.Set(exp2Poly64[0]))
	p23 := lanes.FMA(lanes.Set(exp2Poly64[3]), r, lanes.Set(exp2Poly64[2]))
	p := lanes.FMA(p23, r2, p01)
	y := lanes.Mul(r, p)

	out := lanes.FMA(s, y, s)
	special := lanes.Greater(lanes.Abs(x), lanes.Set[float64](1022))
	return fixSpecial(x, out, special, math.Exp2)
}

// Exp2 returns 2^x for each lane.
func Exp2[T lanes.Floats](x lanes.Vec[T]) lanes.Vec[T] {
	switch v := any(x).(type) {
	case lanes.Vec[float32]:
		return any(Exp2_32(v)).(lanes.Vec[T])
	case lanes.Vec[float64]:
		return any(Exp2_64(v)).(lanes.Vec[T])
	}
	panic("vmath: unsupported lane type")
}

// Exp2Slice computes 2^x for every element of src into dst.
func Exp2Slice[T lanes.Floats](dst, src []T) {
	apply1(dst, src, Exp2[T])
}
