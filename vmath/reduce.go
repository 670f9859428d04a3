package vmath

import "github.com/ajroetker/go-vmath/lanes"

// Additive range reduction. roundShift rounds x*mul to the nearest
// integer by adding and subtracting the 1.5*2^p shifter; the returned n
// is the integral float, and the shifter's bit pattern carries the
// integer in its low mantissa bits (two's complement for negatives),
// which the exp-family kernels mine for table index and exponent.

func roundShift32(x lanes.Vec[float32], mul float32) (n lanes.Vec[float32], u lanes.Vec[uint32]) {
	z := lanes.FMA(x, lanes.Set(mul), lanes.Set(shift32))
	u = lanes.AsUint32(z)
	n = lanes.Sub(z, lanes.Set(shift32))
	return n, u
}

func roundShift64(x lanes.Vec[float64], mul float64) (n lanes.Vec[float64], u lanes.Vec[uint64]) {
	z := lanes.FMA(x, lanes.Set(mul), lanes.Set(shift64))
	u = lanes.AsUint64(z)
	n = lanes.Sub(z, lanes.Set(shift64))
	return n, u
}

// codyWaite2 computes r = x - n*c1 - n*c2 with fused operations. The
// constants are stored negated so each step is a single FMA.
func codyWaite2[T lanes.Floats](x, n lanes.Vec[T], negC1, negC2 T) lanes.Vec[T] {
	r := lanes.FMA(n, lanes.Set(negC1), x)
	return lanes.FMA(n, lanes.Set(negC2), r)
}

// codyWaite3 is the three-term variant used by the trig reductions,
// where the step constant needs more bits than two terms can carry.
func codyWaite3[T lanes.Floats](x, n lanes.Vec[T], negC1, negC2, negC3 T) lanes.Vec[T] {
	r := lanes.FMA(n, lanes.Set(negC1), x)
	r = lanes.FMA(n, lanes.Set(negC2), r)
	return lanes.FMA(n, lanes.Set(negC3), r)
}

// logReduce32 performs the multiplicative reduction shared by the
// binary32 log family: x = 2^n * (1+r) with 1+r in (2/3, 4/3), centred
// by offsetting the bit pattern at 0.666667. Returns n as float lanes
// and r. Only valid for positive normal x; callers flag everything else.
func logReduce32(x lanes.Vec[float32]) (n, r lanes.Vec[float32]) {
	u := lanes.AsUint32(x)
	u = lanes.Sub(u, lanes.Set(logOff32))
	// Arithmetic shift sign-extends the unbiased exponent.
	n = lanes.FromInt32[float32](lanes.ShiftRight(lanes.AsInt32(u), 23))
	u = lanes.And(u, lanes.Set[uint32](0x007fffff))
	u = lanes.Add(u, lanes.Set(logOff32))
	r = lanes.Sub(lanes.AsFloat32(u), lanes.Set[float32](1))
	return n, r
}

// logOff32 centres 1+r at 2/3 so that r spans (-1/3, 1/3).
const logOff32 uint32 = 0x3f2aaaab

// logOff64 is the binary64 table-reduction offset: z = x/2^k lands in
// [logOff64, 2*logOff64), split into logTableN subintervals.
const logOff64 uint64 = 0x3fe6900900000000

// logReduce64 performs the table-based binary64 log reduction:
// x = 2^k * z with z in [0.7, 1.4), index i selecting the subinterval
// whose centre c has invc/logc tabulated. Returns k as float lanes, the
// table index, and z. Only valid for positive normal x.
func logReduce64(x lanes.Vec[float64]) (kd lanes.Vec[float64], idx lanes.Vec[uint64], z lanes.Vec[float64]) {
	ix := lanes.AsUint64(x)
	tmp := lanes.Sub(ix, lanes.Set(logOff64))
	idx = lanes.And(lanes.ShiftRight(tmp, 52-logTableBits), lanes.Set[uint64](logTableN-1))
	k := lanes.ShiftRight(lanes.AsInt64(tmp), 52) // arithmetic shift
	iz := lanes.Sub(ix, lanes.And(tmp, lanes.Set[uint64](0xfff<<52)))
	z = lanes.AsFloat64(iz)
	kd = lanes.FromInt64[float64](k)
	return kd, idx, z
}
