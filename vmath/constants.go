package vmath

// Bit-pattern constants shared across kernels.
const (
	absMask32  uint32 = 0x7fffffff
	signMask32 uint32 = 0x80000000
	oneBits32  uint32 = 0x3f800000 // asuint32(1.0)

	absMask64  uint64 = 0x7fffffffffffffff
	signMask64 uint64 = 0x8000000000000000
	oneBits64  uint64 = 0x3ff0000000000000 // asuint64(1.0)

	// Smallest normal and infinity bit patterns; u - minNormal >= inf -
	// minNormal catches zero, subnormal, negative, Inf and NaN lanes in a
	// single unsigned compare.
	minNormal32 uint32 = 0x00800000
	inf32       uint32 = 0x7f800000
	minNormal64 uint64 = 0x0010000000000000
	inf64       uint64 = 0x7ff0000000000000
)

// Round-to-nearest shifters: adding 1.5*2^23 (1.5*2^52) pushes the
// integer part of a float into the low mantissa bits, rounding to
// nearest even on the way.
const (
	shift32 float32 = 0x1.8p23
	shift64 float64 = 0x1.8p52
)

const (
	ln2Hi32    float32 = 0x1.62e4p-1
	ln2Lo32    float32 = 0x1.7f7d1cp-20
	invLn2_32  float32 = 0x1.715476p+0
	ln2_32     float32 = 0x1.62e43p-1
	invLn10_32 float32 = 0x1.bcb7b2p-2
	log10_2_32 float32 = 0x1.344136p-2

	ln2Hi64    float64 = 0x1.62e42fefa39efp-1
	ln2Lo64    float64 = 0x1.abc9e3b39803fp-56
	invLn2_64  float64 = 0x1.71547652b82fep0
	invLn10_64 float64 = 0x1.bcb7b1526e50ep-2
	log10_2_64 float64 = 0x1.34413509f79ffp-2
)

const (
	piOver2_32 float32 = 0x1.921fb6p+0
	piOver2_64 float64 = 0x1.921fb54442d18p+0
	pi_64      float64 = 0x1.921fb54442d18p+1
	pi_32      float32 = 0x1.921fb6p+1
)
