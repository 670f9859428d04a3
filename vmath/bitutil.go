package vmath

import "github.com/ajroetker/go-vmath/lanes"

// copySign32 returns |mag| with the sign bit of from, lane-wise.
func copySign32(mag, from lanes.Vec[float32]) lanes.Vec[float32] {
	return lanes.AsFloat32(lanes.Or(
		lanes.And(lanes.AsUint32(mag), lanes.Set(absMask32)),
		lanes.And(lanes.AsUint32(from), lanes.Set(signMask32))))
}

// copySign64 returns |mag| with the sign bit of from, lane-wise.
func copySign64(mag, from lanes.Vec[float64]) lanes.Vec[float64] {
	return lanes.AsFloat64(lanes.Or(
		lanes.And(lanes.AsUint64(mag), lanes.Set(absMask64)),
		lanes.And(lanes.AsUint64(from), lanes.Set(signMask64))))
}

// xorSign32 flips the sign of v wherever signbits has its sign bit set.
func xorSign32(v lanes.Vec[float32], signbits lanes.Vec[uint32]) lanes.Vec[float32] {
	return lanes.AsFloat32(lanes.Xor(lanes.AsUint32(v), signbits))
}

// xorSign64 flips the sign of v wherever signbits has its sign bit set.
func xorSign64(v lanes.Vec[float64], signbits lanes.Vec[uint64]) lanes.Vec[float64] {
	return lanes.AsFloat64(lanes.Xor(lanes.AsUint64(v), signbits))
}
