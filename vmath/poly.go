package vmath

import "github.com/ajroetker/go-vmath/lanes"

// Polynomial evaluation helpers. Coefficients are ordered from the
// lowest power upward: coeffs[i] multiplies r^i relative to the start of
// the polynomial. Horner is the sequential scheme; estrin trades extra
// multiplies for shorter dependency chains on the long polynomials.

// horner evaluates coeffs[0] + r*(coeffs[1] + r*(...)) with one fused
// multiply-add per coefficient.
func horner[T lanes.Floats](r lanes.Vec[T], coeffs []T) lanes.Vec[T] {
	p := lanes.Set(coeffs[len(coeffs)-1])
	for i := len(coeffs) - 2; i >= 0; i-- {
		p = lanes.FMA(p, r, lanes.Set(coeffs[i]))
	}
	return p
}

// estrin10 evaluates a degree-10 polynomial using precomputed powers
// f2, f4, f8.
func estrin10[T lanes.Floats](f, f2, f4, f8 lanes.Vec[T], c []T) lanes.Vec[T] {
	p01 := lanes.FMA(lanes.Set(c[1]), f, lanes.Set(c[0]))
	p23 := lanes.FMA(lanes.Set(c[3]), f, lanes.Set(c[2]))
	p45 := lanes.FMA(lanes.Set(c[5]), f, lanes.Set(c[4]))
	p67 := lanes.FMA(lanes.Set(c[7]), f, lanes.Set(c[6]))
	p89 := lanes.FMA(lanes.Set(c[9]), f, lanes.Set(c[8]))

	p03 := lanes.FMA(p23, f2, p01)
	p47 := lanes.FMA(p67, f2, p45)
	p810 := lanes.FMA(lanes.Set(c[10]), f2, p89)

	p07 := lanes.FMA(p47, f4, p03)
	return lanes.FMA(p810, f8, p07)
}
