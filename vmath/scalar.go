package vmath

import "math"

// Scalar fallback oracles. The float64 fallbacks are the standard
// library routines; the float32 ones compute in double and round once,
// which is correctly rounded for every function here except in a
// vanishingly rare double-rounding case, and exact for the special
// values (NaN, Inf, zero) the dispatcher routes this way.

func expf(x float32) float32   { return float32(math.Exp(float64(x))) }
func exp2f(x float32) float32  { return float32(math.Exp2(float64(x))) }
func expm1f(x float32) float32 { return float32(math.Expm1(float64(x))) }
func logf(x float32) float32   { return float32(math.Log(float64(x))) }
func log2f(x float32) float32  { return float32(math.Log2(float64(x))) }
func log10f(x float32) float32 { return float32(math.Log10(float64(x))) }
func log1pf(x float32) float32 { return float32(math.Log1p(float64(x))) }
func sinf(x float32) float32   { return float32(math.Sin(float64(x))) }
func cosf(x float32) float32   { return float32(math.Cos(float64(x))) }
func tanf(x float32) float32   { return float32(math.Tan(float64(x))) }
func asinf(x float32) float32  { return float32(math.Asin(float64(x))) }
func acosf(x float32) float32  { return float32(math.Acos(float64(x))) }
func atan2f(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}
func sinhf(x float32) float32  { return float32(math.Sinh(float64(x))) }
func coshf(x float32) float32  { return float32(math.Cosh(float64(x))) }
func asinhf(x float32) float32 { return float32(math.Asinh(float64(x))) }
func erff(x float32) float32   { return float32(math.Erf(float64(x))) }
func erfcf(x float32) float32  { return float32(math.Erfc(float64(x))) }
func cbrtf(x float32) float32  { return float32(math.Cbrt(float64(x))) }
