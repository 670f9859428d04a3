// Copyright 2025 go-vmath Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vmath

import "math"

// Lookup tables and generated coefficient arrays. Everything here is
// filled in once by init and treated as read-only afterwards, so all
// kernels are safe for concurrent use.

const (
	expTableBits = 7
	expTableN    = 1 << expTableBits

	logTableBits = 7
	logTableN    = 1 << logTableBits
)

// expTab[i] is asuint64(2^(i/N)) with i<<45 pre-subtracted, so that a
// kernel can add the shifted round bits (which carry i in positions
// 45..51 and the exponent above) in a single integer add.
var expTab [expTableN]uint64

// Log table: the i-th subinterval of [0.70, 1.41) has centre c;
// logInvC holds the rounded 1/c and logLnC/logLog2C/logLog10C hold
// -log(invc) in the three bases, so the logarithm entries compensate
// the reciprocal's rounding to the last bit.
var (
	logInvC   [logTableN]float64
	logLnC    [logTableN]float64
	logLog2C  [logTableN]float64
	logLog10C [logTableN]float64
)

// Taylor-derived odd-series coefficients, generated to full double
// precision. The reduced arguments are small enough (|z| <= 0.5 for
// asin, |z| <= tan(pi/8) for atan, |x| <= 1 for erf) that the truncated
// series is below half an ULP of the target precision.
var (
	asinPoly64 [25]float64
	asinPoly32 [9]float32

	atanPoly64 [21]float64
	atanPoly32 [9]float32

	erfPoly64 [20]float64
	erfPoly32 [12]float32
)

// cbrtTab[r+1] = cbrt(2^r) for the exponent remainder r in {-1, 0, 1}.
var (
	cbrtTab64 [3]float64
	cbrtTab32 [3]float32
)

// Taylor data for the binary64 erf kernel, tabulated at the grid points
// r = i/128: erfTab64[i] = erf(r) and erfScale64[i] = erf'(r)
// = 2/sqrt(pi) * exp(-r*r). Entries past i = 768 (r = 6, where erf
// rounds to 1) only exist so that garbage indices from NaN lanes stay
// in bounds.
var (
	erfTab64   [1024]float64
	erfScale64 [1024]float64
)

const twoOverSqrtPi = 0x1.20dd750429b6dp+0

func init() {
	for i := 0; i < expTableN; i++ {
		u := math.Float64bits(math.Exp2(float64(i) / expTableN))
		expTab[i] = u - uint64(i)<<(52-expTableBits)
	}

	// The subinterval containing z = 1 is pinned to c = 1, making
	// r = z - 1 exact there: log(1) is a true zero and results near 1
	// stay relatively accurate. Everywhere else the log entries are
	// -log(invc) of the stored reciprocal, not log(c), so the
	// reciprocal's rounding cancels out of the reconstruction.
	one := (math.Float64bits(1) - logOff64) >> (52 - logTableBits) & (logTableN - 1)
	for i := 0; i < logTableN; i++ {
		if uint64(i) == one {
			logInvC[i] = 1
			continue
		}
		// Centre of the i-th subinterval.
		c := math.Float64frombits(logOff64 + uint64(i)<<(52-logTableBits) + 1<<(52-logTableBits-1))
		invc := 1 / c
		logInvC[i] = invc
		logLnC[i] = -math.Log(invc)
		logLog2C[i] = -math.Log2(invc)
		logLog10C[i] = -math.Log10(invc)
	}

	// asin(z) = z + z^3 * P(z^2), P coefficient n is
	// (2n)! / (4^n (n!)^2 (2n+1)).
	a := 1.0
	for n := 1; n <= len(asinPoly64); n++ {
		a *= float64(2*n-1) / float64(2*n)
		asinPoly64[n-1] = a / float64(2*n+1)
	}
	a = 1.0
	for n := 1; n <= len(asinPoly32); n++ {
		a *= float64(2*n-1) / float64(2*n)
		asinPoly32[n-1] = float32(a / float64(2*n+1))
	}

	// atan(z) = z + z^3 * P(z^2), P coefficient n is (-1)^n / (2n+3).
	for n := range atanPoly64 {
		c := 1.0 / float64(2*n+3)
		if n%2 == 0 {
			c = -c
		}
		atanPoly64[n] = c
	}
	for n := range atanPoly32 {
		c := 1.0 / float64(2*n+3)
		if n%2 == 0 {
			c = -c
		}
		atanPoly32[n] = float32(c)
	}

	// erf(x) = x * P(x^2), P coefficient n is
	// (-1)^n * (2/sqrt(pi)) / (n! (2n+1)).
	f := 1.0
	for n := range erfPoly64 {
		if n > 0 {
			f *= float64(n)
		}
		c := twoOverSqrtPi / (f * float64(2*n+1))
		if n%2 == 1 {
			c = -c
		}
		erfPoly64[n] = c
	}
	f = 1.0
	for n := range erfPoly32 {
		if n > 0 {
			f *= float64(n)
		}
		c := twoOverSqrtPi / (f * float64(2*n+1))
		if n%2 == 1 {
			c = -c
		}
		erfPoly32[n] = float32(c)
	}

	cbrtTab64 = [3]float64{math.Cbrt(0.5), 1, math.Cbrt(2)}
	for i, v := range cbrtTab64 {
		cbrtTab32[i] = float32(v)
	}

	for i := range erfTab64 {
		r := float64(i) / 128
		erfTab64[i] = math.Erf(r)
		erfScale64[i] = twoOverSqrtPi * math.Exp(-r*r)
	}
}
