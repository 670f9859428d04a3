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

// Package vmath implements vectorized elementary math functions over
// lane vectors: exp, log, trigonometric, inverse trigonometric,
// hyperbolic, error and cube-root functions for float32 and float64
// lanes.
//
// Every function comes in three forms:
//
//	Exp32(v)       // concrete float32 kernel
//	Exp64(v)       // concrete float64 kernel
//	Exp(v)         // generic wrapper over lanes.Floats
//	ExpSlice(d, s) // slice form, walks in vector-width chunks
//
// All functions are total over IEEE-754 inputs: NaN lanes produce NaN,
// infinities follow the mathematical limits, and signed zeros are
// preserved by the odd functions. Each kernel evaluates a branch-free
// fast path on all lanes; lanes holding special values (NaN, Inf, out
// of the fast path's domain) are detected with a single biased-exponent
// range compare on the bit pattern and re-evaluated with a scalar
// reference routine, merged back by lane select. Lanes that are not
// flagged are never affected by the presence of flagged lanes in the
// same vector.
//
// Accuracy is a few ULP (typically < 3.5) against a correctly-rounded
// reference; the documented bound for each function is in its comment.
// Results are deterministic for a given vector width and identical
// across lane positions.
//
// Set VMATH_STRICT_FENV=1 (or call SetStrictExceptions) to keep flagged
// lanes out of the fast path entirely, so that no spurious
// floating-point exception state is ever raised for them.
package vmath
