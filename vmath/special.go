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

import (
	"os"
	"strconv"
	"sync/atomic"

	"github.com/ajroetker/go-vmath/lanes"
)

// strictExcept selects the exception-fidelity mode. When set, kernels
// that would otherwise run flagged lanes through the fast path (raising
// spurious inexact/overflow state for them) substitute a harmless
// sentinel first, so only the scalar fallback ever touches the special
// value.
var strictExcept atomic.Bool

func init() {
	if v := os.Getenv("VMATH_STRICT_FENV"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			strictExcept.Store(b)
		} else {
			strictExcept.Store(true)
		}
	}
}

// SetStrictExceptions toggles exception-fidelity mode at runtime. It is
// safe to call concurrently with evaluations; in-flight vectors finish
// in whichever mode they started.
func SetStrictExceptions(on bool) {
	strictExcept.Store(on)
}

// StrictExceptions reports whether exception-fidelity mode is active.
func StrictExceptions() bool {
	return strictExcept.Load()
}

// fixSpecial re-evaluates flagged lanes of y with the scalar fallback
// applied to the corresponding lanes of x, merging by lane select.
// Unflagged lanes keep their fast-path bits exactly.
func fixSpecial[T lanes.Floats](x, y lanes.Vec[T], special lanes.Mask[T], fallback func(T) T) lanes.Vec[T] {
	if !special.AnyTrue() {
		return y
	}
	out := make([]T, y.NumLanes())
	y.Store(out)
	xd := x.Data()
	for i := range out {
		if special.GetBit(i) && i < len(xd) {
			out[i] = fallback(xd[i])
		}
	}
	return lanes.Load(out)
}

// fixSpecial2 is fixSpecial for two-argument functions (atan2).
func fixSpecial2[T lanes.Floats](a, b, y lanes.Vec[T], special lanes.Mask[T], fallback func(T, T) T) lanes.Vec[T] {
	if !special.AnyTrue() {
		return y
	}
	out := make([]T, y.NumLanes())
	y.Store(out)
	ad, bd := a.Data(), b.Data()
	for i := range out {
		if special.GetBit(i) && i < len(ad) && i < len(bd) {
			out[i] = fallback(ad[i], bd[i])
		}
	}
	return lanes.Load(out)
}

// neutralize substitutes a sentinel into flagged lanes so the fast path
// cannot raise exception state for them. Used only in strict mode; the
// caller keeps the original x for the fallback merge.
func neutralize[T lanes.Floats](x lanes.Vec[T], special lanes.Mask[T], sentinel T) lanes.Vec[T] {
	if !special.AnyTrue() {
		return x
	}
	return lanes.Merge(lanes.Set(sentinel), x, special)
}
