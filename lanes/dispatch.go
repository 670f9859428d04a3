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

package lanes

import (
	"os"
	"strconv"
	"unsafe"
)

// currentWidth is the emulated vector width in bytes for this runtime.
// Set by init() in dispatch_*.go files from detected CPU features, or
// overridden by the VMATH_WIDTH environment variable.
var currentWidth int

// currentName is the human-readable name of the selected target.
var currentName string

// CurrentWidth returns the vector width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the selected target,
// for example "avx2", "neon", "portable".
func CurrentName() string {
	return currentName
}

// widthEnv reads the VMATH_WIDTH environment variable. A value of 16, 32
// or 64 forces that vector width regardless of CPU capabilities, which is
// useful for testing lane-count independence. Returns 0 when unset or
// invalid.
func widthEnv() int {
	val := os.Getenv("VMATH_WIDTH")
	if val == "" {
		return 0
	}
	w, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	switch w {
	case 16, 32, 64:
		return w
	}
	return 0
}

// setWidth records the detected target, honoring the VMATH_WIDTH override.
func setWidth(width int, name string) {
	if w := widthEnv(); w != 0 {
		currentWidth = w
		currentName = "forced"
		return
	}
	currentWidth = width
	currentName = name
}

// MaxLanes returns the number of lanes for type T at the current width.
//
// For example, with AVX2 (256 bits / 32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
func MaxLanes[T Lanes]() int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return currentWidth / elementSize
}
