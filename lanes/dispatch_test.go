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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatchConsistency(t *testing.T) {
	w := CurrentWidth()
	require.Contains(t, []int{16, 32, 64}, w, "vector width must be a supported size")
	require.NotEmpty(t, CurrentName())

	require.Equal(t, w/4, MaxLanes[float32]())
	require.Equal(t, w/8, MaxLanes[float64]())
	require.Equal(t, w/4, MaxLanes[int32]())
	require.Equal(t, w/8, MaxLanes[uint64]())
}

func TestWidthEnvParsing(t *testing.T) {
	t.Setenv("VMATH_WIDTH", "32")
	require.Equal(t, 32, widthEnv())

	t.Setenv("VMATH_WIDTH", "48")
	require.Zero(t, widthEnv(), "unsupported widths are ignored")

	t.Setenv("VMATH_WIDTH", "bogus")
	require.Zero(t, widthEnv())

	t.Setenv("VMATH_WIDTH", "")
	require.Zero(t, widthEnv())
}

func TestSetWidthOverride(t *testing.T) {
	savedW, savedN := currentWidth, currentName
	defer func() { currentWidth, currentName = savedW, savedN }()

	t.Setenv("VMATH_WIDTH", "64")
	setWidth(16, "sse2")
	require.Equal(t, 64, currentWidth)
	require.Equal(t, "forced", currentName)

	t.Setenv("VMATH_WIDTH", "")
	setWidth(32, "avx2")
	require.Equal(t, 32, currentWidth)
	require.Equal(t, "avx2", currentName)
}
