// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPattern(t *testing.T) {
	tests := []struct {
		cluster, cw int
		want        int
	}{
		{0, 0, 0x1d5c0},
		{1, 0, 0x1f560},
		{2, 0, 0x1abe0},
		{0, 928, 0x1bef4},
		{1, 928, 0x13f26},
		{2, 928, 0x1c7ea},
	}
	for _, tt := range tests {
		got, err := Pattern(tt.cluster, tt.cw)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "[%d][%d]", tt.cluster, tt.cw)
	}
}

func TestPatternErrors(t *testing.T) {
	for _, v := range [][2]int{{3, 0}, {-1, 0}, {0, 929}, {0, -1}, {3, 1000}} {
		_, err := Pattern(v[0], v[1])
		var ce CodewordError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, CodewordError{v[0], v[1]}, ce)
	}
	_, err := Pattern(3, 1000)
	assert.EqualError(t, err, "pdf417: invalid codeword [3][1000]")
}

// widths returns the element widths of an n module pattern, leftmost
// first.
func widths(p, n int) []int {
	var w []int
	for i := n - 1; i >= 0; {
		bit := p >> i & 1
		j := i
		for j >= 0 && p>>j&1 == bit {
			j--
		}
		w = append(w, i-j)
		i = j
	}
	return w
}

func TestPatternTable(t *testing.T) {
	seen := make(map[uint32]bool)
	for c := range patterns {
		for cw, p := range patterns[c] {
			require.Equal(t, 17, bits.Len32(p), "[%d][%d]", c, cw)
			w := widths(int(p), 17)
			require.Len(t, w, 8, "[%d][%d]", c, cw)
			k := (w[0] - w[2] + w[4] - w[6] + 9) % 9
			assert.Equal(t, 3*c, k, "[%d][%d] cluster", c, cw)
			assert.False(t, seen[p], "[%d][%d] repeated", c, cw)
			seen[p] = true
		}
	}
	assert.Equal(t, []int{8, 1, 1, 1, 1, 1, 1, 3}, widths(StartPattern, 17))
	assert.Equal(t, []int{7, 1, 1, 3, 1, 1, 1, 2, 1}, widths(StopPattern, 18))
}
