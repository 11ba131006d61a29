// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerators(t *testing.T) {
	f := newField()
	for l := MinLevel; l <= MaxLevel; l++ {
		k := l.CheckWords()
		g := f.Generator(k)
		require.Len(t, g, k+1)
		assert.Equal(t, 1, g[k], "level %d leading coefficient", l)
		require.Len(t, generators[l], k, "level %d", l)
		for i, v := range generators[l] {
			assert.Equal(t, g[i], int(v), "level %d coefficient %d", l, i)
		}
	}
}

func TestField(t *testing.T) {
	f := newField()
	seen := make(map[int]bool)
	for e := 0; e < NumCodewords-1; e++ {
		x := f.Exp(e)
		assert.False(t, seen[x], "3^%d = %d repeated", e, x)
		seen[x] = true
		assert.Equal(t, e, f.Log(x))
	}
	assert.Equal(t, 1, f.Exp(NumCodewords-1))
	assert.Equal(t, f.Exp(NumCodewords-2), f.Exp(-1))
	assert.Equal(t, 6, f.Mul(2, 3))
	assert.Equal(t, 0, f.Mul(0, 3))
	assert.Equal(t, 1, f.Mul(2, 465))
	assert.Equal(t, 0, f.Add(900, 29))
	assert.Equal(t, 928, f.Sub(0, 1))
}

func TestCheckWords(t *testing.T) {
	for l, want := range []int{2, 4, 8, 16, 32, 64, 128, 256, 512} {
		assert.Equal(t, want, Level(l).CheckWords())
	}
	assert.Zero(t, Level(-1).CheckWords())
	assert.Zero(t, Level(9).CheckWords())
}

func TestECC(t *testing.T) {
	data := []int{
		16, 902, 1, 278, 827, 900, 295, 902,
		2, 326, 823, 544, 900, 149, 900, 900,
	}
	tests := []struct {
		level Level
		want  []int
	}{
		{0, []int{156, 765}},
		{1, []int{168, 875, 63, 355}},
		{2, []int{628, 715, 393, 299, 863, 601, 169, 708}},
	}
	for _, tt := range tests {
		got, err := ECC(data, tt.level)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "level %d", tt.level)
	}
}

// eval evaluates the polynomial with coefficients p, highest degree
// first, at x.
func eval(f *field, p []int, x int) int {
	var y int
	for _, c := range p {
		y = f.Add(f.Mul(y, x), c)
	}
	return y
}

func TestECCRoots(t *testing.T) {
	f := newField()
	data := []int{10, 1, 89, 902, 1, 223, 900, 900, 900, 900}
	for l := MinLevel; l <= 4; l++ {
		ec, err := ECC(data, l)
		require.NoError(t, err)
		msg := append(append([]int(nil), data...), ec...)
		for i := 1; i <= l.CheckWords(); i++ {
			assert.Zero(t, eval(f, msg, f.Exp(i)),
				"level %d root 3^%d", l, i)
		}
	}
}

func TestECCErrors(t *testing.T) {
	_, err := ECC([]int{1}, -1)
	assert.ErrorIs(t, err, ErrLevel)
	_, err = ECC([]int{1}, 9)
	assert.ErrorIs(t, err, ErrLevel)
	_, err = ECC([]int{1, 929}, 0)
	assert.ErrorIs(t, err, ErrCodeword)
	_, err = ECC([]int{-1}, 0)
	assert.ErrorIs(t, err, ErrCodeword)
}
