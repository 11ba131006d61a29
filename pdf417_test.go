// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdf417

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/unixdj/pdf417/coding"
	"github.com/unixdj/pdf417/split"
)

func TestDefaultsAndAccessors(t *testing.T) {
	e := NewEncoder()
	assert.Equal(t, DefaultColumns, e.Columns())
	assert.Equal(t, DefaultLevel, e.Level())
	assert.False(t, e.ForceBinary())
	assert.Empty(t, e.Charset())

	require.NoError(t, e.SetColumns(20))
	assert.Equal(t, 20, e.Columns())
	require.NoError(t, e.SetLevel(6))
	assert.Equal(t, Level(6), e.Level())
	e.SetForceBinary(true)
	assert.True(t, e.ForceBinary())
}

func TestInvalidColumns(t *testing.T) {
	e := NewEncoder()
	for _, n := range []int{0, -1, 31, 1000} {
		err := e.SetColumns(n)
		var re *RangeError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, &RangeError{"column count", n, 1, 30}, re)
		assert.Equal(t, DefaultColumns, e.Columns())
	}
	assert.EqualError(t, e.SetColumns(1000),
		"pdf417: column count must be between 1 and 30, given 1000")
}

func TestInvalidLevel(t *testing.T) {
	e := NewEncoder()
	for _, l := range []Level{-1, 9, 1000} {
		err := e.SetLevel(l)
		var re *RangeError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, int(l), re.Value)
		assert.Equal(t, DefaultLevel, e.Level())
	}
	assert.EqualError(t, e.SetLevel(1000),
		"pdf417: security level must be between 0 and 8, given 1000")
}

func TestEncodeData(t *testing.T) {
	tests := []struct {
		data  string
		cols  int
		level Level
		want  []int
	}{
		{"ABC123", 6, 2, []int{
			10, 1, 89, 902, 1, 223, 900, 900, 900, 900,
			667, 214, 489, 629, 315, 357, 151, 46,
		}},
		{"Hello, World!", 3, 0, []int{
			13, 237, 131, 344, 853, 808, 687, 437, 333, 865, 329,
			900, 900, 384, 703,
		}},
		{"", 6, 2, []int{
			4, 900, 900, 900, 43, 159, 162, 484, 8, 445, 899, 720,
		}},
	}
	for _, tt := range tests {
		e := NewEncoder()
		require.NoError(t, e.SetColumns(tt.cols))
		require.NoError(t, e.SetLevel(tt.level))
		got, err := e.EncodeData(tt.data)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%q", tt.data)
	}
}

func TestEncodeHUB3(t *testing.T) {
	c, err := Encode(hub3Data, DefaultColumns, DefaultLevel)
	require.NoError(t, err)
	assert.Equal(t, hub3Codewords, c.Codewords)
	assert.Equal(t, hub3Codes, c.Codes)
	assert.Equal(t, 25, c.Rows)
	assert.Equal(t, 6, c.Columns)
	assert.Equal(t, Level(2), c.Level)
	assert.Equal(t, 17*9+18, c.Width())
}

func TestEncodeGrid(t *testing.T) {
	c, err := Encode("PDF417 test\x80x", 4, 3)
	require.NoError(t, err)
	require.Len(t, c.Codes, c.Rows)
	assert.Equal(t, c.Rows*c.Columns, len(c.Codewords))
	for r, row := range c.Codes {
		require.Len(t, row, c.Columns+4, "row %d", r)
		assert.Equal(t, coding.StartPattern, row[0], "row %d", r)
		assert.Equal(t, coding.StopPattern, row[len(row)-1], "row %d", r)
		for i, w := range c.Codewords[r*c.Columns : (r+1)*c.Columns] {
			p, err := coding.Pattern(r%3, w)
			require.NoError(t, err)
			assert.Equal(t, p, row[i+2], "row %d column %d", r, i)
		}
	}
}

func TestForceBinary(t *testing.T) {
	e := NewEncoder()
	e.SetForceBinary(true)
	cw, err := e.EncodeData("ABC123")
	require.NoError(t, err)
	assert.Equal(t, []int{coding.ByteLatch6, 109, 326, 366, 538, 363}, cw[1:7])
	assert.Zero(t, len(cw)%6)

	cw, err = e.EncodeData("ABC12")
	require.NoError(t, err)
	assert.Equal(t, []int{coding.ByteLatch, 'A', 'B', 'C', '1', '2'}, cw[1:7])
}

func TestSplit(t *testing.T) {
	e := NewEncoder()
	e.SetSplit(split.Optimal)
	require.NoError(t, e.SetColumns(1))
	require.NoError(t, e.SetLevel(0))
	cw, err := e.EncodeData("A1B")
	require.NoError(t, err)
	assert.Equal(t, 4, cw[0])
	assert.Len(t, cw, 6)

	e.SetSplit(nil)
	cw, err = e.EncodeData("A1B")
	require.NoError(t, err)
	assert.Equal(t, 6, cw[0])
	assert.Len(t, cw, 8)
}

func TestCharset(t *testing.T) {
	e := NewEncoder()
	cw, err := e.EncodeData("ć")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 901, 196, 135}, cw[:4])

	require.NoError(t, e.SetCharset("ISO-8859-2"))
	assert.Equal(t, "iso-8859-2", e.Charset())
	cw, err = e.EncodeData("ć")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 901, 0xe6, 900}, cw[:4])

	_, err = e.EncodeData("€")
	assert.Error(t, err)

	e.SetEncoding(charmap.Windows1250)
	cw, err = e.EncodeData("€")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 901, 0x80, 900}, cw[:4])

	require.NoError(t, e.SetCharset(""))
	assert.Empty(t, e.Charset())

	err = e.SetCharset("no-such-charset")
	assert.ErrorIs(t, err, ErrCharset)
}

func TestTooLong(t *testing.T) {
	_, err := Encode(strings.Repeat("\x80", 1200), 30, 0)
	assert.ErrorIs(t, err, ErrTooLong)

	_, err = Encode(strings.Repeat("1", 2000), 10, 8)
	assert.ErrorIs(t, err, ErrTooLong)

	// The length, 925 data codewords and 2 check words fill 58 rows
	// of 16 columns.
	c, err := Encode(strings.Repeat("\x80", 1108), 16, 0)
	require.NoError(t, err)
	assert.Len(t, c.Codewords, MaxCodewords)
	assert.Equal(t, 58, c.Rows)
	_, err = Encode(strings.Repeat("\x80", 1109), 16, 0)
	assert.ErrorIs(t, err, ErrTooLong)
}

func TestMaxRows(t *testing.T) {
	// 87 text codewords, the length and 2 check words.
	c, err := Encode(strings.Repeat("A", 174), 1, 0)
	require.NoError(t, err)
	assert.Equal(t, MaxRows, c.Rows)
	left, right := coding.Indicators(MaxRows-1, MaxRows, 1, 0)
	assert.LessOrEqual(t, max(left, right), MaxCodewords)

	for _, n := range []int{176, 178, 184, 240} {
		_, err = Encode(strings.Repeat("A", n), 1, 0)
		assert.ErrorIs(t, err, ErrTooLong, "%d bytes", n)
	}
	_, err = Encode(strings.Repeat("A", 240), 2, 0)
	assert.NoError(t, err)
}

func TestEncodeErrors(t *testing.T) {
	_, err := Encode("x", 0, 2)
	var re *RangeError
	assert.ErrorAs(t, err, &re)
	_, err = Encode("x", 6, 9)
	assert.ErrorAs(t, err, &re)

	var e Encoder
	_, err = e.Encode("x")
	assert.ErrorAs(t, err, &re)
}
