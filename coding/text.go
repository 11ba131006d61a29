// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Text compaction encodes pairs of base 30 values, each value a
// character or a latch in one of four sub-modes.  Every Text segment
// starts in upper case.
const (
	upper = iota
	lower
	mixed
	punct
	subModes
)

// Sub-mode alphabets.  Mixed value 25 is the punctuation latch, and
// 0xff marks it here.
var alphabets = [subModes]string{
	upper: "ABCDEFGHIJKLMNOPQRSTUVWXYZ ",
	lower: "abcdefghijklmnopqrstuvwxyz ",
	mixed: "0123456789&\r\t,:#-.$/+%*=^\xff ",
	punct: ";<>@[\\]_`~!\r\t,:\n-.$/\"|*()?{}'",
}

// Latch sequences, by current and target sub-mode.
var latches = [subModes][subModes][]byte{
	upper: {lower: {27}, mixed: {28}, punct: {28, 25}},
	lower: {upper: {28, 28}, mixed: {28}, punct: {28, 25}},
	mixed: {upper: {28}, lower: {27}, punct: {25}},
	punct: {upper: {29}, lower: {29, 27}, mixed: {29, 28}},
}

// textPad fills the last pair of an odd number of values.
const textPad = 29

// textValue maps ASCII to values in each sub-mode, or -1.  textSub
// maps ASCII to the first sub-mode containing it, or -1.
var textValue, textSub = func() (v [subModes][128]int8, sub [128]int8) {
	for i := range sub {
		sub[i] = -1
	}
	for m, s := range alphabets {
		for i := range v[m] {
			v[m][i] = -1
		}
		for i := 0; i < len(s); i++ {
			if c := s[i]; c < 0x80 {
				v[m][c] = int8(i)
				if sub[c] < 0 {
					sub[c] = int8(m)
				}
			}
		}
	}
	return
}()

func isText(c byte) bool { return c < 0x80 && textSub[c] >= 0 }

// textValues returns the base 30 values encoding a valid string.
func textValues(s string) []byte {
	v := make([]byte, 0, len(s)+len(s)/4+1)
	sub := upper
	for i := 0; i < len(s); i++ {
		c := s[i]
		if textValue[sub][c] < 0 {
			next := int(textSub[c])
			v = append(v, latches[sub][next]...)
			sub = next
		}
		v = append(v, byte(textValue[sub][c]))
	}
	return v
}

func textLength(s string) int {
	return (len(textValues(s)) + 1) / 2
}

func encodeText(dst []int, s string) []int {
	v := textValues(s)
	if len(v)%2 != 0 {
		v = append(v, textPad)
	}
	for i := 0; i < len(v); i += 2 {
		dst = append(dst, int(v[i])*30+int(v[i+1]))
	}
	return dst
}
