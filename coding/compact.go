// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Numeric compaction encodes groups of up to numGroup digits, each
// prefixed with digit 1, as base 900 numbers.  Byte compaction
// encodes groups of 6 bytes as 5 base 900 digits, and the remaining
// bytes as themselves.
const (
	numGroup  = 44
	byteGroup = 6
	byteWords = 5
)

func isDigit(c byte) bool { return c-'0' < 10 }

// rebase appends to dst the base 900 digits of the number whose
// digits in the given base are src, most significant first.  The
// result is padded with leading zeros to width digits.
func rebase(dst []int, src []byte, base, width int) []int {
	start := len(dst)
	for _, d := range src {
		carry := int(d)
		for i := len(dst) - 1; i >= start; i-- {
			x := dst[i]*base + carry
			dst[i], carry = x%900, x/900
		}
		for ; carry != 0; carry /= 900 {
			dst = insert0(dst, start)
			dst[start] = carry % 900
		}
	}
	for len(dst)-start < width {
		dst = insert0(dst, start)
	}
	return dst
}

// insert0 inserts a zero into s at index i.
func insert0(s []int, i int) []int {
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = 0
	return s
}

// numLength lists the number of codewords encoding n digits, for n
// up to numGroup.
var numLength = func() (t [numGroup + 1]int) {
	var digits [numGroup + 1]byte
	digits[0] = 1
	for n := 1; n <= numGroup; n++ {
		t[n] = len(rebase(nil, digits[:n+1], 10, 0))
	}
	return
}()

func numericLength(s string) int {
	return len(s)/numGroup*numLength[numGroup] + numLength[len(s)%numGroup]
}

func encodeNumeric(dst []int, s string) []int {
	var digits [numGroup + 1]byte
	digits[0] = 1
	for len(s) != 0 {
		n := min(len(s), numGroup)
		for i := 0; i < n; i++ {
			digits[i+1] = s[i] - '0'
		}
		dst = rebase(dst, digits[:n+1], 10, 0)
		s = s[n:]
	}
	return dst
}

func byteLength(s string) int {
	return len(s)/byteGroup*byteWords + len(s)%byteGroup
}

func encodeByte(dst []int, s string) []int {
	var b [byteGroup]byte
	for ; len(s) >= byteGroup; s = s[byteGroup:] {
		copy(b[:], s)
		dst = rebase(dst, b[:], 256, byteWords)
	}
	for i := 0; i < len(s); i++ {
		dst = append(dst, int(s[i]))
	}
	return dst
}
