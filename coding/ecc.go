// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "strconv"

//go:generate sh -c "go run gen.go | gofmt >tables.go"

// A Level represents a PDF417 error correction (security) level.
// Level l adds 2^(l+1) error correction codewords.
type Level int

const (
	MinLevel Level = 0
	MaxLevel Level = 8
)

func (l Level) String() string { return strconv.Itoa(int(l)) }

// IsValid reports whether l is a valid level.
func (l Level) IsValid() bool { return MinLevel <= l && l <= MaxLevel }

// CheckWords returns the number of error correction codewords at
// level l, or 0 if l is invalid.
func (l Level) CheckWords() int {
	if !l.IsValid() {
		return 0
	}
	return 2 << l
}

// ECC returns the error correction codewords for data at level l.
// The codewords are the negated remainder of dividing data times x^k
// by the generator polynomial, highest degree first.
func ECC(data []int, l Level) ([]int, error) {
	if !l.IsValid() {
		return nil, ErrLevel
	}
	g := generators[l]
	k := len(g)
	ec := make([]int, k)
	for _, d := range data {
		if uint(d) > MaxCodeword {
			return nil, ErrCodeword
		}
		t := (d + ec[0]) % NumCodewords
		copy(ec, ec[1:])
		ec[k-1] = 0
		for j := range ec {
			ec[j] = (ec[j] + NumCodewords - t*int(g[k-1-j])%NumCodewords) %
				NumCodewords
		}
	}
	for j, v := range ec {
		if v != 0 {
			ec[j] = NumCodewords - v
		}
	}
	return ec, nil
}
