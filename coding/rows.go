// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Indicators returns the left and right row indicator codewords of
// row in a symbol of the given number of rows and data columns at
// level l.  Each indicator carries one of three facts depending on
// the row's cluster: the number of row triples, the number of
// columns, or the level and the row count remainder.
func Indicators(row, rows, cols int, l Level) (left, right int) {
	r := (rows - 1) / 3
	c := cols - 1
	s := int(l)*3 + (rows-1)%3
	base := 30 * (row / 3)
	switch row % Clusters {
	case 0:
		left, right = r, c
	case 1:
		left, right = s, r
	default:
		left, right = c, s
	}
	return base + left, base + right
}
