// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdf417

import (
	"image"
	"image/color"
	"math/bits"
	"strings"
)

// A Code is an encoded PDF417 symbol.  A Code is not modified after
// Encode returns it.
type Code struct {
	// Codewords lists the length codeword, data codewords, padding
	// and error correction codewords, in row order.
	Codewords []int

	// Codes lists the bar patterns of each row: the start pattern,
	// the left row indicator, Columns data codewords, the right row
	// indicator and the stop pattern.  A set bit is a dark module;
	// the most significant set bit is the leftmost module.
	Codes [][]int

	Rows    int   // number of rows
	Columns int   // number of data columns
	Level   Level // error correction level
}

// PixelGrid returns the modules of each row, true for dark.  Each bar
// pattern is expanded to its natural bit length, most significant bit
// first: 17 modules for the start and codeword patterns, 18 for the
// stop pattern.
func (c *Code) PixelGrid() [][]bool {
	grid := make([][]bool, len(c.Codes))
	for y, row := range c.Codes {
		n := 0
		for _, p := range row {
			n += bits.Len(uint(p))
		}
		mods := make([]bool, 0, n)
		for _, p := range row {
			for i := bits.Len(uint(p)) - 1; i >= 0; i-- {
				mods = append(mods, p>>i&1 != 0)
			}
		}
		grid[y] = mods
	}
	return grid
}

// Width returns the number of modules in the widest row.
func (c *Code) Width() int {
	var w int
	for _, row := range c.Codes {
		n := 0
		for _, p := range row {
			n += bits.Len(uint(p))
		}
		w = max(w, n)
	}
	return w
}

// Black reports whether the module at column x of row y is dark.
// Modules outside the code are light.
func (c *Code) Black(x, y int) bool {
	if y < 0 || y >= len(c.Codes) || x < 0 {
		return false
	}
	for _, p := range c.Codes[y] {
		n := bits.Len(uint(p))
		if x < n {
			return p>>(n-1-x)&1 != 0
		}
		x -= n
	}
	return false
}

// Image returns an image of the code with one black or white pixel per
// module.
func (c *Code) Image() image.Image {
	return c.paletted(color.White, color.Black)
}

// paletted returns an image of the code with one pixel per module,
// coloured bg or fg.
func (c *Code) paletted(bg, fg color.Color) *image.Paletted {
	grid := c.PixelGrid()
	img := image.NewPaletted(image.Rect(0, 0, c.Width(), len(grid)),
		color.Palette{bg, fg})
	for y, row := range grid {
		pix := img.Pix[y*img.Stride:]
		for x, dark := range row {
			if dark {
				pix[x] = 1
			}
		}
	}
	return img
}

// String returns the code as UTF-8 text, one line per row, with full
// blocks for dark modules and a quiet zone of two modules.
func (c *Code) String() string {
	var b strings.Builder
	(&TextRenderer{Border: 2}).Render(&b, c)
	return b.String()
}
