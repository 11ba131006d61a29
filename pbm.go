// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdf417

import (
	"bufio"
	"io"
	"strconv"
)

// PBMRenderer renders Portable Bit Map images, for use with netpbm.
// PBM has no colours other than black and white.
type PBMRenderer struct {
	Scale   int  // module width in pixels
	Ratio   int  // module height to width ratio
	Padding int  // quiet zone in pixels
	Reverse bool // white modules on black
}

// NewPBMRenderer returns a PBMRenderer with default settings.
func NewPBMRenderer() *PBMRenderer {
	return &PBMRenderer{
		Scale:   DefaultScale,
		Ratio:   DefaultRatio,
		Padding: DefaultPadding,
	}
}

// Validate returns an OptionError if any option is out of range.
func (r *PBMRenderer) Validate() error {
	var e OptionError
	e = e.checkRange("scale", r.Scale, MinScale, MaxScale)
	e = e.checkRange("ratio", r.Ratio, MinRatio, MaxRatio)
	e = e.checkRange("padding", r.Padding, MinPadding, MaxPadding)
	return e.err()
}

func (*PBMRenderer) ContentType() string { return "image/x-portable-bitmap" }

func (r *PBMRenderer) Render(w io.Writer, c *Code) error {
	if err := r.Validate(); err != nil {
		return err
	}
	grid := c.PixelGrid()
	scale, pad := r.Scale, r.Padding
	width := c.Width()*scale + 2*pad
	height := len(grid)*scale*r.Ratio + 2*pad
	b := bufio.NewWriter(w)
	if _, err := b.WriteString("P4\n" + strconv.Itoa(width) + " " +
		strconv.Itoa(height) + "\n"); err != nil {
		return err
	}
	row := make([]byte, (width+7)/8)
	var white byte
	if r.Reverse {
		white = 255
	}
	fill := func() {
		for i := range row {
			row[i] = white
		}
	}
	fill()
	for i := 0; i < pad; i++ {
		if _, err := b.Write(row); err != nil {
			return err
		}
	}
	for _, mods := range grid {
		fill()
		x := pad
		for _, dark := range mods {
			if dark {
				for i := x; i < x+scale; i++ {
					row[i>>3] ^= 0x80 >> (i & 7)
				}
			}
			x += scale
		}
		for i := 0; i < scale*r.Ratio; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	fill()
	for i := 0; i < pad; i++ {
		if _, err := b.Write(row); err != nil {
			return err
		}
	}
	return b.Flush()
}
