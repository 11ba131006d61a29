// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdf417

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
)

// SVGRenderer renders Scalable Vector Graphics, drawing a rectangle
// for each horizontal run of dark modules.
type SVGRenderer struct {
	Scale   int         // module width in user units
	Ratio   int         // module height to width ratio
	Padding int         // quiet zone in user units
	Color   color.Color // dark modules, black if nil
	BgColor color.Color // background, none if nil
}

// NewSVGRenderer returns an SVGRenderer with default settings.
func NewSVGRenderer() *SVGRenderer {
	return &SVGRenderer{
		Scale:   DefaultScale,
		Ratio:   DefaultRatio,
		Padding: DefaultPadding,
	}
}

// Validate returns an OptionError if any option is out of range.
func (r *SVGRenderer) Validate() error {
	var e OptionError
	e = e.checkRange("scale", r.Scale, MinScale, MaxScale)
	e = e.checkRange("ratio", r.Ratio, MinRatio, MaxRatio)
	e = e.checkRange("padding", r.Padding, MinPadding, MaxPadding)
	return e.err()
}

func (*SVGRenderer) ContentType() string { return "image/svg+xml" }

// svgColor returns the fill attributes for c.
func svgColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	s := fmt.Sprintf(`fill="#%02x%02x%02x"`, n.R, n.G, n.B)
	if n.A != 0xff {
		s += fmt.Sprintf(` fill-opacity="%.3g"`, float64(n.A)/0xff)
	}
	return s
}

func (r *SVGRenderer) Render(w io.Writer, c *Code) error {
	if err := r.Validate(); err != nil {
		return err
	}
	fg := r.Color
	if fg == nil {
		fg = color.Black
	}
	sx, sy, pad := r.Scale, r.Scale*r.Ratio, r.Padding
	width := c.Width()*sx + 2*pad
	height := len(c.Codes)*sy + 2*pad
	b := bufio.NewWriter(w)
	fmt.Fprintf(b, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="%d" height="%d" viewBox="0 0 %d %d">
`, width, height, width, height)
	if r.BgColor != nil {
		fmt.Fprintf(b, "<rect width=\"%d\" height=\"%d\" %s/>\n",
			width, height, svgColor(r.BgColor))
	}
	fmt.Fprintf(b, "<g %s>\n", svgColor(fg))
	for y, row := range c.PixelGrid() {
		for x := 0; x < len(row); {
			for x < len(row) && !row[x] {
				x++
			}
			if x == len(row) {
				break
			}
			start := x
			for x < len(row) && row[x] {
				x++
			}
			fmt.Fprintf(b, "<rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\"/>\n",
				pad+start*sx, pad+y*sy, (x-start)*sx, sy)
		}
	}
	b.WriteString("</g>\n</svg>\n")
	return b.Flush()
}
