// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdf417

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// A Renderer writes a Code in some format.  Renderers do not modify
// the Code.
type Renderer interface {
	// ContentType returns the MIME type of the output.
	ContentType() string

	// Render writes c to w.
	Render(w io.Writer, c *Code) error
}

// OptionError lists invalid renderer options.
type OptionError []string

func (e OptionError) Error() string {
	return "pdf417: invalid options: " + strings.Join(e, "; ")
}

// checkRange appends a message to e if v is not between lo and hi.
func (e OptionError) checkRange(name string, v, lo, hi int) OptionError {
	if v < lo || v > hi {
		e = append(e, fmt.Sprintf("%s must be between %d and %d, given %d",
			name, lo, hi, v))
	}
	return e
}

func (e OptionError) err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// JSONRenderer writes the pixel grid as a JSON array of rows, each an
// array of 1 for dark and 0 for light modules.
type JSONRenderer struct {
	Reverse bool // 1 for light modules
}

func (*JSONRenderer) ContentType() string { return "application/json" }

func (r *JSONRenderer) Render(w io.Writer, c *Code) error {
	grid := c.PixelGrid()
	rows := make([][]int, len(grid))
	for y, row := range grid {
		rows[y] = make([]int, len(row))
		for x, dark := range row {
			if dark != r.Reverse {
				rows[y][x] = 1
			}
		}
	}
	b, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// TextRenderer writes the code as text, one line per row.
type TextRenderer struct {
	Dark   string // dark module, default "█"
	Light  string // light module, default " "
	Border int    // quiet zone in modules on each side
}

func (*TextRenderer) ContentType() string { return "text/plain; charset=utf-8" }

func (r *TextRenderer) Render(w io.Writer, c *Code) error {
	dark, light := r.Dark, r.Light
	if dark == "" {
		dark = "█"
	}
	if light == "" {
		light = " "
	}
	if r.Border < 0 {
		return OptionError{fmt.Sprintf("border must not be negative, given %d", r.Border)}
	}
	b := bufio.NewWriter(w)
	bord := r.Border
	width := c.Width()
	blank := strings.Repeat(light, width+2*bord) + "\n"
	for i := 0; i < bord; i++ {
		b.WriteString(blank)
	}
	edge := strings.Repeat(light, bord)
	for _, row := range c.PixelGrid() {
		b.WriteString(edge)
		for _, d := range row {
			if d {
				b.WriteString(dark)
			} else {
				b.WriteString(light)
			}
		}
		b.WriteString(strings.Repeat(light, width-len(row)))
		b.WriteString(edge + "\n")
	}
	for i := 0; i < bord; i++ {
		b.WriteString(blank)
	}
	return b.Flush()
}
