// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdf417

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPixelGrid(t *testing.T) {
	c := &Code{Codes: [][]int{{5, 2}, {1}}}
	assert.Equal(t, [][]bool{
		{true, false, true, true, false},
		{true},
	}, c.PixelGrid())
	assert.Equal(t, 5, c.Width())

	for _, tt := range []struct {
		x, y int
		want bool
	}{
		{0, 0, true}, {1, 0, false}, {2, 0, true}, {3, 0, true},
		{4, 0, false}, {5, 0, false}, {-1, 0, false},
		{0, 1, true}, {1, 1, false}, {0, 2, false}, {0, -1, false},
	} {
		assert.Equal(t, tt.want, c.Black(tt.x, tt.y), "(%d,%d)", tt.x, tt.y)
	}

	img := c.Image()
	assert.Equal(t, image.Rect(0, 0, 5, 2), img.Bounds())
	assert.Equal(t, color.Black, img.At(0, 0))
	assert.Equal(t, color.White, img.At(1, 0))
	assert.Equal(t, color.White, img.At(4, 1))
}

func TestCodeString(t *testing.T) {
	c := &Code{Codes: [][]int{{1}}}
	blank := "     \n"
	assert.Equal(t, blank+blank+"  █  \n"+blank+blank, c.String())
}

func TestHUB3Grid(t *testing.T) {
	c := &Code{Codes: hub3Codes}
	grid := c.PixelGrid()
	require.Len(t, grid, 25)
	for y, row := range grid {
		require.Len(t, row, c.Width(), "row %d", y)
		// start pattern 11111111010101000
		assert.Equal(t, []bool{true, true, true, true, true, true, true, true, false},
			row[:9], "row %d", y)
		// stop pattern 111111101000101001
		assert.Equal(t, []bool{true, true, true, true, true, true, true, false},
			row[len(row)-18:len(row)-10], "row %d", y)
	}
}

func TestJSONRenderer(t *testing.T) {
	c := &Code{Codes: [][]int{{2, 1}, {1, 2}}}
	var b bytes.Buffer
	r := &JSONRenderer{}
	require.NoError(t, r.Render(&b, c))
	assert.Equal(t, "[[1,0,1],[1,1,0]]", b.String())
	assert.Equal(t, "application/json", r.ContentType())

	b.Reset()
	r.Reverse = true
	require.NoError(t, r.Render(&b, c))
	assert.Equal(t, "[[0,1,0],[0,0,1]]", b.String())
}

func TestTextRenderer(t *testing.T) {
	c := &Code{Codes: [][]int{{5}}}
	var b bytes.Buffer
	r := &TextRenderer{Dark: "#", Light: ".", Border: 1}
	require.NoError(t, r.Render(&b, c))
	assert.Equal(t, ".....\n.#.#.\n.....\n", b.String())

	b.Reset()
	r = &TextRenderer{}
	require.NoError(t, r.Render(&b, c))
	assert.Equal(t, "█ █\n", b.String())
	assert.Equal(t, "text/plain; charset=utf-8", r.ContentType())

	r.Border = -1
	var oe OptionError
	assert.ErrorAs(t, r.Render(&b, c), &oe)
}

func TestImageRenderer(t *testing.T) {
	c := &Code{Codes: hub3Codes}
	r := NewImageRenderer()
	assert.Equal(t, "image/png", r.ContentType())
	var b bytes.Buffer
	require.NoError(t, r.Render(&b, c))
	img, err := imaging.Decode(&b)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 171*3+40, 25*9+40), img.Bounds())
	assert.Equal(t, color.NRGBA{0xff, 0xff, 0xff, 0xff},
		color.NRGBAModel.Convert(img.At(0, 0)))
	assert.Equal(t, color.NRGBA{0, 0, 0, 0xff},
		color.NRGBAModel.Convert(img.At(20, 20)))

	r.Rotate = 1
	assert.Equal(t, image.Rect(0, 0, 25*9+40, 171*3+40), r.Image(c).Bounds())
	r.Rotate, r.Flip = 2, true
	assert.Equal(t, image.Rect(0, 0, 171*3+40, 25*9+40), r.Image(c).Bounds())
}

func TestImageRendererColors(t *testing.T) {
	c := &Code{Codes: [][]int{{2}}}
	r := &ImageRenderer{
		Format:  imaging.PNG,
		Scale:   1,
		Ratio:   1,
		Color:   color.NRGBA{0xff, 0, 0, 0xff},
		BgColor: color.NRGBA{0, 0, 0xff, 0xff},
	}
	img := r.Image(c)
	require.Equal(t, image.Rect(0, 0, 2, 1), img.Bounds())
	assert.Equal(t, color.NRGBA{0xff, 0, 0, 0xff}, color.NRGBAModel.Convert(img.At(0, 0)))
	assert.Equal(t, color.NRGBA{0, 0, 0xff, 0xff}, color.NRGBAModel.Convert(img.At(1, 0)))

	// a flipped code starts with the light module
	r.Flip = true
	img = r.Image(c)
	assert.Equal(t, color.NRGBA{0, 0, 0xff, 0xff}, color.NRGBAModel.Convert(img.At(0, 0)))
}

func TestImageFormats(t *testing.T) {
	c, err := Encode("PDF417", 2, 0)
	require.NoError(t, err)
	for f, mime := range mimeTypes {
		r := NewImageRenderer()
		r.Format = f
		assert.Equal(t, mime, r.ContentType())
		var b bytes.Buffer
		require.NoError(t, r.Render(&b, c), "%v", f)
		img, err := imaging.Decode(&b)
		require.NoError(t, err, "%v", f)
		assert.Equal(t, image.Rect(0, 0, c.Width()*3+40, c.Rows*9+40),
			img.Bounds(), "%v", f)
	}
}

func TestImageDataURL(t *testing.T) {
	c, err := Encode("PDF417", 2, 0)
	require.NoError(t, err)
	r := NewImageRenderer()
	r.DataURL = true
	assert.Equal(t, "text/plain", r.ContentType())
	var b bytes.Buffer
	require.NoError(t, r.Render(&b, c))
	const prefix = "data:image/png;base64,"
	s := b.String()
	require.True(t, strings.HasPrefix(s, prefix), s)
	data, err := base64.StdEncoding.DecodeString(s[len(prefix):])
	require.NoError(t, err)
	img, err := imaging.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, c.Width()*3+40, c.Rows*9+40), img.Bounds())
}

func TestImageValidate(t *testing.T) {
	r := NewImageRenderer()
	assert.NoError(t, r.Validate())
	r.Scale, r.Ratio = 0, 11
	err := r.Validate()
	assert.EqualError(t, err, "pdf417: invalid options: "+
		"scale must be between 1 and 20, given 0; "+
		"ratio must be between 1 and 10, given 11")
	var oe OptionError
	require.ErrorAs(t, err, &oe)
	assert.Len(t, oe, 2)

	r = NewImageRenderer()
	r.Format, r.Quality, r.Padding = imaging.JPEG, 0, 51
	assert.EqualError(t, r.Validate(), "pdf417: invalid options: "+
		"padding must be between 0 and 50, given 51; "+
		"quality must be between 1 and 100, given 0")

	r = NewImageRenderer()
	r.Format = imaging.Format(99)
	assert.EqualError(t, r.Validate(),
		"pdf417: invalid options: unsupported format 99")
	assert.Error(t, r.Render(&bytes.Buffer{}, &Code{}))
}

func TestSVGRenderer(t *testing.T) {
	c := &Code{Codes: [][]int{{13}}}
	r := &SVGRenderer{Scale: 1, Ratio: 1}
	assert.Equal(t, "image/svg+xml", r.ContentType())
	var b bytes.Buffer
	require.NoError(t, r.Render(&b, c))
	s := b.String()
	assert.Contains(t, s, `width="4" height="1" viewBox="0 0 4 1"`)
	assert.Contains(t, s, `<g fill="#000000">`)
	assert.Equal(t, 2, strings.Count(s, "<rect "))
	assert.Contains(t, s, `<rect x="0" y="0" width="2" height="1"/>`)
	assert.Contains(t, s, `<rect x="3" y="0" width="1" height="1"/>`)

	b.Reset()
	r = NewSVGRenderer()
	r.Color = color.NRGBA{0x12, 0x34, 0x56, 0x80}
	r.BgColor = color.White
	require.NoError(t, r.Render(&b, c))
	s = b.String()
	assert.Contains(t, s, `width="52" height="49"`)
	assert.Contains(t, s, `<rect width="52" height="49" fill="#ffffff"/>`)
	assert.Contains(t, s, `<g fill="#123456" fill-opacity="0.502">`)
	assert.Contains(t, s, `<rect x="29" y="20" width="3" height="9"/>`)

	r.Scale = 21
	var oe OptionError
	assert.ErrorAs(t, r.Render(&b, c), &oe)
}

func TestPBMRenderer(t *testing.T) {
	c := &Code{Codes: [][]int{{5}}}
	r := &PBMRenderer{Scale: 1, Ratio: 1}
	assert.Equal(t, "image/x-portable-bitmap", r.ContentType())
	var b bytes.Buffer
	require.NoError(t, r.Render(&b, c))
	assert.Equal(t, "P4\n3 1\n\xa0", b.String())

	b.Reset()
	r.Reverse = true
	require.NoError(t, r.Render(&b, c))
	assert.Equal(t, "P4\n3 1\n\x5f", b.String())

	b.Reset()
	r = &PBMRenderer{Scale: 2, Ratio: 1, Padding: 1}
	require.NoError(t, r.Render(&b, c))
	assert.Equal(t, "P4\n8 4\n\x00\x66\x66\x00", b.String())

	r = NewPBMRenderer()
	r.Ratio = 0
	var oe OptionError
	assert.ErrorAs(t, r.Render(&b, c), &oe)
}
