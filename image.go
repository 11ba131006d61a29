// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdf417

import (
	"encoding/base64"
	"image"
	"image/color"
	"io"
	"strconv"

	"github.com/disintegration/imaging"
)

// Image renderer limits and defaults.
const (
	MinScale, MaxScale, DefaultScale       = 1, 20, 3
	MinRatio, MaxRatio, DefaultRatio       = 1, 10, 3
	MinPadding, MaxPadding, DefaultPadding = 0, 50, 20
	DefaultQuality                         = 95
)

var mimeTypes = map[imaging.Format]string{
	imaging.JPEG: "image/jpeg",
	imaging.PNG:  "image/png",
	imaging.GIF:  "image/gif",
	imaging.TIFF: "image/tiff",
	imaging.BMP:  "image/bmp",
}

// ImageRenderer renders raster images.  Each module is Scale pixels
// wide and Scale*Ratio pixels high.
type ImageRenderer struct {
	Format  imaging.Format // image format
	Scale   int            // module width in pixels
	Ratio   int            // module height to width ratio
	Padding int            // quiet zone in pixels
	Quality int            // JPEG quality, 1 to 100

	Color   color.Color // dark modules, black if nil
	BgColor color.Color // background, white if nil

	// Rotate turns the image counterclockwise by 90° Rotate times,
	// after flipping it horizontally if Flip is set.
	Rotate int
	Flip   bool

	// DataURL makes Render write a data URL with base64 encoded
	// image data instead of the image.
	DataURL bool
}

// NewImageRenderer returns an ImageRenderer writing PNG images with
// default settings.
func NewImageRenderer() *ImageRenderer {
	return &ImageRenderer{
		Format:  imaging.PNG,
		Scale:   DefaultScale,
		Ratio:   DefaultRatio,
		Padding: DefaultPadding,
		Quality: DefaultQuality,
	}
}

// Validate returns an OptionError if any option is out of range.
func (r *ImageRenderer) Validate() error {
	var e OptionError
	if _, ok := mimeTypes[r.Format]; !ok {
		e = append(e, "unsupported format "+strconv.Itoa(int(r.Format)))
	}
	e = e.checkRange("scale", r.Scale, MinScale, MaxScale)
	e = e.checkRange("ratio", r.Ratio, MinRatio, MaxRatio)
	e = e.checkRange("padding", r.Padding, MinPadding, MaxPadding)
	if r.Format == imaging.JPEG {
		e = e.checkRange("quality", r.Quality, 1, 100)
	}
	return e.err()
}

func (r *ImageRenderer) ContentType() string {
	if r.DataURL {
		return "text/plain"
	}
	return mimeTypes[r.Format]
}

func (r *ImageRenderer) colors() (fg, bg color.Color) {
	fg, bg = r.Color, r.BgColor
	if fg == nil {
		fg = color.Black
	}
	if bg == nil {
		bg = color.White
	}
	return
}

// Image returns the image of c.  The options are not validated.
func (r *ImageRenderer) Image(c *Code) image.Image {
	fg, bg := r.colors()
	src := c.paletted(bg, fg)
	b := src.Bounds()
	img := imaging.Resize(src, b.Dx()*r.Scale, b.Dy()*r.Scale*r.Ratio,
		imaging.NearestNeighbor)
	if r.Flip {
		img = imaging.FlipH(img)
	}
	switch r.Rotate & 3 {
	case 1:
		img = imaging.Rotate90(img)
	case 2:
		img = imaging.Rotate180(img)
	case 3:
		img = imaging.Rotate270(img)
	}
	if p := r.Padding; p > 0 {
		b = img.Bounds()
		img = imaging.PasteCenter(imaging.New(b.Dx()+2*p, b.Dy()+2*p, bg), img)
	}
	return img
}

func (r *ImageRenderer) Render(w io.Writer, c *Code) error {
	if err := r.Validate(); err != nil {
		return err
	}
	var opts []imaging.EncodeOption
	switch r.Format {
	case imaging.JPEG:
		opts = append(opts, imaging.JPEGQuality(r.Quality))
	case imaging.GIF:
		opts = append(opts, imaging.GIFNumColors(2))
	}
	img := r.Image(c)
	if !r.DataURL {
		return imaging.Encode(w, img, r.Format, opts...)
	}
	if _, err := io.WriteString(w, "data:"+mimeTypes[r.Format]+";base64,"); err != nil {
		return err
	}
	enc := base64.NewEncoder(base64.StdEncoding, w)
	if err := imaging.Encode(enc, img, r.Format, opts...); err != nil {
		return err
	}
	return enc.Close()
}
