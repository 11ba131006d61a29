// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"

	"github.com/unixdj/pdf417"
	"github.com/unixdj/pdf417/split"
)

var g = struct {
	scale    int          // module width in pixels or points
	ratio    int          // module height to width ratio
	border   int          // quiet zone, or -1 for default
	quality  int          // JPEG quality
	cols     int          // data columns
	lev      pdf417.Level // error correction level
	fn       string       // filename
	format   int          // output file format
	rev      bool         // reverse colours
	bg, fg   rgba         // colour
	colSet   bool         // colour set
	rot      int          // counterclockwise quarter turns after flip
	flip     bool         // flip horizontally
	byteOnly bool         // byte mode only
	optimal  bool         // optimal split
	upper    bool         // uppercase
	verbose  bool         // print code information
	charset  string       // character set
}{
	bg: rgba{0xff, 0xff, 0xff, 0xff},
	fg: rgba{0x00, 0x00, 0x00, 0xff},
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	prog := cl.Program()
	ul := make([]string, 1, 4)
	ul[0] = cl.UsageLine() + " [string ...]"
	ml := max(70-len("Usage: ")-1-len(prog), 0)
	for i := 0; len(ul[i]) > ml; i++ {
		s := ul[i]
		n := ml - 1
		for n > 0 && (s[n] != ' ' || s[n+1] != '[') {
			n--
		}
		ul = append(ul, s[n+1:])
		ul[i] = s[:max(n, 0)]
		ml = 60
	}
	fmt.Fprint(w, "PDF417 barcode generator\nUsage: ", prog, " ",
		strings.Join(ul, "\n          "), `
If no string is given, data is read from standard input and the final
newline is stripped.  Defaults: 6 columns, level 2, no character set
conversion, greedy split into compaction modes.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`pdf417 version 0.1.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2024 Vadim Vygonets`)
	os.Exit(0)
}

func flip() {
	g.flip = !g.flip
	g.rot = -g.rot & 3
}

func rotate() {
	g.rot = (g.rot + 1) & 3
}

type rgba struct {
	R, G, B, A uint8
}

func (c *rgba) String() string {
	if *c == (rgba{0x00, 0x00, 0x00, 0xff}) {
		return "black"
	} else if *c == (rgba{0xff, 0xff, 0xff, 0xff}) {
		return "white"
	} else if c.A == 0xff {
		return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
	} else {
		return fmt.Sprintf("%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
}

func (c *rgba) Set(s string, _ getopt.Option) error {
	g.colSet = true
	var ok bool
	if *c, ok = rgb[strings.ToLower(strings.ReplaceAll(s, " ", ""))]; ok {
		return nil
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("%q: bad colour spec", s)
	}
	switch len(s) {
	case 3:
		n = n<<4 | 0xf
		fallthrough
	case 4:
		var nn uint64
		for i := 0; i < 4; i++ {
			nn <<= 8
			nn |= n >> 12 & 0xf * 0x11
			n <<= 4
		}
		n = nn
	case 6:
		n = n<<8 | 0xff
	case 8:
	default:
		return fmt.Errorf("%q: bad colour spec", s)
	}
	c.R, c.G, c.B, c.A = uint8(n>>24), uint8(n>>16), uint8(n>>8), uint8(n)
	return nil
}

var formats = []string{
	"png", "pngi", "jpeg", "jpegi", "gif", "gifi", "tiff", "tiffi",
	"bmp", "bmpi", "pbm", "pbmi", "eps", "epsi", "svg", "svgi",
	"utf8", "utf8i", "ascii", "asciii", "json", "jsoni",
}

// rasterFormats lists the formats preceding typePBM in formats.
var rasterFormats = [...]imaging.Format{
	imaging.PNG, imaging.JPEG, imaging.GIF, imaging.TIFF, imaging.BMP,
}

const (
	typePBM = len(rasterFormats) + iota
	typeEPS
	typeSVG
	typeUTF8
	typeASCII
	typeJSON
)

// extType returns the output type matching the suffix of fn, or "".
func extType(fn string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(fn), "."))
	if f, err := imaging.FormatFromExtension(ext); err == nil {
		return strings.ToLower(f.String())
	}
	switch ext {
	case "pbm", "eps", "svg", "json":
		return ext
	case "txt":
		return "utf8"
	}
	return ""
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.FlagLong(&g.bg, "background", 'B', `background colour; see -F`,
		"RGB[A]|name")
	getopt.FlagLong(&g.fg, "foreground", 'F', `foreground colour `+
		`as 3, 4, 6 or 8 hex digits or X11 rgb.txt colour name; `+
		`only for raster types, svg[i] and eps[i]`, "RGB[A]|name")
	getopt.Flag(opt(flip), 'f', `flip code horizontally; `+
		`to flip vertically, use "-frr"`).SetFlag()
	getopt.Flag(opt(rotate), 'r', `rotate code 90° counterclockwise; `+
		`-r and -f may be given multiple times, `+
		`order matters: "-fr" = "-rfrr" = "-rrrf"; `+
		`only for raster types`).SetFlag()
	getopt.Flag(&g.byteOnly, 'b', "encode entire data in byte mode")
	getopt.Flag(&g.optimal, 'O', "split data into compaction modes "+
		"optimally rather than greedily; produces smaller codes")
	getopt.Flag(&g.charset, 'e', "convert input to the given "+
		`character set, e.g. "iso-8859-2"`, "charset")
	getopt.Flag(&g.upper, 'i', `ignore case, convert input to uppercase`)
	getopt.Flag(&g.verbose, 'v', "print code size to standard error")
	getopt.Flag(&g.border, 'm', `quiet zone pixels `+
		`(type eps[i]: points; utf8[i], ascii[i]: modules) `+
		`[20 (text: 2)]`, "margin")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	cols := getopt.Unsigned('c', pdf417.DefaultColumns,
		&getopt.UnsignedLimit{0, 8, pdf417.MinColumns, pdf417.MaxColumns},
		"number of data columns", "cols")
	lev := getopt.Unsigned('l', uint64(pdf417.DefaultLevel),
		&getopt.UnsignedLimit{0, 8, uint64(pdf417.MinLevel), uint64(pdf417.MaxLevel)},
		"error correction level, lowest to highest", "0-8")
	scale := getopt.Unsigned('s', pdf417.DefaultScale,
		&getopt.UnsignedLimit{0, 8, pdf417.MinScale, pdf417.MaxScale},
		`image pixels (type eps[i]: points) per module width; `+
			`ignored for types utf8[i], ascii[i] and json[i]`, "scale")
	ratio := getopt.Unsigned('R', pdf417.DefaultRatio,
		&getopt.UnsignedLimit{0, 8, pdf417.MinRatio, pdf417.MaxRatio},
		"module height to width ratio", "ratio")
	quality := getopt.Unsigned('q', pdf417.DefaultQuality,
		&getopt.UnsignedLimit{0, 8, 1, 100},
		"JPEG quality", "quality")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`if not given, the type is guessed from the -o filename; `+
		`otherwise, if standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	getopt.Parse()
	g.cols = int(*cols)
	g.lev = pdf417.Level(*lev)
	g.scale = int(*scale)
	g.ratio = int(*ratio)
	g.quality = int(*quality)
	if !getopt.IsSet('m') {
		g.border = -1
	}
	if g.fn == "-" {
		g.fn = ""
	}
	if *ff == "" {
		switch {
		case extType(g.fn) != "":
			*ff = extType(g.fn)
		case !fno.Seen() && isatty.IsTerminal(os.Stdout.Fd()):
			*ff = "utf8"
		default:
			*ff = "png"
		}
	}
	for i, v := range formats {
		if *ff == v {
			g.format = i >> 1
			g.rev = i&1 != 0
			break
		}
	}
	if (g.rot != 0 || g.flip) && g.format >= len(rasterFormats) {
		fmt.Fprintln(os.Stderr, "-r and -f require a raster type")
		usage()
	}
}

func main() {
	log.SetFlags(0)
	parseFlags()

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}
	if g.upper {
		s = strings.ToUpper(s)
	}

	e := pdf417.NewEncoder()
	if err := e.SetColumns(g.cols); err != nil {
		log.Fatalln(err)
	}
	if err := e.SetLevel(g.lev); err != nil {
		log.Fatalln(err)
	}
	if err := e.SetCharset(g.charset); err != nil {
		log.Fatalln(err)
	}
	e.SetForceBinary(g.byteOnly)
	if g.optimal {
		e.SetSplit(split.Optimal)
	}
	c, err := e.Encode(s)
	if err != nil {
		log.Fatalln(err)
	}
	if g.verbose {
		log.Printf("%d rows, %d columns, level %d, %d codewords, %d data",
			c.Rows, c.Columns, c.Level, len(c.Codewords), c.Codewords[0])
	}
	write(c)
}

func write(c *pdf417.Code) {
	open := g.fn != ""
	var w = os.Stdout
	if open {
		var err error
		if w, err = os.OpenFile(g.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			log.Fatalln(err)
		}
	}
	err := renderer().Render(w, c)
	if open && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}

// margin returns the quiet zone set by -m, or def.
func margin(def int) int {
	if g.border >= 0 {
		return g.border
	}
	return def
}

// renderer returns the renderer for the output format.
func renderer() pdf417.Renderer {
	bg, fg := g.bg, g.fg
	if g.rev {
		bg, fg = fg, bg
	}
	if g.format < len(rasterFormats) {
		return &pdf417.ImageRenderer{
			Format:  rasterFormats[g.format],
			Scale:   g.scale,
			Ratio:   g.ratio,
			Padding: margin(pdf417.DefaultPadding),
			Quality: g.quality,
			Color:   color.NRGBA(fg),
			BgColor: color.NRGBA(bg),
			Rotate:  g.rot,
			Flip:    g.flip,
		}
	}
	switch g.format {
	case typePBM:
		return &pdf417.PBMRenderer{
			Scale:   g.scale,
			Ratio:   g.ratio,
			Padding: margin(pdf417.DefaultPadding),
			Reverse: g.rev,
		}
	case typeEPS:
		return &epsRenderer{
			scale:  g.scale,
			ratio:  g.ratio,
			border: margin(pdf417.DefaultPadding),
			bg:     bg,
			fg:     fg,
			fill:   g.rev || g.colSet,
		}
	case typeSVG:
		r := &pdf417.SVGRenderer{
			Scale:   g.scale,
			Ratio:   g.ratio,
			Padding: margin(pdf417.DefaultPadding),
			Color:   color.NRGBA(fg),
		}
		if g.rev || g.colSet {
			r.BgColor = color.NRGBA(bg)
		}
		return r
	case typeUTF8:
		r := &pdf417.TextRenderer{Dark: "█", Light: " ", Border: margin(2)}
		if g.rev {
			r.Dark, r.Light = r.Light, r.Dark
		}
		return r
	case typeASCII:
		r := &pdf417.TextRenderer{Dark: "#", Light: " ", Border: margin(2)}
		if g.rev {
			r.Dark, r.Light = r.Light, r.Dark
		}
		return r
	}
	return &pdf417.JSONRenderer{Reverse: g.rev}
}

// epsRenderer renders Encapsulated PostScript, stroking a line for
// each horizontal run of dark modules.
type epsRenderer struct {
	scale, ratio, border int
	bg, fg               rgba
	fill                 bool // paint the background
}

func (*epsRenderer) ContentType() string { return "application/postscript" }

func psColor(c rgba) string {
	return fmt.Sprintf("%.3g %.3g %.3g",
		float64(c.R)/0xff, float64(c.G)/0xff, float64(c.B)/0xff)
}

func (r *epsRenderer) Render(w io.Writer, c *pdf417.Code) error {
	sx, sy, bord := r.scale, r.scale*r.ratio, r.border
	cols, rows := c.Width(), len(c.Codes)
	width, height := cols*sx+2*bord, rows*sy+2*bord
	b := bufio.NewWriter(w)
	fmt.Fprintf(b, `%%!PS-Adobe-2.0 EPSF-2.0
%%%%Creator: pdf417 https://github.com/unixdj/pdf417
%%%%Title: PDF417 Code
%%%%BoundingBox: 0 0 %d %d
%%%%EndComments
%%%%EndProlog
<< >> begin
gsave
`, width, height)
	if r.fill {
		fmt.Fprintf(b, `%s setrgbcolor
newpath 0 0 moveto %d 0 rlineto 0 %d rlineto %d 0 rlineto closepath fill
`, psColor(r.bg), width, height, -width)
	}
	fmt.Fprintf(b, `%s setrgbcolor
%d %g translate
%d %d neg scale
/row 0 def
/p { 0 rmoveto 0 rlineto } def
/r { 0 row 1 add dup /row exch def moveto } def
newpath 0 0 moveto
`, psColor(r.fg), bord, float64(height-bord)-float64(sy)/2, sx, sy)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; {
			s := x
			for x < cols && !c.Black(x, y) {
				x++
			}
			if x == cols {
				break
			}
			start := x
			for x < cols && c.Black(x, y) {
				x++
			}
			fmt.Fprintf(b, "%d %d p ", x-start, start-s)
		}
		fmt.Fprintln(b, "r")
	}
	b.WriteString("stroke grestore\nend\n%%Trailer\n")
	return b.Flush()
}
