// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package pdf417 encodes PDF417 barcodes.

An Encoder splits data into compaction mode segments, adds padding, the
length codeword and error correction codewords, and lays the codewords
out in rows with row indicators and start and stop patterns.  The
resulting Code holds the codewords and the bar patterns of each row.
Renderers turn a Code into images and other formats.

	c, err := pdf417.Encode("HRVHUB30\n...", 6, 2)
	if err != nil {
		log.Fatal(err)
	}
	err = pdf417.NewImageRenderer().Render(w, c)

An Encoder is safe for concurrent use by multiple goroutines as long
as it is not reconfigured.
*/
package pdf417 // import "github.com/unixdj/pdf417"

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/unixdj/pdf417/coding"
	"github.com/unixdj/pdf417/split"
)

// A Level represents a PDF417 error correction (security) level.
type Level = coding.Level

// Encoder limits and defaults.
const (
	MinColumns     = 1
	MaxColumns     = 30
	DefaultColumns = 6

	MinLevel     = coding.MinLevel
	MaxLevel     = coding.MaxLevel
	DefaultLevel = Level(2)

	// MaxCodewords is the maximum number of codewords in a symbol,
	// including the length, padding and error correction codewords.
	MaxCodewords = coding.MaxCodeword

	// MaxRows is the maximum number of rows in a symbol.  Row
	// indicators of further rows exceed MaxCodeword.
	MaxRows = 90
)

var (
	ErrTooLong = errors.New("pdf417: data too long")
	ErrCharset = errors.New("pdf417: unsupported character set")
)

// RangeError represents a configuration value out of range.
type RangeError struct {
	Name     string // parameter
	Value    int    // offending value
	Min, Max int    // valid range
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("pdf417: %s must be between %d and %d, given %d",
		e.Name, e.Min, e.Max, e.Value)
}

// An Encoder encodes data as PDF417 codes.  Use NewEncoder to create
// an Encoder with default settings.
type Encoder struct {
	columns     int
	level       Level
	forceBinary bool
	split       split.Func
	charset     encoding.Encoding
	csName      string
}

// NewEncoder returns an Encoder with DefaultColumns data columns,
// DefaultLevel error correction and greedy splitting.
func NewEncoder() *Encoder {
	return &Encoder{
		columns: DefaultColumns,
		level:   DefaultLevel,
		split:   split.Greedy,
	}
}

// Columns returns the number of data columns.
func (e *Encoder) Columns() int { return e.columns }

// SetColumns sets the number of data columns.  If n is out of range,
// the setting is unchanged and SetColumns returns a *RangeError.
func (e *Encoder) SetColumns(n int) error {
	if n < MinColumns || n > MaxColumns {
		return &RangeError{"column count", n, MinColumns, MaxColumns}
	}
	e.columns = n
	return nil
}

// Level returns the error correction level.
func (e *Encoder) Level() Level { return e.level }

// SetLevel sets the error correction level.  If l is out of range,
// the setting is unchanged and SetLevel returns a *RangeError.
func (e *Encoder) SetLevel(l Level) error {
	if !l.IsValid() {
		return &RangeError{"security level", int(l), int(MinLevel), int(MaxLevel)}
	}
	e.level = l
	return nil
}

// ForceBinary reports whether all data is encoded in byte mode.
func (e *Encoder) ForceBinary() bool { return e.forceBinary }

// SetForceBinary sets whether all data is encoded in byte mode.
func (e *Encoder) SetForceBinary(b bool) { e.forceBinary = b }

// SetSplit sets the function splitting data into segments when
// ForceBinary is not set.  A nil f restores split.Greedy, which is
// compatible with other PDF417 encoders; split.Optimal produces
// smaller codes.
func (e *Encoder) SetSplit(f split.Func) {
	if f == nil {
		f = split.Greedy
	}
	e.split = f
}

// Charset returns the name of the character set data is converted to
// before encoding, or "" if data is encoded as is.
func (e *Encoder) Charset() string { return e.csName }

// SetCharset sets the character set UTF-8 data is converted to before
// encoding, by its WHATWG name or alias, such as "iso-8859-2".  An
// empty name disables conversion.
func (e *Encoder) SetCharset(name string) error {
	if name == "" {
		e.SetEncoding(nil)
		return nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrCharset, name)
	}
	e.SetEncoding(enc)
	return nil
}

// SetEncoding sets the encoding UTF-8 data is converted with before
// encoding.  A nil enc disables conversion.
func (e *Encoder) SetEncoding(enc encoding.Encoding) {
	e.charset, e.csName = enc, ""
	if enc != nil {
		if e.csName, _ = htmlindex.Name(enc); e.csName == "" {
			e.csName = fmt.Sprint(enc)
		}
	}
}

// segments converts and splits data.
func (e *Encoder) segments(data string) ([]coding.Segment, error) {
	if e.charset != nil {
		var err error
		if data, err = e.charset.NewEncoder().String(data); err != nil {
			return nil, fmt.Errorf("pdf417: %s: %w", e.csName, err)
		}
	}
	if e.forceBinary {
		return split.Bytes(data), nil
	}
	f := e.split
	if f == nil {
		f = split.Greedy
	}
	return f(data), nil
}

// EncodeData returns the codewords encoding data: the length
// codeword, data codewords, padding and error correction codewords.
// The number of codewords is a multiple of the number of columns.
// If the codewords exceed MaxCodewords or MaxRows rows, EncodeData
// returns ErrTooLong.
func (e *Encoder) EncodeData(data string) ([]int, error) {
	if e.columns < MinColumns {
		return nil, &RangeError{"column count", e.columns, MinColumns, MaxColumns}
	}
	segs, err := e.segments(data)
	if err != nil {
		return nil, err
	}
	cw := make([]int, 1, len(data)+e.level.CheckWords()+e.columns+1)
	if cw, err = coding.Encode(cw, segs...); err != nil {
		return nil, err
	}
	check := e.level.CheckWords()
	if n := (len(cw) + check) % e.columns; n != 0 {
		for i := n; i < e.columns; i++ {
			cw = append(cw, coding.PadCodeword)
		}
	}
	if n := len(cw) + check; n > MaxCodewords || n > MaxRows*e.columns {
		return nil, ErrTooLong
	}
	cw[0] = len(cw)
	ec, err := coding.ECC(cw, e.level)
	if err != nil {
		return nil, err
	}
	return append(cw, ec...), nil
}

// Encode returns a Code encoding data.
func (e *Encoder) Encode(data string) (*Code, error) {
	cw, err := e.EncodeData(data)
	if err != nil {
		return nil, err
	}
	cols := e.columns
	c := &Code{
		Codewords: cw,
		Codes:     make([][]int, len(cw)/cols),
		Rows:      len(cw) / cols,
		Columns:   cols,
		Level:     e.level,
	}
	for r := range c.Codes {
		cluster := r % coding.Clusters
		left, right := coding.Indicators(r, c.Rows, cols, e.level)
		row := make([]int, cols+4)
		row[0], row[cols+3] = coding.StartPattern, coding.StopPattern
		if row[1], err = coding.Pattern(cluster, left); err != nil {
			return nil, err
		}
		for i, w := range cw[r*cols : (r+1)*cols] {
			if row[i+2], err = coding.Pattern(cluster, w); err != nil {
				return nil, err
			}
		}
		if row[cols+2], err = coding.Pattern(cluster, right); err != nil {
			return nil, err
		}
		c.Codes[r] = row
	}
	return c, nil
}

// Encode returns a Code encoding data with the given number of
// columns and error correction level.
func Encode(data string, columns int, level Level) (*Code, error) {
	e := NewEncoder()
	if err := e.SetColumns(columns); err != nil {
		return nil, err
	}
	if err := e.SetLevel(level); err != nil {
		return nil, err
	}
	return e.Encode(data)
}
