// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level PDF417 coding details.
package coding // import "github.com/unixdj/pdf417/coding"

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrLevel    = errors.New("pdf417: invalid level")
	ErrCodeword = errors.New("pdf417: codeword out of range")
)

// Codeword values.
const (
	TextLatch    = 900 // latch to text compaction
	ByteLatch    = 901 // latch to byte compaction
	NumericLatch = 902 // latch to numeric compaction
	ByteLatch6   = 924 // latch to byte compaction, length multiple of 6

	PadCodeword  = 900 // padding
	MaxCodeword  = 928
	NumCodewords = MaxCodeword + 1
)

// A Mode is a PDF417 compaction mode.
type Mode int8

// Compaction modes, in the order the splitter tries them.
const (
	Numeric Mode = iota // digits
	Text                // printable ASCII, tab, line feed, carriage return
	Byte                // any byte
	Modes               // number of modes
)

type modeEncoder struct {
	name  string
	latch int // switch codeword

	// accepts reports whether the mode can encode the byte.
	accepts func(byte) bool

	// length returns the number of codewords encoding a valid string,
	// excluding the switch codeword.
	length func(string) int

	// encode appends the codewords encoding a valid string to dst.
	encode func(dst []int, s string) []int
}

var modes = [Modes]modeEncoder{
	Numeric: {
		name:    "numeric",
		latch:   NumericLatch,
		accepts: isDigit,
		length:  numericLength,
		encode:  encodeNumeric,
	},
	Text: {
		name:    "text",
		latch:   TextLatch,
		accepts: isText,
		length:  textLength,
		encode:  encodeText,
	},
	Byte: {
		name:    "byte",
		latch:   ByteLatch,
		accepts: func(byte) bool { return true },
		length:  byteLength,
		encode:  encodeByte,
	},
}

func getMode(mode Mode) *modeEncoder {
	if mode >= 0 && mode < Modes {
		return &modes[mode]
	}
	return nil
}

func (mode Mode) String() string {
	if m := getMode(mode); m != nil {
		return m.name
	}
	return strconv.Itoa(int(mode))
}

// Accepts reports whether mode can encode c.
func (mode Mode) Accepts(c byte) bool {
	m := getMode(mode)
	return m != nil && m.accepts(c)
}

// SwitchCode returns the codeword switching to mode for encoding s.
// Byte mode uses ByteLatch6 for non-empty strings whose length is a
// multiple of 6.  SwitchCode returns -1 for an invalid mode.
func (mode Mode) SwitchCode(s string) int {
	m := getMode(mode)
	switch {
	case m == nil:
		return -1
	case mode == Byte && s != "" && len(s)%6 == 0:
		return ByteLatch6
	}
	return m.latch
}

// A Segment describes a run of data encoded in a single mode.
type Segment struct {
	Text string // data to encode
	Mode Mode   // compaction mode
}

// ModeError represents an invalid Mode.
type ModeError Mode

func (e ModeError) Error() string {
	return fmt.Sprintf("pdf417: invalid mode %s", Mode(e))
}

// CharError represents a byte not encodable in a mode.
type CharError struct {
	Mode Mode // compaction mode
	Char byte // offending byte
	Pos  int  // offset in segment
}

func (e CharError) Error() string {
	return fmt.Sprintf("pdf417: cannot encode %q (%d) at offset %d in %s mode",
		e.Char, e.Char, e.Pos, e.Mode)
}

// validate returns the encoder for seg, or an error if seg is not
// encodable.
func (seg Segment) validate() (*modeEncoder, error) {
	m := getMode(seg.Mode)
	if m == nil {
		return nil, ModeError(seg.Mode)
	}
	for i := 0; i < len(seg.Text); i++ {
		if c := seg.Text[i]; !m.accepts(c) {
			return nil, CharError{seg.Mode, c, i}
		}
	}
	return m, nil
}

// IsValid reports whether seg is encodable.
func (seg Segment) IsValid() bool {
	_, err := seg.validate()
	return err == nil
}

// EncodedLength returns the number of codewords encoding seg, not
// counting the switch codeword, or 0 if seg is not encodable.
func (seg Segment) EncodedLength() int {
	m, err := seg.validate()
	if err != nil {
		return 0
	}
	return m.length(seg.Text)
}

// Encode appends the codewords encoding seg to dst, preceded by the
// switch codeword if addSwitch is set.
func (seg Segment) Encode(dst []int, addSwitch bool) ([]int, error) {
	m, err := seg.validate()
	if err != nil {
		return dst, err
	}
	if addSwitch {
		dst = append(dst, seg.Mode.SwitchCode(seg.Text))
	}
	return m.encode(dst, seg.Text), nil
}

// Encode appends the data codewords encoding segs to dst.  Every
// segment is preceded by its switch codeword, except the first one
// in Text mode, as decoders start in Text mode.
func Encode(dst []int, segs ...Segment) ([]int, error) {
	for i, seg := range segs {
		var err error
		if dst, err = seg.Encode(dst, i != 0 || seg.Mode != Text); err != nil {
			return dst, err
		}
	}
	return dst, nil
}
