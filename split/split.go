// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package split splits data into PDF417 compaction mode segments.

Greedy encodes every byte in the first mode accepting it, trying
Numeric, Text and Byte in turn.  Optimal minimises the number of
codewords.  Bytes encodes everything in Byte mode.
*/
package split // import "github.com/unixdj/pdf417/split"

import (
	"math/bits"

	"github.com/unixdj/pdf417/coding"
)

// A Func splits data into segments.  Concatenating the Text of the
// returned segments yields data.
type Func func(data string) []coding.Segment

// classes maps each byte to the set of modes accepting it, as bits
// numbered by coding.Mode.
var classes = func() (t [256]byte) {
	for c := range t {
		for m := coding.Numeric; m < coding.Modes; m++ {
			if m.Accepts(byte(c)) {
				t[c] |= 1 << m
			}
		}
	}
	return
}()

/*
The Optimal split is a shortest path over spans.

The data is divided into spans of bytes accepted by the same set of
modes.  As the sets are nested (Byte accepts everything Text accepts,
Text accepts every digit), neighbouring spans differ in their lowest
mode, and encoding each span in its lowest mode yields the Greedy
split.

Each span holds a segment for each mode it can be encoded in.  Spans
are walked backwards.  For each mode, the segment links to the segment
of the following span giving the smallest total number of codewords,
merging with it if the modes are the same.  The first segment is
chosen the same way, counting the switch codeword saved by starting
with Text.
*/
type (
	// segment describes a segment encoded in a certain mode.
	segment struct {
		mode    coding.Mode // encoding mode, or -1 if unused
		segdata             // position and pointer to next
	}

	// segdata is the mutable portion of segment.
	segdata struct {
		next  *segment // link to next segment in the chain
		start int      // offset in data
		len   int      // length in bytes
		words int      // codewords of all segments in the chain
	}

	// span describes a run of bytes encodable in the same modes.
	span struct {
		start int                   // offset in data
		len   int                   // length in bytes
		seg   [coding.Modes]segment // segments
	}
)

const inf = 1 << 30 // more codewords than any symbol holds

// spans divides data into spans.
func spans(data string) []span {
	var (
		sp  []span
		old byte
	)
	for i := 0; i < len(data); i++ {
		m := classes[data[i]]
		if i == 0 || m != old {
			old = m
			sp = append(sp, span{start: i})
			seg := &sp[len(sp)-1].seg
			for j := range seg {
				if m == 0 {
					seg[j].mode = -1
					continue
				}
				seg[j].mode = coding.Mode(bits.TrailingZeros8(m))
				m &= m - 1
			}
		}
		sp[len(sp)-1].len++
	}
	return sp
}

func (d *segdata) setWords(data string, mode coding.Mode) {
	seg := coding.Segment{data[d.start : d.start+d.len], mode}
	d.words = 1 + seg.EncodedLength()
	if d.next != nil {
		d.words += d.next.words
	}
}

// add links the segments of v to those of the following span p.
func (v *span) add(p *span, data string) {
	for j := range v.seg {
		seg := &v.seg[j]
		if seg.mode < 0 {
			break
		}
		seg.words = inf
		// p.seg is an array, not a slice, so range works when p is nil
		for k := range p.seg {
			if p != nil && p.seg[k].mode < 0 {
				break
			}
			c := segdata{start: v.start, len: v.len}
			if p != nil {
				c.next = &p.seg[k]
				if seg.mode == c.next.mode {
					c.len += c.next.len
					c.next = c.next.next
				}
			}
			c.setWords(data, seg.mode)
			if c.words < seg.words {
				seg.segdata = c
			}
			if p == nil {
				break
			}
		}
	}
}

// best returns the segment in sp.seg starting the shortest encoding.
func (sp *span) best() *segment {
	var (
		best  *segment
		words = inf
	)
	for j := range sp.seg {
		seg := &sp.seg[j]
		if seg.mode < 0 {
			break
		}
		n := seg.words
		if seg.mode == coding.Text {
			n--
		}
		if n < words {
			best, words = seg, n
		}
	}
	return best
}

// Greedy splits data into segments, encoding each byte in the first
// of Numeric, Text and Byte modes that accepts it.
func Greedy(data string) []coding.Segment {
	sp := spans(data)
	if len(sp) == 0 {
		return nil
	}
	segs := make([]coding.Segment, len(sp))
	for i := range sp {
		s := &sp[i]
		segs[i] = coding.Segment{data[s.start : s.start+s.len], s.seg[0].mode}
	}
	return segs
}

// Optimal splits data into segments at span boundaries, choosing the
// modes that minimise the number of data codewords.
func Optimal(data string) []coding.Segment {
	sp := spans(data)
	if len(sp) == 0 {
		return nil
	}
	var next *span
	for i := len(sp) - 1; i >= 0; i-- {
		sp[i].add(next, data)
		next = &sp[i]
	}
	var segs []coding.Segment
	for seg := sp[0].best(); seg != nil; seg = seg.next {
		segs = append(segs, coding.Segment{
			data[seg.start : seg.start+seg.len], seg.mode,
		})
	}
	return segs
}

// Bytes returns data as a single Byte segment.
func Bytes(data string) []coding.Segment {
	if data == "" {
		return nil
	}
	return []coding.Segment{{data, coding.Byte}}
}
