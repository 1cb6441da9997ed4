package shaper

import (
	"github.com/VincentWei/MiniGUI-sub011/bidi"
	"github.com/VincentWei/MiniGUI-sub011/internal/grapheme"
)

type Options struct {
	// DefaultDirection is the paragraph direction of text without any strong
	// character. Anything but bidi.RTL means LTR.
	DefaultDirection bidi.Direction
}

// Simple shapes text into one glyph per grapheme cluster.
type Simple struct {
	opt Options
}

var _ bidi.Shaper = (*Simple)(nil)

func New(opt Options) *Simple {
	if opt.DefaultDirection != bidi.RTL {
		opt.DefaultDirection = bidi.LTR
	}
	return &Simple{opt: opt}
}

// BaseDirection returns the paragraph direction used when the text has no
// strong character.
func (s *Simple) BaseDirection() bidi.Direction { return s.opt.DefaultDirection }

func (s *Simple) Classify(ch []byte) bidi.CharType { return Classify(ch) }

// Shape returns the visual glyph map of text.
func (s *Simple) Shape(text []byte) bidi.GlyphMap {
	spans := grapheme.Bounds(text)
	if len(spans) == 0 {
		return nil
	}

	types := make([]bidi.CharType, len(spans))
	for i, sp := range spans {
		types[i] = Classify(text[sp.Start:sp.End])
	}
	levels := resolveLevels(types, s.baseDirection(types))
	order := visualOrder(levels)

	m := make(bidi.GlyphMap, len(order))
	for v, i := range order {
		m[v] = bidi.GlyphMapEntry{
			ByteOffset: spans[i].Start,
			ByteLen:    spans[i].End - spans[i].Start,
			RTL:        levels[i]%2 == 1,
		}
	}
	return m
}

// VisualRanges returns the visual glyph ranges whose glyphs start inside the
// logical byte range [start, end), in visual order.
func (s *Simple) VisualRanges(text []byte, start, end int) []bidi.GlyphRange {
	if start > end {
		start, end = end, start
	}
	var out []bidi.GlyphRange
	for i, e := range s.Shape(text) {
		if e.ByteOffset < start || e.ByteOffset >= end {
			continue
		}
		if last := len(out) - 1; last >= 0 && out[last].End == i {
			out[last].End = i + 1
			continue
		}
		out = append(out, bidi.GlyphRange{Start: i, End: i + 1})
	}
	return out
}

// baseDirection is the direction of the first strong character (rules P2, P3).
func (s *Simple) baseDirection(types []bidi.CharType) bidi.Direction {
	for _, t := range types {
		switch t {
		case bidi.TypeLTR:
			return bidi.LTR
		case bidi.TypeRTL:
			return bidi.RTL
		}
	}
	return s.opt.DefaultDirection
}
