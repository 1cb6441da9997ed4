package bidi

import (
	"errors"
	"fmt"

	"golang.org/x/image/math/fixed"
)

// Direction is the run direction of a glyph or of inserted text.
type Direction uint8

const (
	Unknown Direction = iota
	LTR
	RTL
	Neutral
)

func (d Direction) String() string {
	switch d {
	case LTR:
		return "ltr"
	case RTL:
		return "rtl"
	case Neutral:
		return "neutral"
	default:
		return "unknown"
	}
}

// Known reports whether d is a resolved run direction.
func (d Direction) Known() bool { return d == LTR || d == RTL }

func dirOf(rtl bool) Direction {
	if rtl {
		return RTL
	}
	return LTR
}

// CharType is the bidi category of a single character.
type CharType uint8

const (
	TypeNeutral CharType = iota
	TypeLTR               // strong left-to-right
	TypeRTL               // strong right-to-left
	TypeWeak              // digits and number separators
)

// Direction maps t onto the direction new text of that type takes before
// neighbor resolution. Weak characters resolve to LTR.
func (t CharType) Direction() Direction {
	switch t {
	case TypeLTR, TypeWeak:
		return LTR
	case TypeRTL:
		return RTL
	default:
		return Neutral
	}
}

// GlyphMapEntry locates one visual glyph in the logical text.
type GlyphMapEntry struct {
	ByteOffset int
	ByteLen    int
	RTL        bool
}

// End returns the logical byte offset just past the glyph.
func (e GlyphMapEntry) End() int { return e.ByteOffset + e.ByteLen }

// Contains reports whether off falls inside the glyph's byte span.
func (e GlyphMapEntry) Contains(off int) bool {
	return off >= e.ByteOffset && off < e.End()
}

// GlyphMap lists glyphs in visual order. Byte offsets are not monotonic when
// right-to-left runs are present.
type GlyphMap []GlyphMapEntry

func (m GlyphMap) Len() int { return len(m) }

// Dir returns the run direction of glyph i, or Unknown when i is outside
// [0, Len()).
func (m GlyphMap) Dir(i int) Direction {
	if i < 0 || i >= len(m) {
		return Unknown
	}
	return dirOf(m[i].RTL)
}

// ErrPartition indicates a glyph map that does not tile the logical text.
var ErrPartition = errors.New("glyph map does not partition text")

// Validate checks that the entries cover [0, length) exactly once.
func (m GlyphMap) Validate(length int) error {
	if length < 0 {
		length = 0
	}
	covered := make([]bool, length)
	total := 0
	for i, e := range m {
		if e.ByteLen <= 0 || e.ByteOffset < 0 || e.End() > length {
			return fmt.Errorf("glyph %d [%d,%d) in text of %d bytes: %w", i, e.ByteOffset, e.End(), length, ErrPartition)
		}
		for off := e.ByteOffset; off < e.End(); off++ {
			if covered[off] {
				return fmt.Errorf("glyph %d overlaps byte %d: %w", i, off, ErrPartition)
			}
			covered[off] = true
		}
		total += e.ByteLen
	}
	if total != length {
		return fmt.Errorf("glyphs cover %d of %d bytes: %w", total, length, ErrPartition)
	}
	return nil
}

// GlyphRange is a half-open range of visual glyph indices.
type GlyphRange struct {
	Start int
	End   int
}

// Segment is one draw run of a projected selection.
type Segment struct {
	Len      int
	Selected bool
}

// Classifier returns the bidi category of the first character of ch.
type Classifier interface {
	Classify(ch []byte) CharType
}

// RangeMapper maps the logical byte range [start, end) of text onto the
// visual glyph ranges of its shaped form.
type RangeMapper interface {
	VisualRanges(text []byte, start, end int) []GlyphRange
}

// Shaper is the shaping service the edit core runs against. Shape re-shapes
// the whole text; there is no incremental mode.
type Shaper interface {
	Classifier
	RangeMapper
	Shape(text []byte) GlyphMap
}

// BaseDirectioner is implemented by shapers that know the paragraph
// direction of text without strong characters, including the empty line.
type BaseDirectioner interface {
	BaseDirection() Direction
}

// BaseDirectionOf returns v's base direction, or LTR when v does not report
// one.
func BaseDirectionOf(v any) Direction {
	if b, ok := v.(BaseDirectioner); ok && b.BaseDirection() == RTL {
		return RTL
	}
	return LTR
}

// Measurer measures glyph runs for hit-testing and caret placement.
type Measurer interface {
	// MeasureGlyphRun returns the advance of glyphs drawn one after another.
	MeasureGlyphRun(text []byte, glyphs []GlyphMapEntry) fixed.Int26_6
	// FitGlyphs returns how many leading glyphs fit in width.
	FitGlyphs(text []byte, glyphs []GlyphMapEntry, width fixed.Int26_6) int
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
