package bidi

// NotFound is returned by ByteToGlyph when no glyph holds the offset.
const NotFound = -1

// ParagraphDirection returns the direction of the glyph at logical offset 0.
// An empty map is LTR.
func ParagraphDirection(m GlyphMap) Direction {
	return ParagraphDirectionOr(m, LTR)
}

// ParagraphDirectionOr is ParagraphDirection with base as the direction of
// an empty map.
func ParagraphDirectionOr(m GlyphMap, base Direction) Direction {
	for _, e := range m {
		if e.ByteOffset == 0 {
			return dirOf(e.RTL)
		}
	}
	if base == RTL {
		return RTL
	}
	return LTR
}

// GlyphToByte returns the logical byte offset of glyph g in text of length
// bytes. g is clamped into [0, m.Len()].
//
// The end position m.Len() maps to length in an LTR paragraph and to 0 in an
// RTL paragraph, where the visual end is the logical start.
func GlyphToByte(m GlyphMap, length, g int) int {
	g = clampInt(g, 0, len(m))
	if g == len(m) {
		if ParagraphDirection(m) == RTL {
			return 0
		}
		return length
	}
	return m[g].ByteOffset
}

// ByteToGlyph returns the index of the first glyph, in visual order, whose
// byte span holds off.
func ByteToGlyph(m GlyphMap, off int) (int, bool) {
	for i, e := range m {
		if e.Contains(off) {
			return i, true
		}
	}
	return NotFound, false
}
