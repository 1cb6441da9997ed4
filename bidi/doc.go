// Package bidi maps between the logical text of a single-line edit control
// and its shaped, visually ordered glyph sequence.
//
// Editing APIs address text by glyph index: a position in visual order, in
// [0, GlyphMap.Len()]. The buffer and the shaper address it by logical byte
// offset. This package translates between the two, decides where typed text
// is spliced when left-to-right and right-to-left runs meet, and projects a
// selection onto visual draw segments.
//
// Shaping, classification and measurement are external services reached
// through the Shaper and Measurer interfaces.
package bidi
