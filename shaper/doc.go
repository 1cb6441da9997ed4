// Package shaper provides reference implementations of the bidi.Shaper and
// bidi.Measurer services.
//
// Simple treats each grapheme cluster as one glyph and resolves directions
// with a reduced form of the Unicode Bidirectional Algorithm: strong types,
// digits, and neutrals between runs. Explicit embeddings and isolates are not
// supported. CellMeasurer measures terminal cells, FaceMeasurer measures
// pixels through a font.Face.
package shaper
