package shaper

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/VincentWei/MiniGUI-sub011/bidi"
)

// CellMeasurer measures glyphs in terminal cells; one cell is fixed.I(1).
type CellMeasurer struct {
	// TabWidth is the tab stop distance in cells. Default: 4.
	TabWidth int
}

var _ bidi.Measurer = CellMeasurer{}

func (c CellMeasurer) MeasureGlyphRun(text []byte, glyphs []bidi.GlyphMapEntry) fixed.Int26_6 {
	cells := 0
	for _, g := range glyphs {
		cells += c.cellWidth(glyphText(text, g), cells)
	}
	return fixed.I(cells)
}

func (c CellMeasurer) FitGlyphs(text []byte, glyphs []bidi.GlyphMapEntry, width fixed.Int26_6) int {
	cells := 0
	return fitGlyphs(glyphs, width, func(g bidi.GlyphMapEntry) fixed.Int26_6 {
		w := c.cellWidth(glyphText(text, g), cells)
		cells += w
		return fixed.I(w)
	})
}

// Cells returns the cell width of every glyph, laid out from column 0.
func (c CellMeasurer) Cells(text []byte, glyphs []bidi.GlyphMapEntry) []int {
	out := make([]int, len(glyphs))
	col := 0
	for i, g := range glyphs {
		out[i] = c.cellWidth(glyphText(text, g), col)
		col += out[i]
	}
	return out
}

func (c CellMeasurer) cellWidth(s string, visualCol int) int {
	if s == "\t" {
		tab := c.TabWidth
		if tab <= 0 {
			tab = 4
		}
		return tab - visualCol%tab
	}
	w := runewidth.StringWidth(s)
	if w == 0 {
		w = uniseg.StringWidth(s)
	}
	if w < 1 {
		// Zero-width clusters still take a cell so the caret can land on them.
		w = 1
	}
	return w
}

// FaceMeasurer measures glyphs with the advances of a font face.
type FaceMeasurer struct {
	Face font.Face
}

var _ bidi.Measurer = FaceMeasurer{}

func (f FaceMeasurer) MeasureGlyphRun(text []byte, glyphs []bidi.GlyphMapEntry) fixed.Int26_6 {
	var total fixed.Int26_6
	for _, g := range glyphs {
		total += f.advance(g, text)
	}
	return total
}

func (f FaceMeasurer) FitGlyphs(text []byte, glyphs []bidi.GlyphMapEntry, width fixed.Int26_6) int {
	return fitGlyphs(glyphs, width, func(g bidi.GlyphMapEntry) fixed.Int26_6 {
		return f.advance(g, text)
	})
}

func (f FaceMeasurer) advance(g bidi.GlyphMapEntry, text []byte) fixed.Int26_6 {
	if f.Face == nil {
		return 0
	}
	return font.MeasureString(f.Face, glyphText(text, g))
}

func fitGlyphs(glyphs []bidi.GlyphMapEntry, width fixed.Int26_6, advance func(bidi.GlyphMapEntry) fixed.Int26_6) int {
	var total fixed.Int26_6
	for i, g := range glyphs {
		total += advance(g)
		if total > width {
			return i
		}
	}
	return len(glyphs)
}

func glyphText(text []byte, g bidi.GlyphMapEntry) string {
	if g.ByteOffset < 0 || g.End() > len(text) {
		return ""
	}
	return string(text[g.ByteOffset:g.End()])
}
