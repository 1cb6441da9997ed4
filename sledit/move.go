package sledit

import (
	"golang.org/x/image/math/fixed"

	"github.com/VincentWei/MiniGUI-sub011/internal/grapheme"
)

type MoveUnit int

const (
	MoveGlyph MoveUnit = iota
	MoveWord
	MoveLine
)

// MoveDir is a visual direction. DirLeft always decrements the glyph index,
// whatever the direction of the run under the caret.
type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirHome // visual start of the line
	DirEnd  // visual end of the line
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, updates selection anchor/end; if false clears selection
}

// Move moves the caret. With Extend the selection anchor stays where the
// caret was when the selection started and the moving end follows the caret.
func (c *Control) Move(m Move) {
	if c.busy {
		return
	}
	next := clampInt(c.moveCaret(c.caret, m), 0, len(c.glyphs))
	c.moveTo(next, m.Extend)
}

// SetCaret places the caret at glyph index g and clears the selection.
func (c *Control) SetCaret(g int) {
	if c.busy {
		return
	}
	c.apply(clampInt(g, 0, len(c.glyphs)), selectionState{})
}

// SetSelection selects the glyphs between anchor and end, which may come in
// either order. The caret moves to end.
func (c *Control) SetSelection(anchor, end int) {
	if c.busy {
		return
	}
	n := len(c.glyphs)
	anchor = clampInt(anchor, 0, n)
	end = clampInt(end, 0, n)
	sel := selectionState{}
	if anchor != end {
		sel = selectionState{active: true, anchor: anchor, end: end}
	}
	c.apply(end, sel)
}

// SelectAll selects every glyph and puts the caret at the end.
func (c *Control) SelectAll() {
	c.SetSelection(0, len(c.glyphs))
}

// ClearSelection drops the selection and keeps the caret.
func (c *Control) ClearSelection() {
	if c.busy {
		return
	}
	c.apply(c.caret, selectionState{})
}

// Click places the caret on the glyph whose visual span holds x, measured
// from the left edge of the line. Past the last glyph the caret goes to the
// end. With extend the selection grows to the clicked glyph instead.
func (c *Control) Click(x fixed.Int26_6, extend bool) {
	if c.busy {
		return
	}
	g := 0
	if x > 0 {
		g = c.measurer.FitGlyphs(c.buf.Bytes(), c.glyphs, x)
	}
	c.moveTo(clampInt(g, 0, len(c.glyphs)), extend)
}

func (c *Control) moveTo(next int, extend bool) {
	sel := selectionState{}
	if extend {
		anchor := c.caret
		if c.sel.active && c.sel.anchor != c.sel.end {
			anchor = c.sel.anchor
		}
		if anchor != next {
			sel = selectionState{active: true, anchor: anchor, end: next}
		}
	}
	c.apply(next, sel)
}

func (c *Control) apply(caret int, sel selectionState) {
	if caret == c.caret && selectionStateEqual(c.sel, sel) {
		return
	}
	c.caret = caret
	c.sel = sel
	c.version++
	c.raise(NotifySelChange)
	c.flush()
}

func selectionStateEqual(a, b selectionState) bool {
	if !a.active && !b.active {
		return true
	}
	return a.active == b.active && a.anchor == b.anchor && a.end == b.end
}

func (c *Control) moveCaret(g int, m Move) int {
	n := len(c.glyphs)
	switch m.Dir {
	case DirHome:
		return 0
	case DirEnd:
		return n
	}

	switch m.Unit {
	case MoveGlyph:
		if m.Dir == DirLeft {
			return g - 1
		}
		return g + 1
	case MoveWord:
		cells := c.glyphTexts()
		if m.Dir == DirLeft {
			return prevWordBoundary(cells, g)
		}
		return nextWordBoundary(cells, g)
	default:
		return g
	}
}

// glyphTexts returns the text of every glyph in visual order.
func (c *Control) glyphTexts() []string {
	text := c.buf.Bytes()
	out := make([]string, len(c.glyphs))
	for i, e := range c.glyphs {
		if e.ByteOffset < 0 || e.End() > len(text) {
			continue
		}
		out[i] = string(text[e.ByteOffset:e.End()])
	}
	return out
}

// Word boundaries are visual: skip whitespace, then skip non-whitespace.
func prevWordBoundary(cells []string, g int) int {
	i := clampInt(g, 0, len(cells))
	for i > 0 && grapheme.IsSpace(cells[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(cells[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(cells []string, g int) int {
	i := clampInt(g, 0, len(cells))
	for i < len(cells) && grapheme.IsSpace(cells[i]) {
		i++
	}
	for i < len(cells) && !grapheme.IsSpace(cells[i]) {
		i++
	}
	return i
}
