package editor

import "golang.org/x/image/math/fixed"

// clickAt moves the caret to the glyph under view-local cell x.
//
// Cells are measured from the left edge of the view; the horizontal scroll
// offset is added before hit-testing the line.
func (m *Model) clickAt(x int, extend bool) {
	if x < 0 {
		x = 0
	}
	m.ctl.Click(fixed.I(x+m.xOffset), extend)
}

// caretCell returns the view-local cell of the caret, and whether it is
// inside the view.
func (m *Model) caretCell() (int, bool) {
	x := m.ctl.CaretX().Round() - m.xOffset
	if x < 0 {
		return x, false
	}
	return x, m.width <= 0 || x < m.width
}
