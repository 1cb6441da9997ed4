package sledit

import (
	"testing"

	"golang.org/x/image/math/fixed"
)

func assertSelection(t *testing.T, c *Control, wantStart, wantEnd int, wantOK bool) {
	t.Helper()

	start, end, ok := c.Selection()
	if ok != wantOK || (ok && (start != wantStart || end != wantEnd)) {
		t.Fatalf("Selection=(%d,%d,%v), want (%d,%d,%v)", start, end, ok, wantStart, wantEnd, wantOK)
	}
}

func TestMove_GlyphClampsAtEdges(t *testing.T) {
	c := mustNew(t, Config{Text: "ab"})
	v := c.Version()

	c.Move(Move{Unit: MoveGlyph, Dir: DirLeft})
	if got := c.Caret(); got != 0 {
		t.Fatalf("Caret=%d, want 0", got)
	}
	if c.Version() != v {
		t.Fatalf("no-op move changed version")
	}

	for i := 0; i < 5; i++ {
		c.Move(Move{Unit: MoveGlyph, Dir: DirRight})
	}
	if got := c.Caret(); got != 2 {
		t.Fatalf("Caret=%d, want 2", got)
	}
}

func TestMove_IsVisualInRTLText(t *testing.T) {
	c := mustNew(t, Config{Text: alef + bet + gimel})

	// Right always increments the glyph index, even inside an RTL run.
	c.Move(Move{Unit: MoveGlyph, Dir: DirRight})
	if got := c.Caret(); got != 1 {
		t.Fatalf("Caret=%d, want 1", got)
	}
	c.Move(Move{Unit: MoveLine, Dir: DirEnd})
	if got := c.Caret(); got != 3 {
		t.Fatalf("Caret=%d, want 3", got)
	}
	c.Move(Move{Unit: MoveLine, Dir: DirHome})
	if got := c.Caret(); got != 0 {
		t.Fatalf("Caret=%d, want 0", got)
	}
}

func TestMove_ExtendKeepsAnchor(t *testing.T) {
	c := mustNew(t, Config{Text: "hello world"})
	c.SetCaret(2)

	c.Move(Move{Unit: MoveGlyph, Dir: DirRight, Extend: true})
	assertSelection(t, c, 2, 3, true)
	c.Move(Move{Unit: MoveGlyph, Dir: DirRight, Extend: true})
	assertSelection(t, c, 2, 4, true)

	for i := 0; i < 3; i++ {
		c.Move(Move{Unit: MoveGlyph, Dir: DirLeft, Extend: true})
	}
	assertSelection(t, c, 1, 2, true)
	if anchor, end := c.SelectionRaw(); anchor != 2 || end != 1 {
		t.Fatalf("SelectionRaw=(%d,%d), want (2,1)", anchor, end)
	}
	if got := c.Caret(); got != 1 {
		t.Fatalf("Caret=%d, want 1", got)
	}

	// Back onto the anchor: the selection collapses.
	c.Move(Move{Unit: MoveGlyph, Dir: DirRight, Extend: true})
	assertSelection(t, c, 0, 0, false)

	c.Move(Move{Unit: MoveLine, Dir: DirEnd, Extend: true})
	assertSelection(t, c, 2, 11, true)

	c.Move(Move{Unit: MoveGlyph, Dir: DirLeft})
	assertSelection(t, c, 0, 0, false)
	if got := c.Caret(); got != 10 {
		t.Fatalf("Caret=%d, want 10", got)
	}
	if anchor, end := c.SelectionRaw(); anchor != 10 || end != 10 {
		t.Fatalf("SelectionRaw=(%d,%d), want (10,10)", anchor, end)
	}
}

func TestMove_Word(t *testing.T) {
	c := mustNew(t, Config{Text: "hello  world"})

	c.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got := c.Caret(); got != 5 {
		t.Fatalf("Caret=%d, want 5", got)
	}
	c.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got := c.Caret(); got != 12 {
		t.Fatalf("Caret=%d, want 12", got)
	}
	c.Move(Move{Unit: MoveWord, Dir: DirLeft})
	if got := c.Caret(); got != 7 {
		t.Fatalf("Caret=%d, want 7", got)
	}
	c.Move(Move{Unit: MoveWord, Dir: DirLeft, Extend: true})
	assertSelection(t, c, 0, 7, true)
}

func TestMove_LineIgnoresLeftRight(t *testing.T) {
	c := mustNew(t, Config{Text: "abc"})
	c.SetCaret(1)
	c.Move(Move{Unit: MoveLine, Dir: DirRight})
	if got := c.Caret(); got != 1 {
		t.Fatalf("Caret=%d, want 1", got)
	}
}

func TestSelectAllAndClear(t *testing.T) {
	var rec recorder
	c := mustNew(t, Config{Text: "abc", Notify: rec.notify})

	c.SelectAll()
	assertSelection(t, c, 0, 3, true)
	if got := c.Caret(); got != 3 {
		t.Fatalf("Caret=%d, want 3", got)
	}
	if got := c.SelectedText(); got != "abc" {
		t.Fatalf("SelectedText=%q, want %q", got, "abc")
	}

	c.ClearSelection()
	assertSelection(t, c, 0, 0, false)
	if got := c.Caret(); got != 3 {
		t.Fatalf("Caret=%d, want 3", got)
	}
	if got := rec.count(NotifySelChange); got != 2 {
		t.Fatalf("selchange notifications=%d, want 2", got)
	}

	c.ClearSelection()
	if got := rec.count(NotifySelChange); got != 2 {
		t.Fatalf("no-op clear raised a notification")
	}
}

func TestSetSelection_Clamps(t *testing.T) {
	c := mustNew(t, Config{Text: "abc"})
	c.SetSelection(-4, 40)
	assertSelection(t, c, 0, 3, true)

	c.SetCaret(99)
	if got := c.Caret(); got != 3 {
		t.Fatalf("Caret=%d, want 3", got)
	}
	assertSelection(t, c, 0, 0, false)
}

func TestClick(t *testing.T) {
	c := mustNew(t, Config{Text: "abcdef"})

	c.Click(fixed.I(2), false)
	if got := c.Caret(); got != 2 {
		t.Fatalf("Caret=%d, want 2", got)
	}

	// Half way through the fifth cell.
	c.Click(fixed.I(4)+fixed.I(1)/2, true)
	assertSelection(t, c, 2, 4, true)

	c.Click(fixed.I(100), false)
	if got := c.Caret(); got != 6 {
		t.Fatalf("Caret=%d, want 6", got)
	}
	assertSelection(t, c, 0, 0, false)

	c.Click(-fixed.I(1), false)
	if got := c.Caret(); got != 0 {
		t.Fatalf("Caret=%d, want 0", got)
	}
}

func TestClick_WideGlyph(t *testing.T) {
	c := mustNew(t, Config{Text: "a世b"})

	// Both cells of the wide glyph map to glyph 1.
	c.Click(fixed.I(1), false)
	if got := c.Caret(); got != 1 {
		t.Fatalf("Caret=%d, want 1", got)
	}
	c.Click(fixed.I(2), false)
	if got := c.Caret(); got != 1 {
		t.Fatalf("Caret=%d, want 1", got)
	}
	c.Click(fixed.I(3), false)
	if got := c.Caret(); got != 2 {
		t.Fatalf("Caret=%d, want 2", got)
	}
}
