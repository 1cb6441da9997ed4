package sledit

import (
	"fmt"

	"github.com/VincentWei/MiniGUI-sub011/bidi"
	"github.com/VincentWei/MiniGUI-sub011/internal/grapheme"
)

// snapshot is the state an aborted edit cycle rolls back to.
type snapshot struct {
	text   []byte
	glyphs bidi.GlyphMap
	caret  int
	sel    selectionState
}

func (c *Control) snapshot() snapshot {
	return snapshot{
		text:   append([]byte(nil), c.buf.Bytes()...),
		glyphs: c.glyphs,
		caret:  c.caret,
		sel:    c.sel,
	}
}

func (c *Control) restore(s snapshot) {
	if err := c.buf.Set(s.text); err != nil {
		c.log.Debug("restore failed", "err", err)
	}
	c.glyphs = s.glyphs
	c.caret = s.caret
	c.sel = s.sel
	c.pending = nil
}

// InsertText types s at the caret, replacing the selection if there is one.
//
// With a hard limit, s is cut to the characters that still fit, the cut text
// is inserted and NotifyMaxText is raised once. If the buffer cannot grow the
// control is left as it was and the error wraps buffer.ErrAllocation.
func (c *Control) InsertText(s string) error {
	if c.readOnly {
		return nil
	}
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	prev := c.snapshot()
	cb := c.beginChange()

	if _, _, ok := c.Selection(); ok {
		if err := c.deleteSelection(&cb); err != nil {
			c.restore(prev)
			return fmt.Errorf("insert text: %w", err)
		}
	}

	if c.hardLimit > 0 && s != "" {
		at := bidi.ResolveInsertion(c.buf.Bytes(), c.glyphs, c.shaper, c.caret, []byte(s))
		if kept := c.fitLimit(at.Offset, s); len(kept) < len(s) {
			s = kept
			cb.truncated = true
			c.raise(NotifyMaxText)
			c.log.Debug("hard limit reached", "limit", c.hardLimit, "kept", len(s))
		}
	}

	if s != "" {
		if err := c.insert(&cb, []byte(s)); err != nil {
			c.restore(prev)
			c.log.Debug("insert refused", "len", len(s), "err", err)
			return fmt.Errorf("insert text: %w", err)
		}
	}

	c.commitChange(cb)
	return nil
}

// fitLimit returns the longest prefix of s, cut between its characters, that
// keeps the text within the hard limit once spliced in at off. Characters are
// counted on the resulting text, so a combining mark that joins the
// character before off costs nothing.
func (c *Control) fitLimit(off int, s string) string {
	text := c.buf.String()
	off = clampInt(off, 0, len(text))
	head, tail := text[:off], text[off:]
	if grapheme.Count(head+s+tail) <= c.hardLimit {
		return s
	}
	kept := 0
	for _, sp := range grapheme.Bounds([]byte(s)) {
		if grapheme.Count(head+s[:sp.End]+tail) > c.hardLimit {
			break
		}
		kept = sp.End
	}
	return s[:kept]
}

// DeleteBackward removes the selection, or the character before the caret in
// paragraph order: the glyph left of the caret in an LTR paragraph and the
// glyph right of it in an RTL paragraph.
func (c *Control) DeleteBackward() error {
	return c.deleteGlyph(true)
}

// DeleteForward removes the selection, or the character after the caret in
// paragraph order.
func (c *Control) DeleteForward() error {
	return c.deleteGlyph(false)
}

// DeleteSelection removes the selected text. Without a selection it does
// nothing.
func (c *Control) DeleteSelection() error {
	if c.readOnly {
		return nil
	}
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	if _, _, ok := c.Selection(); !ok {
		return nil
	}
	prev := c.snapshot()
	cb := c.beginChange()
	if err := c.deleteSelection(&cb); err != nil {
		c.restore(prev)
		return fmt.Errorf("delete selection: %w", err)
	}
	c.commitChange(cb)
	return nil
}

func (c *Control) deleteGlyph(backward bool) error {
	if c.readOnly {
		return nil
	}
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	prev := c.snapshot()
	cb := c.beginChange()

	if _, _, ok := c.Selection(); ok {
		if err := c.deleteSelection(&cb); err != nil {
			c.restore(prev)
			return fmt.Errorf("delete: %w", err)
		}
		c.commitChange(cb)
		return nil
	}

	// In an RTL paragraph the logically preceding glyph sits right of the
	// caret.
	g := c.caret
	if (c.ParagraphDirection() == bidi.RTL) != backward {
		g--
	}
	if g < 0 || g >= len(c.glyphs) {
		return nil
	}

	e := c.glyphs[g]
	if err := c.splice(&cb, e.ByteOffset, e.ByteLen, nil, bidi.Unknown); err != nil {
		c.restore(prev)
		return fmt.Errorf("delete: %w", err)
	}
	c.caret = clampInt(g, 0, len(c.glyphs))
	c.sel = selectionState{}
	c.commitChange(cb)
	return nil
}

// deleteSelection removes the bytes the selection highlights. The caret
// lands on the first selected glyph index.
func (c *Control) deleteSelection(cb *changeBuilder) error {
	start, end, ok := c.Selection()
	if !ok {
		return nil
	}
	from, to := bidi.SelectionBytes(c.glyphs, c.buf.Len(), start, end)
	if err := c.splice(cb, from, to-from, nil, bidi.Unknown); err != nil {
		return err
	}
	c.caret = clampInt(start, 0, len(c.glyphs))
	c.sel = selectionState{}
	return nil
}

// insert places ins where the insertion resolver puts it and moves the caret
// past it.
func (c *Control) insert(cb *changeBuilder, ins []byte) error {
	at := bidi.ResolveInsertion(c.buf.Bytes(), c.glyphs, c.shaper, c.caret, ins)
	if err := c.splice(cb, at.Offset, 0, ins, at.Dir); err != nil {
		return err
	}
	c.caret = clampInt(bidi.CaretAfterInsert(c.glyphs, at, len(ins)), 0, len(c.glyphs))
	c.sel = selectionState{}
	return nil
}

// splice changes the text and reshapes it. The marks are left for the caller
// to recompute.
func (c *Control) splice(cb *changeBuilder, off, remove int, ins []byte, dir bidi.Direction) error {
	text := c.buf.Bytes()
	off = clampInt(off, 0, len(text))
	remove = clampInt(remove, 0, len(text)-off)
	deleted := string(text[off : off+remove])

	if err := c.buf.Splice(off, remove, ins); err != nil {
		return err
	}
	c.reshape()
	cb.add(AppliedEdit{Offset: off, Deleted: deleted, Inserted: string(ins), Dir: dir})
	return nil
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
