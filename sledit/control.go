package sledit

import (
	"fmt"
	"log/slog"

	"golang.org/x/image/math/fixed"

	"github.com/VincentWei/MiniGUI-sub011/bidi"
	"github.com/VincentWei/MiniGUI-sub011/buffer"
	"github.com/VincentWei/MiniGUI-sub011/internal/grapheme"
)

// Control is the state of one single-line edit control: the logical text,
// its visual glyph map, the caret and the selection.
//
// The caret and both selection marks are glyph indices in [0, GlyphCount()],
// counted in visual order. GlyphCount() itself is the end position.
type Control struct {
	buf      *buffer.Buffer
	glyphs   bidi.GlyphMap
	shaper   bidi.Shaper
	measurer bidi.Measurer
	log      *slog.Logger
	notify   func(Notification)

	hardLimit int
	readOnly  bool

	caret int
	sel   selectionState

	version     uint64
	textVersion uint64

	lastChange    Change
	hasLastChange bool

	pending []Notification
	busy    bool
	closed  bool
}

// selectionState holds the anchor and the moving end of the selection. It is
// active only when anchor != end.
type selectionState struct {
	active bool
	anchor int
	end    int
}

// New creates a control holding cfg.Text. Text beyond cfg.HardLimit is cut
// off without a notification.
func New(cfg Config) (*Control, error) {
	cfg = cfg.withDefaults()

	text := cfg.Text
	if cfg.HardLimit > 0 && grapheme.Count(text) > cfg.HardLimit {
		text = grapheme.Truncate(text, cfg.HardLimit)
	}

	buf, err := buffer.New(len(text), buffer.Options{
		BlockSize:   cfg.BlockSize,
		MaxCapacity: cfg.MaxCapacity,
	})
	if err != nil {
		return nil, fmt.Errorf("new control: %w", err)
	}
	if err := buf.Set([]byte(text)); err != nil {
		return nil, fmt.Errorf("new control: %w", err)
	}

	c := &Control{
		buf:       buf,
		shaper:    cfg.Shaper,
		measurer:  cfg.Measurer,
		log:       cfg.Logger,
		notify:    cfg.Notify,
		hardLimit: cfg.HardLimit,
		readOnly:  cfg.ReadOnly,
	}
	c.reshape()
	return c, nil
}

// SetText replaces the whole text and resets the caret and the selection to
// the start. It is allowed on read-only controls.
func (c *Control) SetText(s string) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	if c.hardLimit > 0 && grapheme.Count(s) > c.hardLimit {
		s = grapheme.Truncate(s, c.hardLimit)
		c.log.Debug("set text truncated", "limit", c.hardLimit)
	}

	cb := c.beginChange()
	before := c.buf.String()
	if err := c.buf.Set([]byte(s)); err != nil {
		c.log.Debug("set text refused", "len", len(s), "err", err)
		return fmt.Errorf("set text: %w", err)
	}
	c.reshape()
	c.caret = 0
	c.sel = selectionState{}
	if before != s {
		cb.add(AppliedEdit{Offset: 0, Deleted: before, Inserted: s, Dir: c.ParagraphDirection()})
		c.commitChange(cb)
	} else if cb.caretBefore != 0 || cb.selectionBefore.Active {
		c.version++
		c.raise(NotifySelChange)
	}
	return nil
}

// Close frees the text buffer. Later edits fail with ErrClosed.
func (c *Control) Close() {
	if c.closed {
		return
	}
	c.buf.Free()
	c.glyphs = nil
	c.caret = 0
	c.sel = selectionState{}
	c.closed = true
}

func (c *Control) begin() error {
	if c.closed {
		return ErrClosed
	}
	if c.busy {
		return ErrBusy
	}
	c.busy = true
	return nil
}

func (c *Control) end() {
	c.busy = false
	c.flush()
}

// reshape rebuilds the glyph map from the current text.
func (c *Control) reshape() {
	text := c.buf.Bytes()
	c.glyphs = c.shaper.Shape(text)
	if err := c.glyphs.Validate(len(text)); err != nil {
		c.log.Debug("shaper returned a bad glyph map", "err", err)
	}
}

// Text returns the text in logical order.
func (c *Control) Text() string { return c.buf.String() }

// Len returns the text length in bytes.
func (c *Control) Len() int { return c.buf.Len() }

// GlyphCount returns the number of glyphs, which is also the end caret
// position.
func (c *Control) GlyphCount() int { return len(c.glyphs) }

// GlyphMap returns a copy of the visual glyph map.
func (c *Control) GlyphMap() bidi.GlyphMap {
	return append(bidi.GlyphMap(nil), c.glyphs...)
}

// Caret returns the caret glyph index.
func (c *Control) Caret() int { return c.caret }

// Selection returns the selected glyph range with start < end, or ok=false
// when nothing is selected.
func (c *Control) Selection() (start, end int, ok bool) {
	if !c.sel.active || c.sel.anchor == c.sel.end {
		return 0, 0, false
	}
	start, end = c.sel.anchor, c.sel.end
	if start > end {
		start, end = end, start
	}
	return start, end, true
}

// SelectionRaw returns the selection anchor and moving end as set, which
// may be in either order. Without a selection both equal the caret.
func (c *Control) SelectionRaw() (anchor, end int) {
	if !c.sel.active {
		return c.caret, c.caret
	}
	return c.sel.anchor, c.sel.end
}

// SelectedText returns the logical text covered by the selection.
func (c *Control) SelectedText() string {
	start, end, ok := c.Selection()
	if !ok {
		return ""
	}
	from, to := bidi.SelectionBytes(c.glyphs, c.buf.Len(), start, end)
	return string(c.buf.Bytes()[from:to])
}

// ParagraphDirection returns the base direction of the text. An empty line
// has the shaper's base direction.
func (c *Control) ParagraphDirection() bidi.Direction {
	return bidi.ParagraphDirectionOr(c.glyphs, bidi.BaseDirectionOf(c.shaper))
}

// Segments splits the glyph sequence into draw runs for the selection
// highlight. A projection the shaper got wrong is dropped in favor of an
// unhighlighted line.
func (c *Control) Segments() []bidi.Segment {
	start, end, ok := c.Selection()
	if !ok {
		start, end = c.caret, c.caret
	}
	segs, err := bidi.Project(c.buf.Bytes(), c.glyphs, c.shaper, start, end)
	if err != nil {
		c.log.Debug("selection projection discarded", "start", start, "end", end, "err", err)
	}
	return segs
}

// Version increments whenever the text, the caret or the selection changes.
func (c *Control) Version() uint64 { return c.version }

// TextVersion increments only when the text changes.
func (c *Control) TextVersion() uint64 { return c.textVersion }

// CaretX returns the distance from the left edge of the line to the caret.
func (c *Control) CaretX() fixed.Int26_6 {
	return c.measurer.MeasureGlyphRun(c.buf.Bytes(), c.glyphs[:c.caret])
}

// Width returns the advance of the whole line.
func (c *Control) Width() fixed.Int26_6 {
	return c.measurer.MeasureGlyphRun(c.buf.Bytes(), c.glyphs)
}

// ReadOnly reports whether edits are disabled.
func (c *Control) ReadOnly() bool { return c.readOnly }

// SetReadOnly enables or disables edits.
func (c *Control) SetReadOnly(v bool) { c.readOnly = v }
