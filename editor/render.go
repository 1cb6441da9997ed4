package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/VincentWei/MiniGUI-sub011/bidi"
	"github.com/VincentWei/MiniGUI-sub011/shaper"
)

type cellClass uint8

const (
	classText cellClass = iota
	classSelected
	classCursor
)

// renderContent draws the visible part of the line in visual glyph order.
// Adjacent glyphs that share a style are rendered as one run.
func (m *Model) renderContent() string {
	if m.ctl == nil {
		return ""
	}

	text := []byte(m.ctl.Text())
	glyphs := m.ctl.GlyphMap()
	widths := shaper.CellMeasurer{TabWidth: m.cfg.TabWidth}.Cells(text, glyphs)
	selected := selectionMask(m.ctl.Segments(), len(glyphs))

	caret := -1
	if m.focused {
		caret = m.ctl.Caret()
	}

	left := maxInt(m.xOffset, 0)
	right := int(^uint(0) >> 1)
	if m.width > 0 {
		right = left + m.width
	}

	r := runWriter{style: m.cfg.Style}
	col := 0
	for i, g := range glyphs {
		start, end := col, col+widths[i]
		col = end
		if end <= left {
			continue
		}
		if start >= right {
			break
		}

		class := classText
		if selected[i] {
			class = classSelected
		}
		if i == caret {
			class = classCursor
		}

		s := glyphString(text, g)
		if s == "\t" || start < left || end > right {
			// Tabs and glyphs cut by the view edge are drawn as blanks.
			s = strings.Repeat(" ", minInt(end, right)-maxInt(start, left))
		}
		r.write(s, class)
	}
	if caret == len(glyphs) && col >= left && col < right {
		r.write(" ", classCursor)
	}
	return r.String()
}

// selectionMask expands projected segments into one flag per glyph.
func selectionMask(segs []bidi.Segment, n int) []bool {
	out := make([]bool, n)
	i := 0
	for _, s := range segs {
		for k := 0; k < s.Len && i < n; k++ {
			out[i] = s.Selected
			i++
		}
	}
	return out
}

func glyphString(text []byte, g bidi.GlyphMapEntry) string {
	if g.ByteOffset < 0 || g.End() > len(text) {
		return ""
	}
	return string(text[g.ByteOffset:g.End()])
}

type runWriter struct {
	style Style
	out   strings.Builder
	run   strings.Builder
	class cellClass
}

func (w *runWriter) write(s string, class cellClass) {
	if class != w.class {
		w.flush()
		w.class = class
	}
	w.run.WriteString(s)
}

func (w *runWriter) flush() {
	if w.run.Len() == 0 {
		return
	}
	w.out.WriteString(w.styleFor(w.class).Render(w.run.String()))
	w.run.Reset()
}

func (w *runWriter) styleFor(class cellClass) lipgloss.Style {
	switch class {
	case classSelected:
		return w.style.Selection
	case classCursor:
		return w.style.Cursor
	default:
		return w.style.Text
	}
}

func (w *runWriter) String() string {
	w.flush()
	return w.out.String()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
