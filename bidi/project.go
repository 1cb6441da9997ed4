package bidi

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidRange indicates that a RangeMapper returned a range outside the
// glyph sequence.
var ErrInvalidRange = errors.New("visual range out of bounds")

// SelectionBytes converts the glyph selection [selStart, selEnd) into the
// logical byte range it covers. The endpoints may come in either order.
// Selecting every glyph always yields [0, length).
func SelectionBytes(m GlyphMap, length, selStart, selEnd int) (start, end int) {
	n := len(m)
	selStart = clampInt(selStart, 0, n)
	selEnd = clampInt(selEnd, 0, n)
	if selStart > selEnd {
		selStart, selEnd = selEnd, selStart
	}
	if selStart == 0 && selEnd == n {
		return 0, length
	}
	start = GlyphToByte(m, length, selStart)
	end = GlyphToByte(m, length, selEnd)
	if start > end {
		start, end = end, start
	}
	return start, end
}

// Project splits the glyph sequence into alternating unselected and selected
// draw segments for the selection [selStart, selEnd).
//
// The segment lengths always add up to m.Len(). A selection that straddles a
// direction boundary can come back as several selected segments. When rm
// reports a range outside [0, m.Len()], the projection is dropped: Project
// returns a single unselected segment together with an ErrInvalidRange error.
func Project(text []byte, m GlyphMap, rm RangeMapper, selStart, selEnd int) ([]Segment, error) {
	n := len(m)
	if n == 0 {
		return nil, nil
	}

	a := clampInt(selStart, 0, n)
	b := clampInt(selEnd, 0, n)
	if a > b {
		a, b = b, a
	}
	if a == 0 && b == n {
		return []Segment{{Len: n, Selected: true}}, nil
	}

	start, end := SelectionBytes(m, len(text), a, b)
	if start == end || rm == nil {
		return unselected(n), nil
	}

	ranges := append([]GlyphRange(nil), rm.VisualRanges(text, start, end)...)
	for _, r := range ranges {
		if r.Start < 0 || r.End > n || r.Start > r.End {
			return unselected(n), fmt.Errorf("range [%d,%d) of %d glyphs: %w", r.Start, r.End, n, ErrInvalidRange)
		}
	}
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].Start < ranges[j].Start })

	var out []Segment
	push := func(length int, selected bool) {
		if length <= 0 {
			return
		}
		if last := len(out) - 1; last >= 0 && out[last].Selected == selected {
			out[last].Len += length
			return
		}
		out = append(out, Segment{Len: length, Selected: selected})
	}

	pos := 0
	for _, r := range ranges {
		if r.End <= pos {
			continue
		}
		if r.Start > pos {
			push(r.Start-pos, false)
			pos = r.Start
		}
		push(r.End-pos, true)
		pos = r.End
	}
	push(n-pos, false)
	return out, nil
}

func unselected(n int) []Segment {
	return []Segment{{Len: n}}
}
