package editor

import (
	"github.com/VincentWei/MiniGUI-sub011/bidi"
	"github.com/VincentWei/MiniGUI-sub011/sledit"
)

type ChangeEvent struct {
	Version     uint64
	TextVersion uint64
	Caret       int
	Selection   struct {
		Start, End int
		Active     bool
	}
	Direction bidi.Direction

	// MaxText is set when typed text was cut at the hard limit.
	MaxText bool

	Text string
}

func buildChangeEvent(c *sledit.Control, maxText bool) ChangeEvent {
	ev := ChangeEvent{
		Version:     c.Version(),
		TextVersion: c.TextVersion(),
		Caret:       c.Caret(),
		Direction:   c.ParagraphDirection(),
		MaxText:     maxText,
		Text:        c.Text(),
	}
	if start, end, ok := c.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Start = start
		ev.Selection.End = end
	}
	return ev
}
