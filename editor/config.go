package editor

import (
	"log/slog"

	"github.com/VincentWei/MiniGUI-sub011/bidi"
)

// Config configures the editor Model.
type Config struct {
	// Initial text.
	Text string

	// HardLimit caps the text at this many characters. 0 means unlimited.
	HardLimit int

	// ReadOnly disables edits; navigation and selection still work.
	ReadOnly bool

	// DefaultDirection is the paragraph direction of text without strong
	// characters. Ignored when Shaper is set.
	DefaultDirection bidi.Direction

	// Shaper overrides the reference shaper.
	Shaper bidi.Shaper

	// TabWidth is the tab stop distance in cells. Default: 4.
	TabWidth int

	// Rendering options.
	Style Style

	KeyMap KeyMap

	// OnChange is called after an update that changed the text, the caret or
	// the selection, or that hit the hard limit.
	OnChange func(ChangeEvent)

	// Logger is handed to the control. Default: discard.
	Logger *slog.Logger
}
