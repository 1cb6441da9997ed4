package sledit

import (
	"log/slog"

	"github.com/VincentWei/MiniGUI-sub011/bidi"
	"github.com/VincentWei/MiniGUI-sub011/shaper"
)

// Config configures a Control.
type Config struct {
	// Text is the initial content.
	Text string

	// HardLimit caps the text at this many characters (grapheme clusters).
	// 0 means unlimited.
	HardLimit int

	// BlockSize and MaxCapacity configure the text buffer; see buffer.Options.
	BlockSize   int
	MaxCapacity int

	// Shaper shapes the text. Default: shaper.New with an LTR default
	// direction.
	Shaper bidi.Shaper

	// Measurer measures glyph runs for Click and CaretX. Default:
	// shaper.CellMeasurer.
	Measurer bidi.Measurer

	// Logger receives debug records. Default: discard.
	Logger *slog.Logger

	// Notify is called once per notification after the edit or command that
	// raised it has completed.
	Notify func(Notification)

	// ReadOnly turns every edit into a no-op. Navigation still works.
	ReadOnly bool
}

func (cfg Config) withDefaults() Config {
	if cfg.HardLimit < 0 {
		cfg.HardLimit = 0
	}
	if cfg.Shaper == nil {
		cfg.Shaper = shaper.New(shaper.Options{})
	}
	if cfg.Measurer == nil {
		cfg.Measurer = shaper.CellMeasurer{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}
