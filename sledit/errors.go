package sledit

import "errors"

var (
	// ErrBusy is returned when an edit is started while another edit cycle of
	// the same control is still running, for example from a Shaper callback.
	ErrBusy = errors.New("edit cycle in progress")

	// ErrClosed is returned by edits on a control whose buffer was freed.
	ErrClosed = errors.New("control closed")
)
