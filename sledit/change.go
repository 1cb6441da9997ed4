package sledit

import "github.com/VincentWei/MiniGUI-sub011/bidi"

// SelectionState captures the normalized selection at a point in time.
type SelectionState struct {
	Active bool
	Start  int
	End    int
}

// AppliedEdit describes one splice of the logical text.
type AppliedEdit struct {
	Offset   int
	Deleted  string
	Inserted string
	// Dir is the resolved run direction of Inserted; Unknown for pure
	// deletions.
	Dir bidi.Direction
}

// Change is the record of one completed edit cycle.
type Change struct {
	VersionBefore   uint64
	VersionAfter    uint64
	CaretBefore     int
	CaretAfter      int
	SelectionBefore SelectionState
	SelectionAfter  SelectionState
	Edits           []AppliedEdit
	// Truncated reports that inserted text was cut at the hard limit.
	Truncated bool
}

type changeBuilder struct {
	versionBefore   uint64
	caretBefore     int
	selectionBefore SelectionState
	edits           []AppliedEdit
	truncated       bool
}

// LastChange returns the most recent effective change.
func (c *Control) LastChange() (Change, bool) {
	if !c.hasLastChange {
		return Change{}, false
	}
	out := c.lastChange
	out.Edits = append([]AppliedEdit(nil), c.lastChange.Edits...)
	return out, true
}

func (c *Control) selectionState() SelectionState {
	start, end, ok := c.Selection()
	if !ok {
		return SelectionState{}
	}
	return SelectionState{Active: true, Start: start, End: end}
}

func (c *Control) beginChange() changeBuilder {
	return changeBuilder{
		versionBefore:   c.version,
		caretBefore:     c.caret,
		selectionBefore: c.selectionState(),
	}
}

func (cb *changeBuilder) add(e AppliedEdit) {
	cb.edits = append(cb.edits, e)
}

func (c *Control) commitChange(cb changeBuilder) {
	if len(cb.edits) == 0 {
		return
	}
	c.version++
	c.textVersion++
	c.lastChange = Change{
		VersionBefore:   cb.versionBefore,
		VersionAfter:    c.version,
		CaretBefore:     cb.caretBefore,
		CaretAfter:      c.caret,
		SelectionBefore: cb.selectionBefore,
		SelectionAfter:  c.selectionState(),
		Edits:           append([]AppliedEdit(nil), cb.edits...),
		Truncated:       cb.truncated,
	}
	c.hasLastChange = true
	c.raise(NotifyChange)
}
