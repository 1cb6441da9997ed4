package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Left and Right are visual: they move the caret across the screen whatever
// the direction of the text under it.
type KeyMap struct {
	Left, Right           key.Binding
	ShiftLeft, ShiftRight key.Binding
	WordLeft, WordRight   key.Binding
	Home, End             key.Binding
	ShiftHome, ShiftEnd   key.Binding
	SelectAll             key.Binding

	Backspace, Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),

		// Portable word movement: terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		ShiftHome: key.NewBinding(key.WithKeys("shift+home"), key.WithHelp("shift+home", "select to start")),
		ShiftEnd:  key.NewBinding(key.WithKeys("shift+end"), key.WithHelp("shift+end", "select to end")),
		SelectAll: key.NewBinding(key.WithKeys("alt+a"), key.WithHelp("alt+a", "select all")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete back")),
		Delete:    key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("del", "delete forward")),
	}
}

// isZero reports whether no binding has keys, i.e. the host left KeyMap unset.
func (km KeyMap) isZero() bool {
	for _, b := range []key.Binding{
		km.Left, km.Right, km.ShiftLeft, km.ShiftRight, km.WordLeft, km.WordRight,
		km.Home, km.End, km.ShiftHome, km.ShiftEnd, km.SelectAll, km.Backspace, km.Delete,
	} {
		if len(b.Keys()) > 0 {
			return false
		}
	}
	return true
}
