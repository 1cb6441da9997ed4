package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/VincentWei/MiniGUI-sub011/sledit"
)

func (m Model) updateKey(msg tea.KeyMsg) Model {
	if !m.focused || m.ctl == nil {
		return m
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.insert(singleLine(string(msg.Runes)))
		return m
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.ctl.Move(sledit.Move{Unit: sledit.MoveGlyph, Dir: sledit.DirLeft})
	case key.Matches(msg, km.Right):
		m.ctl.Move(sledit.Move{Unit: sledit.MoveGlyph, Dir: sledit.DirRight})

	case key.Matches(msg, km.ShiftLeft):
		m.ctl.Move(sledit.Move{Unit: sledit.MoveGlyph, Dir: sledit.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		m.ctl.Move(sledit.Move{Unit: sledit.MoveGlyph, Dir: sledit.DirRight, Extend: true})

	case key.Matches(msg, km.WordLeft):
		m.ctl.Move(sledit.Move{Unit: sledit.MoveWord, Dir: sledit.DirLeft})
	case key.Matches(msg, km.WordRight):
		m.ctl.Move(sledit.Move{Unit: sledit.MoveWord, Dir: sledit.DirRight})

	case key.Matches(msg, km.Home):
		m.ctl.Move(sledit.Move{Unit: sledit.MoveLine, Dir: sledit.DirHome})
	case key.Matches(msg, km.End):
		m.ctl.Move(sledit.Move{Unit: sledit.MoveLine, Dir: sledit.DirEnd})
	case key.Matches(msg, km.ShiftHome):
		m.ctl.Move(sledit.Move{Unit: sledit.MoveLine, Dir: sledit.DirHome, Extend: true})
	case key.Matches(msg, km.ShiftEnd):
		m.ctl.Move(sledit.Move{Unit: sledit.MoveLine, Dir: sledit.DirEnd, Extend: true})
	case key.Matches(msg, km.SelectAll):
		m.ctl.SelectAll()

	case key.Matches(msg, km.Backspace):
		if err := m.ctl.DeleteBackward(); err != nil {
			m.log.Debug("editor: backspace failed", "err", err)
		}
	case key.Matches(msg, km.Delete):
		if err := m.ctl.DeleteForward(); err != nil {
			m.log.Debug("editor: delete failed", "err", err)
		}

	default:
		if msg.Type == tea.KeyTab {
			m.insert("\t")
			return m
		}
		if msg.Type == tea.KeySpace {
			m.insert(" ")
			return m
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.insert(string(msg.Runes))
		}
	}

	return m
}

func (m Model) insert(s string) {
	if s == "" {
		return
	}
	if err := m.ctl.InsertText(s); err != nil {
		m.log.Debug("editor: insert failed", "len", len(s), "err", err)
	}
}

// singleLine folds line breaks in pasted text into spaces.
func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
