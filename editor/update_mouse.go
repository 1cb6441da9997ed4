package editor

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateMouse(msg tea.MouseMsg) Model {
	if !m.focused || m.ctl == nil {
		return m
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		switch msg.Button { //nolint:exhaustive
		case tea.MouseButtonWheelLeft:
			m.scrollBy(-1)
			return m
		case tea.MouseButtonWheelRight:
			m.scrollBy(1)
			return m
		case tea.MouseButtonLeft:
		default:
			return m
		}
		if msg.Y != 0 || !m.mouseInBounds(msg.X) {
			return m
		}
		m.clickAt(msg.X, msg.Shift)
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m
		}
		m.clickAt(m.clampMouseX(msg.X), true)

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}

	return m
}

func (m Model) mouseInBounds(x int) bool {
	if x < 0 {
		return false
	}
	return m.width <= 0 || x < m.width
}

func (m Model) clampMouseX(x int) int {
	if x < 0 {
		return 0
	}
	if m.width > 0 && x >= m.width {
		return m.width - 1
	}
	return x
}

// scrollBy shifts the view by n cells without moving the caret.
func (m *Model) scrollBy(n int) {
	if m.width <= 0 {
		return
	}
	maxOffset := m.ctl.Width().Round() + 1 - m.width
	if maxOffset < 0 {
		maxOffset = 0
	}
	m.xOffset = clampInt(m.xOffset+n, 0, maxOffset)
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
