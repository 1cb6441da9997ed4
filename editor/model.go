package editor

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/VincentWei/MiniGUI-sub011/bidi"
	"github.com/VincentWei/MiniGUI-sub011/shaper"
	"github.com/VincentWei/MiniGUI-sub011/sledit"
)

// Model is a Bubble Tea component that renders and interacts with a
// single-line edit control.
type Model struct {
	cfg Config
	ctl *sledit.Control
	log *slog.Logger

	// notes is shared by copies of the model; the control reports into it.
	notes *notes

	focused bool
	width   int
	xOffset int

	mouseDragging bool

	lastVersion uint64
}

type notes struct {
	maxText bool
}

func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 4
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Shaper == nil {
		cfg.Shaper = shaper.New(shaper.Options{DefaultDirection: cfg.DefaultDirection})
	}

	n := &notes{}
	ctl, err := sledit.New(sledit.Config{
		Text:      cfg.Text,
		HardLimit: cfg.HardLimit,
		ReadOnly:  cfg.ReadOnly,
		Shaper:    cfg.Shaper,
		Measurer:  shaper.CellMeasurer{TabWidth: cfg.TabWidth},
		Logger:    cfg.Logger,
		Notify: func(k sledit.Notification) {
			if k == sledit.NotifyMaxText {
				n.maxText = true
			}
		},
	})
	if err != nil {
		// Only a capacity limit can refuse the text, and Config sets none.
		cfg.Logger.Error("editor: control refused initial text", "err", err)
		ctl, _ = sledit.New(sledit.Config{Shaper: cfg.Shaper, Logger: cfg.Logger})
	}

	m := Model{
		cfg:     cfg,
		ctl:     ctl,
		log:     cfg.Logger,
		notes:   n,
		focused: true,
	}
	m.lastVersion = ctl.Version()
	return m
}

// Control returns the edit core. Hosts may drive it directly; the model picks
// up the changes on the next Update.
func (m Model) Control() *sledit.Control { return m.ctl }

func (m Model) Init() tea.Cmd { return nil }

// SetWidth sets the number of cells the line is rendered in. 0 means
// unbounded.
func (m Model) SetWidth(width int) Model {
	if width < 0 {
		width = 0
	}
	m.width = width
	m.followCaret()
	return m
}

func (m Model) Width() int { return m.width }

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.followCaret()
	}
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	m.mouseDragging = false
	return m
}

func (m Model) Focused() bool { return m.focused }

// Text returns the current text in logical order.
func (m Model) Text() string { return m.ctl.Text() }

// Direction returns the paragraph direction of the current text.
func (m Model) Direction() bidi.Direction { return m.ctl.ParagraphDirection() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetWidth(msg.Width), nil
	case tea.KeyMsg:
		m = m.updateKey(msg)
	case tea.MouseMsg:
		m = m.updateMouse(msg)
	}
	m.afterUpdate()
	return m, nil
}

func (m Model) View() string { return m.renderContent() }

// afterUpdate keeps the caret in view and reports changes to the host.
func (m *Model) afterUpdate() {
	ver := m.ctl.Version()
	maxText := m.notes.maxText
	m.notes.maxText = false
	if ver == m.lastVersion && !maxText {
		return
	}
	m.lastVersion = ver
	m.followCaret()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.ctl, maxText))
	}
}

// followCaret scrolls horizontally so the caret cell is visible.
func (m *Model) followCaret() {
	if m.width <= 0 {
		m.xOffset = 0
		return
	}
	x, ok := m.caretCell()
	switch {
	case ok:
		return
	case x < 0:
		m.xOffset += x
	default:
		m.xOffset += x - m.width + 1
	}
	if m.xOffset < 0 {
		m.xOffset = 0
	}
}
