package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	bidiedit "github.com/VincentWei/MiniGUI-sub011"
	"github.com/VincentWei/MiniGUI-sub011/bidi"
	"github.com/VincentWei/MiniGUI-sub011/editor"
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

type eventState struct {
	count int
	last  editor.ChangeEvent
}

func (s *eventState) handleChange(ev editor.ChangeEvent) {
	s.count++
	s.last = ev
}

func (s *eventState) initFromEditor(m editor.Model) {
	ctl := m.Control()
	s.last.Version = ctl.Version()
	s.last.TextVersion = ctl.TextVersion()
	s.last.Caret = ctl.Caret()
	s.last.Direction = ctl.ParagraphDirection()
	s.last.Text = ctl.Text()
	if start, end, ok := ctl.Selection(); ok {
		s.last.Selection.Active = true
		s.last.Selection.Start = start
		s.last.Selection.End = end
	}
}

type model struct {
	editor editor.Model
	events *eventState
}

func newModel(cfg editor.Config) model {
	state := &eventState{}
	cfg.OnChange = state.handleChange

	m := model{editor: editor.New(cfg), events: state}
	m.events.initFromEditor(m.editor)
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "ctrl+q", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	last := m.events.last

	selection := "none"
	if last.Selection.Active {
		selection = fmt.Sprintf("[%d,%d)", last.Selection.Start, last.Selection.End)
	}
	limit := ""
	if last.MaxText {
		limit = " (limit reached)"
	}

	status := strings.Join([]string{
		"",
		"",
		fmt.Sprintf("events: %d  version: %d  text version: %d", m.events.count, last.Version, last.TextVersion),
		fmt.Sprintf("direction: %s  caret: %d  selection: %s", last.Direction, last.Caret, selection),
		fmt.Sprintf("text bytes: %d%s", len(last.Text), limit),
		"Ctrl+Q quits. bidiedit " + bidiedit.VersionTag(),
	}, "\n")

	return m.editor.View() + statusStyle.Render(status)
}

func main() {
	text := flag.String("text", "Hello שלום world", "initial text")
	limit := flag.Int("limit", 0, "maximum number of characters, 0 for no limit")
	rtl := flag.Bool("rtl", false, "use a right-to-left paragraph when the text has no strong character")
	verbose := flag.Bool("v", false, "log debug records")
	logPath := flag.String("log", "", "append logs to this file")
	flag.Parse()

	logger := slog.New(slog.DiscardHandler)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			_, _ = os.Stderr.WriteString(err.Error() + "\n")
			os.Exit(1)
		}
		defer f.Close()

		var level slog.LevelVar
		level.Set(slog.LevelInfo)
		if *verbose {
			level.Set(slog.LevelDebug)
		}
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: &level}))
	}

	dir := bidi.LTR
	if *rtl {
		dir = bidi.RTL
	}

	p := tea.NewProgram(newModel(editor.Config{
		Text:             *text,
		HardLimit:        *limit,
		DefaultDirection: dir,
		Style:            editor.DefaultStyle(),
		Logger:           logger,
	}), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
