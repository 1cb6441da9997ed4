package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/VincentWei/MiniGUI-sub011/bidi"
)

func TestOnChange_FiresOnMutationsAndSkipsNoOps(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Text: "ab",
		OnChange: func(ev ChangeEvent) {
			events = append(events, ev)
		},
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if len(events) != 1 {
		t.Fatalf("events after move: got %d, want %d", len(events), 1)
	}
	if got := events[0].Text; got != "ab" {
		t.Fatalf("event text after move: got %q, want %q", got, "ab")
	}
	if got := events[0].Caret; got != 1 {
		t.Fatalf("event caret after move: got %d, want %d", got, 1)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight}) // to EOL
	if len(events) != 2 {
		t.Fatalf("events after move to EOL: got %d, want %d", len(events), 2)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight}) // no-op at EOL
	if len(events) != 2 {
		t.Fatalf("events after no-op: got %d, want %d", len(events), 2)
	}

	m, _ = m.Update(runes("X"))
	if len(events) != 3 {
		t.Fatalf("events after insert: got %d, want %d", len(events), 3)
	}
	if got := events[2].Text; got != "abX" {
		t.Fatalf("event text after insert: got %q, want %q", got, "abX")
	}
	if events[2].TextVersion != events[1].TextVersion+1 {
		t.Fatalf("text version: got %d, want %d", events[2].TextVersion, events[1].TextVersion+1)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftLeft})
	ev := events[len(events)-1]
	if !ev.Selection.Active || ev.Selection.Start != 2 || ev.Selection.End != 3 {
		t.Fatalf("event selection: got %+v, want active [2,3)", ev.Selection)
	}
}

func TestOnChange_ReportsMaxText(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Text:      "ab",
		HardLimit: 2,
		OnChange: func(ev ChangeEvent) {
			events = append(events, ev)
		},
	})

	m, _ = m.Update(runes("c"))
	if len(events) != 1 {
		t.Fatalf("events: got %d, want %d", len(events), 1)
	}
	if !events[0].MaxText {
		t.Fatalf("expected MaxText event")
	}
	if got := events[0].Text; got != "ab" {
		t.Fatalf("event text: got %q, want %q", got, "ab")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if len(events) != 2 || events[1].MaxText {
		t.Fatalf("move after limit: events=%+v", events)
	}
}

func TestOnChange_ReportsDirection(t *testing.T) {
	var last ChangeEvent
	m := New(Config{OnChange: func(ev ChangeEvent) { last = ev }})

	m, _ = m.Update(runes(alef))
	if last.Direction != bidi.RTL {
		t.Fatalf("direction: got %v, want %v", last.Direction, bidi.RTL)
	}
	if got := m.Direction(); got != bidi.RTL {
		t.Fatalf("model direction: got %v, want %v", got, bidi.RTL)
	}
}
