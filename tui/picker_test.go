package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPickerNavigationAndSelect(t *testing.T) {
	p := NewPicker([]string{"a.mid", "b.mid", "c.mid"})

	m, _ := p.Update(key("j"))
	m, _ = m.Update(key("j"))
	m, _ = m.Update(key("k"))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if cmd == nil {
		t.Fatal("enter should quit the program")
	}
	if got := m.(Picker).Choice(); got != "b.mid" {
		t.Fatalf("choice: got %q want b.mid", got)
	}
}

func TestPickerCursorStaysInBounds(t *testing.T) {
	p := NewPicker([]string{"only.mid"})

	m, _ := p.Update(key("k"))
	m, _ = m.Update(key("j"))
	m, _ = m.Update(key("j"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.(Picker).Choice(); got != "only.mid" {
		t.Fatalf("choice: got %q", got)
	}
}

func TestPickerQuitWithoutChoice(t *testing.T) {
	p := NewPicker([]string{"a.mid"})
	m, cmd := p.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should quit the program")
	}
	if got := m.(Picker).Choice(); got != "" {
		t.Fatalf("choice after quit: got %q want empty", got)
	}
}

func TestPickerViewMarksCursor(t *testing.T) {
	p := NewPicker([]string{"a.mid", "b.mid"})
	view := p.View()
	if !strings.Contains(view, "▸ a.mid") {
		t.Fatalf("cursor marker missing:\n%s", view)
	}
	if !strings.Contains(view, "  b.mid") {
		t.Fatalf("unselected entry missing:\n%s", view)
	}
}
