package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loadPlayModel(t *testing.T) playModel {
	t.Helper()
	b, err := loadBracket(writeDefinition(t, "cup.toml", winner127TOML))
	if err != nil {
		t.Fatal(err)
	}
	return newPlayModel(b)
}

func TestPlayModelStep(t *testing.T) {
	m := loadPlayModel(t)

	next, cmd := m.Update(keyRunes("n"))
	if cmd != nil {
		t.Error("stepping should not return a command")
	}
	m = next.(playModel)
	if m.b.Complete() != 1 {
		t.Errorf("complete rounds = %d, want 1", m.b.Complete())
	}
	if len(m.events) != 1 {
		t.Fatalf("events = %v, want one", m.events)
	}

	for range 8 {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m = next.(playModel)
	}
	if m.b.Complete() != 9 {
		t.Errorf("complete rounds = %d, want 9", m.b.Complete())
	}
	if len(m.events) != maxEvents {
		t.Errorf("kept %d events, want %d", len(m.events), maxEvents)
	}
	if !strings.Contains(m.View(), "Champion: Int Fighter: 127") {
		t.Error("view should name the champion")
	}

	// Stepping a finished bracket is a no-op.
	next, _ = m.Update(keyRunes("n"))
	if got := next.(playModel).events; len(got) != maxEvents || got[len(got)-1] != m.events[len(m.events)-1] {
		t.Errorf("events changed after the final: %v", got)
	}
}

func TestPlayModelSolveAll(t *testing.T) {
	m := loadPlayModel(t)
	next, _ := m.Update(keyRunes("n"))
	next, _ = next.(playModel).Update(keyRunes("a"))
	m = next.(playModel)

	if m.b.Complete() != m.b.Rounds() {
		t.Errorf("complete = %d of %d", m.b.Complete(), m.b.Rounds())
	}
	if got := m.events[len(m.events)-1]; got != "Solved 8 remaining rounds" {
		t.Errorf("last event = %q", got)
	}
}

func TestPlayModelQuit(t *testing.T) {
	m := loadPlayModel(t)
	for _, msg := range []tea.KeyMsg{keyRunes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("%s: expected a quit command", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: command did not quit", msg)
		}
	}
}

func TestPlayModelView(t *testing.T) {
	m := loadPlayModel(t)
	view := m.View()
	for _, want := range []string{"Winner 127", "[0/9 rounds]", "Incomplete"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "Champion") {
		t.Error("unsolved view should not name a champion")
	}
}
