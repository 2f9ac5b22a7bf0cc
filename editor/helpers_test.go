package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/reedit/storage"
)

func newTestModel(t *testing.T, store *storage.Memory, cfg Config) Model {
	t.Helper()
	if cfg.Storage == nil {
		cfg.Storage = store
	}
	if cfg.Dir == "" {
		cfg.Dir = "/"
	}
	m, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m.SetSize(60, 16)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

// typeKeys sends s one rune at a time, as a terminal would.
func typeKeys(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m, _ = m.Update(keyRunes(string(r)))
	}
	return m
}

func runCmd(t *testing.T, m Model, line string) (Model, tea.Cmd) {
	t.Helper()
	m = typeKeys(t, m, line)
	return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
