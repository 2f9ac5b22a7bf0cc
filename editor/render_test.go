package editor

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/reedit/storage"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func stripRows(rows []string) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = ansi.Strip(r)
	}
	return out
}

// docPart returns the document pane of a body row, right of the sidebar
// border.
func docPart(t *testing.T, row string) string {
	t.Helper()
	_, doc, ok := strings.Cut(row, "│")
	if !ok {
		t.Fatalf("row %q has no sidebar border", row)
	}
	return doc
}

const cursorMark = "▮"

// markedStyle draws the cursor cell as cursorMark so it survives ansi.Strip.
func markedStyle() Style {
	st := DefaultStyle()
	st.Cursor = lipgloss.NewStyle().Transform(func(string) string { return cursorMark })
	return st
}

// cursorCell finds the drawn cursor in stripped rows.
func cursorCell(t *testing.T, rows []string) (row, col int) {
	t.Helper()
	for i, r := range rows {
		if j := strings.Index(r, cursorMark); j >= 0 {
			return i, ansi.StringWidth(r[:j])
		}
	}
	t.Fatalf("no cursor in rows %q", rows)
	return 0, 0
}

func TestFrame_FillsTerminal(t *testing.T) {
	m := newTestModel(t, browseStore(), Config{Style: DefaultStyle()})
	m = m.SetSize(40, 10)

	f := m.Frame()
	if got := len(f.Rows); got != 10 {
		t.Fatalf("rows=%d, want 10", got)
	}
	for i, r := range f.Rows {
		if got := ansi.StringWidth(r); got != 40 {
			t.Fatalf("row %d width=%d, want 40: %q", i, got, ansi.Strip(r))
		}
	}
	if got := lipgloss.Height(m.View()); got != 10 {
		t.Fatalf("view height=%d, want 10", got)
	}
}

func TestFrame_HeaderSidebarAndStatus(t *testing.T) {
	m := newTestModel(t, browseStore(), Config{Style: DefaultStyle()})
	m = m.SetSize(80, 10)
	rows := stripRows(m.Frame().Rows)

	if !strings.HasPrefix(rows[0], "ReEdit") {
		t.Fatalf("title row=%q", rows[0])
	}
	if got := strings.TrimRight(rows[1], " "); got != "< [untitled] >" {
		t.Fatalf("path row=%q, want %q", got, "< [untitled] >")
	}
	if !strings.Contains(rows[2], ":w - save") || !strings.Contains(rows[2], "i - insert mode") {
		t.Fatalf("help row=%q", rows[2])
	}
	if rows[3] != strings.Repeat("─", 80) {
		t.Fatalf("separator row=%q", rows[3])
	}

	if !strings.HasPrefix(rows[4], "/ ") {
		t.Fatalf("sidebar title row=%q, want directory label", rows[4])
	}
	if !strings.HasPrefix(rows[5], "a.txt ") {
		t.Fatalf("sidebar row 1=%q, want a.txt", rows[5])
	}
	if !strings.HasPrefix(rows[6], "sub/ ") {
		t.Fatalf("sidebar row 2=%q, want sub/", rows[6])
	}

	status := rows[len(rows)-1]
	if want := "-- COMMAND -- | [untitled] | ln 1 | col 1 |"; !strings.HasPrefix(status, want) {
		t.Fatalf("status=%q, want prefix %q", status, want)
	}
}

func TestFrame_InsertCursorPosition(t *testing.T) {
	store := storage.NewMemory()
	store.AddFile("/a.txt", "hello\naテb")
	m := newTestModel(t, store, Config{Path: "/a.txt", Style: markedStyle()})
	m = m.SetSize(40, 10) // sidebar takes 20 columns

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	f := m.Frame()
	if f.CursorRow != 4 || f.CursorCol != 25 {
		t.Fatalf("cursor cell=(%d,%d), want (4,25)", f.CursorRow, f.CursorCol)
	}
	rows := stripRows(f.Rows)
	if row, col := cursorCell(t, rows); row != f.CursorRow || col != f.CursorCol {
		t.Fatalf("painted cursor=(%d,%d), want (%d,%d)", row, col, f.CursorRow, f.CursorCol)
	}
	if got := docPart(t, rows[4]); !strings.HasPrefix(got, "hello"+cursorMark) {
		t.Fatalf("document row=%q", got)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnd})
	f = m.Frame()
	if f.CursorRow != 5 || f.CursorCol != 24 {
		t.Fatalf("cursor cell after wide line=(%d,%d), want (5,24)", f.CursorRow, f.CursorCol)
	}
	if row, col := cursorCell(t, stripRows(f.Rows)); row != 5 || col != 24 {
		t.Fatalf("painted cursor after wide line=(%d,%d), want (5,24)", row, col)
	}

	// On a wide cluster the whole cluster is painted.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft})
	f = m.Frame()
	if got := docPart(t, ansi.Strip(f.Rows[5])); !strings.HasPrefix(got, "a"+cursorMark+"b") {
		t.Fatalf("document row on wide cluster=%q", got)
	}
}

func TestFrame_StatusShowsModifiedMarker(t *testing.T) {
	store := storage.NewMemory()
	store.AddFile("/a.txt", "x")
	m := newTestModel(t, store, Config{Path: "/a.txt", Style: DefaultStyle()})
	m = m.SetSize(100, 10)
	m = typeKeys(t, m, "y")

	rows := stripRows(m.Frame().Rows)
	status := rows[len(rows)-1]
	if want := "-- INSERT -- | /a.txt [+] | ln 1 | col 2 |"; !strings.HasPrefix(status, want) {
		t.Fatalf("status=%q, want prefix %q", status, want)
	}
}

func TestFrame_CommandLineCursor(t *testing.T) {
	m := newTestModel(t, browseStore(), Config{Style: markedStyle()})
	m = m.SetSize(40, 10)
	m = typeKeys(t, m, ":w")

	f := m.Frame()
	if f.CursorRow != 8 || f.CursorCol != 2 {
		t.Fatalf("cursor cell=(%d,%d), want (8,2)", f.CursorRow, f.CursorCol)
	}
	rows := stripRows(f.Rows)
	if row, col := cursorCell(t, rows); row != 8 || col != 2 {
		t.Fatalf("painted cursor=(%d,%d), want (8,2)", row, col)
	}
	if got := rows[8]; !strings.HasPrefix(got, ":w"+cursorMark+" ") {
		t.Fatalf("command row=%q", got)
	}
}

func TestFrame_LineNumbers(t *testing.T) {
	store := storage.NewMemory()
	store.AddFile("/n.txt", numberedLines(12))
	m := newTestModel(t, store, Config{Path: "/n.txt", Style: DefaultStyle(), LineNumbers: true})
	m = m.SetSize(60, 12)

	rows := stripRows(m.Frame().Rows)
	if got := docPart(t, rows[4]); !strings.HasPrefix(got, " 1 line 1") {
		t.Fatalf("first document row=%q", got)
	}
	if got := docPart(t, rows[9]); !strings.HasPrefix(got, " 6 line 6") {
		t.Fatalf("last document row=%q", got)
	}
}

func TestFrame_TinyAndEmptyTerminals(t *testing.T) {
	m := newTestModel(t, browseStore(), Config{Style: DefaultStyle()})

	m = m.SetSize(30, 4)
	if got := len(m.Frame().Rows); got != 4 {
		t.Fatalf("rows=%d, want 4", got)
	}

	m = m.SetSize(0, 0)
	if got := m.View(); got != "" {
		t.Fatalf("view=%q, want empty", got)
	}
}
