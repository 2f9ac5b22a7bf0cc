package editor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/reedit/internal/grapheme"
)

const (
	headerRows = 4
	footerRows = 2
)

// Frame is one rendered screen: styled rows, exactly as tall as the
// terminal, and the cell the cursor is painted on.
type Frame struct {
	Rows      []string
	CursorRow int
	CursorCol int
}

type layout struct {
	width, height int
	bodyHeight    int

	sidebarWidth int
	sidebarInner int
	sidebarRows  int

	docWidth    int
	gutterWidth int
	textWidth   int
}

func (m Model) layout() layout {
	l := layout{width: m.width, height: m.height}
	l.bodyHeight = maxInt(m.height-headerRows-footerRows, 0)

	sw := minInt(m.cfg.SidebarWidth, m.width/2)
	if inner := sw - m.cfg.Style.Sidebar.GetHorizontalFrameSize(); inner >= 1 && l.bodyHeight > 0 {
		l.sidebarWidth = sw
		l.sidebarInner = inner
		// The first sidebar row names the directory.
		l.sidebarRows = l.bodyHeight - 1
	}

	l.docWidth = maxInt(m.width-l.sidebarWidth, 0)
	if m.cfg.LineNumbers {
		if w := LineNumberWidth(m.buf.LineCount()); w < l.docWidth {
			l.gutterWidth = w
		}
	}
	l.textWidth = l.docWidth - l.gutterWidth
	return l
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return strings.Join(m.Frame().Rows, "\n")
}

// Frame derives the screen for the current session state.
func (m Model) Frame() Frame {
	l := m.layout()
	if l.width == 0 || l.height == 0 {
		return Frame{}
	}

	rows := m.renderHeader(l)
	if l.bodyHeight > 0 {
		rows = append(rows, strings.Split(m.renderBody(l), "\n")...)
	}
	rows = append(rows, m.renderCommandLine(l), m.renderStatus(l))

	f := Frame{}
	cellWidth := 1
	visible := true
	if m.mode == ModeCommand {
		f.CursorRow = len(rows) - 2
		f.CursorCol = minInt(ansi.StringWidth(tailFit(m.cmdline, l.width-1)), l.width-1)
	} else {
		cur := m.buf.Cursor()
		clusters := m.buf.Clusters(cur.Row)
		if cur.Col < len(clusters) {
			cellWidth = grapheme.Width(clusters[cur.Col])
		}
		f.CursorRow = headerRows + cur.Row - m.docScroll.offset
		f.CursorCol = l.sidebarWidth + l.gutterWidth + grapheme.Cells(clusters, cur.Col) - m.colScroll.offset
		visible = l.bodyHeight > 0
	}

	// Terminals shorter than the chrome lose header rows first.
	if over := len(rows) - l.height; over > 0 {
		rows = rows[over:]
		f.CursorRow = maxInt(f.CursorRow-over, 0)
	}
	if visible && f.CursorRow < len(rows) {
		rows[f.CursorRow] = m.paintCursor(rows[f.CursorRow], f.CursorCol, cellWidth, l.width)
	}
	f.Rows = rows
	return f
}

// paintCursor restyles cells [col, col+width) of row with Style.Cursor.
func (m Model) paintCursor(row string, col, width, rowWidth int) string {
	if col < 0 || col+width > rowWidth {
		return row
	}
	left := ansi.Truncate(row, col, "")
	cell := ansi.Strip(ansi.Cut(row, col, col+width))
	right := ansi.TruncateLeft(row, col+width, "")
	return left + m.cfg.Style.Cursor.Render(cell) + right
}

func (m Model) renderHeader(l layout) []string {
	st := m.cfg.Style
	km := m.cfg.KeyMap

	help := []string{":w - save", ":q - quit", ":e - open"}
	for _, b := range []struct{ keys, desc string }{
		{km.InsertMode.Help().Key, km.InsertMode.Help().Desc},
		{km.VisualMode.Help().Key, km.VisualMode.Help().Desc},
		{km.Copy.Help().Key, km.Copy.Help().Desc},
		{km.Paste.Help().Key, km.Paste.Help().Desc},
	} {
		if b.keys != "" {
			help = append(help, b.keys+" - "+b.desc)
		}
	}

	return []string{
		st.Title.Render(fit("ReEdit", l.width)),
		st.Path.Render(fit("< "+m.pathLabel()+" >", l.width)),
		st.Help.Render(fit(strings.Join(help, " | "), l.width)),
		st.Separator.Render(strings.Repeat("─", l.width)),
	}
}

func (m Model) renderBody(l layout) string {
	doc := m.renderDocument(l)
	if l.sidebarWidth == 0 {
		return doc
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(l), doc)
}

func (m Model) renderSidebar(l layout) string {
	st := m.cfg.Style
	rows := make([]string, 0, l.bodyHeight)
	rows = append(rows, st.SidebarDir.Render(fit(dirLabel(m.browser.Dir()), l.sidebarInner)))

	entries := m.browser.Entries()
	sel := m.browser.Index()
	for i := m.sideScroll.offset; i < len(entries) && len(rows) < l.bodyHeight; i++ {
		e := entries[i]
		name, s := e.Name, st.SidebarEntry
		if e.IsDir {
			name += "/"
			s = st.SidebarFolder
		}
		if i == sel {
			s = st.SidebarSelected
		}
		rows = append(rows, s.Render(fit(name, l.sidebarInner)))
	}
	for len(rows) < l.bodyHeight {
		rows = append(rows, strings.Repeat(" ", l.sidebarInner))
	}
	return st.Sidebar.Render(strings.Join(rows, "\n"))
}

func (m Model) renderDocument(l layout) string {
	selStart, selEnd, selOK := m.Selection()

	rows := make([]string, 0, l.bodyHeight)
	for i := 0; i < l.bodyHeight; i++ {
		row := m.docScroll.offset + i
		if row >= m.buf.LineCount() {
			break
		}
		selected := selOK && row >= selStart && row <= selEnd
		rows = append(rows, m.renderGutter(row, l)+m.renderLine(m.buf.Clusters(row), selected, l))
	}

	vp := m.viewport
	vp.Width = l.docWidth
	vp.Height = l.bodyHeight
	vp.SetContent(strings.Join(rows, "\n"))
	return vp.View()
}

// renderLine draws the visible cell window of one line.
func (m Model) renderLine(clusters []string, selected bool, l layout) string {
	st := m.cfg.Style
	text := st.Text
	if selected {
		text = st.Selection
	}
	left, right := m.colScroll.offset, m.colScroll.offset+l.textWidth

	var run strings.Builder
	cell := 0
	for _, c := range clusters {
		w := grapheme.Width(c)
		start, end := cell, cell+w
		cell = end
		if end <= left {
			continue
		}
		if start >= right {
			break
		}

		g := c
		if start < left || end > right || !grapheme.Printable(c) {
			g = strings.Repeat(" ", minInt(end, right)-maxInt(start, left))
		}
		run.WriteString(g)
	}

	if selected && len(clusters) == 0 {
		run.WriteString(" ")
	}
	if run.Len() == 0 {
		return ""
	}
	return text.Render(run.String())
}

func (m Model) renderCommandLine(l layout) string {
	st := m.cfg.Style
	if m.mode != ModeCommand {
		return st.CommandLine.Render(strings.Repeat(" ", l.width))
	}
	text := tailFit(m.cmdline, l.width-1)
	pad := l.width - ansi.StringWidth(text)
	return st.CommandLine.Render(text) + strings.Repeat(" ", maxInt(pad, 0))
}

func (m Model) renderStatus(l layout) string {
	st := m.cfg.Style
	cur := m.buf.Cursor()

	path := m.pathLabel()
	if m.Modified() {
		path += " [+]"
	}
	label := m.mode.Label()
	rest := fmt.Sprintf(" | %s | ln %d | col %d | %s", path, cur.Row+1, cur.Col+1, m.status)

	lw := ansi.StringWidth(label)
	if lw >= l.width {
		return st.StatusMode.Render(fit(label, l.width))
	}
	return st.StatusMode.Render(label) + st.Status.Render(fit(rest, l.width-lw))
}

func (m Model) pathLabel() string {
	if m.path == "" {
		return "[untitled]"
	}
	return m.path
}

func dirLabel(dir string) string {
	base := filepath.Base(dir)
	if base == string(filepath.Separator) || base == "." {
		return base
	}
	return base + string(filepath.Separator)
}

// fit truncates s to width cells and pads it with spaces to exactly width.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "…")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// tailFit keeps the last clusters of s that fit in width cells.
func tailFit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	clusters := grapheme.Split(s)
	cells := 0
	i := len(clusters)
	for i > 0 {
		w := grapheme.Width(clusters[i-1])
		if cells+w > width {
			break
		}
		cells += w
		i--
	}
	return grapheme.Join(clusters[i:])
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
