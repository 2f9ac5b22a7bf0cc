package editor

import "github.com/iw2rmb/reedit/internal/grapheme"

// scroller keeps one index inside a window of visible rows.
//
// The offset only moves when the index leaves the window.
type scroller struct {
	offset int
}

func (s *scroller) follow(index, visible int) {
	if visible <= 0 {
		return
	}
	if index < s.offset {
		s.offset = index
		return
	}
	if index >= s.offset+visible {
		s.offset = index - visible + 1
	}
}

// followViewport recomputes every scroll offset once per input event.
func (m *Model) followViewport() {
	l := m.layout()
	cur := m.buf.Cursor()

	m.docScroll.follow(cur.Row, l.bodyHeight)
	m.colScroll.follow(grapheme.Cells(m.buf.Clusters(cur.Row), cur.Col), l.textWidth)
	m.sideScroll.follow(m.browser.Index(), l.sidebarRows)
}
