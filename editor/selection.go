package editor

import (
	"fmt"
	"strings"
)

// startSelection anchors a line selection at the cursor row and enters
// Visual mode.
func (m *Model) startSelection() {
	m.anchor = m.buf.Cursor().Row
	m.hasAnchor = true
	m.mode = ModeVisual
}

// copySelection stores the selected rows, joined by '\n', in the clipboard
// and returns to Command mode. Without an anchor it does nothing.
func (m *Model) copySelection() {
	start, end, ok := m.Selection()
	if !ok {
		return
	}
	text := strings.Join(m.buf.Lines(start, end), "\n")
	if err := m.cfg.Clipboard.WriteText(text); err != nil {
		m.fail(err)
		return
	}

	m.clearSelection()
	m.mode = ModeCommand
	m.setStatus(fmt.Sprintf("%d lines copied", end-start+1))
}

// paste inserts the clipboard lines below the cursor row. The cursor does
// not move and the clipboard keeps its content. An empty string is one
// empty line; only an unset clipboard pastes nothing.
func (m *Model) paste() {
	text, ok, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.fail(err)
		return
	}
	if !ok {
		return
	}
	m.buf.InsertLinesAfter(m.buf.Cursor().Row, strings.Split(text, "\n"))
}
