package editor

import "fmt"

// LineNumberWidth returns the line-number gutter width for lineCount,
// including the separating space.
func LineNumberWidth(lineCount int) int {
	return gutterDigits(lineCount) + 1
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}

func (m Model) renderGutter(row int, l layout) string {
	if l.gutterWidth == 0 {
		return ""
	}
	digits := l.gutterWidth - 1
	numStyle := m.cfg.Style.LineNum
	if m.mode != ModeCommand && row == m.buf.Cursor().Row {
		numStyle = m.cfg.Style.LineNumActive
	}
	return numStyle.Render(fmt.Sprintf("%*d", digits, row+1)) + m.cfg.Style.Gutter.Render(" ")
}
