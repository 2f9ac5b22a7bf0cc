package buffer

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start
	DirEnd  // line end
)

// Move moves the cursor one step in dir. Horizontal moves wrap across line
// boundaries; vertical moves keep the column, clamped to the target line.
// It reports whether the cursor moved.
func (b *Buffer) Move(dir MoveDir) bool {
	prev := b.cursor
	next := b.clampPos(b.moveCursor(prev, dir))
	if next == prev {
		return false
	}
	b.cursor = next
	b.version++
	return true
}

func (b *Buffer) moveCursor(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.Col
	lastRow := len(b.lines) - 1

	switch dir {
	case DirLeft:
		if row == 0 && col == 0 {
			return p
		}
		if col > 0 {
			return Pos{Row: row, Col: col - 1}
		}
		prevRow := row - 1
		return Pos{Row: prevRow, Col: len(b.lines[prevRow])}
	case DirRight:
		if row == lastRow && col == len(b.lines[lastRow]) {
			return p
		}
		if col < len(b.lines[row]) {
			return Pos{Row: row, Col: col + 1}
		}
		return Pos{Row: row + 1, Col: 0}
	case DirUp:
		if row == 0 {
			return p
		}
		nr := row - 1
		return Pos{Row: nr, Col: minInt(col, len(b.lines[nr]))}
	case DirDown:
		if row == lastRow {
			return p
		}
		nr := row + 1
		return Pos{Row: nr, Col: minInt(col, len(b.lines[nr]))}
	case DirHome:
		return Pos{Row: row, Col: 0}
	case DirEnd:
		return Pos{Row: row, Col: len(b.lines[row])}
	default:
		return p
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
