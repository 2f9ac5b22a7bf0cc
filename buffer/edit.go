package buffer

import (
	"strings"

	"github.com/iw2rmb/reedit/internal/grapheme"
)

// TabWidth is the number of spaces inserted by InsertTab and used for the
// extra indent of a bracket split.
const TabWidth = 4

var tabSpaces = strings.Repeat(" ", TabWidth)

// IndentMode selects how SplitLine treats indentation.
type IndentMode int

const (
	// IndentNone splits the line at the cursor and nothing else.
	IndentNone IndentMode = iota
	// IndentAuto carries the leading whitespace onto the new line and opens
	// an indented blank line between matching brackets.
	IndentAuto
)

var autoPairs = map[rune]rune{
	'(':  ')',
	'[':  ']',
	'{':  '}',
	'"':  '"',
	'\'': '\'',
}

var splitPairs = map[string]string{
	"(": ")",
	"[": "]",
	"{": "}",
}

// ClosingPair returns the closing character inserted by InsertPair for open.
func ClosingPair(open rune) (rune, bool) {
	c, ok := autoPairs[open]
	return c, ok
}

// InsertText inserts text at the cursor. Text may contain '\n'.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		return
	}

	change := b.beginChange()
	nextCursor, applied, changed := b.replaceRange(Range{Start: b.cursor, End: b.cursor}, s)
	if !changed {
		return
	}
	b.commitChange(change, nextCursor, applied)
}

// InsertRune inserts r at the cursor.
func (b *Buffer) InsertRune(r rune) {
	b.InsertText(string(r))
}

// InsertPair inserts open and its closing character, leaving the cursor
// between them. It reports false, and does nothing, for characters without
// a pair.
func (b *Buffer) InsertPair(open rune) bool {
	closer, ok := ClosingPair(open)
	if !ok {
		return false
	}

	start := b.cursor
	change := b.beginChange()
	next, applied, changed := b.replaceRange(Range{Start: start, End: start}, string(open)+string(closer))
	if !changed {
		return false
	}
	b.commitChange(change, Pos{Row: next.Row, Col: next.Col - 1}, applied)
	return true
}

// InsertTab inserts TabWidth spaces at the cursor.
func (b *Buffer) InsertTab() {
	b.InsertText(tabSpaces)
}

// SplitLine breaks the current line at the cursor and moves the cursor to
// the start of the new line's content.
//
// With IndentAuto the whitespace prefix of the current line is copied onto
// the new line. When the cursor sits between a matching bracket pair two
// lines are inserted instead: an indented blank line holding the cursor and
// a line carrying the closing bracket at the original indent.
func (b *Buffer) SplitLine(mode IndentMode) {
	cur := b.cursor
	line := b.lines[cur.Row]

	text := "\n"
	next := Pos{Row: cur.Row + 1, Col: 0}
	if mode == IndentAuto {
		indent := grapheme.LeadingSpace(line[:cur.Col])
		prefix := grapheme.Join(indent)
		if betweenSplitPair(line, cur.Col) {
			text = "\n" + prefix + tabSpaces + "\n" + prefix
			next = Pos{Row: cur.Row + 1, Col: len(indent) + TabWidth}
		} else {
			text = "\n" + prefix
			next = Pos{Row: cur.Row + 1, Col: len(indent)}
		}
	}

	change := b.beginChange()
	_, applied, changed := b.replaceRange(Range{Start: cur, End: cur}, text)
	if !changed {
		return
	}
	b.commitChange(change, next, applied)
}

func betweenSplitPair(line []string, col int) bool {
	if col <= 0 || col >= len(line) {
		return false
	}
	closer, ok := splitPairs[line[col-1]]
	return ok && line[col] == closer
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	row, col := b.cursor.Row, b.cursor.Col
	if row == 0 && col == 0 {
		return
	}

	start := Pos{Row: row, Col: col - 1}
	if col == 0 {
		// Join with previous line (delete the newline).
		start = Pos{Row: row - 1, Col: len(b.lines[row-1])}
	}

	change := b.beginChange()
	nextCursor, applied, changed := b.replaceRange(Range{Start: start, End: b.cursor}, "")
	if !changed {
		return
	}
	b.commitChange(change, nextCursor, applied)
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	row, col := b.cursor.Row, b.cursor.Col
	lastRow := len(b.lines) - 1
	if row == lastRow && col == len(b.lines[lastRow]) {
		return
	}

	end := Pos{Row: row, Col: col + 1}
	if col >= len(b.lines[row]) {
		// Join with next line (delete the newline).
		end = Pos{Row: row + 1, Col: 0}
	}

	change := b.beginChange()
	_, applied, changed := b.replaceRange(Range{Start: b.cursor, End: end}, "")
	if !changed {
		return
	}
	b.commitChange(change, b.cursor, applied)
}

// InsertLinesAfter inserts lines as new rows directly below row. The cursor
// keeps its position. It reports whether anything was inserted.
func (b *Buffer) InsertLinesAfter(row int, lines []string) bool {
	if len(lines) == 0 {
		return false
	}
	row = clampInt(row, 0, len(b.lines)-1)
	at := Pos{Row: row, Col: len(b.lines[row])}

	cursor := b.cursor
	change := b.beginChange()
	_, applied, changed := b.replaceRange(Range{Start: at, End: at}, "\n"+strings.Join(lines, "\n"))
	if !changed {
		return false
	}
	b.commitChange(change, cursor, applied)
	return true
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor Pos, applied AppliedEdit, changed bool) {
	r = b.clampRange(r)
	if r.Empty() && text == "" {
		return b.cursor, AppliedEdit{}, false
	}

	startRow, startCol := r.Start.Row, r.Start.Col
	endRow, endCol := r.End.Row, r.End.Col
	deletedText := textForLinesRange(b.lines, r)
	if deletedText == text {
		return b.cursor, AppliedEdit{}, false
	}

	// Edited lines are re-segmented so an inserted combining mark joins the
	// cluster before it instead of becoming a column of its own.
	prefix := grapheme.Join(b.lines[startRow][:startCol])
	suffix := grapheme.Join(b.lines[endRow][endCol:])

	parts := strings.Split(text, "\n")
	last := len(parts) - 1
	parts[0] = prefix + parts[0]
	head := parts[last]
	parts[last] += suffix

	repl := make([][]string, 0, len(parts))
	for _, p := range parts {
		repl = append(repl, grapheme.Split(p))
	}
	nextCursor = Pos{Row: startRow + last, Col: grapheme.Count(head)}

	before := b.lines[:startRow]
	after := b.lines[endRow+1:]
	out := make([][]string, 0, len(before)+len(repl)+len(after))
	out = append(out, before...)
	out = append(out, repl...)
	out = append(out, after...)
	if len(out) == 0 {
		out = [][]string{nil}
	}

	b.lines = out
	applied = AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Range{Start: r.Start, End: nextCursor},
		InsertText:  text,
		DeletedText: deletedText,
	}
	return nextCursor, applied, true
}

func textForLinesRange(lines [][]string, r Range) string {
	r = r.Ordered()
	if r.Empty() {
		return ""
	}

	startRow, startCol := r.Start.Row, r.Start.Col
	endRow, endCol := r.End.Row, r.End.Col

	if startRow == endRow {
		return grapheme.Join(lines[startRow][startCol:endCol])
	}

	var sb strings.Builder
	for row := startRow; row <= endRow; row++ {
		if row > startRow {
			sb.WriteByte('\n')
		}
		partStart := 0
		partEnd := len(lines[row])
		if row == startRow {
			partStart = startCol
		}
		if row == endRow {
			partEnd = endCol
		}
		sb.WriteString(grapheme.Join(lines[row][partStart:partEnd]))
	}
	return sb.String()
}
