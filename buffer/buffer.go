package buffer

import (
	"strings"

	"github.com/iw2rmb/reedit/internal/grapheme"
)

// Buffer is the document state: lines and the cursor.
//
// Buffer is the only owner of line contents. Every mutation goes through
// one of its methods, which keep the cursor inside document bounds.
type Buffer struct {
	lines       [][]string
	version     uint64
	textVersion uint64

	cursor Pos

	lastChange    Change
	hasLastChange bool
}

// New builds a buffer from text, splitting on '\n'. Empty text yields the
// single empty line.
func New(text string) *Buffer {
	return &Buffer{lines: splitLines(text)}
}

// FromLines builds a buffer from already split lines.
func FromLines(lines []string) *Buffer {
	out := make([][]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, grapheme.Split(l))
	}
	if len(out) == 0 {
		out = append(out, nil)
	}
	return &Buffer{lines: out}
}

// Text joins all lines with '\n'. A trailing newline is never added.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(grapheme.Join(line))
	}
	return sb.String()
}

// Version increases on every effective cursor or text change.
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion increases only when the document text changes.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) Cursor() Pos { return b.cursor }

// SetCursor moves the cursor to p, clamped into document bounds.
func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return grapheme.Join(b.lines[row])
}

// LineLen returns the column length of row, or 0 when row is out of range.
func (b *Buffer) LineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

// Clusters returns a copy of the grapheme clusters of row.
func (b *Buffer) Clusters(row int) []string {
	if row < 0 || row >= len(b.lines) {
		return nil
	}
	return append([]string(nil), b.lines[row]...)
}

// Lines returns the text of rows [start, end], inclusive, clamped to the
// document.
func (b *Buffer) Lines(start, end int) []string {
	if start > end {
		start, end = end, start
	}
	start = clampInt(start, 0, len(b.lines)-1)
	end = clampInt(end, 0, len(b.lines)-1)
	out := make([]string, 0, end-start+1)
	for row := start; row <= end; row++ {
		out = append(out, grapheme.Join(b.lines[row]))
	}
	return out
}

func splitLines(text string) [][]string {
	parts := strings.Split(text, "\n")
	lines := make([][]string, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, grapheme.Split(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}
