package buffer

// Pos addresses the document by row and grapheme-cluster column, both
// 0-based. Col may equal the line length: the slot after the last cluster.
type Pos struct {
	Row int
	Col int
}

// Before reports whether p comes strictly before q in document order.
func (p Pos) Before(q Pos) bool {
	return p.Row < q.Row || (p.Row == q.Row && p.Col < q.Col)
}

// Range is the half-open span [Start, End).
type Range struct {
	Start Pos
	End   Pos
}

// Ordered returns r with Start not after End.
func (r Range) Ordered() Range {
	if r.End.Before(r.Start) {
		return Range{Start: r.End, End: r.Start}
	}
	return r
}

func (r Range) Empty() bool { return r.Start == r.End }

func clampInt(v, lo, hi int) int {
	if hi < lo || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampPos pulls p onto an existing row and into [0, len(row)].
func (b *Buffer) clampPos(p Pos) Pos {
	row := clampInt(p.Row, 0, len(b.lines)-1)
	return Pos{Row: row, Col: clampInt(p.Col, 0, len(b.lines[row]))}
}

func (b *Buffer) clampRange(r Range) Range {
	return Range{Start: b.clampPos(r.Start), End: b.clampPos(r.End)}.Ordered()
}
