package buffer

// AppliedEdit describes one effective text edit.
type AppliedEdit struct {
	RangeBefore Range
	RangeAfter  Range
	InsertText  string
	DeletedText string
}

// Change is the versioned record of the most recent text mutation.
type Change struct {
	VersionBefore uint64
	VersionAfter  uint64
	CursorBefore  Pos
	CursorAfter   Pos
	Edit          AppliedEdit
}

type changeBuilder struct {
	versionBefore uint64
	cursorBefore  Pos
}

// LastChange returns the most recent effective text change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return b.lastChange, true
}

func (b *Buffer) beginChange() changeBuilder {
	return changeBuilder{
		versionBefore: b.version,
		cursorBefore:  b.cursor,
	}
}

// commitChange finalises a text mutation: it places the cursor, bumps both
// versions and records the change.
func (b *Buffer) commitChange(cb changeBuilder, cursor Pos, edit AppliedEdit) {
	edit.RangeBefore = edit.RangeBefore.Ordered()
	edit.RangeAfter = edit.RangeAfter.Ordered()

	b.cursor = b.clampPos(cursor)
	b.version++
	b.textVersion++
	b.lastChange = Change{
		VersionBefore: cb.versionBefore,
		VersionAfter:  b.version,
		CursorBefore:  cb.cursorBefore,
		CursorAfter:   b.cursor,
		Edit:          edit,
	}
	b.hasLastChange = true
}
