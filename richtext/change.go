package richtext

// AppliedEdit describes one effective text replacement.
type AppliedEdit struct {
	// RangeBefore is the replaced range in pre-edit coordinates.
	RangeBefore Range
	// RangeAfter is the inserted text's range in post-edit coordinates.
	RangeAfter  Range
	InsertText  string
	DeletedText string
}

// Change is the most recent effective text mutation.
type Change struct {
	VersionBefore uint64
	VersionAfter  uint64
	CursorBefore  Pos
	CursorAfter   Pos
	Edit          AppliedEdit
	// DroppedSpans counts spans removed because their text was deleted.
	DroppedSpans int
}

// LastChange returns the most recent effective text change.
func (d *Document) LastChange() (Change, bool) {
	return d.lastChange, d.hasLastChange
}

// mapPos moves p across edit. Positions before the replaced range are kept,
// positions inside it collapse to its start, positions after it shift.
// At a pure insertion point, stickRight decides whether p ends up after the
// inserted text (span starts) or before it (span ends), so text typed at a
// span boundary stays outside the span.
func mapPos(p Pos, edit AppliedEdit, stickRight bool) Pos {
	start, end := edit.RangeBefore.Start, edit.RangeBefore.End
	newEnd := edit.RangeAfter.End

	c := ComparePos(p, start)
	if c < 0 || (c == 0 && !stickRight) {
		return p
	}
	if ComparePos(p, end) < 0 {
		return start
	}
	if p.Row == end.Row {
		return Pos{Row: newEnd.Row, Col: newEnd.Col + (p.Col - end.Col)}
	}
	return Pos{Row: p.Row + (newEnd.Row - end.Row), Col: p.Col}
}

// remapSpans moves every span across edit and drops spans left empty.
func (d *Document) remapSpans(edit AppliedEdit) (dropped int) {
	if len(d.spans) == 0 {
		return 0
	}
	out := d.spans[:0:0]
	for _, sp := range d.spans {
		sp.Range = Range{
			Start: mapPos(sp.Range.Start, edit, true),
			End:   mapPos(sp.Range.End, edit, false),
		}
		if ComparePos(sp.Range.Start, sp.Range.End) >= 0 {
			dropped++
			continue
		}
		out = append(out, sp)
	}
	d.spans = out
	return dropped
}
