package richtext

import (
	"strings"

	"github.com/iw2rmb/inkwell/internal/grapheme"
)

// InsertText inserts text at the cursor, or replaces the active selection.
func (d *Document) InsertText(s string) {
	if s == "" {
		d.DeleteSelection()
		return
	}
	r, ok := d.Selection()
	if !ok {
		r = Range{Start: d.cursor, End: d.cursor}
	}
	d.replace(r, s)
}

// InsertNewline splits the line at the cursor, or replaces the selection
// with a line break.
func (d *Document) InsertNewline() {
	d.InsertText("\n")
}

// DeleteBackward applies backspace semantics.
func (d *Document) DeleteBackward() {
	if _, ok := d.Selection(); ok {
		d.DeleteSelection()
		return
	}
	row, col := d.cursor.Row, d.cursor.Col
	switch {
	case col > 0:
		d.replace(Range{Start: Pos{Row: row, Col: col - 1}, End: d.cursor}, "")
	case row > 0:
		// Join with the previous line.
		d.replace(Range{Start: Pos{Row: row - 1, Col: len(d.lines[row-1])}, End: d.cursor}, "")
	}
}

// DeleteForward applies delete-key semantics.
func (d *Document) DeleteForward() {
	if _, ok := d.Selection(); ok {
		d.DeleteSelection()
		return
	}
	row, col := d.cursor.Row, d.cursor.Col
	switch {
	case col < len(d.lines[row]):
		d.replace(Range{Start: d.cursor, End: Pos{Row: row, Col: col + 1}}, "")
	case row < len(d.lines)-1:
		// Join with the next line.
		d.replace(Range{Start: d.cursor, End: Pos{Row: row + 1, Col: 0}}, "")
	}
}

// DeleteSelection deletes the active selection, if any.
func (d *Document) DeleteSelection() {
	r, ok := d.Selection()
	if !ok {
		return
	}
	d.replace(r, "")
}

// replace swaps the text in r for text, moves the cursor to the end of the
// inserted text, clears the selection, remaps spans and records the change.
func (d *Document) replace(r Range, text string) {
	r = NormalizeRange(ClampRange(r, len(d.lines), d.LineLen))
	deleted := d.textInRange(r)
	if r.IsEmpty() && text == "" {
		return
	}
	if deleted == text {
		return
	}

	startRow, startCol := r.Start.Row, r.Start.Col
	endRow, endCol := r.End.Row, r.End.Col

	prefix := append([]string(nil), d.lines[startRow][:startCol]...)
	suffix := append([]string(nil), d.lines[endRow][endCol:]...)

	parts := strings.Split(text, "\n")
	repl := make([][]string, 0, len(parts))
	for i, part := range parts {
		var line []string
		if i == 0 {
			line = append(line, prefix...)
		}
		line = append(line, grapheme.Split(part)...)
		repl = append(repl, line)
	}
	lastRow := startRow + len(repl) - 1
	nextCursor := Pos{Row: lastRow, Col: len(repl[len(repl)-1])}
	repl[len(repl)-1] = append(repl[len(repl)-1], suffix...)

	out := make([][]string, 0, len(d.lines)-(endRow-startRow)+len(repl)-1)
	out = append(out, d.lines[:startRow]...)
	out = append(out, repl...)
	out = append(out, d.lines[endRow+1:]...)

	edit := AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Range{Start: r.Start, End: nextCursor},
		InsertText:  text,
		DeletedText: deleted,
	}

	before := d.version
	cursorBefore := d.cursor

	d.lines = out
	d.cursor = nextCursor
	d.sel = selectionState{}
	dropped := d.remapSpans(edit)
	d.version++

	d.lastChange = Change{
		VersionBefore: before,
		VersionAfter:  d.version,
		CursorBefore:  cursorBefore,
		CursorAfter:   d.cursor,
		Edit:          edit,
		DroppedSpans:  dropped,
	}
	d.hasLastChange = true
}

// TextInRange returns the text covered by r.
func (d *Document) TextInRange(r Range) string {
	return d.textInRange(NormalizeRange(ClampRange(r, len(d.lines), d.LineLen)))
}

func (d *Document) textInRange(r Range) string {
	if r.IsEmpty() {
		return ""
	}
	if r.Start.Row == r.End.Row {
		return grapheme.Join(d.lines[r.Start.Row][r.Start.Col:r.End.Col])
	}
	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		from, to := 0, len(d.lines[row])
		if row == r.Start.Row {
			from = r.Start.Col
		}
		if row == r.End.Row {
			to = r.End.Col
		}
		sb.WriteString(grapheme.Join(d.lines[row][from:to]))
	}
	return sb.String()
}
