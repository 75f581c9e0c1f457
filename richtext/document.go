package richtext

import (
	"strings"

	"github.com/iw2rmb/inkwell/internal/grapheme"
)

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Document is the styled text state: lines, cursor, selection and spans.
type Document struct {
	lines   [][]string
	version uint64

	cursor Pos
	sel    selectionState

	spans []Span

	lastChange    Change
	hasLastChange bool
}

// New returns a document holding text, with the cursor at the start.
func New(text string) *Document {
	return &Document{lines: splitLines(text)}
}

func (d *Document) Text() string {
	var sb strings.Builder
	for i, line := range d.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(grapheme.Join(line))
	}
	return sb.String()
}

// Lines returns the document text split into logical lines.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	for i, line := range d.lines {
		out[i] = grapheme.Join(line)
	}
	return out
}

// LineCount returns the number of logical lines (at least 1).
func (d *Document) LineCount() int { return len(d.lines) }

// LineLen returns the grapheme length of row, or 0 when out of range.
func (d *Document) LineLen(row int) int {
	if row < 0 || row >= len(d.lines) {
		return 0
	}
	return len(d.lines[row])
}

// Line returns the grapheme clusters of row. The slice must not be modified.
func (d *Document) Line(row int) []string {
	if row < 0 || row >= len(d.lines) {
		return nil
	}
	return d.lines[row]
}

func (d *Document) Version() uint64 { return d.version }

func (d *Document) Cursor() Pos { return d.cursor }

func (d *Document) SetCursor(p Pos) {
	next := d.clampPos(p)
	if next == d.cursor {
		return
	}
	d.cursor = next
	d.version++
}

// Selection returns the normalized selection. Empty selections are reported
// as inactive.
func (d *Document) Selection() (Range, bool) {
	if !d.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: d.sel.anchor, End: d.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

func (d *Document) SetSelection(r Range) {
	clamped := ClampRange(r, len(d.lines), d.LineLen)
	next := selectionState{active: true, anchor: clamped.Start, end: clamped.End}
	if clamped.Start == clamped.End {
		next = selectionState{}
	}

	prev, prevOK := d.Selection()
	d.sel = next
	cur, curOK := d.Selection()
	if prevOK == curOK && prev == cur {
		return
	}
	d.version++
}

// SelectAll selects the whole document and moves the cursor to its end.
func (d *Document) SelectAll() {
	last := len(d.lines) - 1
	end := Pos{Row: last, Col: len(d.lines[last])}
	d.SetCursor(end)
	d.SetSelection(Range{Start: Pos{}, End: end})
}

func (d *Document) ClearSelection() {
	_, ok := d.Selection()
	d.sel = selectionState{}
	if ok {
		d.version++
	}
}

// anchor is the position styles are queried at: the start of the active
// selection, or the cursor.
func (d *Document) anchor() Pos {
	if r, ok := d.Selection(); ok {
		return r.Start
	}
	return d.cursor
}

func (d *Document) clampPos(p Pos) Pos {
	return ClampPos(p, len(d.lines), d.LineLen)
}

// offset converts p to a linear grapheme offset, counting one per line
// break.
func (d *Document) offset(p Pos) int {
	n := 0
	for row := 0; row < p.Row && row < len(d.lines); row++ {
		n += len(d.lines[row]) + 1
	}
	return n + p.Col
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
