package richtext

import "github.com/iw2rmb/inkwell/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start, or document start for MoveDoc
	DirEnd  // line end, or document end for MoveDoc
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // extend the selection from its anchor; otherwise clear it
}

// Move moves the cursor. With Extend the selection grows from its anchor
// (the previous cursor when nothing was selected).
func (d *Document) Move(m Move) {
	prevCursor := d.cursor
	prevSel := d.sel

	next := d.clampPos(d.moveCursor(prevCursor, m))

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != next {
			nextSel = selectionState{active: true, anchor: anchor, end: next}
		}
	}

	if prevCursor == next && sameSelection(prevSel, nextSel) {
		return
	}
	d.cursor = next
	d.sel = nextSel
	d.version++
}

func sameSelection(a, b selectionState) bool {
	if !a.active && !b.active {
		return true
	}
	return a == b
}

func (d *Document) moveCursor(p Pos, m Move) Pos {
	switch m.Unit {
	case MoveGrapheme:
		return d.moveGrapheme(p, m.Dir)
	case MoveWord:
		return d.moveWord(p, m.Dir)
	case MoveLine:
		return d.moveLine(p, m.Dir)
	case MoveDoc:
		return d.moveDoc(p, m.Dir)
	}
	return p
}

func (d *Document) moveGrapheme(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.Col
	last := len(d.lines) - 1

	switch dir {
	case DirLeft:
		if col > 0 {
			return Pos{Row: row, Col: col - 1}
		}
		if row > 0 {
			return Pos{Row: row - 1, Col: len(d.lines[row-1])}
		}
	case DirRight:
		if col < len(d.lines[row]) {
			return Pos{Row: row, Col: col + 1}
		}
		if row < last {
			return Pos{Row: row + 1}
		}
	case DirUp, DirDown, DirHome, DirEnd:
		return d.moveLine(p, dir)
	}
	return p
}

func (d *Document) moveWord(p Pos, dir MoveDir) Pos {
	line := d.lines[p.Row]
	switch dir {
	case DirLeft:
		if p.Col == 0 && p.Row > 0 {
			return Pos{Row: p.Row - 1, Col: len(d.lines[p.Row-1])}
		}
		return Pos{Row: p.Row, Col: prevWordBoundary(line, p.Col)}
	case DirRight:
		if p.Col == len(line) && p.Row < len(d.lines)-1 {
			return Pos{Row: p.Row + 1}
		}
		return Pos{Row: p.Row, Col: nextWordBoundary(line, p.Col)}
	}
	return d.moveLine(p, dir)
}

func (d *Document) moveLine(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.Col
	switch dir {
	case DirHome:
		return Pos{Row: row}
	case DirEnd:
		return Pos{Row: row, Col: len(d.lines[row])}
	case DirUp:
		if row == 0 {
			return Pos{}
		}
		return Pos{Row: row - 1, Col: min(col, len(d.lines[row-1]))}
	case DirDown:
		if row == len(d.lines)-1 {
			return Pos{Row: row, Col: len(d.lines[row])}
		}
		return Pos{Row: row + 1, Col: min(col, len(d.lines[row+1]))}
	}
	return p
}

func (d *Document) moveDoc(p Pos, dir MoveDir) Pos {
	last := len(d.lines) - 1
	switch dir {
	case DirHome, DirUp:
		return Pos{}
	case DirEnd, DirDown:
		return Pos{Row: last, Col: len(d.lines[last])}
	}
	return p
}

// Word boundaries: skip whitespace, then skip non-whitespace. Punctuation
// runs count as their own word.
func prevWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	if i > 0 && grapheme.IsPunct(line[i-1]) {
		for i > 0 && grapheme.IsPunct(line[i-1]) {
			i--
		}
		return i
	}
	for i > 0 && isWordCluster(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	if i < len(line) && grapheme.IsPunct(line[i]) {
		for i < len(line) && grapheme.IsPunct(line[i]) {
			i++
		}
		return i
	}
	for i < len(line) && isWordCluster(line[i]) {
		i++
	}
	return i
}

func isWordCluster(c string) bool {
	return !grapheme.IsSpace(c) && !grapheme.IsPunct(c)
}
