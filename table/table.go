package table

import (
	"fmt"

	"github.com/iw2rmb/inkwell/style"
)

// Table is a rectangular grid of cells.
//
// Every mutation that changes observable state bumps Version; structural
// mutations (row/column insert, delete, reset) also bump ShapeVersion so
// views can rebuild coordinate lookups only when the grid shape changes.
type Table struct {
	rows [][]Cell
	cols int

	version      uint64
	shapeVersion uint64
}

// New returns a rows×cols table of blank cells. Dimensions below 1 are
// raised to 1.
func New(rows, cols int) *Table {
	t := &Table{}
	t.reset(rows, cols)
	return t
}

// FromContent builds a table from a content grid. Short rows are padded
// with blank cells to the widest row.
func FromContent(content [][]string) *Table {
	cols := 1
	for _, row := range content {
		if len(row) > cols {
			cols = len(row)
		}
	}
	t := New(len(content), cols)
	for r, row := range content {
		for c, text := range row {
			t.rows[r][c].Content = text
		}
	}
	return t
}

func (t *Table) reset(rows, cols int) {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	next := make([][]Cell, rows)
	for i := range next {
		next[i] = blankRow(cols)
	}
	t.rows = next
	t.cols = cols
}

// Reset discards all content and re-creates the table with new dimensions.
func (t *Table) Reset(rows, cols int) {
	t.reset(rows, cols)
	t.version++
	t.shapeVersion++
}

func blankRow(cols int) []Cell {
	return make([]Cell, cols)
}

func (t *Table) Rows() int { return len(t.rows) }

func (t *Table) Cols() int { return t.cols }

func (t *Table) Version() uint64 { return t.version }

func (t *Table) ShapeVersion() uint64 { return t.shapeVersion }

// Contains reports whether p addresses an existing cell.
func (t *Table) Contains(p Pos) bool {
	return p.Row >= 0 && p.Row < len(t.rows) && p.Col >= 0 && p.Col < t.cols
}

// Clamp clamps p into the table bounds.
func (t *Table) Clamp(p Pos) Pos {
	return ClampPos(p, len(t.rows), t.cols)
}

// Cell returns a copy of the cell at (row, col).
func (t *Table) Cell(row, col int) Cell {
	t.mustContain(row, col)
	return t.rows[row][col].clone()
}

// Content returns the text of the cell at (row, col).
func (t *Table) Content(row, col int) string {
	t.mustContain(row, col)
	return t.rows[row][col].Content
}

// Styles returns a copy of the style map of the cell at (row, col).
func (t *Table) Styles(row, col int) style.Map {
	t.mustContain(row, col)
	return t.rows[row][col].Styles.Clone()
}

// Snapshot returns a deep copy of the grid.
func (t *Table) Snapshot() [][]Cell {
	out := make([][]Cell, len(t.rows))
	for r, row := range t.rows {
		out[r] = make([]Cell, len(row))
		for c, cell := range row {
			out[r][c] = cell.clone()
		}
	}
	return out
}

// Clone returns an independent copy of t, versions included.
func (t *Table) Clone() *Table {
	return &Table{
		rows:         t.Snapshot(),
		cols:         t.cols,
		version:      t.version,
		shapeVersion: t.shapeVersion,
	}
}

func (t *Table) mustContain(row, col int) {
	if !t.Contains(Pos{Row: row, Col: col}) {
		panic(fmt.Sprintf("table: cell (%d,%d) out of range for %dx%d table", row, col, len(t.rows), t.cols))
	}
}
