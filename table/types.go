package table

import "github.com/iw2rmb/inkwell/style"

// Pos addresses a cell by 0-based row and column.
type Pos struct {
	Row int
	Col int
}

// Cell is the content and inline style of one table cell.
type Cell struct {
	Content string
	Styles  style.Map
}

func (c Cell) clone() Cell {
	return Cell{Content: c.Content, Styles: c.Styles.Clone()}
}

// IsBlank reports whether the cell has neither content nor styles.
func (c Cell) IsBlank() bool {
	return c.Content == "" && c.Styles.Len() == 0
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampPos clamps p into a rows×cols grid (both treated as at least 1).
func ClampPos(p Pos, rows, cols int) Pos {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return Pos{
		Row: clampInt(p.Row, 0, rows-1),
		Col: clampInt(p.Col, 0, cols-1),
	}
}
