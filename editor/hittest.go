package editor

import "github.com/iw2rmb/inkwell/table"

// rect is a screen rectangle in terminal cells.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// gridHandles maps the visible table coordinates to the screen rectangles
// used for mouse hit-testing. It is rebuilt when the table, its shape, its
// content, the grid origin or the visible row window changes.
type gridHandles struct {
	tbl       *table.Table
	shape     uint64
	version   uint64
	x, y      int
	top, rows int

	colWidths []int
	cells     map[table.Pos]rect
}

const minCellWidth = 3

// sync lays out rows table rows starting at top, drawn with the grid's
// top-left corner at (x, y).
func (g *gridHandles) sync(t *table.Table, x, y, top, rows int) {
	if t == nil {
		*g = gridHandles{}
		return
	}
	if g.tbl == t && g.shape == t.ShapeVersion() && g.version == t.Version() &&
		g.x == x && g.y == y && g.top == top && g.rows == rows {
		return
	}

	widths := make([]int, t.Cols())
	for c := range widths {
		widths[c] = minCellWidth
		for r := 0; r < t.Rows(); r++ {
			widths[c] = max(widths[c], displayWidth(t.Content(r, c)))
		}
	}

	end := min(top+rows, t.Rows())
	cells := make(map[table.Pos]rect, max(end-top, 0)*t.Cols())
	for r := top; r < end; r++ {
		cx := x + 1
		for c, w := range widths {
			cells[table.Pos{Row: r, Col: c}] = rect{x: cx, y: y + 1 + 2*(r-top), w: w + 2, h: 1}
			cx += w + 3
		}
	}

	*g = gridHandles{
		tbl:       t,
		shape:     t.ShapeVersion(),
		version:   t.Version(),
		x:         x,
		y:         y,
		top:       top,
		rows:      rows,
		colWidths: widths,
		cells:     cells,
	}
}

// hit returns the cell under (x, y).
func (g gridHandles) hit(x, y int) (table.Pos, bool) {
	for p, r := range g.cells {
		if r.contains(x, y) {
			return p, true
		}
	}
	return table.Pos{}, false
}

func (g gridHandles) cellRect(p table.Pos) (rect, bool) {
	r, ok := g.cells[p]
	return r, ok
}
