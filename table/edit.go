package table

import "github.com/iw2rmb/inkwell/style"

// SetCellContent replaces the content of (row, col), keeping its styles.
// Out-of-range coordinates panic.
func (t *Table) SetCellContent(row, col int, text string) {
	t.mustContain(row, col)
	cell := &t.rows[row][col]
	if cell.Content == text {
		return
	}
	cell.Content = text
	t.version++
}

// ApplyStyle merges styles into the cell's style map. Same-named keys are
// overwritten; keys not named in styles are kept.
func (t *Table) ApplyStyle(row, col int, styles style.Map) {
	t.mustContain(row, col)
	cell := &t.rows[row][col]
	next := cell.Styles.Clone()
	next.Merge(styles)
	if next.Equal(cell.Styles) {
		return
	}
	cell.Styles = next
	t.version++
}

// RemoveStyle deletes key from the cell's style map.
func (t *Table) RemoveStyle(row, col int, key string) {
	t.mustContain(row, col)
	cell := &t.rows[row][col]
	next := cell.Styles.Clone()
	if !next.Delete(key) {
		return
	}
	cell.Styles = next
	t.version++
}

// ToggleStyle removes key when the cell carries exactly key: value, and
// applies it otherwise. It reports whether the style is applied afterwards.
func (t *Table) ToggleStyle(row, col int, key, value string) bool {
	t.mustContain(row, col)
	if t.rows[row][col].Styles.Has(key, value) {
		t.RemoveStyle(row, col, key)
		return false
	}
	t.ApplyStyle(row, col, style.Of(key, value))
	return true
}

// InsertRow inserts a blank row immediately after index after. Use -1 to
// prepend. after is clamped to [-1, Rows()-1].
func (t *Table) InsertRow(after int) {
	at := clampInt(after, -1, len(t.rows)-1) + 1

	next := make([][]Cell, 0, len(t.rows)+1)
	next = append(next, t.rows[:at]...)
	next = append(next, blankRow(t.cols))
	next = append(next, t.rows[at:]...)

	t.rows = next
	t.version++
	t.shapeVersion++
}

// DeleteRow removes the row at index. It refuses, returning false, when
// index is out of range or the row is the last one.
func (t *Table) DeleteRow(index int) bool {
	if index < 0 || index >= len(t.rows) || len(t.rows) <= 1 {
		return false
	}

	next := make([][]Cell, 0, len(t.rows)-1)
	next = append(next, t.rows[:index]...)
	next = append(next, t.rows[index+1:]...)

	t.rows = next
	t.version++
	t.shapeVersion++
	return true
}

// InsertColumn inserts a blank column immediately after index after in
// every row. Use -1 to prepend. after is clamped to [-1, Cols()-1].
//
// The new grid is built completely before it replaces the old one, so rows
// of different lengths are never observable.
func (t *Table) InsertColumn(after int) {
	at := clampInt(after, -1, t.cols-1) + 1

	next := make([][]Cell, len(t.rows))
	for r, row := range t.rows {
		out := make([]Cell, 0, t.cols+1)
		out = append(out, row[:at]...)
		out = append(out, Cell{})
		out = append(out, row[at:]...)
		next[r] = out
	}

	t.rows = next
	t.cols++
	t.version++
	t.shapeVersion++
}

// DeleteColumn removes the column at index from every row. It refuses,
// returning false, when index is out of range or the column is the last
// one.
func (t *Table) DeleteColumn(index int) bool {
	if index < 0 || index >= t.cols || t.cols <= 1 {
		return false
	}

	next := make([][]Cell, len(t.rows))
	for r, row := range t.rows {
		out := make([]Cell, 0, t.cols-1)
		out = append(out, row[:index]...)
		out = append(out, row[index+1:]...)
		next[r] = out
	}

	t.rows = next
	t.cols--
	t.version++
	t.shapeVersion++
	return true
}
