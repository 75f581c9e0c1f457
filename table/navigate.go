package table

// Key is a key event as seen by the navigator.
type Key uint8

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyBackspace
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyEnter:
		return "enter"
	case KeyBackspace:
		return "backspace"
	default:
		return "other"
	}
}

// Effect describes what Navigate did to the table or selection.
type Effect uint8

const (
	EffectNone Effect = iota
	EffectMoved
	EffectRowInserted
	EffectRowDeleted
)

// Result is the outcome of one navigator key.
type Result struct {
	// Selected is the selection after the key, always inside the table.
	Selected Pos
	Effect   Effect
	// Handled is false when the key has no table-level meaning and the
	// caller should apply its ordinary text behavior (typing, backspace
	// inside the cell).
	Handled bool
}

// Navigate applies key at the selected cell at.
//
//   - Arrows move one cell, clamped to the table (no wraparound). An arrow
//     against the edge is handled but leaves the selection in place.
//   - Enter inserts a blank row after the current row; the selection stays.
//   - Backspace on an empty cell deletes the current row, unless it is the
//     only row. Otherwise it is left to the caller.
func Navigate(t *Table, at Pos, key Key) Result {
	at = t.Clamp(at)
	res := Result{Selected: at}

	switch key {
	case KeyUp, KeyDown, KeyLeft, KeyRight:
		next := at
		switch key {
		case KeyUp:
			next.Row--
		case KeyDown:
			next.Row++
		case KeyLeft:
			next.Col--
		case KeyRight:
			next.Col++
		}
		next = t.Clamp(next)
		res.Handled = true
		if next != at {
			res.Selected = next
			res.Effect = EffectMoved
		}

	case KeyEnter:
		t.InsertRow(at.Row)
		res.Handled = true
		res.Effect = EffectRowInserted

	case KeyBackspace:
		if t.Content(at.Row, at.Col) != "" || t.Rows() <= 1 {
			return res
		}
		if t.DeleteRow(at.Row) {
			res.Handled = true
			res.Effect = EffectRowDeleted
			res.Selected = t.Clamp(at)
		}
	}

	return res
}
