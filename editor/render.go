package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/inkwell/internal/grapheme"
	"github.com/iw2rmb/inkwell/richtext"
)

type cellState uint8

const (
	cellPlain cellState = iota
	cellSelected
	cellCursor
)

func (m *Model) renderText() string {
	out := make([]string, m.doc.LineCount())
	for row := range out {
		line := m.renderTextLine(row)
		if m.width > 0 {
			line = ansi.Truncate(line, m.width, "")
		}
		out[row] = line
	}
	return strings.Join(out, "\n")
}

func (m *Model) cursorVisible() bool {
	return m.focus == FocusText && !m.overlayOpen()
}

func (m *Model) renderTextLine(row int) string {
	st := m.cfg.Style
	line := m.doc.Line(row)
	cursor := m.doc.Cursor()
	showCursor := m.cursorVisible()
	sel, selOK := m.doc.Selection()

	stateAt := func(col int) cellState {
		p := richtext.Pos{Row: row, Col: col}
		if showCursor && p == cursor {
			return cellCursor
		}
		if selOK && sel.Contains(p) {
			return cellSelected
		}
		return cellPlain
	}

	var sb strings.Builder
	for _, run := range m.doc.StyledRuns(row) {
		base := run.Styles.Terminal(st.Text)
		for start := run.StartCol; start < run.EndCol; {
			state := stateAt(start)
			end := start + 1
			for end < run.EndCol && stateAt(end) == state {
				end++
			}
			sb.WriteString(stateStyle(st, base, state).Render(grapheme.Join(line[start:end])))
			start = end
		}
	}
	if showCursor && cursor.Row == row && cursor.Col >= len(line) {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func stateStyle(st Style, base lipgloss.Style, state cellState) lipgloss.Style {
	switch state {
	case cellCursor:
		return st.Cursor.Inherit(base)
	case cellSelected:
		return st.Selection.Inherit(base)
	}
	return base
}

// textPosAt maps coordinates relative to the text pane to a document
// position, clamped into the document.
func (m *Model) textPosAt(x, y int) richtext.Pos {
	row := m.text.YOffset + max(y, 0)
	row = min(row, m.doc.LineCount()-1)
	line := m.doc.Line(row)

	col, cells := 0, 0
	for col < len(line) {
		w := grapheme.ClusterWidth(line[col])
		if cells+w > x {
			break
		}
		cells += w
		col++
	}
	return richtext.Pos{Row: row, Col: col}
}
