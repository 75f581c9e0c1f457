package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/inkwell/internal/grapheme"
	"github.com/iw2rmb/inkwell/table"
)

func displayWidth(s string) int { return grapheme.Width(s) }

// updateTableKey handles keys while the table grid has focus.
func (m Model) updateTableKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	if m.tbl == nil {
		return m, nil, false
	}
	km := m.cfg.KeyMap

	nav := table.KeyOther
	switch {
	case key.Matches(msg, km.Up):
		nav = table.KeyUp
	case key.Matches(msg, km.Down):
		nav = table.KeyDown
	case key.Matches(msg, km.Left):
		nav = table.KeyLeft
	case key.Matches(msg, km.Right):
		nav = table.KeyRight
	case key.Matches(msg, km.Enter):
		nav = table.KeyEnter
	case key.Matches(msg, km.Backspace):
		nav = table.KeyBackspace
	case key.Matches(msg, km.TableMenu):
		m = m.openMenu(m.selected)
		return m, nil, true
	}

	if nav != table.KeyOther {
		res := table.Navigate(m.tbl, m.selected, nav)
		m.selected = res.Selected
		switch res.Effect {
		case table.EffectRowInserted:
			m.cfg.Logger.Debug("table row inserted", "after", res.Selected.Row, "rows", m.tbl.Rows())
		case table.EffectRowDeleted:
			m.cfg.Logger.Debug("table row deleted", "rows", m.tbl.Rows())
		}
		if res.Handled {
			return m, nil, true
		}
		if nav == table.KeyBackspace {
			at := m.selected
			m.tbl.SetCellContent(at.Row, at.Col, grapheme.DropLast(m.tbl.Content(at.Row, at.Col)))
			return m, nil, true
		}
		return m, nil, false
	}

	s, ok := typedText(msg)
	if msg.Type == tea.KeyRunes && msg.Paste {
		// Cells hold a single line.
		s, ok = strings.ReplaceAll(normalizeNewlines(string(msg.Runes)), "\n", " "), true
	}
	if !ok {
		return m, nil, false
	}
	at := m.selected
	m.tbl.SetCellContent(at.Row, at.Col, m.tbl.Content(at.Row, at.Col)+s)
	return m, nil, true
}

// renderGrid draws n table rows starting at gridTop, with box-drawing
// separators and one text line per row between rule lines.
func (m *Model) renderGrid(n int) string {
	if m.tbl == nil {
		return ""
	}
	st := m.cfg.Style
	widths := m.grid.colWidths

	rule := func(left, mid, right string) string {
		var sb strings.Builder
		sb.WriteString(left)
		for c, w := range widths {
			if c > 0 {
				sb.WriteString(mid)
			}
			sb.WriteString(strings.Repeat("─", w+2))
		}
		sb.WriteString(right)
		return st.Border.Render(sb.String())
	}

	bar := st.Border.Render("│")
	top := m.gridTop
	end := min(top+n, m.tbl.Rows())
	lines := make([]string, 0, 2*(end-top)+1)
	lines = append(lines, rule("┌", "┬", "┐"))
	for r := top; r < end; r++ {
		if r > top {
			lines = append(lines, rule("├", "┼", "┤"))
		}
		var sb strings.Builder
		sb.WriteString(bar)
		for c, w := range widths {
			cell := m.tbl.Cell(r, c)
			base := cell.Styles.Terminal(st.Cell)
			if m.focus == FocusTable && (table.Pos{Row: r, Col: c}) == m.selected {
				base = st.CellSelected.Inherit(base)
			}
			pad := strings.Repeat(" ", w-displayWidth(cell.Content))
			sb.WriteString(base.Render(" " + cell.Content + pad + " "))
			sb.WriteString(bar)
		}
		lines = append(lines, sb.String())
	}
	lines = append(lines, rule("└", "┴", "┘"))

	if m.width > 0 {
		for i, line := range lines {
			lines[i] = ansi.Truncate(line, m.width, "")
		}
	}
	return strings.Join(lines, "\n")
}
