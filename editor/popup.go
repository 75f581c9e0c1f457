package editor

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/inkwell/style"
	"github.com/iw2rmb/inkwell/table"
)

type popupKind uint8

const (
	popupNone popupKind = iota
	popupMenu
	popupFontSize
)

// Context menu entries, in display order.
const (
	MenuAddRow = iota
	MenuAddColumn
	MenuDeleteRow
	MenuDeleteColumn
)

var menuItems = []string{"Add Row", "Add Column", "Delete Row", "Delete Column"}

// popup is a bordered list drawn over the view: the table context menu or
// the font size picker.
type popup struct {
	kind  popupKind
	items []string
	index int
	x, y  int

	// target is the cell the context menu acts on.
	target table.Pos
	sizes  []int
}

func (p popup) open() bool { return p.kind != popupNone }

func (p popup) innerWidth() int {
	w := 0
	for _, it := range p.items {
		w = max(w, lipgloss.Width(it))
	}
	return w + 2
}

// bounds is the popup rectangle including its border.
func (p popup) bounds() rect {
	return rect{x: p.x, y: p.y, w: p.innerWidth() + 2, h: len(p.items) + 2}
}

// itemAt returns the entry under (x, y).
func (p popup) itemAt(x, y int) (int, bool) {
	b := p.bounds()
	inner := rect{x: b.x + 1, y: b.y + 1, w: b.w - 2, h: b.h - 2}
	if !inner.contains(x, y) {
		return 0, false
	}
	return y - inner.y, true
}

func (p popup) render(st Style) string {
	w := p.innerWidth()
	rows := make([]string, len(p.items))
	for i, it := range p.items {
		line := " " + it + strings.Repeat(" ", w-1-lipgloss.Width(it))
		if i == p.index {
			line = st.PopupSelected.Render(line)
		}
		rows[i] = line
	}
	return st.Popup.Render(strings.Join(rows, "\n"))
}

// clampTo keeps the popup inside a width x height screen.
func (p popup) clampTo(width, height int) popup {
	b := p.bounds()
	if width > 0 {
		p.x = clampInt(p.x, 0, max(width-b.w, 0))
	}
	if height > 0 {
		p.y = clampInt(p.y, 0, max(height-b.h, 0))
	}
	return p
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}

// openMenu opens the context menu for the cell at.
func (m Model) openMenu(at table.Pos) Model {
	if m.tbl == nil {
		return m
	}
	at = m.tbl.Clamp(at)
	m.selected = at
	m.focus = FocusTable

	x, y := 0, 0
	if r, ok := m.grid.cellRect(at); ok {
		x, y = r.x, r.y+1
	}
	m.popup = popup{kind: popupMenu, items: menuItems, x: x, y: y, target: at}.clampTo(m.width, m.height)
	return m
}

// openFontSize opens the size picker under the toolbar's size button.
func (m Model) openFontSize() Model {
	items := make([]string, len(m.cfg.FontSizes))
	index := 0
	f := m.formatter()
	for i, px := range m.cfg.FontSizes {
		items[i] = strconv.Itoa(px) + "px"
		if f.IsStyleApplied(style.FontSizeKey, items[i]) {
			index = i
		}
	}
	x := 0
	if b, ok := toolbarButtonRect(buttonSize); ok {
		x = b.x
	}
	m.popup = popup{kind: popupFontSize, items: items, index: index, x: x, y: 1, sizes: m.cfg.FontSizes}.clampTo(m.width, m.height)
	return m
}

func (m Model) updatePopupKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Cancel):
		m.popup = popup{}
	case key.Matches(msg, km.Up), key.Matches(msg, km.PrevFocus):
		m.popup.index = (m.popup.index + len(m.popup.items) - 1) % len(m.popup.items)
	case key.Matches(msg, km.Down), key.Matches(msg, km.NextFocus):
		m.popup.index = (m.popup.index + 1) % len(m.popup.items)
	case key.Matches(msg, km.Enter):
		m = m.choosePopup(m.popup.index)
	}
	return m, nil
}

// choosePopup runs entry i and dismisses the popup.
func (m Model) choosePopup(i int) Model {
	p := m.popup
	m.popup = popup{}
	if i < 0 || i >= len(p.items) {
		return m
	}

	switch p.kind {
	case popupFontSize:
		px := p.sizes[i]
		m.formatter().FontSize(px)
		m.cfg.Logger.Debug("font size toggled", "focus", m.focus.String(), "px", px)

	case popupMenu:
		if m.tbl == nil {
			return m
		}
		at := m.tbl.Clamp(p.target)
		done := true
		switch i {
		case MenuAddRow:
			m.tbl.InsertRow(at.Row)
		case MenuAddColumn:
			m.tbl.InsertColumn(at.Col)
		case MenuDeleteRow:
			done = m.tbl.DeleteRow(at.Row)
		case MenuDeleteColumn:
			done = m.tbl.DeleteColumn(at.Col)
		}
		m.selected = m.tbl.Clamp(at)
		m.cfg.Logger.Info("table menu action", "action", p.items[i], "row", at.Row, "col", at.Col,
			"applied", done, "rows", m.tbl.Rows(), "cols", m.tbl.Cols())
	}
	return m
}
