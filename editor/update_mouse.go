package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/inkwell/richtext"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	l := m.layout()

	if isWheel(msg) {
		var cmd tea.Cmd
		switch {
		case l.inPreview(msg.Y):
			m.preview, cmd = m.preview.Update(msg)
		case l.inText(msg.Y):
			m.text, cmd = m.text.Update(msg)
		}
		return m, cmd
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if m.dialog.open {
			return m, nil
		}
		if m.popup.open() {
			if msg.Button == tea.MouseButtonLeft {
				if i, ok := m.popup.itemAt(msg.X, msg.Y); ok {
					return m.choosePopup(i), nil
				}
			}
			// Any other click dismisses without action.
			m.popup = popup{}
			return m, nil
		}
		return m.mousePress(msg, l)

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, nil
		}
		y := clampInt(msg.Y-l.textY, 0, max(l.textH-1, 0))
		p := m.textPosAt(max(msg.X, 0), y)
		m.doc.SetCursor(p)
		m.doc.SetSelection(richtext.Range{Start: m.mouseAnchor, End: p})

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}
	return m, nil
}

func (m Model) mousePress(msg tea.MouseMsg, l layout) (Model, tea.Cmd) {
	switch {
	case msg.Y == l.toolbarY:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if b, ok := toolbarButtonAt(msg.X, msg.Y); ok {
			return m.press(b)
		}

	case l.inText(msg.Y):
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.focus = FocusText
		p := m.textPosAt(msg.X, msg.Y-l.textY)
		if msg.Shift {
			anchor := m.doc.Cursor()
			if r, ok := m.doc.Selection(); ok {
				anchor = r.Start
			}
			m.mouseAnchor = anchor
			m.doc.SetCursor(p)
			m.doc.SetSelection(richtext.Range{Start: anchor, End: p})
		} else {
			m.mouseAnchor = p
			m.doc.SetCursor(p)
			m.doc.ClearSelection()
		}
		m.mouseDragging = true

	case l.inGrid(msg.Y):
		p, ok := m.grid.hit(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		switch msg.Button { //nolint:exhaustive
		case tea.MouseButtonLeft:
			m.selected = p
			m.focus = FocusTable
		case tea.MouseButtonRight:
			m = m.openMenu(p)
			m.popup.x, m.popup.y = msg.X, msg.Y+1
			m.popup = m.popup.clampTo(m.width, m.height)
		}
	}
	return m, nil
}

func isWheel(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}
