package editor

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil

	case spinner.TickMsg:
		if !m.dialog.pending {
			return m, nil
		}
		m.dialog.spinner, cmd = m.dialog.spinner.Update(msg)
		return m, cmd

	case TableCreatedMsg:
		m = m.createTable(msg)

	case exportDoneMsg:
		m = m.exportDone(msg)

	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)

	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)

	default:
		// Cursor blinks of the dialog inputs.
		if m.dialog.open {
			i := m.dialog.focused
			m.dialog.inputs[i], cmd = m.dialog.inputs[i].Update(msg)
			return m, cmd
		}
		// The host may have mutated the document or table directly.
	}

	m.afterMutation()
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.dialog.open {
		return m.updateDialogKey(msg)
	}
	if m.popup.open() {
		return m.updatePopupKey(msg)
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Bold):
		return m.press(buttonBold)
	case key.Matches(msg, km.Italic):
		return m.press(buttonItalic)
	case key.Matches(msg, km.Underline):
		return m.press(buttonUnderline)
	case key.Matches(msg, km.FontSize):
		return m.press(buttonSize)
	case key.Matches(msg, km.CreateTable):
		return m.press(buttonCreateTable)

	case key.Matches(msg, km.NextFocus), key.Matches(msg, km.PrevFocus):
		return m.cycleFocus(), nil

	case key.Matches(msg, km.PreviewUp):
		return m.scrollPreview(-1), nil
	case key.Matches(msg, km.PreviewDown):
		return m.scrollPreview(1), nil

	case key.Matches(msg, km.Export):
		if m.cfg.ExportPath == "" {
			m.status = "no export path configured"
			return m, nil
		}
		return m, m.exportCmd()
	}

	if m.focus == FocusTable {
		var cmd tea.Cmd
		m, cmd, _ = m.updateTableKey(msg)
		return m, cmd
	}
	m, _ = m.updateTextKey(msg)
	return m, nil
}

// cycleFocus alternates between the text surface and the table grid.
func (m Model) cycleFocus() Model {
	if m.tbl == nil {
		m.focus = FocusText
		return m
	}
	if m.focus == FocusText {
		m.focus = FocusTable
	} else {
		m.focus = FocusText
	}
	return m
}

func (m Model) overlayOpen() bool {
	return m.dialog.open || m.popup.open()
}
