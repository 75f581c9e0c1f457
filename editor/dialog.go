package editor

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/inkwell/table"
)

const (
	fieldRows = iota
	fieldCols
	fieldCount
)

var fieldLabels = [fieldCount]string{"Rows", "Columns"}

// requiredMessages are shown when a field is left blank.
var requiredMessages = [fieldCount]string{
	"Please input the number of rows!",
	"Please input the number of columns!",
}

// dialog collects table dimensions.
type dialog struct {
	open    bool
	inputs  [fieldCount]textinput.Model
	focused int
	errs    [fieldCount]string

	pending bool
	spinner spinner.Model
}

func newDialog(rows, cols int) dialog {
	var d dialog
	for i := range d.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 4
		ti.Width = 6
		ti.Placeholder = "1"
		ti.Validate = validateCount(i)
		d.inputs[i] = ti
	}
	d.inputs[fieldRows].SetValue(strconv.Itoa(rows))
	d.inputs[fieldCols].SetValue(strconv.Itoa(cols))
	d.spinner = spinner.New(spinner.WithSpinner(spinner.Dot))
	return d
}

// validateCount checks one field: required, whole number, at least 1.
func validateCount(field int) textinput.ValidateFunc {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			return errors.New(requiredMessages[field])
		}
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return errors.New(fieldLabels[field] + " must be a whole number of at least 1")
		}
		return nil
	}
}

// show opens the dialog prefilled with rows and cols.
func (d dialog) show(rows, cols int) (dialog, tea.Cmd) {
	d = newDialog(rows, cols)
	d.open = true
	return d, d.inputs[fieldRows].Focus()
}

func (d dialog) focus(i int) (dialog, tea.Cmd) {
	d.inputs[d.focused].Blur()
	d.focused = (i + fieldCount) % fieldCount
	return d, d.inputs[d.focused].Focus()
}

// validate updates the field messages and returns the dimensions when both
// fields hold valid values.
func (d dialog) validate() (dialog, int, int, bool) {
	var values [fieldCount]int
	ok := true
	for i := range d.inputs {
		d.errs[i] = ""
		if err := validateCount(i)(d.inputs[i].Value()); err != nil {
			d.errs[i] = err.Error()
			ok = false
			continue
		}
		values[i], _ = strconv.Atoi(strings.TrimSpace(d.inputs[i].Value()))
	}
	return d, values[fieldRows], values[fieldCols], ok
}

// openDialog shows the dialog. The returned command blinks the focused
// field's cursor.
func (m Model) openDialog() (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.dialog, cmd = m.dialog.show(m.cfg.DefaultRows, m.cfg.DefaultCols)
	m.popup = popup{}
	return m, cmd
}

func (m Model) updateDialogKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, km.Cancel):
		// A pending creation still arrives.
		m.dialog.open = false
		m.dialog.pending = false
		return m, nil
	case m.dialog.pending:
		return m, nil
	case key.Matches(msg, km.NextFocus), key.Matches(msg, km.Down):
		m.dialog, cmd = m.dialog.focus(m.dialog.focused + 1)
		return m, cmd
	case key.Matches(msg, km.PrevFocus), key.Matches(msg, km.Up):
		m.dialog, cmd = m.dialog.focus(m.dialog.focused - 1)
		return m, cmd
	case key.Matches(msg, km.Enter):
		return m.submitDialog()
	}

	i := m.dialog.focused
	m.dialog.inputs[i], cmd = m.dialog.inputs[i].Update(msg)
	m.dialog.errs[i] = ""
	return m, cmd
}

func (m Model) submitDialog() (Model, tea.Cmd) {
	d, rows, cols, ok := m.dialog.validate()
	m.dialog = d
	if !ok {
		return m, nil
	}
	created := TableCreatedMsg{Rows: rows, Cols: cols}
	delay := m.cfg.CreateDelay
	m.cfg.Logger.Debug("table dialog submitted", "rows", rows, "cols", cols, "delay", delay)
	if delay <= 0 {
		return m, func() tea.Msg { return created }
	}
	m.dialog.pending = true
	return m, tea.Batch(
		m.dialog.spinner.Tick,
		tea.Tick(delay, func(time.Time) tea.Msg { return created }),
	)
}

// createTable replaces the current table with a blank rows x cols one.
func (m Model) createTable(msg TableCreatedMsg) Model {
	rows, cols := max(msg.Rows, 1), max(msg.Cols, 1)
	if m.tbl == nil {
		m.tbl = table.New(rows, cols)
	} else {
		m.tbl.Reset(rows, cols)
	}
	m.selected = table.Pos{}
	m.focus = FocusTable
	m.dialog.open = false
	m.dialog.pending = false
	m.cfg.Logger.Info("table created", "rows", rows, "cols", cols)
	return m
}

func (m Model) renderDialog() string {
	st := m.cfg.Style
	d := m.dialog

	labelW := 0
	for _, l := range fieldLabels {
		labelW = max(labelW, lipgloss.Width(l))
	}

	lines := []string{st.DialogTitle.Render("Create Table"), ""}
	for i, in := range d.inputs {
		label := fieldLabels[i] + ":" + strings.Repeat(" ", labelW-lipgloss.Width(fieldLabels[i])+1)
		marker := "  "
		if i == d.focused {
			marker = "› "
		}
		lines = append(lines, marker+label+in.View())
		if d.errs[i] != "" {
			lines = append(lines, "  "+st.Error.Render(d.errs[i]))
		}
	}
	lines = append(lines, "")
	if d.pending {
		lines = append(lines, d.spinner.View()+" Creating table…")
	} else {
		lines = append(lines, st.Status.Render("enter create · esc cancel"))
	}
	return st.Dialog.Render(strings.Join(lines, "\n"))
}
