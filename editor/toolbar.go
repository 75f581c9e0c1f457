package editor

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/inkwell/richtext"
	"github.com/iw2rmb/inkwell/style"
	"github.com/iw2rmb/inkwell/table"
)

// Formatter is the capability a focused region registers with the toolbar.
// Each command toggles its style and reports whether anything changed.
type Formatter interface {
	Bold() bool
	Italic() bool
	Underline() bool
	FontSize(px int) bool
	IsStyleApplied(key, value string) bool
}

// textFormatter formats the document selection.
type textFormatter struct {
	doc *richtext.Document
}

func (f textFormatter) toggle(key, value string) bool {
	v := f.doc.Version()
	f.doc.ToggleStyle(key, value)
	return f.doc.Version() != v
}

func (f textFormatter) Bold() bool      { return f.toggle(style.FontWeight, "bold") }
func (f textFormatter) Italic() bool    { return f.toggle(style.FontStyle, "italic") }
func (f textFormatter) Underline() bool { return f.toggle(style.TextDecoration, "underline") }

func (f textFormatter) FontSize(px int) bool {
	return f.toggle(style.FontSizeKey, strconv.Itoa(px)+"px")
}

func (f textFormatter) IsStyleApplied(key, value string) bool {
	return f.doc.IsStyleApplied(key, value)
}

// cellFormatter formats the selected table cell.
type cellFormatter struct {
	tbl *table.Table
	at  table.Pos
}

func (f cellFormatter) toggle(key, value string) bool {
	v := f.tbl.Version()
	f.tbl.ToggleStyle(f.at.Row, f.at.Col, key, value)
	return f.tbl.Version() != v
}

func (f cellFormatter) Bold() bool      { return f.toggle(style.FontWeight, "bold") }
func (f cellFormatter) Italic() bool    { return f.toggle(style.FontStyle, "italic") }
func (f cellFormatter) Underline() bool { return f.toggle(style.TextDecoration, "underline") }

func (f cellFormatter) FontSize(px int) bool {
	return f.toggle(style.FontSizeKey, strconv.Itoa(px)+"px")
}

func (f cellFormatter) IsStyleApplied(key, value string) bool {
	return f.tbl.Styles(f.at.Row, f.at.Col).Has(key, value)
}

// formatter returns the Formatter of the focused region.
func (m Model) formatter() Formatter {
	if m.focus == FocusTable && m.tbl != nil {
		return cellFormatter{tbl: m.tbl, at: m.tbl.Clamp(m.selected)}
	}
	return textFormatter{doc: m.doc}
}

type toolbarButton uint8

const (
	buttonBold toolbarButton = iota
	buttonItalic
	buttonUnderline
	buttonSize
	buttonCreateTable
)

var toolbarLabels = []string{" B ", " I ", " U ", " Size ▾ ", " Create Table "}

const toolbarGap = 1

// toolbarButtonRect returns the screen rectangle of b on the toolbar row.
func toolbarButtonRect(b toolbarButton) (rect, bool) {
	x := 0
	for i, label := range toolbarLabels {
		w := lipgloss.Width(label)
		if toolbarButton(i) == b {
			return rect{x: x, y: 0, w: w, h: 1}, true
		}
		x += w + toolbarGap
	}
	return rect{}, false
}

func toolbarButtonAt(x, y int) (toolbarButton, bool) {
	for i := range toolbarLabels {
		if r, _ := toolbarButtonRect(toolbarButton(i)); r.contains(x, y) {
			return toolbarButton(i), true
		}
	}
	return 0, false
}

func (m Model) renderToolbar() string {
	st := m.cfg.Style
	f := m.formatter()
	active := []bool{
		f.IsStyleApplied(style.FontWeight, "bold"),
		f.IsStyleApplied(style.FontStyle, "italic"),
		f.IsStyleApplied(style.TextDecoration, "underline"),
		m.popup.kind == popupFontSize,
		m.dialog.open,
	}

	parts := make([]string, len(toolbarLabels))
	for i, label := range toolbarLabels {
		s := st.Toolbar
		if active[i] {
			s = st.ToolbarActive
		}
		switch toolbarButton(i) {
		case buttonBold:
			s = s.Bold(true)
		case buttonItalic:
			s = s.Italic(true)
		case buttonUnderline:
			s = s.Underline(true)
		}
		parts[i] = s.Render(label)
	}
	return strings.Join(parts, strings.Repeat(" ", toolbarGap))
}

// press runs a toolbar button.
func (m Model) press(b toolbarButton) (Model, tea.Cmd) {
	switch b {
	case buttonBold:
		m.logToggle("bold", m.formatter().Bold())
	case buttonItalic:
		m.logToggle("italic", m.formatter().Italic())
	case buttonUnderline:
		m.logToggle("underline", m.formatter().Underline())
	case buttonSize:
		m = m.openFontSize()
	case buttonCreateTable:
		return m.openDialog()
	}
	return m, nil
}

func (m Model) logToggle(name string, changed bool) {
	m.cfg.Logger.Debug("style toggled", "style", name, "focus", m.focus.String(), "changed", changed)
}
