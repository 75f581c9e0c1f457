package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/inkwell/markup"
	"github.com/iw2rmb/inkwell/richtext"
	"github.com/iw2rmb/inkwell/table"
)

// Model is a Bubble Tea component editing a styled document and its table.
type Model struct {
	cfg Config
	doc *richtext.Document
	tbl *table.Table

	focus    Focus
	selected table.Pos

	width, height int
	text          viewport.Model
	preview       viewport.Model

	grid gridHandles
	// gridTop is the first table row shown in the grid pane.
	gridTop int

	popup  popup
	dialog dialog

	status string

	last   changeKey
	seq    uint64
	markup string

	mouseAnchor   richtext.Pos
	mouseDragging bool
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	doc := cfg.Document
	if doc == nil {
		doc = richtext.New(cfg.Text)
	}
	m := Model{
		cfg:     cfg,
		doc:     doc,
		tbl:     cfg.Table,
		text:    viewport.New(0, 0),
		preview: viewport.New(0, 0),
	}
	m.dialog = newDialog(cfg.DefaultRows, cfg.DefaultCols)
	m.last = m.changeKey()
	m.refresh()
	return m
}

// Document returns the edited document. Hosts may mutate it between updates.
func (m Model) Document() *richtext.Document { return m.doc }

// Table returns the current table, or nil.
func (m Model) Table() *table.Table { return m.tbl }

func (m Model) Focus() Focus { return m.focus }

// Selected returns the selected table cell.
func (m Model) Selected() table.Pos { return m.selected }

// Markup returns the HTML export of the current state.
func (m Model) Markup() string { return m.markup }

// Status returns the status line message, if any.
func (m Model) Status() string { return m.status }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.refresh()
	m.followCursor()
	return m
}

// SetFocus moves focus. FocusTable is ignored while there is no table.
func (m Model) SetFocus(f Focus) Model {
	if f == FocusTable && m.tbl == nil {
		return m
	}
	m.focus = f
	m.afterMutation()
	return m
}

func (m Model) changeKey() changeKey {
	k := changeKey{
		docVersion: m.doc.Version(),
		focus:      m.focus,
		selected:   m.selected,
	}
	if m.tbl != nil {
		k.hasTable = true
		k.tableVersion = m.tbl.Version()
		k.tableShape = m.tbl.ShapeVersion()
	}
	return k
}

// afterMutation clamps the selection, re-renders and emits a change event
// when observable state moved.
func (m *Model) afterMutation() {
	if m.tbl == nil {
		m.focus = FocusText
		m.selected = table.Pos{}
	} else {
		m.selected = m.tbl.Clamp(m.selected)
	}

	k := m.changeKey()
	changed := k != m.last
	m.last = k
	m.refresh()
	m.followCursor()
	if !changed {
		return
	}
	m.seq++
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(ChangeEvent{
			Version:      m.seq,
			DocVersion:   k.docVersion,
			TableVersion: k.tableVersion,
			Focus:        k.focus,
			Selected:     k.selected,
			HasTable:     k.hasTable,
			Markup:       m.markup,
		})
	}
}

// refresh regenerates the export and every rendered pane.
func (m *Model) refresh() {
	m.markup = markup.Document(m.doc, m.tbl, m.cfg.Markup)
	l := m.layout()
	m.followSelection(l.gridRows)

	m.text.Width = m.width
	m.text.Height = l.textH
	m.text.SetContent(m.renderText())

	m.grid.sync(m.tbl, 0, l.gridY, m.gridTop, l.gridRows)

	m.preview.Width = m.width
	m.preview.Height = max(l.previewH-1, 0)
	m.preview.SetContent(m.renderPreview())
}

// followSelection scrolls the grid window of n rows so the selected cell
// stays visible.
func (m *Model) followSelection(n int) {
	if m.tbl == nil || n <= 0 {
		m.gridTop = 0
		return
	}
	top := clampInt(m.gridTop, 0, max(m.tbl.Rows()-n, 0))
	row := m.tbl.Clamp(m.selected).Row
	if row < top {
		top = row
	}
	if row >= top+n {
		top = row - n + 1
	}
	m.gridTop = top
}

func (m *Model) followCursor() {
	h := m.text.Height
	if h <= 0 {
		return
	}
	row := m.doc.Cursor().Row
	y := m.text.YOffset
	if row < y {
		m.text.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.text.SetYOffset(row - h + 1)
	}
}
