package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

// layout is the vertical split of the screen, top to bottom: toolbar,
// text surface, table grid, preview (header plus body) and status line.
type layout struct {
	toolbarY int

	textY, textH       int
	gridY, gridH       int
	previewY, previewH int

	// gridRows is how many table rows fit in the grid pane.
	gridRows int

	statusY int
}

func (l layout) inText(y int) bool    { return y >= l.textY && y < l.textY+l.textH }
func (l layout) inGrid(y int) bool    { return y >= l.gridY && y < l.gridY+l.gridH }
func (l layout) inPreview(y int) bool { return y >= l.previewY && y < l.previewY+l.previewH }

const minPreviewHeight = 3

func (m Model) layout() layout {
	l := layout{textY: 1}
	avail := max(m.height-2, 0)
	if !m.cfg.HidePreview {
		if h := avail / 3; h >= minPreviewHeight {
			l.previewH = h
		}
	}
	if m.tbl != nil {
		// One text line stays visible; the grid takes at most the rest.
		budget := avail - l.previewH - 1
		l.gridRows = min(max((budget-1)/2, 0), m.tbl.Rows())
		if l.gridRows > 0 {
			l.gridH = 2*l.gridRows + 1
		}
	}
	l.textH = max(avail-l.gridH-l.previewH, 1)
	l.gridY = l.textY + l.textH
	l.previewY = l.gridY + l.gridH
	l.statusY = l.previewY + l.previewH
	return l
}

func (m Model) View() string {
	l := m.layout()

	parts := []string{m.renderToolbar(), m.text.View()}
	if l.gridH > 0 {
		parts = append(parts, m.renderGrid(l.gridRows))
	}
	if l.previewH > 0 {
		parts = append(parts, m.renderPreviewHeader(), m.preview.View())
	}
	parts = append(parts, m.renderStatus())
	view := strings.Join(parts, "\n")

	if m.popup.open() {
		view = overlay.Composite(m.popup.render(m.cfg.Style), view, overlay.Left, overlay.Top, m.popup.x, m.popup.y)
	}
	if m.dialog.open {
		view = overlay.Composite(m.renderDialog(), view, overlay.Center, overlay.Center, 0, 0)
	}
	return view
}

func (m Model) renderStatus() string {
	var where string
	if m.focus == FocusTable && m.tbl != nil {
		where = fmt.Sprintf("table r%d c%d (%dx%d)", m.selected.Row+1, m.selected.Col+1, m.tbl.Rows(), m.tbl.Cols())
	} else {
		c := m.doc.Cursor()
		where = fmt.Sprintf("text %d:%d", c.Row+1, c.Col+1)
	}
	line := where
	if m.status != "" {
		line += " · " + m.status
	}
	line += " · alt+t table · tab focus"
	if m.width > 0 {
		line = ansi.Truncate(line, m.width, "…")
	}
	return m.cfg.Style.Status.Render(line)
}
