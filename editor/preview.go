package editor

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/x/ansi"
)

// highlightHTML colors src for a 256-color terminal. On failure src is
// returned unchanged.
func highlightHTML(src string) string {
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, src, "html", "terminal256", "monokai"); err != nil {
		return src
	}
	return buf.String()
}

func (m *Model) renderPreview() string {
	if m.cfg.HidePreview {
		return ""
	}
	lines := strings.Split(strings.TrimRight(highlightHTML(m.markup), "\n"), "\n")
	if m.width > 0 {
		for i, line := range lines {
			lines[i] = ansi.Truncate(line, m.width, "…")
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderPreviewHeader() string {
	title := "─ HTML "
	fill := max(m.width-ansi.StringWidth(title), 0)
	return m.cfg.Style.Border.Render(title + strings.Repeat("─", fill))
}

// scrollPreview moves the preview by one page.
func (m Model) scrollPreview(pages int) Model {
	h := max(m.preview.Height, 1)
	m.preview.SetYOffset(m.preview.YOffset + pages*h)
	return m
}
