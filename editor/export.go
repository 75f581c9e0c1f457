package editor

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// WriteExport writes the HTML export to path.
func WriteExport(path, html string) error {
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}

func (m Model) exportCmd() tea.Cmd {
	path, html := m.cfg.ExportPath, m.markup
	return func() tea.Msg {
		return exportDoneMsg{path: path, bytes: len(html), err: WriteExport(path, html)}
	}
}

func (m Model) exportDone(msg exportDoneMsg) Model {
	if msg.err != nil {
		m.cfg.Logger.Warn("export failed", "path", msg.path, "err", msg.err)
		m.status = "export failed: " + msg.err.Error()
		return m
	}
	m.cfg.Logger.Info("exported", "path", msg.path, "bytes", msg.bytes)
	m.status = fmt.Sprintf("exported %d bytes to %s", msg.bytes, msg.path)
	return m
}
