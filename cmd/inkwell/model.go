package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/inkwell/editor"
)

// appModel hosts the editor and owns the quit keys.
type appModel struct {
	editor editor.Model
}

func newModel(cfg editor.Config) appModel {
	return appModel{editor: editor.New(cfg)}
}

func (m appModel) Init() tea.Cmd { return m.editor.Init() }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+q", "ctrl+c":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m appModel) View() string { return m.editor.View() }
