package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/inkwell/richtext"
)

// updateTextKey handles keys while the text surface has focus.
func (m Model) updateTextKey(msg tea.KeyMsg) (Model, bool) {
	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.doc.InsertText(normalizeNewlines(string(msg.Runes)))
		return m, true
	}

	km := m.cfg.KeyMap
	move := func(unit richtext.MoveUnit, dir richtext.MoveDir, extend bool) {
		m.doc.Move(richtext.Move{Unit: unit, Dir: dir, Extend: extend})
	}

	switch {
	case key.Matches(msg, km.Left):
		move(richtext.MoveGrapheme, richtext.DirLeft, false)
	case key.Matches(msg, km.Right):
		move(richtext.MoveGrapheme, richtext.DirRight, false)
	case key.Matches(msg, km.Up):
		move(richtext.MoveGrapheme, richtext.DirUp, false)
	case key.Matches(msg, km.Down):
		move(richtext.MoveGrapheme, richtext.DirDown, false)

	case key.Matches(msg, km.ShiftLeft):
		move(richtext.MoveGrapheme, richtext.DirLeft, true)
	case key.Matches(msg, km.ShiftRight):
		move(richtext.MoveGrapheme, richtext.DirRight, true)
	case key.Matches(msg, km.ShiftUp):
		move(richtext.MoveGrapheme, richtext.DirUp, true)
	case key.Matches(msg, km.ShiftDown):
		move(richtext.MoveGrapheme, richtext.DirDown, true)

	case key.Matches(msg, km.WordLeft):
		move(richtext.MoveWord, richtext.DirLeft, false)
	case key.Matches(msg, km.WordRight):
		move(richtext.MoveWord, richtext.DirRight, false)

	case key.Matches(msg, km.Home):
		move(richtext.MoveLine, richtext.DirHome, false)
	case key.Matches(msg, km.End):
		move(richtext.MoveLine, richtext.DirEnd, false)
	case key.Matches(msg, km.DocStart):
		move(richtext.MoveDoc, richtext.DirHome, false)
	case key.Matches(msg, km.DocEnd):
		move(richtext.MoveDoc, richtext.DirEnd, false)
	case key.Matches(msg, km.SelectAll):
		m.doc.SelectAll()

	case key.Matches(msg, km.Backspace):
		m.doc.DeleteBackward()
	case key.Matches(msg, km.Delete):
		m.doc.DeleteForward()
	case key.Matches(msg, km.Enter):
		m.doc.InsertNewline()

	default:
		s, ok := typedText(msg)
		if !ok {
			return m, false
		}
		m.doc.InsertText(s)
	}
	return m, true
}

// typedText returns the literal text carried by a key press.
func typedText(msg tea.KeyMsg) (string, bool) {
	switch {
	case msg.Type == tea.KeySpace:
		return " ", true
	case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
		return string(msg.Runes), true
	}
	return "", false
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
