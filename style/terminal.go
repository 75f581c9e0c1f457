package style

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal projects the declarations a terminal can show onto base.
// Unrecognized keys and values, font-size included, are ignored.
func (m Map) Terminal(base lipgloss.Style) lipgloss.Style {
	st := base
	for _, d := range m.decls {
		switch d.Key {
		case FontWeight:
			if isBoldWeight(d.Value) {
				st = st.Bold(true)
			}
		case FontStyle:
			if d.Value == "italic" || d.Value == "oblique" {
				st = st.Italic(true)
			}
		case TextDecoration:
			for _, v := range strings.Fields(d.Value) {
				switch v {
				case "underline":
					st = st.Underline(true)
				case "line-through":
					st = st.Strikethrough(true)
				}
			}
		case Color:
			if c, ok := terminalColor(d.Value); ok {
				st = st.Foreground(c)
			}
		case BackgroundColor:
			if c, ok := terminalColor(d.Value); ok {
				st = st.Background(c)
			}
		}
	}
	return st
}

func isBoldWeight(v string) bool {
	switch v {
	case "bold", "bolder":
		return true
	}
	n, err := strconv.Atoi(v)
	return err == nil && n >= 600
}

// terminalColor accepts #rgb, #rrggbb and ANSI 0-255 indexes.
func terminalColor(v string) (lipgloss.Color, bool) {
	if strings.HasPrefix(v, "#") {
		switch len(v) {
		case 4, 7:
			if _, err := strconv.ParseUint(v[1:], 16, 32); err == nil {
				return lipgloss.Color(v), true
			}
		}
		return "", false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n > 255 {
		return "", false
	}
	return lipgloss.Color(v), true
}
