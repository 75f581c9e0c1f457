package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	Toolbar       lipgloss.Style
	ToolbarActive lipgloss.Style

	Border       lipgloss.Style
	Cell         lipgloss.Style
	CellSelected lipgloss.Style

	Popup         lipgloss.Style
	PopupSelected lipgloss.Style

	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style
	Error       lipgloss.Style

	Status lipgloss.Style
}

// Colors are the themeable colors: ANSI numbers or #rrggbb.
type Colors struct {
	Selection     string
	Cursor        string
	Border        string
	Toolbar       string
	ToolbarActive string
}

func DefaultStyle() Style {
	return StyleWithColors(Colors{
		Selection:     "237",
		Cursor:        "",
		Border:        "240",
		Toolbar:       "245",
		ToolbarActive: "6",
	})
}

// StyleWithColors builds the default style around c. Empty colors keep
// the terminal default.
func StyleWithColors(c Colors) Style {
	border := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Border))
	cursor := lipgloss.NewStyle().Reverse(true)
	if c.Cursor != "" {
		cursor = lipgloss.NewStyle().Background(lipgloss.Color(c.Cursor)).Foreground(lipgloss.Color("0"))
	}
	selection := lipgloss.NewStyle().Background(lipgloss.Color(c.Selection))
	return Style{
		Text:      lipgloss.NewStyle(),
		Selection: selection,
		Cursor:    cursor,

		Toolbar:       lipgloss.NewStyle().Foreground(lipgloss.Color(c.Toolbar)),
		ToolbarActive: lipgloss.NewStyle().Foreground(lipgloss.Color(c.ToolbarActive)).Bold(true).Reverse(true),

		Border:       border,
		Cell:         lipgloss.NewStyle(),
		CellSelected: selection.Bold(true),

		Popup:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(c.Border)),
		PopupSelected: lipgloss.NewStyle().Reverse(true),

		Dialog:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(c.ToolbarActive)).Padding(0, 1),
		DialogTitle: lipgloss.NewStyle().Bold(true),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("1")),

		Status: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Toolbar)),
	}
}
