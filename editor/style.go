package editor

import "github.com/charmbracelet/lipgloss"

// Style controls how Model renders the grid.
type Style struct {
	Text   lipgloss.Style
	Cursor lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:   lipgloss.NewStyle(),
		Cursor: lipgloss.NewStyle().Reverse(true),
	}
}
