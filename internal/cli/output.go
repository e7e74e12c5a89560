package cli

import "github.com/charmbracelet/lipgloss"

// styles holds the lipgloss styles the commands print with. The zero value
// renders everything unstyled, which is what --no-color relies on.
type styles struct {
	file  lipgloss.Style
	pos   lipgloss.Style
	count lipgloss.Style
	stat  lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		return styles{}
	}
	return styles{
		file:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		pos:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		count: lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		stat:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
	}
}
