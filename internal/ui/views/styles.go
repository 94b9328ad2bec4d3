package views

import "github.com/charmbracelet/lipgloss"

var (
	InputStyle = lipgloss.NewStyle().
			Padding(0, 1)

	ItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	SelectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(0).
				Foreground(lipgloss.Color("170")).
				Bold(true)

	DirSuffixStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	PreviewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	StatusStyle = lipgloss.NewStyle().
			Faint(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)
