package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds every lipgloss style used by the terminal views.
type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Error    lipgloss.Style
	Info     lipgloss.Style
	Help     lipgloss.Style
	Selected lipgloss.Style
	Item     lipgloss.Style
	Status   lipgloss.Style
	Panel    lipgloss.Style
}

func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginBottom(1),

		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			MarginTop(1),

		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Bold(true),

		Item: lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")),

		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")),

		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(1, 2),
	}
}
