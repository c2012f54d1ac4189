package choices

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	index    lipgloss.Style
	entry    lipgloss.Style
	team     lipgloss.Style
	status   lipgloss.Style
	proceed  lipgloss.Style
	blocked  lipgloss.Style
	ignored  lipgloss.Style
	detail   lipgloss.Style
	section  lipgloss.Style
	empty    lipgloss.Style
	question lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		index:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		entry:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		team:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		proceed:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		blocked:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		ignored:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244")),
		detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		section:  lipgloss.NewStyle().MarginTop(1),
		empty:    lipgloss.NewStyle().Faint(true),
		question: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("250")),
	}
}
