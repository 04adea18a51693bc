package checklist

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title       lipgloss.Style
	header      lipgloss.Style
	checkpoint  lipgloss.Style
	done        lipgloss.Style
	owner       lipgloss.Style
	subtask     lipgloss.Style
	signedOff   lipgloss.Style
	pending     lipgloss.Style
	section     lipgloss.Style
	empty       lipgloss.Style
	collapsed   lipgloss.Style
	scoreName   lipgloss.Style
	scoreValue  lipgloss.Style
	barBracket  lipgloss.Style
	barFill     lipgloss.Style
	barEmpty    lipgloss.Style
	archiveNote lipgloss.Style
	active      lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:       lipgloss.NewStyle().Bold(true),
		header:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		checkpoint:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		done:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		owner:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		subtask:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		signedOff:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		pending:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		section:     lipgloss.NewStyle().MarginTop(1),
		empty:       lipgloss.NewStyle().Faint(true),
		collapsed:   lipgloss.NewStyle().Faint(true),
		scoreName:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		scoreValue:  lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barBracket:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:     lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		archiveNote: lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("203")),
		active:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
	}
}
