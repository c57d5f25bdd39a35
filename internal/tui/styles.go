package tui

import (
	"github.com/MKhiriev/flux-signup/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	labelStyle      = lipgloss.NewStyle().Width(18)
	focusedStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	successStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	strengthStyles = map[models.StrengthTier]lipgloss.Style{
		models.StrengthWeak:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		models.StrengthMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		models.StrengthStrong: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}
)
