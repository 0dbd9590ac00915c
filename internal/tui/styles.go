package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/focup/internal/config"
)

// Styles holds the lipgloss styles derived from the configured theme
type Styles struct {
	Title     lipgloss.Style
	Cursor    lipgloss.Style
	Task      lipgloss.Style
	Completed lipgloss.Style
	Empty     lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
}

// NewStyles builds styles for theme
func NewStyles(theme config.Theme) Styles {
	accent := lipgloss.Color(theme.Accent)
	subtle := lipgloss.Color(theme.Subtle)

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			MarginBottom(1),
		Cursor: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),
		Task: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Normal)),
		Completed: lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(subtle),
		Empty: lipgloss.NewStyle().
			Italic(true).
			Foreground(subtle),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Error)),
		Help: lipgloss.NewStyle().
			Foreground(subtle).
			MarginTop(1),
	}
}
