package tui

import (
	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/focup/internal/config"
	taskservice "github.com/thenoetrevino/focup/internal/services/task"
)

// newTaskForm builds the single-field prompt for a new task title.
// The typed value is written through title.
func newTaskForm(title *string, theme config.Theme) *huh.Form {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("title").
				Title("New task").
				Placeholder("What needs doing?").
				CharLimit(256).
				Validate(taskservice.ValidateTitle).
				Value(title),
		),
	)
	return form.
		WithKeyMap(taskFormKeyMap()).
		WithTheme(taskFormTheme(theme)).
		WithShowHelp(false)
}

// taskFormKeyMap lets esc abort the prompt
func taskFormKeyMap() *huh.KeyMap {
	keymap := huh.NewDefaultKeyMap()
	keymap.Quit = key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	)
	return keymap
}

// taskFormTheme matches the prompt to the list colors
func taskFormTheme(theme config.Theme) huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		accent := lipgloss.Color(theme.Accent)
		subtle := lipgloss.Color(theme.Subtle)
		errorColor := lipgloss.Color(theme.Error)

		t.Focused.Base = t.Focused.Base.BorderForeground(accent)
		t.Focused.Title = t.Focused.Title.Foreground(accent).Bold(true)
		t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(errorColor)
		t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(errorColor)
		t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(accent)
		t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(subtle)
		t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(accent)

		t.Blurred = t.Focused
		t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
		return t
	})
}
