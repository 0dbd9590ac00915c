package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/focup/internal/models"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.Content = m.render()
	return view
}

func (m Model) render() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(m.title()))
	b.WriteString("\n")

	switch {
	case !m.loaded:
		b.WriteString(m.styles.Empty.Render("Loading..."))
		b.WriteString("\n")
	case len(m.tasks) == 0:
		b.WriteString(m.styles.Empty.Render(fmt.Sprintf("No tasks yet. Press %s to add one.", m.keys.AddTask)))
		b.WriteString("\n")
	default:
		for i, task := range m.tasks {
			b.WriteString(m.renderTask(task, i == m.cursor))
			b.WriteString("\n")
		}
	}

	if m.mode == InputMode && m.form != nil {
		b.WriteString("\n")
		b.WriteString(m.form.View())
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(m.help()))
	return b.String()
}

func (m Model) title() string {
	done := 0
	for _, task := range m.tasks {
		if task.IsCompleted {
			done++
		}
	}
	return fmt.Sprintf("focup  %d/%d done", done, len(m.tasks))
}

func (m Model) renderTask(task models.Task, selected bool) string {
	cursor := "  "
	if selected {
		cursor = m.styles.Cursor.Render("> ")
	}

	if task.IsCompleted {
		return cursor + "[x] " + m.styles.Completed.Render(task.Title)
	}
	return cursor + "[ ] " + m.styles.Task.Render(task.Title)
}

func (m Model) help() string {
	if m.mode == InputMode {
		return "enter: add • esc: cancel"
	}
	return fmt.Sprintf("%s: add • %s/x: toggle • %s: delete • %s/%s: move • %s: quit",
		m.keys.AddTask, m.keys.ToggleTask, m.keys.DeleteTask,
		m.keys.NextTask, m.keys.PrevTask, m.keys.Quit)
}
